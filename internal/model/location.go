package model

// Location one POS deployment site, table locations.
//
// Text columns are nullable and serialize as JSON null when unset. SlNo is the
// user-facing display order and is not unique at the database level.
type Location struct {
	ID   int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	SlNo int   `gorm:"index"                    json:"slNo"`

	Division          *string `json:"division"`
	PostOfficeName    *string `json:"postOfficeName"`
	PostOfficeID      *string `json:"postOfficeId"`
	OfficeType        *string `json:"officeType"`
	ContactPersonName *string `json:"contactPersonName"`
	ContactPersonNo   *string `json:"contactPersonNo"`
	AltContactNo      *string `json:"altContactNo"`
	ContactEmail      *string `json:"contactEmail"`
	LocationAddress   *string `json:"locationAddress"`
	Location          *string `json:"location"`
	City              *string `json:"city"`
	State             *string `json:"state"`
	Pincode           *string `json:"pincode"`

	NumberOfPosToBeDeployed int     `gorm:"not null;default:0" json:"numberOfPosToBeDeployed"`
	TypeOfPosTerminal       *string `json:"typeOfPosTerminal"`
	DateOfReceiptOfDevice   *string `json:"dateOfReceiptOfDevice"`
	NoOfDevicesReceived     int     `gorm:"not null;default:0" json:"noOfDevicesReceived"`
	SerialNo                *string `json:"serialNo"`

	InstallationStatus  *string `json:"installationStatus"`
	FunctionalityStatus *string `json:"functionalityStatus"`
	IssuesIfAny         *string `json:"issuesIfAny"`

	BaseModel
}

// TableName fixes the table name.
func (Location) TableName() string { return "locations" }

// StrPtr returns a pointer to s.
func StrPtr(s string) *string { return &s }

// StrVal dereferences p, "" when nil.
func StrVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
