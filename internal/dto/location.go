package dto

import "encoding/json"

// ── location module DTOs ──

// CreateLocationRequest create payload. Every field is optional; unknown keys
// are ignored. The same shape is an element of a backup's locations array;
// the timestamps are only honored there.
type CreateLocationRequest struct {
	SlNo *FlexInt `json:"slNo"`

	Division          *FlexString `json:"division"`
	PostOfficeName    *FlexString `json:"postOfficeName"`
	PostOfficeID      *FlexString `json:"postOfficeId"`
	OfficeType        *FlexString `json:"officeType"`
	ContactPersonName *FlexString `json:"contactPersonName"`
	ContactPersonNo   *FlexString `json:"contactPersonNo"`
	AltContactNo      *FlexString `json:"altContactNo"`
	ContactEmail      *FlexString `json:"contactEmail"`
	LocationAddress   *FlexString `json:"locationAddress"`
	Location          *FlexString `json:"location"`
	City              *FlexString `json:"city"`
	State             *FlexString `json:"state"`
	Pincode           *FlexString `json:"pincode"`

	NumberOfPosToBeDeployed *FlexInt    `json:"numberOfPosToBeDeployed"`
	TypeOfPosTerminal       *FlexString `json:"typeOfPosTerminal"`
	DateOfReceiptOfDevice   *FlexString `json:"dateOfReceiptOfDevice"`
	NoOfDevicesReceived     *FlexInt    `json:"noOfDevicesReceived"`
	SerialNo                *FlexString `json:"serialNo"`

	InstallationStatus  *FlexString `json:"installationStatus"`
	FunctionalityStatus *FlexString `json:"functionalityStatus"`
	IssuesIfAny         *FlexString `json:"issuesIfAny"`

	CreatedAt *FlexTime `json:"created_at,omitempty"`
	UpdatedAt *FlexTime `json:"updated_at,omitempty"`
}

// UpdateLocationRequest partial update keyed by JSON field name. Only keys
// present are applied; an explicit null clears the field.
type UpdateLocationRequest map[string]json.RawMessage
