package model

// LocationField describes one client-writable column of Location by its JSON
// key. Exactly one of Text or Int is set.
type LocationField struct {
	Key  string
	Text func(l *Location) **string
	Int  func(l *Location) *int
}

// IsInt reports whether the field holds an integer.
func (f LocationField) IsInt() bool { return f.Int != nil }

func textField(key string, get func(l *Location) **string) LocationField {
	return LocationField{Key: key, Text: get}
}

func intField(key string, get func(l *Location) *int) LocationField {
	return LocationField{Key: key, Int: get}
}

// locationFields lists the writable fields in spreadsheet column order.
// id and the timestamps are not writable and are deliberately absent.
var locationFields = []LocationField{
	intField("slNo", func(l *Location) *int { return &l.SlNo }),
	textField("division", func(l *Location) **string { return &l.Division }),
	textField("postOfficeName", func(l *Location) **string { return &l.PostOfficeName }),
	textField("postOfficeId", func(l *Location) **string { return &l.PostOfficeID }),
	textField("officeType", func(l *Location) **string { return &l.OfficeType }),
	textField("contactPersonName", func(l *Location) **string { return &l.ContactPersonName }),
	textField("contactPersonNo", func(l *Location) **string { return &l.ContactPersonNo }),
	textField("altContactNo", func(l *Location) **string { return &l.AltContactNo }),
	textField("contactEmail", func(l *Location) **string { return &l.ContactEmail }),
	textField("locationAddress", func(l *Location) **string { return &l.LocationAddress }),
	textField("location", func(l *Location) **string { return &l.Location }),
	textField("city", func(l *Location) **string { return &l.City }),
	textField("state", func(l *Location) **string { return &l.State }),
	textField("pincode", func(l *Location) **string { return &l.Pincode }),
	intField("numberOfPosToBeDeployed", func(l *Location) *int { return &l.NumberOfPosToBeDeployed }),
	textField("typeOfPosTerminal", func(l *Location) **string { return &l.TypeOfPosTerminal }),
	textField("dateOfReceiptOfDevice", func(l *Location) **string { return &l.DateOfReceiptOfDevice }),
	intField("noOfDevicesReceived", func(l *Location) *int { return &l.NoOfDevicesReceived }),
	textField("serialNo", func(l *Location) **string { return &l.SerialNo }),
	textField("installationStatus", func(l *Location) **string { return &l.InstallationStatus }),
	textField("functionalityStatus", func(l *Location) **string { return &l.FunctionalityStatus }),
	textField("issuesIfAny", func(l *Location) **string { return &l.IssuesIfAny }),
}

var locationFieldIndex = func() map[string]LocationField {
	m := make(map[string]LocationField, len(locationFields))
	for _, f := range locationFields {
		m[f.Key] = f
	}
	return m
}()

// LocationFields returns the writable fields in spreadsheet column order.
func LocationFields() []LocationField {
	out := make([]LocationField, len(locationFields))
	copy(out, locationFields)
	return out
}

// LookupLocationField finds a writable field by JSON key.
func LookupLocationField(key string) (LocationField, bool) {
	f, ok := locationFieldIndex[key]
	return f, ok
}
