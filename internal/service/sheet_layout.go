package service

import (
	"strings"
	"unicode"

	"github.com/KKK-90/POSTRKR-App/internal/model"
)

// ── spreadsheet layout ──
//
// One column per writable location field, in model.LocationFields order.
// Import and export both read this table.

type sheetColumn struct {
	Header string
	Field  model.LocationField
	Width  float64
}

var sheetHeaders = []struct {
	key    string
	header string
	width  float64
}{
	{"slNo", "Sl.No.", 8},
	{"division", "Division", 18},
	{"postOfficeName", "POST OFFICE NAME", 24},
	{"postOfficeId", "Post Office ID", 18},
	{"officeType", "Office Type", 14},
	{"contactPersonName", "NAME OF CONTACT PERSON AT THE LOCATION", 28},
	{"contactPersonNo", "CONTACT PERSON NO.", 18},
	{"altContactNo", "ALT CONTACT PERSON NO.", 18},
	{"contactEmail", "CONTACT EMAIL ID", 26},
	{"locationAddress", "LOCATION ADDRESS", 36},
	{"location", "LOCATION", 18},
	{"city", "CITY", 16},
	{"state", "STATE", 16},
	{"pincode", "PINCODE", 10},
	{"numberOfPosToBeDeployed", "NUMBER OF POS TO BE_DEPLOYED", 14},
	{"typeOfPosTerminal", "TYPE OF POS TERMINAL", 18},
	{"dateOfReceiptOfDevice", "Date of receipt of device", 16},
	{"noOfDevicesReceived", "No of devices received", 12},
	{"serialNo", "Serial No", 20},
	{"installationStatus", "Installation status", 16},
	{"functionalityStatus", "Functionality / Working status of POS machines", 20},
	{"issuesIfAny", "Issues if any", 30},
}

var sheetColumns = func() []sheetColumn {
	cols := make([]sheetColumn, 0, len(sheetHeaders))
	for _, h := range sheetHeaders {
		f, ok := model.LookupLocationField(h.key)
		if !ok {
			panic("sheet layout: unknown field " + h.key)
		}
		cols = append(cols, sheetColumn{Header: h.header, Field: f, Width: h.width})
	}
	return cols
}()

// importKeys are the fields an import reads; everything else is left to
// the record defaults.
var importKeys = []string{
	"division",
	"postOfficeName",
	"postOfficeId",
	"city",
	"state",
	"numberOfPosToBeDeployed",
	"installationStatus",
	"functionalityStatus",
	"issuesIfAny",
}

// Import mapping modes reported to the caller.
const (
	mappingHeader   = "header"
	mappingPosition = "position"
)

// headerAliases maps a normalized header to a field key. Both the sheet
// label and the JSON key are accepted.
var headerAliases = func() map[string]string {
	m := make(map[string]string, len(sheetHeaders)*2)
	for _, h := range sheetHeaders {
		m[normalizeHeader(h.header)] = h.key
		m[normalizeHeader(h.key)] = h.key
	}
	return m
}()

// normalizeHeader lower-cases and keeps letters and digits only, so
// "Post Office ID", "post_office_id" and "postOfficeId" compare equal.
func normalizeHeader(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// resolveColumns maps each import key to a zero-based column index. If the
// header names any import field, names win and unnamed fields are skipped;
// otherwise the fixed layout positions are used.
func resolveColumns(header []string) (map[string]int, string) {
	byName := make(map[string]int)
	for i, cell := range header {
		key, ok := headerAliases[normalizeHeader(cell)]
		if !ok {
			continue
		}
		if _, seen := byName[key]; !seen {
			byName[key] = i
		}
	}

	cols := make(map[string]int, len(importKeys))
	for _, key := range importKeys {
		if i, ok := byName[key]; ok {
			cols[key] = i
		}
	}
	if len(cols) > 0 {
		return cols, mappingHeader
	}

	for i, c := range sheetColumns {
		for _, key := range importKeys {
			if c.Field.Key == key {
				cols[key] = i
			}
		}
	}
	return cols, mappingPosition
}
