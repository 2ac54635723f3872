package dto

import (
	"time"

	"github.com/KKK-90/POSTRKR-App/internal/model"
)

// ── bulk transfer DTOs ──

// ImportWarning a data row that was imported with fallback values.
type ImportWarning struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResponse result of a spreadsheet import.
type ImportResponse struct {
	OK       bool            `json:"ok"`
	Imported int64           `json:"imported"`
	Mapping  string          `json:"mapping"` // "header" or "position"
	Warnings []ImportWarning `json:"warnings"`
}

// RestoreResponse result of a JSON restore.
type RestoreResponse struct {
	OK       bool  `json:"ok"`
	Restored int64 `json:"restored"`
}

// BackupDocument the JSON backup file.
type BackupDocument struct {
	Locations  []model.Location `json:"locations"`
	BackupDate time.Time        `json:"backupDate"`
}

// RestoreDocument the accepted restore file; other keys are ignored.
type RestoreDocument struct {
	Locations []CreateLocationRequest `json:"locations"`
}

// FileDownload a generated file handed to the HTTP layer.
type FileDownload struct {
	Filename    string
	ContentType string
	Body        []byte
}
