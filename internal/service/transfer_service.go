package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/KKK-90/POSTRKR-App/internal/dto"
	"github.com/KKK-90/POSTRKR-App/internal/model"
	"github.com/KKK-90/POSTRKR-App/internal/repository"
	apperrors "github.com/KKK-90/POSTRKR-App/pkg/errors"
)

// ── bulk transfer errors ──

var (
	ErrImportNoFile  = apperrors.New(apperrors.ErrInvalidInput, "No file uploaded")
	ErrImportNoData  = apperrors.New(apperrors.ErrInvalidInput, "No data found in Excel file")
	ErrRestoreNoFile = apperrors.New(apperrors.ErrInvalidInput, "No file uploaded")
)

// Import and restore defaults.
const (
	defaultInstallationStatus  = "Pending"
	defaultFunctionalityStatus = "Not Tested"

	exportSheetName = "POS Data"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	jsonContentType = "application/json"
)

// TransferService whole-dataset movement in and out of the store.
//
// Import and Restore replace every record in one transaction: a failure at
// any point leaves the previous data set in place. Parsing happens before
// the store is touched.
type TransferService interface {
	Import(ctx context.Context, r io.Reader) (*dto.ImportResponse, error)
	Export(ctx context.Context) (*dto.FileDownload, error)
	Backup(ctx context.Context) (*dto.FileDownload, error)
	Restore(ctx context.Context, r io.Reader) (*dto.RestoreResponse, error)
}

type transferService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewTransferService creates a TransferService.
func NewTransferService(repo *repository.Repository, logger *zap.Logger) TransferService {
	return &transferService{repo: repo, logger: logger, now: time.Now}
}

// ═══════════════════════════════════════════════════════════
// Import: xlsx → full replace
// ═══════════════════════════════════════════════════════════
//
// Row 1 of the first sheet is the header. Cells are read unformatted, so a
// counter shown as "1,200" arrives as 1200. Blank rows are skipped and the
// remaining rows are numbered 1..N. A row whose counter cannot be read is
// still imported with its identifying fields blanked, and reported.

func (s *transferService) Import(ctx context.Context, r io.Reader) (*dto.ImportResponse, error) {
	if r == nil {
		return nil, ErrImportNoFile
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		s.logger.Warn("open import workbook failed", zap.Error(err))
		return nil, fmt.Errorf("read spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrImportNoData
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, ErrImportNoData
	}

	cols, mapping := resolveColumns(rows[0])
	stamp := s.now().UnixNano()

	var (
		locs     []model.Location
		warnings = []dto.ImportWarning{}
	)
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		slNo := len(locs) + 1
		loc, warn := importRow(row, cols, slNo, stamp)
		if warn != "" {
			warnings = append(warnings, dto.ImportWarning{Row: i + 2, Reason: warn})
			s.logger.Warn("import row degraded", zap.Int("row", i+2), zap.String("reason", warn))
		}
		locs = append(locs, loc)
	}
	if len(locs) == 0 {
		return nil, ErrImportNoData
	}

	if err := s.repo.Location.ReplaceAll(ctx, locs); err != nil {
		s.logger.Error("import replace failed", zap.Int("rows", len(locs)), zap.Error(err))
		return nil, fmt.Errorf("import: %w", err)
	}

	count, err := s.repo.Location.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}

	s.logger.Info("spreadsheet imported",
		zap.Int64("imported", count),
		zap.String("mapping", mapping),
		zap.Int("warnings", len(warnings)),
	)

	return &dto.ImportResponse{
		OK:       true,
		Imported: count,
		Mapping:  mapping,
		Warnings: warnings,
	}, nil
}

// importRow builds one record from a sheet row. The returned reason is
// non-empty when the row fell back to defaults.
func importRow(row []string, cols map[string]int, slNo int, stamp int64) (model.Location, string) {
	get := func(key string) string {
		i, ok := cols[key]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	text := func(key string) *string {
		if v := get(key); v != "" {
			return model.StrPtr(v)
		}
		return nil
	}
	orDefault := func(key, def string) *string {
		if v := get(key); v != "" {
			return model.StrPtr(v)
		}
		return model.StrPtr(def)
	}

	loc := model.Location{
		SlNo:                slNo,
		Division:            text("division"),
		PostOfficeName:      text("postOfficeName"),
		PostOfficeID:        text("postOfficeId"),
		City:                text("city"),
		State:               text("state"),
		InstallationStatus:  orDefault("installationStatus", defaultInstallationStatus),
		FunctionalityStatus: orDefault("functionalityStatus", defaultFunctionalityStatus),
		IssuesIfAny:         orDefault("issuesIfAny", defaultIssues),
	}

	n, err := dto.ParseFlexInt(get("numberOfPosToBeDeployed"))
	if err != nil {
		loc.Division = model.StrPtr("")
		loc.PostOfficeName = model.StrPtr("")
		loc.PostOfficeID = model.StrPtr("")
		loc.City = model.StrPtr("")
		loc.State = model.StrPtr("")
		loc.NumberOfPosToBeDeployed = 0
		return loc, fmt.Sprintf("numberOfPosToBeDeployed: %v", err)
	}
	loc.NumberOfPosToBeDeployed = n

	if model.StrVal(loc.PostOfficeID) == "" {
		loc.PostOfficeID = model.StrPtr(fmt.Sprintf("AUTO-%d-%d", stamp, slNo))
	}

	return loc, ""
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ═══════════════════════════════════════════════════════════
// Export: all records → xlsx
// ═══════════════════════════════════════════════════════════

func (s *transferService) Export(ctx context.Context) (*dto.FileDownload, error) {
	locs, err := s.repo.Location.List(ctx)
	if err != nil {
		s.logger.Error("list locations for export failed", zap.Error(err))
		return nil, fmt.Errorf("export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	header := make([]interface{}, len(sheetColumns))
	for i, c := range sheetColumns {
		header[i] = c.Header
		col := colName(i)
		if err := f.SetColWidth(exportSheetName, col, col, c.Width); err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
	}
	if err := f.SetSheetRow(exportSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	lastHeader := cell(colName(len(sheetColumns)-1), 1)
	if err := f.SetCellStyle(exportSheetName, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	for r := range locs {
		values := make([]interface{}, len(sheetColumns))
		for i, c := range sheetColumns {
			if c.Field.IsInt() {
				values[i] = *c.Field.Int(&locs[r])
			} else {
				values[i] = model.StrVal(*c.Field.Text(&locs[r]))
			}
		}
		if err := f.SetSheetRow(exportSheetName, cell("A", r+2), &values); err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write export workbook failed", zap.Error(err))
		return nil, fmt.Errorf("export: %w", err)
	}

	return &dto.FileDownload{
		Filename:    fmt.Sprintf("POS_Data_Export_%s.xlsx", s.now().UTC().Format("2006-01-02")),
		ContentType: xlsxContentType,
		Body:        buf.Bytes(),
	}, nil
}

// ═══════════════════════════════════════════════════════════
// Backup: all records → JSON
// ═══════════════════════════════════════════════════════════

func (s *transferService) Backup(ctx context.Context) (*dto.FileDownload, error) {
	locs, err := s.repo.Location.List(ctx)
	if err != nil {
		s.logger.Error("list locations for backup failed", zap.Error(err))
		return nil, fmt.Errorf("backup: %w", err)
	}
	if locs == nil {
		locs = []model.Location{}
	}

	now := s.now().UTC()
	body, err := json.MarshalIndent(dto.BackupDocument{
		Locations:  locs,
		BackupDate: now,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("backup: %w", err)
	}

	return &dto.FileDownload{
		Filename:    fmt.Sprintf("POS_Backup_%s.json", now.Format("2006-01-02")),
		ContentType: jsonContentType,
		Body:        body,
	}, nil
}

// ═══════════════════════════════════════════════════════════
// Restore: JSON → full replace
// ═══════════════════════════════════════════════════════════
//
// Records get the create defaults; a missing slNo falls back to the array
// position. Stored ids are not carried over. Timestamps in the file are kept.

func (s *transferService) Restore(ctx context.Context, r io.Reader) (*dto.RestoreResponse, error) {
	if r == nil {
		return nil, ErrRestoreNoFile
	}

	var doc dto.RestoreDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		s.logger.Warn("decode backup failed", zap.Error(err))
		return nil, fmt.Errorf("read backup: %w", err)
	}

	locs := make([]model.Location, 0, len(doc.Locations))
	for i := range doc.Locations {
		item := &doc.Locations[i]
		loc := buildLocation(item)
		if loc.SlNo == 0 {
			loc.SlNo = i + 1
		}
		loc.CreatedAt = item.CreatedAt.Value()
		loc.UpdatedAt = item.UpdatedAt.Value()
		locs = append(locs, loc)
	}

	if err := s.repo.Location.ReplaceAll(ctx, locs); err != nil {
		s.logger.Error("restore replace failed", zap.Int("rows", len(locs)), zap.Error(err))
		return nil, fmt.Errorf("restore: %w", err)
	}

	count, err := s.repo.Location.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore: %w", err)
	}

	s.logger.Info("backup restored", zap.Int64("restored", count))

	return &dto.RestoreResponse{OK: true, Restored: count}, nil
}

// ── helpers ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
