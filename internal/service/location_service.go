package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KKK-90/POSTRKR-App/internal/dto"
	"github.com/KKK-90/POSTRKR-App/internal/model"
	"github.com/KKK-90/POSTRKR-App/internal/repository"
	apperrors "github.com/KKK-90/POSTRKR-App/pkg/errors"
)

// ── location module errors ──

var (
	ErrLocationNotFound     = apperrors.New(apperrors.ErrNotFound, "location not found")
	ErrInvalidLocationField = apperrors.New(apperrors.ErrInvalidInput, "invalid location field")
)

// defaultIssues is stored when a record has no issues text.
const defaultIssues = "None"

// LocationService record CRUD and the slNo policy.
//
//   - Create without slNo appends after the current maximum; gaps left by
//     caller-chosen numbers are kept.
//   - Delete always renumbers the survivors 1..N by id.
type LocationService interface {
	List(ctx context.Context) ([]model.Location, error)
	GetByID(ctx context.Context, id int64) (*model.Location, error)
	Create(ctx context.Context, req *dto.CreateLocationRequest) (*model.Location, error)
	Update(ctx context.Context, id int64, req dto.UpdateLocationRequest) (*model.Location, error)
	Delete(ctx context.Context, id int64) error
}

type locationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLocationService creates a LocationService.
func NewLocationService(repo *repository.Repository, logger *zap.Logger) LocationService {
	return &locationService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *locationService) List(ctx context.Context) ([]model.Location, error) {
	locations, err := s.repo.Location.List(ctx)
	if err != nil {
		s.logger.Error("list locations failed", zap.Error(err))
		return nil, fmt.Errorf("list locations: %w", err)
	}
	if locations == nil {
		locations = []model.Location{}
	}
	return locations, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *locationService) GetByID(ctx context.Context, id int64) (*model.Location, error) {
	loc, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		s.logger.Error("get location failed", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("get location %d: %w", id, err)
	}
	return loc, nil
}

// ────────────────────── Create ──────────────────────

func (s *locationService) Create(ctx context.Context, req *dto.CreateLocationRequest) (*model.Location, error) {
	loc := buildLocation(req)

	if loc.SlNo == 0 {
		max, err := s.repo.Location.MaxSlNo(ctx)
		if err != nil {
			s.logger.Error("read max slNo failed", zap.Error(err))
			return nil, fmt.Errorf("create location: %w", err)
		}
		loc.SlNo = max + 1
	}

	if err := s.repo.Location.Create(ctx, &loc); err != nil {
		s.logger.Error("create location failed", zap.Error(err))
		return nil, fmt.Errorf("create location: %w", err)
	}

	return &loc, nil
}

// ────────────────────── Update ──────────────────────

func (s *locationService) Update(ctx context.Context, id int64, req dto.UpdateLocationRequest) (*model.Location, error) {
	loc, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyFields(loc, req); err != nil {
		return nil, err
	}

	if err := s.repo.Location.Update(ctx, loc); err != nil {
		s.logger.Error("update location failed", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("update location %d: %w", id, err)
	}

	return loc, nil
}

// ────────────────────── Delete ──────────────────────

func (s *locationService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Location.DeleteAndRenumber(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLocationNotFound
		}
		s.logger.Error("delete location failed", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("delete location %d: %w", id, err)
	}

	return nil
}

// ── helpers ──

// buildLocation maps a create payload onto a new record with the stored
// defaults. SlNo stays 0 when the caller did not choose one. Timestamps are
// left to the store.
func buildLocation(req *dto.CreateLocationRequest) model.Location {
	loc := model.Location{
		SlNo:                    req.SlNo.Int(),
		Division:                req.Division.Ptr(),
		PostOfficeName:          req.PostOfficeName.Ptr(),
		PostOfficeID:            req.PostOfficeID.Ptr(),
		OfficeType:              req.OfficeType.Ptr(),
		ContactPersonName:       req.ContactPersonName.Ptr(),
		ContactPersonNo:         req.ContactPersonNo.Ptr(),
		AltContactNo:            req.AltContactNo.Ptr(),
		ContactEmail:            req.ContactEmail.Ptr(),
		LocationAddress:         req.LocationAddress.Ptr(),
		Location:                req.Location.Ptr(),
		City:                    req.City.Ptr(),
		State:                   req.State.Ptr(),
		Pincode:                 req.Pincode.Ptr(),
		NumberOfPosToBeDeployed: req.NumberOfPosToBeDeployed.Int(),
		TypeOfPosTerminal:       req.TypeOfPosTerminal.Ptr(),
		DateOfReceiptOfDevice:   req.DateOfReceiptOfDevice.Ptr(),
		NoOfDevicesReceived:     req.NoOfDevicesReceived.Int(),
		SerialNo:                req.SerialNo.Ptr(),
		InstallationStatus:      req.InstallationStatus.Ptr(),
		FunctionalityStatus:     req.FunctionalityStatus.Ptr(),
		IssuesIfAny:             req.IssuesIfAny.Ptr(),
	}
	if model.StrVal(loc.IssuesIfAny) == "" {
		loc.IssuesIfAny = model.StrPtr(defaultIssues)
	}
	return loc
}

// applyFields merges the keys present in req into loc. Keys that are not
// writable fields are ignored.
func applyFields(loc *model.Location, req dto.UpdateLocationRequest) error {
	for key, raw := range req {
		field, ok := model.LookupLocationField(key)
		if !ok {
			continue
		}
		if field.IsInt() {
			var v dto.FlexInt
			if err := json.Unmarshal(raw, &v); err != nil {
				return fmt.Errorf("%w %s: %v", ErrInvalidLocationField, key, err)
			}
			*field.Int(loc) = int(v)
			continue
		}
		var v *dto.FlexString
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("%w %s: %v", ErrInvalidLocationField, key, err)
		}
		*field.Text(loc) = v.Ptr()
	}
	return nil
}
