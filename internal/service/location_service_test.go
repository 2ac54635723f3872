package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/KKK-90/POSTRKR-App/internal/dto"
	"github.com/KKK-90/POSTRKR-App/internal/model"
	apperrors "github.com/KKK-90/POSTRKR-App/pkg/errors"
)

// ── helpers ──

func setupTestLocationService() (LocationService, *mockLocationRepo) {
	locationRepo := newMockLocationRepo()
	svc := NewLocationService(newMockRepository(locationRepo), zap.NewNop())
	return svc, locationRepo
}

func decodeCreate(t *testing.T, body string) *dto.CreateLocationRequest {
	t.Helper()
	var req dto.CreateLocationRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("decode create payload: %v", err)
	}
	return &req
}

func decodeUpdate(t *testing.T, body string) dto.UpdateLocationRequest {
	t.Helper()
	var req dto.UpdateLocationRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("decode update payload: %v", err)
	}
	return req
}

// ── Create ──

func TestLocationService_Create_Defaults(t *testing.T) {
	svc, _ := setupTestLocationService()

	loc, err := svc.Create(context.Background(), decodeCreate(t, `{"postOfficeName":"Anna Road HO"}`))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if loc.ID == 0 {
		t.Error("expected an assigned id")
	}
	if loc.SlNo != 1 {
		t.Errorf("expected slNo=1 on empty store, got %d", loc.SlNo)
	}
	if model.StrVal(loc.IssuesIfAny) != "None" {
		t.Errorf("expected issuesIfAny=None, got %v", loc.IssuesIfAny)
	}
	if loc.NumberOfPosToBeDeployed != 0 || loc.NoOfDevicesReceived != 0 {
		t.Errorf("expected zero counters, got %d/%d", loc.NumberOfPosToBeDeployed, loc.NoOfDevicesReceived)
	}
	if loc.Division != nil || loc.City != nil {
		t.Error("unsupplied text fields should stay null")
	}
	if model.StrVal(loc.PostOfficeName) != "Anna Road HO" {
		t.Errorf("unexpected postOfficeName %v", loc.PostOfficeName)
	}
}

func TestLocationService_Create_SlNoAppendsAfterMax(t *testing.T) {
	svc, locRepo := setupTestLocationService()
	locRepo.seed(model.Location{SlNo: 1}, model.Location{SlNo: 7})

	loc, err := svc.Create(context.Background(), decodeCreate(t, `{"slNo":0}`))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if loc.SlNo != 8 {
		t.Errorf("expected slNo=8, got %d", loc.SlNo)
	}
}

func TestLocationService_Create_ExplicitSlNoAndStringNumbers(t *testing.T) {
	svc, _ := setupTestLocationService()

	loc, err := svc.Create(context.Background(), decodeCreate(t,
		`{"slNo":"5","numberOfPosToBeDeployed":"3","noOfDevicesReceived":2,"pincode":600002,"issuesIfAny":""}`))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if loc.SlNo != 5 {
		t.Errorf("expected slNo=5, got %d", loc.SlNo)
	}
	if loc.NumberOfPosToBeDeployed != 3 || loc.NoOfDevicesReceived != 2 {
		t.Errorf("unexpected counters %d/%d", loc.NumberOfPosToBeDeployed, loc.NoOfDevicesReceived)
	}
	if model.StrVal(loc.Pincode) != "600002" {
		t.Errorf("expected numeric pincode kept as text, got %v", loc.Pincode)
	}
	if model.StrVal(loc.IssuesIfAny) != "None" {
		t.Errorf("empty issuesIfAny should default to None, got %v", loc.IssuesIfAny)
	}
}

func TestLocationService_Create_StoreError(t *testing.T) {
	svc, locRepo := setupTestLocationService()
	locRepo.errCreate = errors.New("disk full")

	_, err := svc.Create(context.Background(), decodeCreate(t, `{}`))
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("storage failure must not map to a client error: %v", err)
	}
}

// ── GetByID / List ──

func TestLocationService_GetByID(t *testing.T) {
	svc, locRepo := setupTestLocationService()
	locRepo.seed(model.Location{SlNo: 1, City: model.StrPtr("Chennai")})

	loc, err := svc.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if model.StrVal(loc.City) != "Chennai" {
		t.Errorf("unexpected city %v", loc.City)
	}

	_, err = svc.GetByID(context.Background(), 99)
	if !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("expected ErrLocationNotFound, got %v", err)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Error("ErrLocationNotFound should be of kind ErrNotFound")
	}
}

func TestLocationService_List_OrderAndEmpty(t *testing.T) {
	svc, locRepo := setupTestLocationService()

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("expected empty non-nil list, got %v", list)
	}

	locRepo.seed(model.Location{SlNo: 3}, model.Location{SlNo: 1}, model.Location{SlNo: 2})
	list, _ = svc.List(context.Background())
	for i, l := range list {
		if l.SlNo != i+1 {
			t.Errorf("position %d has slNo %d", i, l.SlNo)
		}
	}
}

// ── Update ──

func TestLocationService_Update_MergesPresentKeysOnly(t *testing.T) {
	svc, locRepo := setupTestLocationService()
	locRepo.seed(model.Location{
		SlNo:                    1,
		Division:                model.StrPtr("Chennai City North"),
		City:                    model.StrPtr("Chennai"),
		NumberOfPosToBeDeployed: 2,
		IssuesIfAny:             model.StrPtr("None"),
	})

	loc, err := svc.Update(context.Background(), 1, decodeUpdate(t,
		`{"city":"Madurai","numberOfPosToBeDeployed":"4","division":null,"id":50,"created_at":"2020-01-01T00:00:00Z","unknown":"x"}`))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if loc.ID != 1 {
		t.Errorf("id must not change, got %d", loc.ID)
	}
	if model.StrVal(loc.City) != "Madurai" {
		t.Errorf("expected city=Madurai, got %v", loc.City)
	}
	if loc.NumberOfPosToBeDeployed != 4 {
		t.Errorf("expected numberOfPos=4, got %d", loc.NumberOfPosToBeDeployed)
	}
	if loc.Division != nil {
		t.Errorf("explicit null should clear division, got %v", loc.Division)
	}
	if model.StrVal(loc.IssuesIfAny) != "None" || loc.SlNo != 1 {
		t.Error("absent keys must be left untouched")
	}
	if loc.CreatedAt.Year() == 2020 {
		t.Error("created_at must not be writable")
	}

	stored, _ := locRepo.GetByID(context.Background(), 1)
	if model.StrVal(stored.City) != "Madurai" {
		t.Error("update was not persisted")
	}
}

func TestLocationService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestLocationService()

	_, err := svc.Update(context.Background(), 42, decodeUpdate(t, `{"city":"x"}`))
	if !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("expected ErrLocationNotFound, got %v", err)
	}
}

func TestLocationService_Update_WrongType(t *testing.T) {
	svc, locRepo := setupTestLocationService()
	locRepo.seed(model.Location{SlNo: 1, City: model.StrPtr("Chennai")})

	tests := []struct {
		name string
		body string
	}{
		{"object for text", `{"city":{"a":1}}`},
		{"non-numeric counter", `{"noOfDevicesReceived":"many"}`},
		{"bool for slNo", `{"slNo":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), 1, decodeUpdate(t, tt.body))
			if !errors.Is(err, ErrInvalidLocationField) {
				t.Errorf("expected ErrInvalidLocationField, got %v", err)
			}
			if !errors.Is(err, apperrors.ErrInvalidInput) {
				t.Error("expected kind ErrInvalidInput")
			}
		})
	}

	stored, _ := locRepo.GetByID(context.Background(), 1)
	if model.StrVal(stored.City) != "Chennai" {
		t.Error("a rejected update must not be persisted")
	}
}

// ── Delete ──

func TestLocationService_Delete_Renumbers(t *testing.T) {
	svc, locRepo := setupTestLocationService()
	locRepo.seed(model.Location{SlNo: 1}, model.Location{SlNo: 2}, model.Location{SlNo: 3})

	if err := svc.Delete(context.Background(), 2); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	list, _ := svc.List(context.Background())
	if len(list) != 2 {
		t.Fatalf("expected 2 records, got %d", len(list))
	}
	if list[0].ID != 1 || list[0].SlNo != 1 || list[1].ID != 3 || list[1].SlNo != 2 {
		t.Errorf("unexpected renumbering: %+v", list)
	}
}

func TestLocationService_Delete_NotFound(t *testing.T) {
	svc, _ := setupTestLocationService()

	if err := svc.Delete(context.Background(), 7); !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("expected ErrLocationNotFound, got %v", err)
	}
}

func TestLocationService_Create_IgnoresClientTimestamps(t *testing.T) {
	svc, locRepo := setupTestLocationService()
	before := time.Now()

	loc, err := svc.Create(context.Background(),
		decodeCreate(t, `{"city":"Madurai","created_at":"2001-01-01T00:00:00Z","updated_at":"2001-01-01T00:00:00Z"}`))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	stored, _ := locRepo.GetByID(context.Background(), loc.ID)
	if stored.CreatedAt.Before(before) {
		t.Errorf("created_at taken from payload: %v", stored.CreatedAt)
	}
	if stored.UpdatedAt.Before(before) {
		t.Errorf("updated_at taken from payload: %v", stored.UpdatedAt)
	}
}
