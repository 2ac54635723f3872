package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/KKK-90/POSTRKR-App/internal/model"
	"github.com/KKK-90/POSTRKR-App/internal/repository"
)

// ── Mock LocationRepository ──

type mockLocationRepo struct {
	locations map[int64]*model.Location
	nextID    int64

	// injected failures
	errList    error
	errCreate  error
	errReplace error
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{locations: make(map[int64]*model.Location)}
}

func newMockRepository(locRepo *mockLocationRepo) *repository.Repository {
	return &repository.Repository{Location: locRepo}
}

// seed stores copies of locs with fresh ids.
func (m *mockLocationRepo) seed(locs ...model.Location) {
	for i := range locs {
		_ = m.Create(context.Background(), &locs[i])
	}
}

func (m *mockLocationRepo) Create(_ context.Context, loc *model.Location) error {
	if m.errCreate != nil {
		return m.errCreate
	}
	m.nextID++
	loc.ID = m.nextID
	now := time.Now()
	if loc.CreatedAt.IsZero() {
		loc.CreatedAt = now
	}
	if loc.UpdatedAt.IsZero() {
		loc.UpdatedAt = now
	}
	cp := *loc
	m.locations[loc.ID] = &cp
	return nil
}

func (m *mockLocationRepo) GetByID(_ context.Context, id int64) (*model.Location, error) {
	if l, ok := m.locations[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocationRepo) List(_ context.Context) ([]model.Location, error) {
	if m.errList != nil {
		return nil, m.errList
	}
	var result []model.Location
	for _, l := range m.locations {
		result = append(result, *l)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].SlNo != result[j].SlNo {
			return result[i].SlNo < result[j].SlNo
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *mockLocationRepo) Update(_ context.Context, loc *model.Location) error {
	loc.UpdatedAt = time.Now()
	cp := *loc
	m.locations[loc.ID] = &cp
	return nil
}

func (m *mockLocationRepo) MaxSlNo(_ context.Context) (int, error) {
	max := 0
	for _, l := range m.locations {
		if l.SlNo > max {
			max = l.SlNo
		}
	}
	return max, nil
}

func (m *mockLocationRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.locations)), nil
}

func (m *mockLocationRepo) DeleteAndRenumber(_ context.Context, id int64) error {
	if _, ok := m.locations[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.locations, id)

	ids := make([]int64, 0, len(m.locations))
	for k := range m.locations {
		ids = append(ids, k)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, k := range ids {
		m.locations[k].SlNo = i + 1
	}
	return nil
}

func (m *mockLocationRepo) ReplaceAll(ctx context.Context, locs []model.Location) error {
	if m.errReplace != nil {
		return m.errReplace
	}
	m.locations = make(map[int64]*model.Location)
	for i := range locs {
		if err := m.Create(ctx, &locs[i]); err != nil {
			return err
		}
	}
	return nil
}

// ── Mock TokenStore ──

type mockTokenStore struct {
	revoked map[string]time.Duration
	err     error
}

func newMockTokenStore() *mockTokenStore {
	return &mockTokenStore{revoked: make(map[string]time.Duration)}
}

func (m *mockTokenStore) RevokeToken(_ context.Context, jti string, ttl time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.revoked[jti] = ttl
	return nil
}

func (m *mockTokenStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.revoked[jti]
	return ok, nil
}
