package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/KKK-90/POSTRKR-App/internal/model"
)

// replaceBatchSize rows per INSERT during a full replace.
const replaceBatchSize = 200

// renumberSQL sets sl_no to each row's rank by id. Only rows whose number
// changes are touched, so their updated_at moves and the rest keep theirs.
const renumberSQL = `
UPDATE locations
SET sl_no = (SELECT COUNT(*) FROM locations AS l2 WHERE l2.id <= locations.id),
    updated_at = ?
WHERE sl_no IS NULL
   OR sl_no <> (SELECT COUNT(*) FROM locations AS l2 WHERE l2.id <= locations.id)`

// LocationRepository data access for deployment sites.
type LocationRepository interface {
	Create(ctx context.Context, loc *model.Location) error
	GetByID(ctx context.Context, id int64) (*model.Location, error)
	// List returns every row ordered by sl_no, then id.
	List(ctx context.Context) ([]model.Location, error)
	Update(ctx context.Context, loc *model.Location) error
	// MaxSlNo is 0 for an empty table.
	MaxSlNo(ctx context.Context) (int, error)
	Count(ctx context.Context) (int64, error)
	// DeleteAndRenumber removes one row and renumbers sl_no densely by id in
	// the same transaction. gorm.ErrRecordNotFound if nothing was deleted.
	DeleteAndRenumber(ctx context.Context, id int64) error
	// ReplaceAll deletes every row and inserts locs in one transaction. On
	// error the previous contents are kept.
	ReplaceAll(ctx context.Context, locs []model.Location) error
}

type locationRepo struct {
	db *gorm.DB
}

// NewLocationRepo creates a LocationRepository.
func NewLocationRepo(db *gorm.DB) LocationRepository {
	return &locationRepo{db: db}
}

func (r *locationRepo) Create(ctx context.Context, loc *model.Location) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

func (r *locationRepo) GetByID(ctx context.Context, id int64) (*model.Location, error) {
	var loc model.Location
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&loc).Error
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *locationRepo) List(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	err := r.db.WithContext(ctx).
		Order("sl_no ASC, id ASC").
		Find(&locations).Error
	return locations, err
}

func (r *locationRepo) Update(ctx context.Context, loc *model.Location) error {
	return r.db.WithContext(ctx).Save(loc).Error
}

func (r *locationRepo) MaxSlNo(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).
		Model(&model.Location{}).
		Select("COALESCE(MAX(sl_no), 0)").
		Scan(&max).Error
	return max, err
}

func (r *locationRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Location{}).Count(&n).Error
	return n, err
}

func (r *locationRepo) DeleteAndRenumber(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Location{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Exec(renumberSQL, time.Now()).Error
	})
}

func (r *locationRepo) ReplaceAll(ctx context.Context, locs []model.Location) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// hard delete of the whole table; the sequence keeps counting so ids are not reused
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.Location{}).Error; err != nil {
			return err
		}
		if len(locs) > 0 {
			if err := tx.CreateInBatches(locs, replaceBatchSize).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
