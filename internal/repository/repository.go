package repository

import "gorm.io/gorm"

// Repository aggregates every repository.
type Repository struct {
	Location LocationRepository
}

// NewRepository builds the aggregate over one gorm handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Location: NewLocationRepo(db),
	}
}
