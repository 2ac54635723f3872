package model

import "time"

// BaseModel timestamps embedded by every table. gorm fills zero values on
// insert and refreshes UpdatedAt on save.
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
