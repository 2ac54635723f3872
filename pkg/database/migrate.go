package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KKK-90/POSTRKR-App/internal/model"
)

// RunMigrations creates or extends the tables from the models.
func RunMigrations(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(&model.Location{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logger.Info("schema up to date", zap.String("table", model.Location{}.TableName()))
	return nil
}
