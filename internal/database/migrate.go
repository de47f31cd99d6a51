package database

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/pageza/recipe-api/backend/internal/model"
)

// RunMigrations brings the schema up to date for every supported dialect
func RunMigrations(db *gorm.DB) error {
	slog.Info("running auto-migration", "dialect", db.Dialector.Name())
	if err := db.AutoMigrate(&model.Recipe{}); err != nil {
		return fmt.Errorf("failed to migrate recipes: %w", err)
	}
	return nil
}
