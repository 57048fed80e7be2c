package database

import (
	"fmt"

	"gorm.io/gorm"

	"project-plan-api/internal/domain"
)

// AutoMigrate runs GORM auto-migration for all domain models.
// Tables, indexes and foreign key constraints are derived from the struct
// definitions in the domain package.
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.Project{},
		&domain.Task{},
		&domain.Sprint{},
		&domain.Resource{},
		&domain.Assignment{},
		&domain.Baseline{},
		&domain.ChangeRequest{},
		&domain.ChangeAnalysis{},
		&domain.ChangeHistory{},
		&domain.Risk{},
		&domain.Decision{},
		&domain.Milestone{},
		&domain.UserSettings{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}
