package database

import (
	"fmt"

	"resource-manager-backend/internal/database/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// Models lists every table in dependency order, parents first
func Models() []interface{} {
	return []interface{}{
		&models.TeamMember{},
		&models.Project{},
		&models.ProjectImage{},
		&models.ProjectLink{},
		&models.ProjectMember{},
		&models.Task{},
		&models.Subtask{},
	}
}

// migrations upgrade databases created before the column or table existed.
// A fresh database is built by InitSchema and marks all of them as applied.
func migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202401150001_project_channels_applications",
			Migrate: func(tx *gorm.DB) error {
				for _, column := range []string{"Channels", "Applications"} {
					if !tx.Migrator().HasColumn(&models.Project{}, column) {
						if err := tx.Migrator().AddColumn(&models.Project{}, column); err != nil {
							return err
						}
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				if err := tx.Migrator().DropColumn(&models.Project{}, "Applications"); err != nil {
					return err
				}
				return tx.Migrator().DropColumn(&models.Project{}, "Channels")
			},
		},
		{
			ID: "202403020001_project_delivery_date",
			Migrate: func(tx *gorm.DB) error {
				if tx.Migrator().HasColumn(&models.Project{}, "DeliveryDate") {
					return nil
				}
				return tx.Migrator().AddColumn(&models.Project{}, "DeliveryDate")
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropColumn(&models.Project{}, "DeliveryDate")
			},
		},
		{
			ID: "202405200001_project_links",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.ProjectLink{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&models.ProjectLink{})
			},
		},
		{
			ID: "202406110001_subtask_assignee",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Subtask{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropColumn(&models.Subtask{}, "AssigneeID")
			},
		},
	}
}

// Migrate brings the schema to the current model version
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, migrations())
	m.InitSchema(func(tx *gorm.DB) error {
		return tx.AutoMigrate(Models()...)
	})
	if err := m.Migrate(); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
