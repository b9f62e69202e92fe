package database

import (
	"fmt"
	"log"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/yukikurage/project-management-api/internal/models"
	"gorm.io/gorm"
)

// Migrations returns the ordered schema history.
func Migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "20241001_create_users",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("users")
			},
		},
		{
			ID: "20241001_create_projects",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Project{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("projects")
			},
		},
		{
			ID: "20241015_add_projects_owner_created_index",
			Migrate: func(tx *gorm.DB) error {
				if tx.Migrator().HasIndex(&models.Project{}, "idx_projects_user_id_id") {
					return nil
				}
				return tx.Exec("CREATE INDEX idx_projects_user_id_id ON projects (user_id, id)").Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropIndex(&models.Project{}, "idx_projects_user_id_id")
			},
		},
	}
}

// MigrateDatabase runs all pending migrations against db.
func MigrateDatabase(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, Migrations())
	if err := m.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func Migrate() error {
	log.Println("Running database migrations...")
	if err := MigrateDatabase(DB); err != nil {
		return err
	}
	log.Println("Database migrations completed")
	return nil
}
