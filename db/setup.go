package db

import (
	"context"

	"github.com/rogue-drones/workflow/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.User{},
		&models.Organisation{},
		&models.Client{},
		&models.Project{},
		&models.Meeting{},
		&models.Document{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}

// Ping checks the underlying connection, backing GET /health/db.
func Ping(ctx context.Context) error {
	sqlDB, err := DB.DB()

	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}
