package config

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"foodhub-api/models"
)

// OpenDB connects to the database and migrates the schema. The returned
// handle is passed to each service at construction; nothing holds it
// globally.
func OpenDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "connect database")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Provider{},
		&models.Session{},
		&models.Menu{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
	); err != nil {
		return nil, errors.Wrap(err, "migrate database")
	}

	return db, nil
}
