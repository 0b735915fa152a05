package database

import (
	"log"

	"goblog/config"
	"goblog/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured database. TranslateError is enabled so
// unique-index violations come back as gorm.ErrDuplicatedKey regardless
// of driver.
func Connect(cfg *config.Config) *gorm.DB {
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseURL())
	default:
		dialector = sqlite.Open(cfg.DBPath)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	return db
}

func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
	)

	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
}
