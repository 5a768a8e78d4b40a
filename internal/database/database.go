package database

import (
	"fmt"
	"log"

	"trivia-api/internal/config"
	"trivia-api/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Category{},
		&models.Question{},
	)
	if err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("database migrated")
}

// Seed inserts the default category catalog. Categories are read-only
// through the API, so an empty table would make every question orphaned.
// Does nothing when categories already exist.
func Seed(db *gorm.DB) {
	var count int64
	db.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []models.Category{
		{Type: "Science"},
		{Type: "Art"},
		{Type: "Geography"},
		{Type: "History"},
		{Type: "Entertainment"},
		{Type: "Sports"},
	}
	if err := db.Create(&defaults).Error; err != nil {
		log.Fatalf("failed to seed categories: %v", err)
	}
	log.Println("default categories seeded")
}
