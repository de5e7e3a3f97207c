package database

import (
	"fmt"
	"log"
	"os"

	"booking-directory/internal/domain/artists"
	"booking-directory/internal/domain/shows"
	"booking-directory/internal/domain/venues"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}

// Migrate creates or updates the three directory tables. Shows carry the
// foreign keys; the constraints cascade deletes from venues and artists.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&venues.Venue{},
		&artists.Artist{},
		&shows.Show{},
	)
}
