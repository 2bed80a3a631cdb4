package database

import (
	"log"
	"os"

	"github.com/careerpilot/careerpilot/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=password dbname=careerpilot port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	// Migration: this creates the tables in Postgres automatically
	log.Println("Running Migrations...")
	err = DB.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Application{},
		&models.Contact{},
		&models.Interview{},
		&models.Offer{},
		&models.Task{},
		&models.Activity{},
		&models.Attachment{},
		&models.EmailConnection{},
	)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	return DB
}
