package db

import (
	"log"
	"omahaestates/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn string) {
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=omahaestates port=5432 sslmode=disable TimeZone=America/Chicago"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedReferenceData()
}

// Migrate creates or updates the schema for every entity. Kept separate
// from Init so tests can run it against their own database.
func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&models.User{},
		&models.Neighborhood{},
		&models.HomeType{},
		&models.PriceRange{},
		&models.Listing{},
		&models.ListingPhoto{},
		&models.OmahaInfo{},
		&models.SearchLog{},
	)
}

func seedReferenceData() {
	var count int64
	DB.Model(&models.HomeType{}).Count(&count)
	if count > 0 {
		log.Println("Reference data already seeded, skipping")
		return
	}

	homeTypes := []models.HomeType{
		{TypeName: "Single Family"},
		{TypeName: "Townhouse"},
		{TypeName: "Condo"},
		{TypeName: "Multi-Family"},
	}
	for _, ht := range homeTypes {
		if err := DB.Create(&ht).Error; err != nil {
			log.Printf("Failed to create home type %s: %v", ht.TypeName, err)
		}
	}

	priceRanges := []models.PriceRange{
		{MinPrice: 0, MaxPrice: 200000},
		{MinPrice: 200000, MaxPrice: 350000},
		{MinPrice: 350000, MaxPrice: 500000},
		{MinPrice: 500000, MaxPrice: 1000000},
	}
	for _, pr := range priceRanges {
		if err := DB.Create(&pr).Error; err != nil {
			log.Printf("Failed to create price range %s: %v", pr.Label(), err)
		}
	}

	log.Println("Initial reference data created successfully")
}
