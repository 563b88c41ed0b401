package services

import (
	"testing"

	"omahaestates/internal/db"
	"omahaestates/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the shared handle at a fresh in-memory database.
func setupTestDB(t *testing.T) {
	g, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.Migrate(g))
	db.DB = g
}

func createListing(t *testing.T, l models.Listing) models.Listing {
	if l.Status == "" {
		l.Status = models.StatusActive
	}
	if l.Visibility == "" {
		l.Visibility = models.VisibilityVisible
	}
	if l.Street == "" {
		l.Street = "100 Main St"
	}
	if l.City == "" {
		l.City = "Omaha"
	}
	if l.State == "" {
		l.State = "NE"
	}
	if l.Zipcode == "" {
		l.Zipcode = "68102"
	}
	if l.Price == 0 {
		l.Price = 250000
	}
	assert.NoError(t, db.DB.Create(&l).Error)
	return l
}

func newTestListingService(t *testing.T) *ListingService {
	return NewListingService(NewPhotoStore(t.TempDir()))
}
