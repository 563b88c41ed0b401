package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"omahaestates/internal/db"
	"omahaestates/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestWriteSearchLogCSV(t *testing.T) {
	logs := []models.SearchLog{
		{
			Query:        "ranch",
			ResultsCount: 3,
			IPAddress:    "1.2.3.4",
			UserAgent:    "Mozilla/5.0",
			HomeType:     &models.HomeType{TypeName: "Condo"},
			PriceRange:   &models.PriceRange{MinPrice: 0, MaxPrice: 200000},
			Neighborhood: &models.Neighborhood{Name: "Dundee"},
			User:         &models.User{Username: "alice"},
			CreatedAt:    time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC),
		},
		{
			Query:        "barn, loft",
			ResultsCount: 0,
			IPAddress:    "5.6.7.8",
			CreatedAt:    time.Date(2025, 1, 3, 8, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	assert.NoError(t, WriteSearchLogCSV(&buf, logs))

	rows, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	assert.Equal(t, []string{"timestamp", "query", "home_type", "price_range",
		"neighborhood", "results_count", "username", "ip_address", "user_agent"}, rows[0])

	assert.Equal(t, []string{"2025-01-02T15:04:05Z", "ranch", "Condo", "$0 – $200000",
		"Dundee", "3", "alice", "1.2.3.4", "Mozilla/5.0"}, rows[1])

	// Anonymous row with no resolved references exports empty cells, and a
	// comma in the query survives the round trip.
	assert.Equal(t, []string{"2025-01-03T08:00:00Z", "barn, loft", "", "",
		"", "0", "", "5.6.7.8", ""}, rows[2])
}

func TestSearchLogsNewestFirst(t *testing.T) {
	setupTestDB(t)

	older := models.SearchLog{Query: "first", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := models.SearchLog{Query: "second", CreatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)}
	assert.NoError(t, db.DB.Create(&older).Error)
	assert.NoError(t, db.DB.Create(&newer).Error)

	logs, err := SearchLogs()
	assert.NoError(t, err)
	assert.Len(t, logs, 2)
	assert.Equal(t, "second", logs[0].Query)
	assert.Equal(t, "first", logs[1].Query)
}
