package services

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"omahaestates/internal/db"
	"omahaestates/internal/models"
)

// SearchLogs returns all search log rows, newest first, with reference
// labels preloaded.
func SearchLogs() ([]models.SearchLog, error) {
	var logs []models.SearchLog
	err := db.DB.Preload("HomeType").Preload("PriceRange").
		Preload("Neighborhood").Preload("User").
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}

// WriteSearchLogCSV exports search logs with a fixed column order:
// timestamp, query, home type, price range, neighborhood, results count,
// username, IP address, user agent.
func WriteSearchLogCSV(w io.Writer, logs []models.SearchLog) error {
	cw := csv.NewWriter(w)

	header := []string{"timestamp", "query", "home_type", "price_range",
		"neighborhood", "results_count", "username", "ip_address", "user_agent"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, entry := range logs {
		homeType := ""
		if entry.HomeType != nil {
			homeType = entry.HomeType.TypeName
		}
		priceRange := ""
		if entry.PriceRange != nil {
			priceRange = entry.PriceRange.Label()
		}
		neighborhood := ""
		if entry.Neighborhood != nil {
			neighborhood = entry.Neighborhood.Name
		}
		username := ""
		if entry.User != nil {
			username = entry.User.Username
		}

		row := []string{
			entry.CreatedAt.Format(time.RFC3339),
			entry.Query,
			homeType,
			priceRange,
			neighborhood,
			strconv.Itoa(entry.ResultsCount),
			username,
			entry.IPAddress,
			entry.UserAgent,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
