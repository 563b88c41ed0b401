package services

import (
	"log"
	"strings"

	"omahaestates/internal/db"
	"omahaestates/internal/models"
	"omahaestates/internal/utils"

	"gorm.io/gorm"
)

// SearchFilters carries the raw filter parameters from the listing search
// form. Reference values are ids as submitted; anything unparseable or
// unknown filters to zero matches instead of failing the page.
type SearchFilters struct {
	Query        string
	HomeType     string
	PriceRange   string
	Neighborhood string
}

// HasAny reports whether the request carried at least one filter. An
// unfiltered browse is never logged.
func (f SearchFilters) HasAny() bool {
	return strings.TrimSpace(f.Query) != "" ||
		f.HomeType != "" ||
		f.PriceRange != "" ||
		f.Neighborhood != ""
}

// ClientMeta is the per-request client context captured into the search log.
type ClientMeta struct {
	IP        string
	UserAgent string
	UserID    *uint
}

type SearchService struct{}

func NewSearchService() *SearchService {
	return &SearchService{}
}

// Search returns the active, visible listings matching the filters, newest
// first, and appends one SearchLog row when any filter was present.
func (s *SearchService) Search(f SearchFilters, meta ClientMeta) ([]models.Listing, error) {
	q := db.DB.Model(&models.Listing{}).
		Where("status = ? AND visibility = ?", models.StatusActive, models.VisibilityVisible)

	if text := strings.TrimSpace(f.Query); text != "" {
		pattern := "%" + strings.ToLower(text) + "%"
		q = q.Where("LOWER(street) LIKE ? OR LOWER(city) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern)
	}

	homeType := resolveHomeType(f.HomeType)
	q = applyRefFilter(q, f.HomeType, "home_type_id", homeType != nil, func() uint { return homeType.ID })

	priceRange := resolvePriceRange(f.PriceRange)
	q = applyRefFilter(q, f.PriceRange, "price_range_id", priceRange != nil, func() uint { return priceRange.ID })

	neighborhood := resolveNeighborhood(f.Neighborhood)
	q = applyRefFilter(q, f.Neighborhood, "neighborhood_id", neighborhood != nil, func() uint { return neighborhood.ID })

	var listings []models.Listing
	err := q.Preload("Photos", photoOrder).
		Preload("Neighborhood").Preload("HomeType").Preload("PriceRange").
		Order("created_at DESC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}

	if f.HasAny() {
		entry := models.SearchLog{
			Query:        strings.TrimSpace(f.Query),
			ResultsCount: len(listings),
			IPAddress:    meta.IP,
			UserID:       meta.UserID,
			UserAgent:    utils.Truncate(meta.UserAgent, 255),
		}
		if homeType != nil {
			entry.HomeTypeID = &homeType.ID
		}
		if priceRange != nil {
			entry.PriceRangeID = &priceRange.ID
		}
		if neighborhood != nil {
			entry.NeighborhoodID = &neighborhood.ID
		}
		if err := db.DB.Create(&entry).Error; err != nil {
			// Logging is a side effect; never fail the search over it.
			log.Printf("Failed to write search log: %v", err)
		}
	}

	return listings, nil
}

// applyRefFilter adds an equality clause for a submitted reference id. A
// value that didn't resolve to an existing row matches nothing.
func applyRefFilter(q *gorm.DB, raw, column string, resolved bool, id func() uint) *gorm.DB {
	if raw == "" {
		return q
	}
	if !resolved {
		return q.Where("1 = 0")
	}
	return q.Where(column+" = ?", id())
}

func photoOrder(tx *gorm.DB) *gorm.DB {
	return tx.Order("sort_order, id")
}

func resolveHomeType(raw string) *models.HomeType {
	id := utils.StringToUintPtr(raw)
	if id == nil {
		return nil
	}
	var ht models.HomeType
	if err := db.DB.First(&ht, *id).Error; err != nil {
		return nil
	}
	return &ht
}

func resolvePriceRange(raw string) *models.PriceRange {
	id := utils.StringToUintPtr(raw)
	if id == nil {
		return nil
	}
	var pr models.PriceRange
	if err := db.DB.First(&pr, *id).Error; err != nil {
		return nil
	}
	return &pr
}

func resolveNeighborhood(raw string) *models.Neighborhood {
	id := utils.StringToUintPtr(raw)
	if id == nil {
		return nil
	}
	var n models.Neighborhood
	if err := db.DB.First(&n, *id).Error; err != nil {
		return nil
	}
	return &n
}
