package models

import (
	"time"
)

// SearchLog is an append-only audit record of a filtered public search.
// Rows are created once and never updated.
type SearchLog struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Query          string        `gorm:"size:255" json:"query"`
	HomeTypeID     *uint         `json:"home_type_id"`
	HomeType       *HomeType     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"home_type,omitempty"`
	PriceRangeID   *uint         `json:"price_range_id"`
	PriceRange     *PriceRange   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"price_range,omitempty"`
	NeighborhoodID *uint         `json:"neighborhood_id"`
	Neighborhood   *Neighborhood `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"neighborhood,omitempty"`
	ResultsCount   int           `gorm:"not null" json:"results_count"`
	IPAddress      string        `gorm:"size:45" json:"ip_address"`
	UserID         *uint         `json:"user_id"`
	User           *User         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`
	UserAgent      string        `gorm:"size:255" json:"user_agent"`
	CreatedAt      time.Time     `gorm:"index" json:"created_at"`
}
