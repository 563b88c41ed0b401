package models

import (
	"time"
)

// OmahaInfo is a standalone informational content item shown on the
// public "Omaha info" pages. No foreign keys.
type OmahaInfo struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"size:200;not null" json:"title"`
	ShortDescription string    `gorm:"size:300" json:"short_description"`
	Description      string    `gorm:"type:text;not null" json:"description"`
	Link             string    `gorm:"size:500" json:"link"`
	Image            string    `gorm:"size:255" json:"image"`
	// No column default: a zero value must reach the database as false,
	// so an item created unchecked stays hidden.
	IsVisible        bool      `gorm:"not null" json:"is_visible"`
	SortOrder        uint      `gorm:"default:0" json:"sort_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
