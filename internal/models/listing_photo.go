package models

import (
	"time"
)

// ListingPhoto is owned exclusively by its Listing and goes away with it.
// Image holds a media-relative path: listing_photos/<listing_id>/<filename>.
type ListingPhoto struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ListingID uint      `gorm:"not null;index" json:"listing_id"`
	Image     string    `gorm:"size:255;not null" json:"image"`
	Caption   string    `gorm:"size:255" json:"caption"`
	SortOrder uint      `gorm:"default:0;index" json:"sort_order"`
	MimeType  string    `gorm:"size:50" json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
