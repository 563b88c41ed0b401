package models

import (
	"fmt"
	"time"
)

// Listing lifecycle statuses.
const (
	StatusActive    = "active"
	StatusPending   = "pending"
	StatusSold      = "sold"
	StatusOffMarket = "off_market"
)

// Visibility is a publish/hide flag independent of Status; both must allow
// display for a listing to appear on the public site.
const (
	VisibilityVisible = "Y"
	VisibilityHidden  = "N"
)

type Listing struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Status     string `gorm:"size:20;default:'active';not null" json:"status"`
	Visibility string `gorm:"size:1;default:'Y';not null" json:"visibility"`
	IsFeatured bool   `gorm:"default:false" json:"is_featured"`

	Description string `gorm:"type:text" json:"description"`

	Street  string `gorm:"size:255;not null" json:"street"`
	City    string `gorm:"size:100;not null" json:"city"`
	State   string `gorm:"size:2;not null" json:"state"` // e.g. NE
	Zipcode string `gorm:"size:10;not null" json:"zipcode"`

	Sqft         *uint    `json:"sqft"`
	Beds         *int     `json:"beds"`
	Baths        *float64 `gorm:"type:decimal(3,1)" json:"baths"` // e.g. 2.5
	Price        int      `gorm:"not null" json:"price"`
	YearBuilt    *uint    `json:"year_built"`
	GarageSpaces *uint    `json:"garage_spaces"`
	LotSizeSqft  *uint    `json:"lot_size_sqft"`
	HoaFee       *float64 `gorm:"type:decimal(10,2)" json:"hoa_fee"`

	CreatedByID    *uint         `json:"created_by_id"`
	CreatedBy      *User         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"created_by,omitempty"`
	NeighborhoodID *uint         `json:"neighborhood_id"`
	Neighborhood   *Neighborhood `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"neighborhood,omitempty"`
	PriceRangeID   *uint         `json:"price_range_id"`
	PriceRange     *PriceRange   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"price_range,omitempty"`
	HomeTypeID     *uint         `json:"home_type_id"`
	HomeType       *HomeType     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"home_type,omitempty"`

	Photos []ListingPhoto `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"photos,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Address is the one-line display form, e.g. "123 Pine St, Omaha, NE 68102".
func (l Listing) Address() string {
	return fmt.Sprintf("%s, %s, %s %s", l.Street, l.City, l.State, l.Zipcode)
}

// MainPhotoURL returns the image path of the first photo by (sort_order, id),
// or "" when the listing has no photos. Photos must be preloaded.
func (l Listing) MainPhotoURL() string {
	if len(l.Photos) == 0 {
		return ""
	}
	return l.Photos[0].Image
}
