package models

import (
	"fmt"
)

// Lookup entities used to classify and filter listings. Deleting one of
// these never deletes a listing or search log that points at it; the
// reference is cleared instead.

type Neighborhood struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

type HomeType struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TypeName string `gorm:"size:40;uniqueIndex;not null" json:"type_name"`
}

type PriceRange struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	MinPrice int  `gorm:"not null" json:"min_price"`
	MaxPrice int  `gorm:"not null" json:"max_price"`
}

// Label is the display form used in dropdowns and the search log export.
func (p PriceRange) Label() string {
	return fmt.Sprintf("$%d – $%d", p.MinPrice, p.MaxPrice)
}
