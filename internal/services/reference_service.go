package services

import (
	"omahaestates/internal/db"
	"omahaestates/internal/models"

	"gorm.io/gorm"
)

// Reference data deletes nullify every dependent reference instead of
// cascading: listings and search logs survive the deletion of a
// neighborhood, home type, or price range.

func DeleteNeighborhood(id uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Listing{}).
			Where("neighborhood_id = ?", id).
			Update("neighborhood_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.SearchLog{}).
			Where("neighborhood_id = ?", id).
			Update("neighborhood_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Neighborhood{}, id).Error
	})
}

func DeleteHomeType(id uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Listing{}).
			Where("home_type_id = ?", id).
			Update("home_type_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.SearchLog{}).
			Where("home_type_id = ?", id).
			Update("home_type_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.HomeType{}, id).Error
	})
}

func DeletePriceRange(id uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Listing{}).
			Where("price_range_id = ?", id).
			Update("price_range_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.SearchLog{}).
			Where("price_range_id = ?", id).
			Update("price_range_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PriceRange{}, id).Error
	})
}
