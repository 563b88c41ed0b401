package services

import (
	"omahaestates/internal/db"
	"omahaestates/internal/models"
	"omahaestates/internal/utils"

	"gorm.io/gorm"
)

const HomeCacheKey = "site:home"

type ListingService struct {
	photos *PhotoStore
}

func NewListingService(photos *PhotoStore) *ListingService {
	return &ListingService{photos: photos}
}

// SaveWithPhotos persists a listing and appends any newly uploaded photos.
// created_by is set once, on first save, to the acting staff user and never
// overwritten. When the saved listing is featured, the flag is cleared on
// every other listing in the same transaction, so at most one listing is
// featured at any time. New photos get sort_order values continuing after
// the listing's current maximum, preserving upload order.
func (s *ListingService) SaveWithPhotos(listing *models.Listing, actor *models.User, uploads []PhotoUpload) error {
	var written []string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if listing.CreatedByID == nil && actor != nil {
			listing.CreatedByID = &actor.ID
		}

		if err := tx.Save(listing).Error; err != nil {
			return err
		}

		if listing.IsFeatured {
			if err := tx.Model(&models.Listing{}).
				Where("id <> ?", listing.ID).
				Update("is_featured", false).Error; err != nil {
				return err
			}
		}

		var existing int64
		if err := tx.Model(&models.ListingPhoto{}).
			Where("listing_id = ?", listing.ID).
			Count(&existing).Error; err != nil {
			return err
		}

		for i, up := range uploads {
			path, mime, err := s.photos.Save(listing.ID, up)
			if err != nil {
				return err
			}
			written = append(written, path)
			photo := models.ListingPhoto{
				ListingID: listing.ID,
				Image:     path,
				SortOrder: uint(existing) + uint(i),
				MimeType:  mime,
			}
			if err := tx.Create(&photo).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		// The rollback undid the rows; the files written so far must go too.
		for _, path := range written {
			s.photos.Remove(path)
		}
		return err
	}

	utils.GetCache().Delete(HomeCacheKey)
	return nil
}

// PhotoEdit carries caption and ordering changes for one existing photo.
type PhotoEdit struct {
	ID        uint
	Caption   string
	SortOrder uint
}

// UpdatePhotoDetails applies caption and ordering edits to a listing's
// existing photos. Edits naming a photo outside the listing are ignored.
func (s *ListingService) UpdatePhotoDetails(listingID uint, edits []PhotoEdit) error {
	if len(edits) == 0 {
		return nil
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		for _, e := range edits {
			if err := tx.Model(&models.ListingPhoto{}).
				Where("id = ? AND listing_id = ?", e.ID, listingID).
				Updates(map[string]interface{}{
					"caption":    e.Caption,
					"sort_order": e.SortOrder,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	utils.GetCache().Delete(HomeCacheKey)
	return nil
}

// Delete removes a listing, its photo rows, and their files.
func (s *ListingService) Delete(id uint) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", id).Delete(&models.ListingPhoto{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Listing{}, id).Error
	})
	if err != nil {
		return err
	}

	if err := s.photos.RemoveListing(id); err != nil {
		return err
	}

	utils.GetCache().Delete(HomeCacheKey)
	return nil
}

// Featured returns the most recently updated listing that is featured,
// active, and visible, or nil when there is none.
func (s *ListingService) Featured() *models.Listing {
	var listing models.Listing
	err := db.DB.Preload("Photos", photoOrder).
		Where("is_featured = ? AND status = ? AND visibility = ?",
			true, models.StatusActive, models.VisibilityVisible).
		Order("updated_at DESC").
		First(&listing).Error
	if err != nil {
		return nil
	}
	return &listing
}

// Latest returns the newest active, visible listings.
func (s *ListingService) Latest(limit int) []models.Listing {
	var listings []models.Listing
	db.DB.Preload("Photos", photoOrder).
		Where("status = ? AND visibility = ?", models.StatusActive, models.VisibilityVisible).
		Order("created_at DESC").
		Limit(limit).
		Find(&listings)
	return listings
}

// VisibleByID fetches one listing constrained to public visibility, with
// photos in (sort_order, id) order. Hidden and absent ids both miss.
func (s *ListingService) VisibleByID(id uint) (*models.Listing, error) {
	var listing models.Listing
	err := db.DB.Preload("Photos", photoOrder).
		Preload("Neighborhood").Preload("HomeType").Preload("PriceRange").
		Where("id = ? AND visibility = ?", id, models.VisibilityVisible).
		First(&listing).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}
