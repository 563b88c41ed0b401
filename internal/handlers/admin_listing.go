package handlers

import (
	"fmt"
	"io"
	"net/http"

	"omahaestates/internal/db"
	"omahaestates/internal/models"
	"omahaestates/internal/services"
	"omahaestates/internal/utils"

	"github.com/gin-gonic/gin"
)

// ListingForm is the statically declared admin schema for a listing.
// Optional numeric fields arrive as raw strings so a blank input stays nil.
type ListingForm struct {
	Status       string `form:"status" binding:"required,oneof=active pending sold off_market"`
	Visibility   string `form:"visibility" binding:"required,oneof=Y N"`
	IsFeatured   string `form:"is_featured"`
	Description  string `form:"description"`
	Street       string `form:"street" binding:"required,max=255"`
	City         string `form:"city" binding:"required,max=100"`
	State        string `form:"state" binding:"required,len=2"`
	Zipcode      string `form:"zipcode" binding:"required,max=10"`
	Price        string `form:"price" binding:"required,number"`
	Sqft         string `form:"sqft"`
	Beds         string `form:"beds"`
	Baths        string `form:"baths"`
	YearBuilt    string `form:"year_built"`
	GarageSpaces string `form:"garage_spaces"`
	LotSizeSqft  string `form:"lot_size_sqft"`
	HoaFee       string `form:"hoa_fee"`
	Neighborhood string `form:"neighborhood"`
	PriceRange   string `form:"price_range"`
	HomeType     string `form:"home_type"`
}

// apply copies the form onto a listing, leaving identity, created_by, and
// timestamps alone.
func (f ListingForm) apply(l *models.Listing) {
	l.Status = f.Status
	l.Visibility = f.Visibility
	l.IsFeatured = f.IsFeatured != ""
	l.Description = f.Description
	l.Street = f.Street
	l.City = f.City
	l.State = f.State
	l.Zipcode = f.Zipcode
	l.Price = utils.StringToInt(f.Price)
	l.Sqft = utils.StringToUintPtr(f.Sqft)
	l.Beds = utils.StringToIntPtr(f.Beds)
	l.Baths = utils.StringToFloatPtr(f.Baths)
	l.YearBuilt = utils.StringToUintPtr(f.YearBuilt)
	l.GarageSpaces = utils.StringToUintPtr(f.GarageSpaces)
	l.LotSizeSqft = utils.StringToUintPtr(f.LotSizeSqft)
	l.HoaFee = utils.StringToFloatPtr(f.HoaFee)
	l.NeighborhoodID = utils.StringToUintPtr(f.Neighborhood)
	l.PriceRangeID = utils.StringToUintPtr(f.PriceRange)
	l.HomeTypeID = utils.StringToUintPtr(f.HomeType)
}

type AdminListingHandler struct {
	listings *services.ListingService
}

func NewAdminListingHandler(listings *services.ListingService) *AdminListingHandler {
	return &AdminListingHandler{listings: listings}
}

func (h *AdminListingHandler) List(c *gin.Context) {
	var listings []models.Listing
	db.DB.Preload("Neighborhood").Preload("HomeType").
		Order("created_at DESC").
		Find(&listings)

	Render(c, http.StatusOK, "admin/listing_list.html", gin.H{
		"Title":    "Listings",
		"Listings": listings,
	})
}

func (h *AdminListingHandler) New(c *gin.Context) {
	h.renderForm(c, &models.Listing{Status: models.StatusActive, Visibility: models.VisibilityVisible}, nil)
}

func (h *AdminListingHandler) Create(c *gin.Context) {
	h.save(c, &models.Listing{})
}

func (h *AdminListingHandler) Edit(c *gin.Context) {
	listing, ok := h.find(c)
	if !ok {
		return
	}
	h.renderForm(c, listing, nil)
}

func (h *AdminListingHandler) Update(c *gin.Context) {
	listing, ok := h.find(c)
	if !ok {
		return
	}
	h.save(c, listing)
}

func (h *AdminListingHandler) Delete(c *gin.Context) {
	listing, ok := h.find(c)
	if !ok {
		return
	}
	if err := h.listings.Delete(listing.ID); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not delete listing.")
		return
	}
	c.Redirect(http.StatusFound, "/dashboard/listings/")
}

func (h *AdminListingHandler) DeletePhoto(c *gin.Context) {
	id := utils.StringToUintPtr(c.Param("id"))
	if id == nil {
		NotFound(c, "Photo not found")
		return
	}

	var photo models.ListingPhoto
	if err := db.DB.First(&photo, *id).Error; err != nil {
		NotFound(c, "Photo not found")
		return
	}
	db.DB.Delete(&photo)
	utils.GetCache().Delete(services.HomeCacheKey)

	c.Redirect(http.StatusFound, listingEditPath(photo.ListingID))
}

// save persists a new or edited listing together with any freshly
// uploaded photos, keeping their submitted order.
func (h *AdminListingHandler) save(c *gin.Context, listing *models.Listing) {
	var form ListingForm
	if err := c.ShouldBind(&form); err != nil {
		form.apply(listing)
		h.renderForm(c, listing, formErrors(err))
		return
	}
	form.apply(listing)

	uploads, err := collectUploads(c, "photos")
	if err != nil {
		h.renderForm(c, listing, map[string]string{"photos": "One of the uploaded files could not be read."})
		return
	}

	if err := h.listings.SaveWithPhotos(listing, currentStaff(c), uploads); err != nil {
		h.renderForm(c, listing, map[string]string{"__all__": "Could not save listing: " + err.Error()})
		return
	}

	if err := h.listings.UpdatePhotoDetails(listing.ID, collectPhotoEdits(c, listing.ID)); err != nil {
		h.renderForm(c, listing, map[string]string{"__all__": "Could not update photos: " + err.Error()})
		return
	}

	c.Redirect(http.StatusFound, "/dashboard/listings/")
}

// collectPhotoEdits reads the per-photo caption and ordering inputs from the
// edit form. Photos without a submitted field (freshly uploaded ones, or a
// create form) are left untouched.
func collectPhotoEdits(c *gin.Context, listingID uint) []services.PhotoEdit {
	var photos []models.ListingPhoto
	db.DB.Where("listing_id = ?", listingID).Find(&photos)

	var edits []services.PhotoEdit
	for _, p := range photos {
		caption, hasCaption := c.GetPostForm(fmt.Sprintf("photo_caption_%d", p.ID))
		sortRaw, hasSort := c.GetPostForm(fmt.Sprintf("photo_sort_%d", p.ID))
		if !hasCaption && !hasSort {
			continue
		}

		edit := services.PhotoEdit{ID: p.ID, Caption: p.Caption, SortOrder: p.SortOrder}
		if hasCaption {
			edit.Caption = utils.Truncate(caption, 255)
		}
		if hasSort {
			if so := utils.StringToIntPtr(sortRaw); so != nil && *so >= 0 {
				edit.SortOrder = uint(*so)
			}
		}
		edits = append(edits, edit)
	}
	return edits
}

func (h *AdminListingHandler) renderForm(c *gin.Context, listing *models.Listing, errs map[string]string) {
	var photos []models.ListingPhoto
	if listing.ID != 0 {
		db.DB.Where("listing_id = ?", listing.ID).Order("sort_order, id").Find(&photos)
	}

	renderData := gin.H{
		"Title":       "Edit listing",
		"Listing":     listing,
		"Photos":      photos,
		"FieldErrors": errs,
	}
	addFilterOptions(renderData)

	code := http.StatusOK
	Render(c, code, "admin/listing_form.html", renderData)
}

func (h *AdminListingHandler) find(c *gin.Context) (*models.Listing, bool) {
	id := utils.StringToUintPtr(c.Param("id"))
	if id == nil {
		NotFound(c, "Listing not found")
		return nil, false
	}
	var listing models.Listing
	if err := db.DB.First(&listing, *id).Error; err != nil {
		NotFound(c, "Listing not found")
		return nil, false
	}
	return &listing, true
}

// collectUploads reads the multipart files for the named field into ordered
// payloads.
func collectUploads(c *gin.Context, field string) ([]services.PhotoUpload, error) {
	mpForm, err := c.MultipartForm()
	if err != nil {
		// Non-multipart submissions simply carry no uploads.
		return nil, nil
	}

	var uploads []services.PhotoUpload
	for _, fh := range mpForm.File[field] {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, services.PhotoUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return uploads, nil
}
