package handlers

import (
	"net/http"
	"strings"

	"omahaestates/internal/db"
	"omahaestates/internal/models"
	"omahaestates/internal/services"
	"omahaestates/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminReferenceHandler manages the lookup entities: neighborhoods, home
// types, and price ranges. Duplicate names come back as form errors, and
// deletes nullify references on listings and search logs.
type AdminReferenceHandler struct{}

func NewAdminReferenceHandler() *AdminReferenceHandler {
	return &AdminReferenceHandler{}
}

// ---- Neighborhoods ----

func (h *AdminReferenceHandler) Neighborhoods(c *gin.Context) {
	h.renderNeighborhoods(c, "")
}

func (h *AdminReferenceHandler) CreateNeighborhood(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		h.renderNeighborhoods(c, "Name is required.")
		return
	}
	if err := db.DB.Create(&models.Neighborhood{Name: name}).Error; err != nil {
		h.renderNeighborhoods(c, "A neighborhood with that name already exists.")
		return
	}
	c.Redirect(http.StatusFound, "/dashboard/neighborhoods/")
}

func (h *AdminReferenceHandler) UpdateNeighborhood(c *gin.Context) {
	id := utils.StringToUintPtr(c.Param("id"))
	name := strings.TrimSpace(c.PostForm("name"))
	if id == nil || name == "" {
		h.renderNeighborhoods(c, "Name is required.")
		return
	}
	if err := db.DB.Model(&models.Neighborhood{}).Where("id = ?", *id).
		Update("name", name).Error; err != nil {
		h.renderNeighborhoods(c, "A neighborhood with that name already exists.")
		return
	}
	c.Redirect(http.StatusFound, "/dashboard/neighborhoods/")
}

func (h *AdminReferenceHandler) DeleteNeighborhood(c *gin.Context) {
	if id := utils.StringToUintPtr(c.Param("id")); id != nil {
		if err := services.DeleteNeighborhood(*id); err != nil {
			RenderError(c, http.StatusInternalServerError, "Could not delete neighborhood.")
			return
		}
	}
	c.Redirect(http.StatusFound, "/dashboard/neighborhoods/")
}

func (h *AdminReferenceHandler) renderNeighborhoods(c *gin.Context, errMsg string) {
	var items []models.Neighborhood
	db.DB.Order("name ASC").Find(&items)
	Render(c, http.StatusOK, "admin/neighborhood_list.html", gin.H{
		"Title":         "Neighborhoods",
		"Neighborhoods": items,
		"Error":         errMsg,
	})
}

// ---- Home types ----

func (h *AdminReferenceHandler) HomeTypes(c *gin.Context) {
	h.renderHomeTypes(c, "")
}

func (h *AdminReferenceHandler) CreateHomeType(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("type_name"))
	if name == "" {
		h.renderHomeTypes(c, "Type name is required.")
		return
	}
	if err := db.DB.Create(&models.HomeType{TypeName: name}).Error; err != nil {
		h.renderHomeTypes(c, "A home type with that name already exists.")
		return
	}
	c.Redirect(http.StatusFound, "/dashboard/home-types/")
}

func (h *AdminReferenceHandler) UpdateHomeType(c *gin.Context) {
	id := utils.StringToUintPtr(c.Param("id"))
	name := strings.TrimSpace(c.PostForm("type_name"))
	if id == nil || name == "" {
		h.renderHomeTypes(c, "Type name is required.")
		return
	}
	if err := db.DB.Model(&models.HomeType{}).Where("id = ?", *id).
		Update("type_name", name).Error; err != nil {
		h.renderHomeTypes(c, "A home type with that name already exists.")
		return
	}
	c.Redirect(http.StatusFound, "/dashboard/home-types/")
}

func (h *AdminReferenceHandler) DeleteHomeType(c *gin.Context) {
	if id := utils.StringToUintPtr(c.Param("id")); id != nil {
		if err := services.DeleteHomeType(*id); err != nil {
			RenderError(c, http.StatusInternalServerError, "Could not delete home type.")
			return
		}
	}
	c.Redirect(http.StatusFound, "/dashboard/home-types/")
}

func (h *AdminReferenceHandler) renderHomeTypes(c *gin.Context, errMsg string) {
	var items []models.HomeType
	db.DB.Order("type_name ASC").Find(&items)
	Render(c, http.StatusOK, "admin/home_type_list.html", gin.H{
		"Title":     "Home types",
		"HomeTypes": items,
		"Error":     errMsg,
	})
}

// ---- Price ranges ----

func (h *AdminReferenceHandler) PriceRanges(c *gin.Context) {
	h.renderPriceRanges(c, "")
}

func (h *AdminReferenceHandler) CreatePriceRange(c *gin.Context) {
	min := utils.StringToIntPtr(c.PostForm("min_price"))
	max := utils.StringToIntPtr(c.PostForm("max_price"))
	if min == nil || max == nil {
		h.renderPriceRanges(c, "Both prices are required.")
		return
	}
	if err := db.DB.Create(&models.PriceRange{MinPrice: *min, MaxPrice: *max}).Error; err != nil {
		h.renderPriceRanges(c, "Could not save price range.")
		return
	}
	c.Redirect(http.StatusFound, "/dashboard/price-ranges/")
}

func (h *AdminReferenceHandler) UpdatePriceRange(c *gin.Context) {
	id := utils.StringToUintPtr(c.Param("id"))
	min := utils.StringToIntPtr(c.PostForm("min_price"))
	max := utils.StringToIntPtr(c.PostForm("max_price"))
	if id == nil || min == nil || max == nil {
		h.renderPriceRanges(c, "Both prices are required.")
		return
	}
	if err := db.DB.Model(&models.PriceRange{}).Where("id = ?", *id).
		Updates(map[string]interface{}{"min_price": *min, "max_price": *max}).Error; err != nil {
		h.renderPriceRanges(c, "Could not save price range.")
		return
	}
	c.Redirect(http.StatusFound, "/dashboard/price-ranges/")
}

func (h *AdminReferenceHandler) DeletePriceRange(c *gin.Context) {
	if id := utils.StringToUintPtr(c.Param("id")); id != nil {
		if err := services.DeletePriceRange(*id); err != nil {
			RenderError(c, http.StatusInternalServerError, "Could not delete price range.")
			return
		}
	}
	c.Redirect(http.StatusFound, "/dashboard/price-ranges/")
}

func (h *AdminReferenceHandler) renderPriceRanges(c *gin.Context, errMsg string) {
	var items []models.PriceRange
	db.DB.Order("min_price ASC").Find(&items)
	Render(c, http.StatusOK, "admin/price_range_list.html", gin.H{
		"Title":       "Price ranges",
		"PriceRanges": items,
		"Error":       errMsg,
	})
}
