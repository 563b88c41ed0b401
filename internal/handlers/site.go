package handlers

import (
	"net/http"
	"time"

	"omahaestates/internal/db"
	"omahaestates/internal/models"
	"omahaestates/internal/services"
	"omahaestates/internal/utils"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	listings *services.ListingService
}

func NewSiteHandler(listings *services.ListingService) *SiteHandler {
	return &SiteHandler{listings: listings}
}

// Home shows the single featured listing, the four most recent listings,
// and an empty search hero form. Read-only.
//
// Only listing data is cached. Render injects per-request values (current
// user, path) into the map it is given, so each request gets its own copy
// and the cached map is never written to after it is stored.
func (h *SiteHandler) Home(c *gin.Context) {
	if cached := utils.GetCache().Get(services.HomeCacheKey); cached != nil {
		if page, ok := cached.(gin.H); ok {
			Render(c, http.StatusOK, "site/home.html", cloneH(page))
			return
		}
	}

	page := gin.H{
		"Title":    "Omaha Estates",
		"Featured": h.listings.Featured(),
		"Latest":   h.listings.Latest(4),
	}
	addFilterOptions(page)

	utils.GetCache().Set(services.HomeCacheKey, page, 1*time.Minute)

	Render(c, http.StatusOK, "site/home.html", cloneH(page))
}

func cloneH(src gin.H) gin.H {
	dst := make(gin.H, len(src)+2)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (h *SiteHandler) About(c *gin.Context) {
	Render(c, http.StatusOK, "site/about.html", gin.H{"Title": "About"})
}

// addFilterOptions loads the reference data backing the search form
// dropdowns, each in its display order.
func addFilterOptions(obj gin.H) {
	var homeTypes []models.HomeType
	db.DB.Order("type_name ASC").Find(&homeTypes)
	var priceRanges []models.PriceRange
	db.DB.Order("min_price ASC").Find(&priceRanges)
	var neighborhoods []models.Neighborhood
	db.DB.Order("name ASC").Find(&neighborhoods)

	obj["HomeTypes"] = homeTypes
	obj["PriceRanges"] = priceRanges
	obj["Neighborhoods"] = neighborhoods
}
