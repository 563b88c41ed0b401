package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"omahaestates/internal/db"
	"omahaestates/internal/middleware"
	"omahaestates/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func registerAdminReferenceRoutes(r *gin.Engine, staff *models.User) {
	h := NewAdminReferenceHandler()
	asStaff := func(c *gin.Context) { c.Set(middleware.CheckUserKey, staff) }
	dash := r.Group("/dashboard", asStaff)
	dash.GET("/neighborhoods/", h.Neighborhoods)
	dash.POST("/neighborhoods/", h.CreateNeighborhood)
	dash.POST("/neighborhoods/:id/", h.UpdateNeighborhood)
	dash.POST("/neighborhoods/:id/delete/", h.DeleteNeighborhood)
	dash.POST("/home-types/", h.CreateHomeType)
	dash.POST("/price-ranges/", h.CreatePriceRange)
}

func TestCreateNeighborhood(t *testing.T) {
	setupTestDB(t)
	r, _ := newTestEngine(t)
	staff := createUser(t, "admin", "pass123", true)
	registerAdminReferenceRoutes(r, &staff)

	w := doPostForm(r, "/dashboard/neighborhoods/", url.Values{"name": {"Dundee"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard/neighborhoods/", w.Header().Get("Location"))

	var n models.Neighborhood
	assert.NoError(t, db.DB.Where("name = ?", "Dundee").First(&n).Error)
}

func TestCreateNeighborhoodRejectsDuplicates(t *testing.T) {
	setupTestDB(t)
	r, rec := newTestEngine(t)
	staff := createUser(t, "admin", "pass123", true)
	registerAdminReferenceRoutes(r, &staff)

	assert.NoError(t, db.DB.Create(&models.Neighborhood{Name: "Dundee"}).Error)

	w := doPostForm(r, "/dashboard/neighborhoods/", url.Values{"name": {"Dundee"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin/neighborhood_list.html", w.Body.String())
	assert.Equal(t, "A neighborhood with that name already exists.", rec.data["Error"])

	var count int64
	db.DB.Model(&models.Neighborhood{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateNeighborhoodRequiresName(t *testing.T) {
	setupTestDB(t)
	r, rec := newTestEngine(t)
	staff := createUser(t, "admin", "pass123", true)
	registerAdminReferenceRoutes(r, &staff)

	w := doPostForm(r, "/dashboard/neighborhoods/", url.Values{"name": {"   "}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Name is required.", rec.data["Error"])
}

func TestDeleteNeighborhoodClearsListingReference(t *testing.T) {
	setupTestDB(t)
	r, _ := newTestEngine(t)
	staff := createUser(t, "admin", "pass123", true)
	registerAdminReferenceRoutes(r, &staff)

	n := models.Neighborhood{Name: "Dundee"}
	assert.NoError(t, db.DB.Create(&n).Error)
	l := createTestListing(t, models.Listing{NeighborhoodID: &n.ID})

	w := doPostForm(r, fmt.Sprintf("/dashboard/neighborhoods/%d/delete/", n.ID), url.Values{})
	assert.Equal(t, http.StatusFound, w.Code)

	var reloaded models.Listing
	assert.NoError(t, db.DB.First(&reloaded, l.ID).Error)
	assert.Nil(t, reloaded.NeighborhoodID)
}

func TestCreateHomeTypeAndPriceRange(t *testing.T) {
	setupTestDB(t)
	r, rec := newTestEngine(t)
	staff := createUser(t, "admin", "pass123", true)
	registerAdminReferenceRoutes(r, &staff)

	w := doPostForm(r, "/dashboard/home-types/", url.Values{"type_name": {"Acreage"}})
	assert.Equal(t, http.StatusFound, w.Code)

	w = doPostForm(r, "/dashboard/price-ranges/", url.Values{
		"min_price": {"200000"},
		"max_price": {"350000"},
	})
	assert.Equal(t, http.StatusFound, w.Code)

	// Missing bounds redisplay the list with a message.
	w = doPostForm(r, "/dashboard/price-ranges/", url.Values{"min_price": {"200000"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Both prices are required.", rec.data["Error"])
}
