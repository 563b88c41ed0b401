package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"testing"

	"omahaestates/internal/db"
	"omahaestates/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func registerInfoRoutes(r *gin.Engine) {
	h := NewInfoHandler()
	r.GET("/omaha-info/", h.List)
	r.GET("/omaha-info/:id/", h.Detail)
}

func TestInfoListShowsVisibleItemsInOrder(t *testing.T) {
	setupTestDB(t)
	r, rec := newTestEngine(t)
	registerInfoRoutes(r)

	assert.NoError(t, db.DB.Create(&models.OmahaInfo{Title: "Zoo", Description: "x", SortOrder: 2, IsVisible: true}).Error)
	assert.NoError(t, db.DB.Create(&models.OmahaInfo{Title: "Parks", Description: "x", SortOrder: 1, IsVisible: true}).Error)
	assert.NoError(t, db.DB.Create(&models.OmahaInfo{Title: "Hidden", Description: "x"}).Error)

	w := doGet(r, "/omaha-info/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "site/omaha_info.html", w.Body.String())

	items := rec.data["Items"].([]models.OmahaInfo)
	assert.Len(t, items, 2)
	assert.Equal(t, "Parks", items[0].Title)
	assert.Equal(t, "Zoo", items[1].Title)
}

func TestInfoDetailRendersMarkdown(t *testing.T) {
	setupTestDB(t)
	r, rec := newTestEngine(t)
	registerInfoRoutes(r)

	item := models.OmahaInfo{Title: "Schools", Description: "# Great schools", IsVisible: true}
	assert.NoError(t, db.DB.Create(&item).Error)

	w := doGet(r, fmt.Sprintf("/omaha-info/%d/", item.ID))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "site/omaha_info_detail.html", w.Body.String())

	desc, ok := rec.data["Description"].(template.HTML)
	assert.True(t, ok)
	assert.Contains(t, string(desc), "<h1>Great schools</h1>")
}

func TestInfoDetailMissesHiddenItems(t *testing.T) {
	setupTestDB(t)
	r, _ := newTestEngine(t)
	registerInfoRoutes(r)

	item := models.OmahaInfo{Title: "Hidden", Description: "x"}
	assert.NoError(t, db.DB.Create(&item).Error)

	for _, path := range []string{fmt.Sprintf("/omaha-info/%d/", item.ID), "/omaha-info/999/", "/omaha-info/x/"} {
		w := doGet(r, path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, "error.html", w.Body.String(), path)
	}
}
