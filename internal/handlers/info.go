package handlers

import (
	"net/http"

	"omahaestates/internal/db"
	"omahaestates/internal/models"
	"omahaestates/internal/utils"

	"github.com/gin-gonic/gin"
)

type InfoHandler struct{}

func NewInfoHandler() *InfoHandler {
	return &InfoHandler{}
}

// List shows visible Omaha info items ordered by (sort_order, title).
func (h *InfoHandler) List(c *gin.Context) {
	var items []models.OmahaInfo
	db.DB.Where("is_visible = ?", true).
		Order("sort_order, title").
		Find(&items)

	Render(c, http.StatusOK, "site/omaha_info.html", gin.H{
		"Title": "Omaha Info",
		"Items": items,
	})
}

// Detail misses for hidden items as well as absent ids.
func (h *InfoHandler) Detail(c *gin.Context) {
	id := utils.StringToUintPtr(c.Param("id"))
	if id == nil {
		NotFound(c, "Page not found")
		return
	}

	var item models.OmahaInfo
	if err := db.DB.Where("id = ? AND is_visible = ?", *id, true).First(&item).Error; err != nil {
		NotFound(c, "Page not found")
		return
	}

	Render(c, http.StatusOK, "site/omaha_info_detail.html", gin.H{
		"Title":       item.Title,
		"Item":        item,
		"Description": utils.RenderMarkdown(item.Description),
	})
}
