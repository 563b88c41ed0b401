package handlers

import (
	"net/http"

	"omahaestates/internal/db"
	"omahaestates/internal/models"
	"omahaestates/internal/utils"

	"github.com/gin-gonic/gin"
)

// OmahaInfoForm is the statically declared admin schema for an info item.
type OmahaInfoForm struct {
	Title            string `form:"title" binding:"required,max=200"`
	ShortDescription string `form:"short_description" binding:"omitempty,max=300"`
	Description      string `form:"description" binding:"required"`
	Link             string `form:"link" binding:"omitempty,url,max=500"`
	Image            string `form:"image" binding:"omitempty,max=255"`
	IsVisible        string `form:"is_visible"`
	SortOrder        string `form:"sort_order"`
}

func (f OmahaInfoForm) apply(item *models.OmahaInfo) {
	item.Title = f.Title
	item.ShortDescription = f.ShortDescription
	item.Description = f.Description
	item.Link = f.Link
	item.Image = f.Image
	item.IsVisible = f.IsVisible != ""
	if so := utils.StringToUintPtr(f.SortOrder); so != nil {
		item.SortOrder = *so
	} else {
		item.SortOrder = 0
	}
}

type AdminInfoHandler struct{}

func NewAdminInfoHandler() *AdminInfoHandler {
	return &AdminInfoHandler{}
}

func (h *AdminInfoHandler) List(c *gin.Context) {
	var items []models.OmahaInfo
	db.DB.Order("sort_order, title").Find(&items)
	Render(c, http.StatusOK, "admin/info_list.html", gin.H{
		"Title": "Omaha info",
		"Items": items,
	})
}

func (h *AdminInfoHandler) New(c *gin.Context) {
	h.renderForm(c, &models.OmahaInfo{IsVisible: true}, nil)
}

func (h *AdminInfoHandler) Create(c *gin.Context) {
	h.save(c, &models.OmahaInfo{})
}

func (h *AdminInfoHandler) Edit(c *gin.Context) {
	item, ok := h.find(c)
	if !ok {
		return
	}
	h.renderForm(c, item, nil)
}

func (h *AdminInfoHandler) Update(c *gin.Context) {
	item, ok := h.find(c)
	if !ok {
		return
	}
	h.save(c, item)
}

func (h *AdminInfoHandler) Delete(c *gin.Context) {
	if id := utils.StringToUintPtr(c.Param("id")); id != nil {
		db.DB.Delete(&models.OmahaInfo{}, *id)
	}
	c.Redirect(http.StatusFound, "/dashboard/omaha-info/")
}

func (h *AdminInfoHandler) save(c *gin.Context, item *models.OmahaInfo) {
	var form OmahaInfoForm
	if err := c.ShouldBind(&form); err != nil {
		form.apply(item)
		h.renderForm(c, item, formErrors(err))
		return
	}
	form.apply(item)

	if err := db.DB.Save(item).Error; err != nil {
		h.renderForm(c, item, map[string]string{"__all__": "Could not save item."})
		return
	}
	c.Redirect(http.StatusFound, "/dashboard/omaha-info/")
}

func (h *AdminInfoHandler) renderForm(c *gin.Context, item *models.OmahaInfo, errs map[string]string) {
	Render(c, http.StatusOK, "admin/info_form.html", gin.H{
		"Title":       "Edit info item",
		"Item":        item,
		"FieldErrors": errs,
	})
}

func (h *AdminInfoHandler) find(c *gin.Context) (*models.OmahaInfo, bool) {
	id := utils.StringToUintPtr(c.Param("id"))
	if id == nil {
		NotFound(c, "Item not found")
		return nil, false
	}
	var item models.OmahaInfo
	if err := db.DB.First(&item, *id).Error; err != nil {
		NotFound(c, "Item not found")
		return nil, false
	}
	return &item, true
}
