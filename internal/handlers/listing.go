package handlers

import (
	"fmt"
	"net/http"

	"omahaestates/internal/config"
	"omahaestates/internal/middleware"
	"omahaestates/internal/models"
	"omahaestates/internal/services"
	"omahaestates/internal/utils"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	cfg      *config.Config
	listings *services.ListingService
	search   *services.SearchService
	mailer   services.Mailer
}

func NewListingHandler(cfg *config.Config, listings *services.ListingService, search *services.SearchService, mailer services.Mailer) *ListingHandler {
	return &ListingHandler{cfg: cfg, listings: listings, search: search, mailer: mailer}
}

// List delegates to the search service and echoes the submitted filter
// selections back for re-display.
func (h *ListingHandler) List(c *gin.Context) {
	filters := services.SearchFilters{
		Query:        c.Query("q"),
		HomeType:     c.Query("home_type"),
		PriceRange:   c.Query("price_range"),
		Neighborhood: c.Query("neighborhood"),
	}

	meta := services.ClientMeta{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if user := middleware.CurrentUser(c); user != nil {
		meta.UserID = &user.ID
	}

	listings, err := h.search.Search(filters, meta)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Something went wrong loading listings.")
		return
	}

	renderData := gin.H{
		"Title":    "Listings",
		"Listings": listings,
		"Filters":  filters,
	}
	addFilterOptions(renderData)

	Render(c, http.StatusOK, "listings/list.html", renderData)
}

// Detail shows one visible listing with its photos and an empty inquiry
// form scoped to it.
func (h *ListingHandler) Detail(c *gin.Context) {
	listing, ok := h.visibleListing(c)
	if !ok {
		return
	}

	Render(c, http.StatusOK, "listings/detail.html", gin.H{
		"Title":       listing.Address(),
		"Listing":     listing,
		"Description": utils.RenderMarkdown(listing.Description),
		"Form":        ContactForm{},
	})
}

// Inquire handles the listing-scoped contact form on the detail page.
func (h *ListingHandler) Inquire(c *gin.Context) {
	listing, ok := h.visibleListing(c)
	if !ok {
		return
	}

	renderData := gin.H{
		"Title":       listing.Address(),
		"Listing":     listing,
		"Description": utils.RenderMarkdown(listing.Description),
	}

	var form ContactForm
	if err := c.ShouldBind(&form); err != nil {
		renderData["Form"] = form
		renderData["FieldErrors"] = formErrors(err)
		Render(c, http.StatusOK, "listings/detail.html", renderData)
		return
	}

	listingURL := fmt.Sprintf("%s/listings/%d/", h.cfg.SiteURL, listing.ID)
	subject := fmt.Sprintf("Listing inquiry: %s", listing.Address())
	body := services.InquiryBody(form.Name, form.Email, form.Phone, form.Message,
		fmt.Sprintf("Listing: %s", listingURL),
		fmt.Sprintf("Listing ID: %d", listing.ID))

	if err := h.mailer.Send(h.cfg.ContactRecipient, subject, body); err != nil {
		RenderError(c, http.StatusInternalServerError, "Your message could not be sent. Please try again later.")
		return
	}

	renderData["Form"] = ContactForm{}
	renderData["Sent"] = true
	Render(c, http.StatusOK, "listings/detail.html", renderData)
}

func (h *ListingHandler) visibleListing(c *gin.Context) (*models.Listing, bool) {
	id := utils.StringToUintPtr(c.Param("id"))
	if id == nil {
		NotFound(c, "Listing not found")
		return nil, false
	}

	l, err := h.listings.VisibleByID(*id)
	if err != nil {
		NotFound(c, "Listing not found")
		return nil, false
	}
	return l, true
}
