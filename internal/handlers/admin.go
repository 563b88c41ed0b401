package handlers

import (
	"fmt"

	"omahaestates/internal/middleware"
	"omahaestates/internal/models"

	"github.com/gin-gonic/gin"
)

// currentStaff is the acting staff identity behind an admin request.
func currentStaff(c *gin.Context) *models.User {
	return middleware.CurrentUser(c)
}

func listingEditPath(listingID uint) string {
	return fmt.Sprintf("/dashboard/listings/%d/edit/", listingID)
}
