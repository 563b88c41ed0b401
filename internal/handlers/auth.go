package handlers

import (
	"net/http"
	"strings"

	"omahaestates/internal/db"
	"omahaestates/internal/models"
	"omahaestates/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const dashboardPath = "/accounts/dashboard/"

// persistentSessionAge is the default session lifetime when "remember me"
// is checked. Without it the cookie expires with the browser session.
const persistentSessionAge = 30 * 24 * 60 * 60

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// ShowLogin renders the login form. An already-authenticated visitor gets
// the form too rather than a redirect; see DESIGN.md.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "accounts/login.html", gin.H{
		"Title": "Log in",
		"Next":  c.Query("next"),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	// One generic message for unknown user and wrong password alike.
	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil ||
		!utils.CheckPasswordHash(password, user.Password) {
		Render(c, http.StatusOK, "accounts/login.html", gin.H{
			"Title": "Log in",
			"Error": "Invalid username or password",
			"Next":  c.Query("next"),
		})
		return
	}

	session := sessions.Default(c)
	opts := sessions.Options{Path: "/", MaxAge: 0, HttpOnly: true}
	if c.PostForm("remember") != "" {
		opts.MaxAge = persistentSessionAge
	}
	session.Options(opts)
	session.Set("user_id", user.ID)
	session.Save()

	next := c.Query("next")
	if next == "" {
		next = c.PostForm("next")
	}
	if !strings.HasPrefix(next, "/") {
		next = dashboardPath
	}
	c.Redirect(http.StatusFound, next)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/accounts/login/")
}

// Dashboard is the staff landing page behind AuthRequired.
func (h *AuthHandler) Dashboard(c *gin.Context) {
	var listingCount, logCount, infoCount int64
	db.DB.Model(&models.Listing{}).Count(&listingCount)
	db.DB.Model(&models.SearchLog{}).Count(&logCount)
	db.DB.Model(&models.OmahaInfo{}).Count(&infoCount)

	Render(c, http.StatusOK, "accounts/dashboard.html", gin.H{
		"Title":        "Dashboard",
		"ListingCount": listingCount,
		"LogCount":     logCount,
		"InfoCount":    infoCount,
	})
}
