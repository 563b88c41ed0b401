package middleware

import (
	"net/http"
	"net/url"
	"omahaestates/internal/db"
	"omahaestates/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

const LoginPath = "/accounts/login/"

// LoadUser retrieves user from session and sets to context
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")

		if userID != nil {
			var user models.User
			if err := db.DB.First(&user, userID).Error; err == nil {
				c.Set(CheckUserKey, &user)
			}
		}
		c.Next()
	}
}

// AuthRequired ensures a user is logged in, sending anonymous visitors to
// the login page with the requested path preserved as ?next=.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, LoginPath+"?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}

// StaffRequired gates the management surface. Runs after AuthRequired.
func StaffRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, exists := c.Get(CheckUserKey)
		if !exists || !u.(*models.User).IsStaff {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, LoginPath+"?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user from the context, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if u, exists := c.Get(CheckUserKey); exists {
		return u.(*models.User)
	}
	return nil
}
