package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"omahaestates/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// RenderError renders the shared error page.
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}

// NotFound degrades to a rendered page, never a raw failure.
func NotFound(c *gin.Context, message string) {
	RenderError(c, http.StatusNotFound, message)
}

// formErrors flattens validator failures into per-field messages for
// redisplaying a form.
func formErrors(err error) map[string]string {
	out := map[string]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["__all__"] = "Please correct the errors below."
		return out
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "This field is required."
		case "email":
			out[field] = "Enter a valid email address."
		case "max":
			out[field] = fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
		default:
			out[field] = "Enter a valid value."
		}
	}
	return out
}
