package handlers

import (
	"net/http"

	"omahaestates/internal/config"
	"omahaestates/internal/services"

	"github.com/gin-gonic/gin"
)

// ContactForm is the statically declared schema shared by the general
// contact page and the per-listing inquiry form.
type ContactForm struct {
	Name    string `form:"name" binding:"required,max=100"`
	Email   string `form:"email" binding:"required,email"`
	Phone   string `form:"phone" binding:"omitempty,max=30"`
	Message string `form:"message" binding:"required"`
}

type ContactHandler struct {
	cfg    *config.Config
	mailer services.Mailer
}

func NewContactHandler(cfg *config.Config, mailer services.Mailer) *ContactHandler {
	return &ContactHandler{cfg: cfg, mailer: mailer}
}

func (h *ContactHandler) Show(c *gin.Context) {
	Render(c, http.StatusOK, "site/contact.html", gin.H{
		"Title": "Contact",
		"Form":  ContactForm{},
	})
}

// Submit validates the form, then dispatches the notification mail. On
// validation failure the form is redisplayed with field errors and nothing
// is sent; a transport failure fails the request.
func (h *ContactHandler) Submit(c *gin.Context) {
	var form ContactForm
	if err := c.ShouldBind(&form); err != nil {
		Render(c, http.StatusOK, "site/contact.html", gin.H{
			"Title":       "Contact",
			"Form":        form,
			"FieldErrors": formErrors(err),
		})
		return
	}

	body := services.InquiryBody(form.Name, form.Email, form.Phone, form.Message)
	if err := h.mailer.Send(h.cfg.ContactRecipient, "Contact form inquiry - Omaha Estates", body); err != nil {
		RenderError(c, http.StatusInternalServerError, "Your message could not be sent. Please try again later.")
		return
	}

	Render(c, http.StatusOK, "site/contact.html", gin.H{
		"Title": "Contact",
		"Form":  ContactForm{},
		"Sent":  true,
	})
}
