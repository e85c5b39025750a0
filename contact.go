package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	contactThanks = "Thank you for your message! I'll get back to you soon."
	contactFailed = "Failed to send message. Please try again."
)

type contactForm struct {
	Name    string `form:"name"    binding:"required"`
	Email   string `form:"email"   binding:"required,email"`
	Subject string `form:"subject" binding:"required"`
	Message string `form:"message" binding:"required"`
}

// contact acknowledges a submission without sending it anywhere. Fragments
// are returned with 200 so HTMX swaps them in either way.
func (s *server) contact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		s.log.Warn().Err(err).Msg("contact form rejected")
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": contactFailed,
		})
		return
	}

	s.log.Info().
		Str("name", form.Name).
		Str("email", form.Email).
		Str("subject", form.Subject).
		Int("message_len", len(form.Message)).
		Msg("contact form submission")

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": contactThanks,
	})
}
