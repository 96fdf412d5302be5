package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DaSparky/daham-blogsite/internal/domains/contact"
	"github.com/DaSparky/daham-blogsite/internal/infrastructure/email"
	"github.com/DaSparky/daham-blogsite/internal/shared/render"
)

// ContactHandler serves the authenticated contact form. The SMTP send
// is synchronous: the rendered page reports this request's outcome.
type ContactHandler struct {
	mailer   email.EmailService
	renderer *render.Renderer
}

func NewContactHandler(mailer email.EmailService, renderer *render.Renderer) *ContactHandler {
	return &ContactHandler{mailer: mailer, renderer: renderer}
}

// Show handles GET /contact.
func (h *ContactHandler) Show(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "contact.html", gin.H{
		"Form": contact.ContactForm{},
	})
}

// Send handles POST /contact. A relay failure is reported on the
// page, never propagated as a crash.
func (h *ContactHandler) Send(c *gin.Context) {
	var form contact.ContactForm
	_ = c.ShouldBind(&form)

	if err := form.Validate(); err != nil {
		h.renderer.HTML(c, http.StatusOK, "contact.html", gin.H{
			"Form":   form,
			"Errors": render.FieldErrors(err),
		})
		return
	}

	err := h.mailer.SendFeedback(c.Request.Context(), email.FeedbackData{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	})
	if err != nil {
		h.renderer.HTML(c, http.StatusOK, "contact.html", gin.H{
			"Form":       form,
			"SendFailed": true,
		})
		return
	}

	h.renderer.HTML(c, http.StatusOK, "contact.html", gin.H{
		"MsgSent": true,
	})
}
