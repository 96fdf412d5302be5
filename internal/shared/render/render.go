package render

import (
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/DaSparky/daham-blogsite/internal/infrastructure/session"
	"github.com/DaSparky/daham-blogsite/internal/shared/middleware"
	"github.com/DaSparky/daham-blogsite/pkg/logger"
)

// Renderer renders HTML pages with the request's identity and pending
// flash notices injected, so templates never reach into the session
// themselves.
type Renderer struct {
	sessions session.Store
	adminID  int64
}

func New(sessions session.Store, adminUserID int64) *Renderer {
	return &Renderer{sessions: sessions, adminID: adminUserID}
}

// HTML renders a template. Every page gets CurrentUser, IsAdmin and
// Flashes on top of the handler-provided data; flashes are one-shot
// and consumed here.
func (r *Renderer) HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	// Form pages look errors up by field name; default the map so
	// templates never dereference a missing key.
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}

	u := middleware.CurrentUser(c)
	data["CurrentUser"] = u
	data["IsAdmin"] = u != nil && u.ID == r.adminID

	if token := middleware.SessionToken(c); token != "" {
		flashes, err := r.sessions.PopFlashes(c.Request.Context(), token)
		if err != nil {
			logger.Error("failed to pop flashes", err)
		} else if len(flashes) > 0 {
			data["Flashes"] = flashes
		}
	}

	c.HTML(status, name, data)
}

// Flash queues a one-shot notice for the next rendered page,
// typically right before a redirect.
func (r *Renderer) Flash(c *gin.Context, message string) {
	token := middleware.SessionToken(c)
	if token == "" {
		return
	}
	if err := r.sessions.AddFlash(c.Request.Context(), token, message); err != nil {
		logger.Error("failed to add flash", err)
	}
}

// FieldErrors flattens an ozzo validation error into a field→message
// map for inline rendering next to the offending inputs. Non-field
// errors land under the empty key.
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	if err == nil {
		return out
	}
	if verrs, ok := err.(validation.Errors); ok {
		for field, ferr := range verrs {
			out[field] = ferr.Error()
		}
		return out
	}
	out[""] = err.Error()
	return out
}
