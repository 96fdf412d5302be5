package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DaSparky/daham-blogsite/internal/domains/user"
	"github.com/DaSparky/daham-blogsite/internal/infrastructure/session"
	"github.com/DaSparky/daham-blogsite/internal/shared/middleware"
	"github.com/DaSparky/daham-blogsite/internal/shared/render"
	"github.com/DaSparky/daham-blogsite/pkg/logger"
)

// UserHandler serves the register, login and logout routes.
type UserHandler struct {
	service  user.Service
	sessions session.Store
	renderer *render.Renderer
}

func NewUserHandler(service user.Service, sessions session.Store, renderer *render.Renderer) *UserHandler {
	return &UserHandler{
		service:  service,
		sessions: sessions,
		renderer: renderer,
	}
}

// ShowRegister handles GET /register.
func (h *UserHandler) ShowRegister(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "register.html", gin.H{
		"Form": user.RegisterForm{},
	})
}

// Register handles POST /register. A duplicate email flashes and
// redirects to login; success auto-logs the new user in.
func (h *UserHandler) Register(c *gin.Context) {
	var form user.RegisterForm
	_ = c.ShouldBind(&form)

	if err := form.Validate(); err != nil {
		h.renderer.HTML(c, http.StatusOK, "register.html", gin.H{
			"Form":   form,
			"Errors": render.FieldErrors(err),
		})
		return
	}

	u, err := h.service.Register(c.Request.Context(), form)
	if err != nil {
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			h.renderer.Flash(c, "This Email is already registered!, Try Login instead.")
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		h.serverError(c, err)
		return
	}

	// Auto-login: registration establishes the session immediately.
	if err := h.establishSession(c, u.ID); err != nil {
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// ShowLogin handles GET /login.
func (h *UserHandler) ShowLogin(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "login.html", gin.H{
		"Form": user.LoginForm{},
	})
}

// Login handles POST /login. Both failure modes flash their own
// notice and bounce back to the login page.
func (h *UserHandler) Login(c *gin.Context) {
	var form user.LoginForm
	_ = c.ShouldBind(&form)

	if err := form.Validate(); err != nil {
		h.renderer.HTML(c, http.StatusOK, "login.html", gin.H{
			"Form":   form,
			"Errors": render.FieldErrors(err),
		})
		return
	}

	u, err := h.service.Login(c.Request.Context(), form)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidEmail):
			h.renderer.Flash(c, "This Email is invalid!")
		case errors.Is(err, user.ErrWrongPassword):
			h.renderer.Flash(c, "Wrong Password, Try again!")
		default:
			h.serverError(c, err)
			return
		}
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if err := h.establishSession(c, u.ID); err != nil {
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout handles GET /logout. The route sits behind RequireAuth, so
// an anonymous caller never reaches this.
func (h *UserHandler) Logout(c *gin.Context) {
	token := middleware.SessionToken(c)
	if token != "" {
		if err := h.sessions.ClearUser(c.Request.Context(), token); err != nil {
			h.serverError(c, err)
			return
		}
	}
	c.Redirect(http.StatusFound, "/")
}

// establishSession binds the user to the request's session.
func (h *UserHandler) establishSession(c *gin.Context, userID int64) error {
	token := middleware.SessionToken(c)
	if token == "" {
		return session.ErrSessionNotFound
	}
	return h.sessions.SetUser(c.Request.Context(), token, userID)
}

func (h *UserHandler) serverError(c *gin.Context, err error) {
	logger.Error("user handler error", err)
	h.renderer.HTML(c, http.StatusInternalServerError, "error.html", gin.H{
		"Status":  http.StatusInternalServerError,
		"Message": "Something went wrong. Please try again.",
	})
}
