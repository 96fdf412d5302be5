package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/DaSparky/daham-blogsite/internal/config"
	"github.com/DaSparky/daham-blogsite/internal/infrastructure/session"
	"github.com/DaSparky/daham-blogsite/pkg/logger"
)

// Session guarantees every request carries a live server-side session:
// an existing valid cookie is kept, anything else gets a fresh
// anonymous session. If the session backend is down the request
// continues anonymous rather than failing the page.
func Session(store session.Store, cfg config.SessionConfig) gin.HandlerFunc {
	maxAge := cfg.TTLHours * 3600

	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.CookieName)
		fresh := err != nil || token == ""

		if !fresh {
			if _, err := store.UserID(c.Request.Context(), token); err != nil {
				if !errors.Is(err, session.ErrSessionNotFound) {
					logger.Error("session backend unavailable", err)
					c.Next()
					return
				}
				fresh = true
			}
		}

		if fresh {
			token, err = store.Create(c.Request.Context())
			if err != nil {
				logger.Error("failed to create session", err)
				c.Next()
				return
			}
			c.SetCookie(cfg.CookieName, token, maxAge, "/", "", cfg.Secure, true)
		}

		c.Set(ctxSessionToken, token)
		c.Next()
	}
}
