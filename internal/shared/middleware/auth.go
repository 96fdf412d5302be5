package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DaSparky/daham-blogsite/internal/domains/user"
	"github.com/DaSparky/daham-blogsite/internal/infrastructure/session"
)

// LoadUser resolves the session to a user record and stores it in the
// request context. Any resolution failure leaves the request
// anonymous; a session pointing at a vanished user is detached.
func LoadUser(store session.Store, users user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			c.Next()
			return
		}

		userID, err := store.UserID(c.Request.Context(), token)
		if err != nil || userID == 0 {
			c.Next()
			return
		}

		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			_ = store.ClearUser(c.Request.Context(), token)
			c.Next()
			return
		}

		c.Set(ctxCurrentUser, u)
		c.Next()
	}
}

// RequireAuth guards routes that need an authenticated caller.
// Anonymous requests are flashed and redirected to the login page
// instead of erroring.
func RequireAuth(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) != nil {
			c.Next()
			return
		}

		if token := SessionToken(c); token != "" {
			_ = store.AddFlash(c.Request.Context(), token, "You need to Login first")
		}
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
	}
}
