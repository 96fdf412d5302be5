package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/DaSparky/daham-blogsite/internal/domains/user"
)

// gin context keys set by the middleware chain.
const (
	ctxSessionToken = "sessionToken"
	ctxCurrentUser  = "currentUser"
	ctxRequestID    = "request_id"
)

// SessionToken returns the request's session token, or "" when no
// session could be established (session backend unavailable).
func SessionToken(c *gin.Context) string {
	return c.GetString(ctxSessionToken)
}

// CurrentUser returns the authenticated user, or nil for an anonymous
// request. Requires LoadUser to have run.
func CurrentUser(c *gin.Context) *user.User {
	if v, ok := c.Get(ctxCurrentUser); ok {
		if u, ok := v.(*user.User); ok {
			return u
		}
	}
	return nil
}
