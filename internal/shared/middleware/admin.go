package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates the post management routes. Anyone who is not
// the designated admin user gets a bare 403 before the handler runs,
// anonymous callers included.
func RequireAdmin(adminUserID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil || u.ID != adminUserID {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
