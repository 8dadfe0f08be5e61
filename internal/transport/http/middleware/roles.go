package middleware

import (
	"github.com/gin-gonic/gin"

	"fittrack/internal/apperr"
)

// RequireRole permits the request iff the resolved identity's role is in the
// allow-list. No identity at all is unauthorized, a disallowed role is
// forbidden.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			Abort(c, apperr.Unauthorized("UNAUTHORIZED"))
			return
		}
		for _, r := range roles {
			if u.Role == r {
				c.Next()
				return
			}
		}
		Abort(c, apperr.Forbidden("FORBIDDEN"))
	}
}
