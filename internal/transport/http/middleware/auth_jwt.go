package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"fittrack/internal/apperr"
	"fittrack/internal/core/auth"
	"fittrack/internal/domain"
)

const KeyUser = "user"

// AuthRequired verifies the bearer token and resolves its subject to a live,
// non-deleted user row. The resolved identity is attached to the request
// context; a valid token whose subject is gone counts as unauthorized.
func AuthRequired(j *auth.JWTer, users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			Abort(c, apperr.Unauthorized("UNAUTHORIZED"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			Abort(c, apperr.Unauthorized("UNAUTHORIZED"))
			return
		}
		u, err := users.FindByID(c.Request.Context(), claims.UID)
		if err != nil {
			Abort(c, apperr.Internal("resolve token subject", err))
			return
		}
		if u == nil {
			Abort(c, apperr.Unauthorized("UNAUTHORIZED"))
			return
		}
		c.Set(KeyUser, u)
		c.Next()
	}
}

// CurrentUser returns the identity resolved by AuthRequired, or nil.
func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(KeyUser); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}

// Abort records err for the error responder and stops the chain.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
