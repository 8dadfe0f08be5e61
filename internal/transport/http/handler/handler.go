// Package handler holds the resource handlers. Each route runs the same
// pipeline: authenticate, check role, validate locations, build the query,
// apply the whitelisted mutation, respond. Failures are recorded on the gin
// context and answered by the error responder middleware.
package handler

import (
	"github.com/gin-gonic/gin"

	"fittrack/internal/i18n"
	"fittrack/internal/transport/http/middleware"
)

// msg localizes a message key for the request's language.
func msg(c *gin.Context, key string) string {
	return i18n.T(middleware.Lang(c), key)
}

// fail hands err to the error responder and stops the handler chain.
func fail(c *gin.Context, err error) {
	middleware.Abort(c, err)
}
