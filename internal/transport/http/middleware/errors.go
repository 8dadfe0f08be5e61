package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fittrack/internal/apperr"
	"fittrack/internal/i18n"
	"fittrack/internal/transport/http/response"
)

// ErrorResponder is the single funnel for every failure a stage records via
// c.Error. Expected domain errors keep their status and localized message;
// anything else is logged with full detail (the zap error core also appends
// to the durable error-log file) and surfaces only as a generic message.
// A failing log sink never fails the request.
func ErrorResponder(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		lang := Lang(c)

		var ae *apperr.Error
		if errors.As(err, &ae) && ae.Status < http.StatusInternalServerError {
			msg := ae.Message
			if msg == "" {
				msg = i18n.T(lang, ae.Key)
			}
			response.Fail(c, ae.Status, msg, ae.Details)
			return
		}

		status := http.StatusInternalServerError
		if ae != nil && ae.Status >= http.StatusInternalServerError {
			status = ae.Status
		}
		l.Error("request failed",
			zap.String("rid", c.GetString(KeyRequestID)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
			zap.Stack("stack"),
		)
		response.Fail(c, status, i18n.T(lang, "SOMETHING_WENT_WRONG"), nil)
	}
}
