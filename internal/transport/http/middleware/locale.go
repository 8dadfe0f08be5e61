package middleware

import (
	"github.com/gin-gonic/gin"

	"fittrack/internal/i18n"
)

const KeyLang = "lang"

// Locale picks the response language from the `language` header.
// Unrecognized or absent values fall back to English.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(KeyLang, i18n.Pick(c.GetHeader("language")))
		c.Next()
	}
}

func Lang(c *gin.Context) string {
	if lang := c.GetString(KeyLang); lang != "" {
		return lang
	}
	return i18n.Fallback
}
