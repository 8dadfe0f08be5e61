package response

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"

	"fittrack/internal/query"
)

// Body is the uniform envelope every route answers with. Data is never null.
type Body struct {
	Data    any      `json:"data"`
	Message string   `json:"message"`
	Meta    *Meta    `json:"meta,omitempty"`
	Details []string `json:"details,omitempty"`
}

type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func NewMeta(total int64, p query.Params) *Meta {
	return &Meta{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: query.TotalPages(total, p.Limit),
	}
}

func OK(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Body{Data: orEmpty(data), Message: message})
}

func List(c *gin.Context, data any, message string, meta *Meta) {
	c.JSON(http.StatusOK, Body{Data: orEmpty(data), Message: message, Meta: meta})
}

func Fail(c *gin.Context, status int, message string, details []string) {
	c.JSON(status, Body{Data: struct{}{}, Message: message, Details: details})
}

func orEmpty(data any) any {
	if data == nil {
		return struct{}{}
	}
	// an empty result set is [], never null
	if v := reflect.ValueOf(data); v.Kind() == reflect.Slice && v.IsNil() {
		return []any{}
	}
	return data
}
