// Package validation checks request locations against declared schemas.
// Within one location every violated rule is reported; the first location
// with any violation short-circuits the request. Locations are evaluated
// body first, then params.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"fittrack/internal/apperr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report wire field names, not Go struct field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Body binds the JSON body into dst and validates it exhaustively.
// Fields not present in dst are silently ignored.
func Body(c *gin.Context, dst any) *apperr.Error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apperr.Validation("body", []string{"invalid JSON body"})
	}
	return check("body", dst)
}

// IDParams parses the named path parameters as positive integers, collecting
// one message per violating parameter.
func IDParams(c *gin.Context, names ...string) ([]uint64, *apperr.Error) {
	ids := make([]uint64, 0, len(names))
	var details []string
	for _, name := range names {
		id, err := strconv.ParseUint(c.Param(name), 10, 64)
		if err != nil || id == 0 {
			details = append(details, fmt.Sprintf("%s must be a positive integer", name))
			continue
		}
		ids = append(ids, id)
	}
	if len(details) > 0 {
		return nil, apperr.Validation("params", details)
	}
	return ids, nil
}

func check(location string, s any) *apperr.Error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Validation(location, []string{err.Error()})
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, message(fe))
	}
	return apperr.Validation(location, details)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
