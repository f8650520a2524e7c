// Package validation turns request binding failures into field error lists.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is a list of field errors that also satisfies the error interface.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

func init() {
	// Report JSON names instead of Go field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonName)
		_ = v.RegisterValidation("trimmin", trimmedLength(func(n, limit int) bool { return n >= limit }))
		_ = v.RegisterValidation("trimmax", trimmedLength(func(n, limit int) bool { return n <= limit }))
	}
}

// trimmedLength measures a string field in runes after surrounding
// whitespace is removed.
func trimmedLength(ok func(n, limit int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil || fl.Field().Kind() != reflect.String {
			return false
		}
		return ok(utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())), limit)
	}
}

// Trimmed returns value without surrounding whitespace, or a field error
// when what remains is shorter than minLen or longer than maxLen runes.
func Trimmed(field, value string, minLen, maxLen int) (string, error) {
	trimmed := strings.TrimSpace(value)
	n := utf8.RuneCountInString(trimmed)
	switch {
	case n < minLen:
		return "", Errors{{Field: field, Message: fmt.Sprintf("must be at least %d characters", minLen)}}
	case n > maxLen:
		return "", Errors{{Field: field, Message: fmt.Sprintf("must be at most %d characters", maxLen)}}
	}
	return trimmed, nil
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// Translate converts an error returned by gin's ShouldBind* family into
// field errors. Malformed bodies yield a single "body" entry.
func Translate(err error) Errors {
	if err == nil {
		return nil
	}
	var fieldErrs Errors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{{Field: "body", Message: "malformed request body"}}
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isString(fe) {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isString(fe) {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "trimmin":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "trimmax":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "is invalid"
	}
}

func isString(fe validator.FieldError) bool {
	k := fe.Kind()
	return k == reflect.String
}
