// Package response renders the API envelope and maps service errors to
// HTTP responses. Every endpoint answers with
// {success, message, data?, errors?}.
package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"foodhub-api/apperr"
)

type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// FieldError carries a field-level validation failure with its path
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Success sends a success envelope
func Success(c *gin.Context, status int, message string, data any) {
	if message == "" {
		message = "Success"
	}
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// Error translates any error into the envelope. Typed application errors
// keep their status; persistence-constraint errors are mapped into the
// same taxonomy; everything else is a 500 whose detail is hidden in
// release mode.
func Error(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, Envelope{Success: false, Message: appErr.Message})
		return
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, Envelope{
			Success: false,
			Message: "Validation error",
			Errors:  fieldErrors(verrs),
		})
		return
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, Envelope{Success: false, Message: "Record not found"})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusConflict, Envelope{Success: false, Message: "A record with this value already exists"})
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "Invalid reference to related record"})
	default:
		env := Envelope{Success: false, Message: "Internal server error"}
		if gin.Mode() != gin.ReleaseMode {
			env.Errors = err.Error()
		}
		c.JSON(http.StatusInternalServerError, env)
	}
}

// BindError renders a request-binding failure as a 400. Validator errors
// carry per-field messages; malformed JSON gets a generic message.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, Envelope{
			Success: false,
			Message: "Validation error",
			Errors:  fieldErrors(verrs),
		})
		return
	}
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "Invalid request body"})
}

func fieldErrors(verrs validator.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// fieldPath strips the request-struct name from the namespace and
// lowercases each segment, leaving e.g. "items[0].quantity"
func fieldPath(fe validator.FieldError) string {
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}
	segments := strings.Split(path, ".")
	for i, s := range segments {
		if s != "" {
			segments[i] = strings.ToLower(s[:1]) + s[1:]
		}
	}
	return strings.Join(segments, ".")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
