package middleware

import (
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/taskflow/backend/internal/interfaces/http/dto"
)

// RequestIDKey is the context key for request ID
const RequestIDKey = "X-Request-ID"

// SetupValidator configures the validator with custom tags
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// Use JSON tag names for field names in errors
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
	}
}

// FormatValidationErrors formats binding errors into the errors array
func FormatValidationErrors(err error) dto.ValidationErrorResponse {
	var details []dto.ValidationDetail

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			details = append(details, dto.ValidationDetail{
				Msg:  getValidationMessage(e),
				Path: e.Field(),
			})
		}
	}

	if len(details) == 0 {
		details = []dto.ValidationDetail{{Msg: "Invalid request body", Path: "body"}}
	}

	return dto.NewValidationErrorResponse(details)
}

// HandleValidationError writes a 400 with the validation errors array
func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, FormatValidationErrors(err))
}

// getRequestIDFromContext extracts request ID from gin context
func getRequestIDFromContext(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	if id := c.GetHeader(RequestIDKey); id != "" {
		return id
	}
	return ""
}

// getValidationMessage returns a human-readable validation message
func getValidationMessage(e validator.FieldError) string {
	label := fieldLabel(e.Field())
	switch e.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return label + " is invalid"
	case "min":
		if e.Type().Kind() == reflect.String {
			return label + " must be at least " + e.Param() + " characters"
		}
		return label + " must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return label + " must be at most " + e.Param() + " characters"
		}
		return label + " must be at most " + e.Param()
	case "len":
		return label + " must be exactly " + e.Param() + " characters"
	case "uuid":
		return "Invalid " + strings.ToLower(label)
	case "eqfield":
		return "Passwords do not match"
	case "oneof":
		return label + " must be one of: " + e.Param()
	default:
		return label + " is invalid"
	}
}

// fieldLabel turns a json field name into a sentence label,
// e.g. "projectName" becomes "Project name"
func fieldLabel(field string) string {
	if field == "" {
		return "Field"
	}

	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		case r == '_':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
