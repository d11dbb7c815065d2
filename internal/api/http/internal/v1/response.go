package v1

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/regportal/backend/internal/validation"
)

const (
	SeverityError = "error"
	SeverityInfo  = "info"
)

// Notice is the fire-and-forget user-facing message channel.
type Notice struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

func errorResponse(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

// fieldErrorsResponse renders the validation engine's per-field errors.
func fieldErrorsResponse(c *gin.Context, fieldErrs validation.FieldErrors) {
	out := make([]ValidationError, 0, len(fieldErrs))
	for field, msg := range fieldErrs {
		out = append(out, ValidationError{FieldKey: field, ErrorMessage: msg})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FieldKey < out[j].FieldKey })

	c.JSON(http.StatusBadRequest, ValidationErrorStruct{
		ErrorCode:    ValidationErrorCode,
		ErrorMessage: ValidationErrorMessage,
		Errors:       out,
	})
}

// bindingErrorResponse renders gin binding failures in the same envelope.
func bindingErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{FieldKey: ferr.Field(), ErrorMessage: "This field is required"}
		}
		c.JSON(http.StatusBadRequest, ValidationErrorStruct{
			ErrorCode:    ValidationErrorCode,
			ErrorMessage: ValidationErrorMessage,
			Errors:       out,
		})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
}
