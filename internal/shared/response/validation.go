package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// HandleValidationError translates an ozzo validation result into the
// 422 field->message contract. Errors that are not field-level (for
// example a broken struct rule) fall back to 400.
func HandleValidationError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		details := make(map[string]string, len(fieldErrs))
		for field, ferr := range fieldErrs {
			details[field] = ferr.Error()
		}
		ValidationFailed(c, details)
		return
	}

	BadRequest(c, err.Error())
}
