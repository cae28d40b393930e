package apperr

import (
	"errors"   // Error unwrapping
	"net/http" // HTTP status codes
	"strings"  // String joining

	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/go-playground/validator/v10" // Validation engine behind gin's binding tags
	"github.com/sirupsen/logrus"             // Logging library
)

// ErrorHandler translates errors collected during the request into the
// HTTP response. This is the only place the error body shape is decided:
// every payload is {"errors": <string>}.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next() // Run the rest of the chain first

		// Nothing to translate
		if len(c.Errors) == 0 {
			return
		}
		last := c.Errors.Last()

		var respErr *ResponseError
		var validationErrs validator.ValidationErrors
		switch {
		case errors.As(last.Err, &respErr):
			// Typed domain error: status and message decided by the service
			c.JSON(respErr.Status, gin.H{"errors": respErr.Message})
		case errors.As(last.Err, &validationErrs):
			// Constraint violations from binding tags
			c.JSON(http.StatusBadRequest, gin.H{"errors": formatValidationErrors(validationErrs)})
		case last.IsType(gin.ErrorTypeBind):
			// Malformed payload that never reached the validator
			c.JSON(http.StatusBadRequest, gin.H{"errors": "Invalid request body"})
		default:
			// Unexpected error: log the detail, never leak it
			logrus.WithFields(logrus.Fields{
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
				"error":  last.Err.Error(),
			}).Error("Unhandled error")
			c.JSON(http.StatusInternalServerError, gin.H{"errors": "Internal Server Error"})
		}
	}
}

// formatValidationErrors renders field constraint violations as a single
// readable string, e.g. "FirstName failed on required"
func formatValidationErrors(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		parts = append(parts, fieldErr.Field()+" failed on "+fieldErr.Tag())
	}
	return strings.Join(parts, ", ")
}
