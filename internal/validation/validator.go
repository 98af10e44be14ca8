package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/comment-insights-api/internal/models"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateSubmission validates a comment submission. An empty slice means
// the submission is acceptable.
func ValidateSubmission(req *models.SubmitCommentRequest) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(req.ProductID) == "" {
		errors = append(errors, ValidationError{Field: "product_id", Message: "product_id is required"})
	}
	if strings.TrimSpace(req.UserID) == "" {
		errors = append(errors, ValidationError{Field: "user_id", Message: "user_id is required"})
	}
	if strings.TrimSpace(req.Username) == "" {
		errors = append(errors, ValidationError{Field: "username", Message: "username is required"})
	}

	body := strings.TrimSpace(req.Body)
	if body == "" {
		errors = append(errors, ValidationError{Field: "comment", Message: "comment is required"})
	} else if utf8.RuneCountInString(body) < models.MinBodyLength {
		errors = append(errors, ValidationError{Field: "comment", Message: "comment must be at least 8 characters"})
	}

	return errors
}
