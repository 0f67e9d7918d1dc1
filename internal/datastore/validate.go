package datastore

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/todoey/internal/models"
)

// validateLabel rejects empty, whitespace-only, overlong and non-UTF-8 names or titles.
// The value is stored as given; only the check ignores surrounding space.
func validateLabel(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return &models.ValidationError{Field: field, Reason: "cannot be empty"}
	}
	if !utf8.ValidString(value) {
		return &models.ValidationError{Field: field, Reason: "must be valid UTF-8 text"}
	}
	if utf8.RuneCountInString(value) > maxLen {
		return &models.ValidationError{Field: field, Reason: fmt.Sprintf("cannot exceed %d characters", maxLen)}
	}
	return nil
}

func validateName(name string) error {
	return validateLabel("name", name, models.MaxNameLength)
}

func validateTitle(title string) error {
	return validateLabel("title", title, models.MaxTitleLength)
}
