package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"github.com/taskan-dev/taskan/internal/domain"
	"github.com/taskan-dev/taskan/internal/errors"
)

var (
	strict   = bluemonday.StrictPolicy()
	validate = validator.New(validator.WithRequiredStructEnabled())
)

// Sanitize strips any HTML from user-supplied free text and trims
// surrounding whitespace.
func Sanitize(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// dueDateLayouts are accepted for due-date strings, tried in order.
var dueDateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDueDate parses an ISO due-date string. Date-only values resolve to
// midnight UTC.
func ParseDueDate(s string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &errors.ValidationError{Message: "malformed due date: " + s}
}

type BoardValidator struct{}

func (v *BoardValidator) Name(name domain.BoardName) error {
	if name == "" {
		return &errors.ValidationError{Message: "board name is required"}
	}
	if utf8.RuneCountInString(name) > 100 {
		return &errors.ValidationError{Message: "board name is too long"}
	}
	return nil
}

type ListValidator struct{}

func (v *ListValidator) Name(name domain.ListName) error {
	if name == "" {
		return &errors.ValidationError{Message: "list name is required"}
	}
	if utf8.RuneCountInString(name) > 100 {
		return &errors.ValidationError{Message: "list name is too long"}
	}
	return nil
}

type CardValidator struct{}

func (v *CardValidator) Title(title domain.CardTitle) error {
	if title == "" {
		return &errors.ValidationError{Message: "card title is required"}
	}
	if utf8.RuneCountInString(title) > 200 {
		return &errors.ValidationError{Message: "card title is too long"}
	}
	return nil
}

// Patch checks a partial card update against the whitelist contract:
// struct tags first, then per-field enum and title checks. DueDate syntax
// is checked by the caller because it also needs the parsed instant.
func (v *CardValidator) Patch(patch *domain.CardPatch) error {
	if err := validate.Struct(patch); err != nil {
		return &errors.ValidationError{Message: err.Error()}
	}
	if patch.Title != nil {
		if err := v.Title(*patch.Title); err != nil {
			return err
		}
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return &errors.ValidationError{Message: "unknown priority: " + string(*patch.Priority)}
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return &errors.ValidationError{Message: "unknown status: " + string(*patch.Status)}
	}
	return nil
}
