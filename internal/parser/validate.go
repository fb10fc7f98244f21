package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/globalbiznex/biznexbot/internal/models"
)

var isoDateStrictRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDraft enforces the promotion invariants: idea and platforms must be
// non-empty, and date/time must parse when present. It runs right after
// extraction and again before a draft becomes a content item, since the user
// may have edited the draft in between. Pure; no side effects.
func ValidateDraft(d models.Draft) error {
	if strings.TrimSpace(d.Idea) == "" {
		return &MissingFieldError{Field: "idea"}
	}
	if strings.TrimSpace(d.Platforms) == "" {
		return &MissingFieldError{Field: "platforms"}
	}
	return validateFormats(d)
}

// validateFormats checks date and time fields when they are set. Shared by
// both grammars and the validator.
func validateFormats(d models.Draft) error {
	if d.Date != "" {
		if !isoDateStrictRe.MatchString(d.Date) {
			return &MalformedFieldError{Field: "date", Value: d.Date, Expect: "YYYY-MM-DD"}
		}
		if _, err := time.Parse("2006-01-02", d.Date); err != nil {
			return &MalformedFieldError{Field: "date", Value: d.Date, Expect: "YYYY-MM-DD"}
		}
	}
	if d.Time != "" {
		if _, err := time.Parse("15:04", d.Time); err != nil {
			return &MalformedFieldError{Field: "time", Value: d.Time, Expect: "HH:MM (24-hour)"}
		}
	}
	return nil
}
