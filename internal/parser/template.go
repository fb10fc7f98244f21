package parser

import (
	"strings"

	"github.com/globalbiznex/biznexbot/internal/models"
)

// ParseTemplate extracts a draft from structured "key: value" input, either
// one pair per line or pipe-separated on a single line. A legacy
// "key=value; key=value" form is tried as a fallback when the primary pass
// left platforms or idea unset. Unrecognized keys are ignored.
func ParseTemplate(text string) (models.Draft, error) {
	var d models.Draft
	text = strings.TrimSpace(text)

	var candidates []string
	if strings.Contains(text, "\n") {
		for _, line := range strings.Split(text, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				candidates = append(candidates, line)
			}
		}
	} else if strings.Contains(text, "|") {
		for _, chunk := range strings.Split(text, "|") {
			if chunk = strings.TrimSpace(chunk); chunk != "" {
				candidates = append(candidates, chunk)
			}
		}
	} else if text != "" {
		candidates = append(candidates, text)
	}

	for _, line := range candidates {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(strings.ReplaceAll(strings.TrimSpace(value), "(optional)", ""))
		setField(&d, strings.ToLower(strings.TrimSpace(key)), value)
	}

	// Legacy "key=value; key=value" fallback
	if d.Platforms == "" || d.Idea == "" {
		for _, part := range strings.Split(text, ";") {
			part = strings.TrimSpace(part)
			key, value, ok := strings.Cut(part, "=")
			if !ok {
				continue
			}
			setField(&d, strings.ToLower(strings.TrimSpace(key)), strings.TrimSpace(value))
		}
	}

	if d.Idea == "" {
		return models.Draft{}, &ExtractionError{
			Field:   "idea",
			Message: "missing 'idea'. Example: idea: 20% off for new subscribers",
		}
	}
	if d.Platforms == "" {
		return models.Draft{}, &ExtractionError{
			Field:   "platforms",
			Message: "missing 'platforms'. Example: platforms: FB, LinkedIn",
		}
	}
	if err := validateFormats(d); err != nil {
		return models.Draft{}, err
	}

	return d, nil
}

// setField assigns a recognized draft key; unknown keys are dropped here,
// at the parse boundary.
func setField(d *models.Draft, key, value string) {
	switch key {
	case "date":
		d.Date = value
	case "time":
		d.Time = value
	case "platforms":
		d.Platforms = value
	case "idea":
		d.Idea = value
	case "groups":
		d.Groups = value
	case "caption":
		d.Caption = value
	case "hashtags":
		d.Hashtags = value
	case "image_url":
		d.ImageURL = value
	}
}
