// Package parser turns a free-text or templated scheduling prompt into a
// structured draft. Two grammars are tried in a fixed order: the natural
// sentence grammar first, the key/value template grammar as a fallback. When
// both fail, the template grammar's error is the one shown to the user.
package parser

import (
	"time"

	"github.com/globalbiznex/biznexbot/internal/models"
)

// ParsePrompt runs the extraction chain over the user's prompt. now supplies
// the calendar date for relative date words.
func ParsePrompt(text string, now time.Time) (models.Draft, error) {
	if d, err := ParseSentence(text, now); err == nil {
		return d, nil
	}
	return ParseTemplate(text)
}
