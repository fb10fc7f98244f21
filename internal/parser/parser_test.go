package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePromptPrefersSentence(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	d, err := ParsePrompt("Post 20% off on FB tomorrow 4pm", now)
	require.NoError(t, err)

	assert.Equal(t, "FB", d.Platforms)
	assert.Equal(t, "2026-03-15", d.Date)
	assert.Equal(t, "16:00", d.Time)
}

func TestParsePromptFallsBackToTemplate(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	d, err := ParsePrompt("idea: Launch\nplatforms: LinkedIn", now)
	require.NoError(t, err)

	assert.Equal(t, "Launch", d.Idea)
	assert.Equal(t, "LinkedIn", d.Platforms)
}

func TestParsePromptSurfacesTemplateError(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	_, err := ParsePrompt("platforms: FB", now)
	var exErr *ExtractionError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, "idea", exErr.Field)
}
