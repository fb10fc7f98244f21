package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplateLines(t *testing.T) {
	d, err := ParseTemplate("date: 2026-12-15\ntime: 16:00\nplatforms: FB, IG, LinkedIn\nidea: 20% off for new subscribers\ngroups: Group 1, Group 2\nhashtags: #globalbiznex #marketing\nimage_url: https://example.com/a.png")
	require.NoError(t, err)

	assert.Equal(t, "2026-12-15", d.Date)
	assert.Equal(t, "16:00", d.Time)
	assert.Equal(t, "FB, IG, LinkedIn", d.Platforms)
	assert.Equal(t, "20% off for new subscribers", d.Idea)
	assert.Equal(t, "Group 1, Group 2", d.Groups)
	assert.Equal(t, "#globalbiznex #marketing", d.Hashtags)
	assert.Equal(t, "https://example.com/a.png", d.ImageURL)
}

func TestParseTemplateMinimal(t *testing.T) {
	d, err := ParseTemplate("idea: Launch\nplatforms: LinkedIn")
	require.NoError(t, err)

	assert.Equal(t, "Launch", d.Idea)
	assert.Equal(t, "LinkedIn", d.Platforms)
	assert.Empty(t, d.Date)
	assert.Empty(t, d.Time)
	assert.Empty(t, d.Groups)
	assert.Empty(t, d.Caption)
	assert.Empty(t, d.Hashtags)
	assert.Empty(t, d.ImageURL)
}

func TestParseTemplatePipeSeparated(t *testing.T) {
	d, err := ParseTemplate("idea: Launch | platforms: FB, IG | time: 09:00")
	require.NoError(t, err)

	assert.Equal(t, "Launch", d.Idea)
	assert.Equal(t, "FB, IG", d.Platforms)
	assert.Equal(t, "09:00", d.Time)
}

func TestParseTemplateStripsOptionalMarkers(t *testing.T) {
	d, err := ParseTemplate("idea: Launch\nplatforms: FB\ndate: 2026-12-15 (optional)")
	require.NoError(t, err)
	assert.Equal(t, "2026-12-15", d.Date)
}

func TestParseTemplateIgnoresUnknownKeys(t *testing.T) {
	d, err := ParseTemplate("idea: Launch\nplatforms: FB\naudience: everyone")
	require.NoError(t, err)
	assert.Equal(t, "Launch", d.Idea)
}

func TestParseTemplateLegacyFallback(t *testing.T) {
	d, err := ParseTemplate("idea=Launch; platforms=FB, IG; time=10:00")
	require.NoError(t, err)

	assert.Equal(t, "Launch", d.Idea)
	assert.Equal(t, "FB, IG", d.Platforms)
	assert.Equal(t, "10:00", d.Time)
}

func TestParseTemplateMissingIdea(t *testing.T) {
	_, err := ParseTemplate("platforms: FB")
	var exErr *ExtractionError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, "idea", exErr.Field)
	assert.Contains(t, err.Error(), "idea")
}

func TestParseTemplateMissingPlatforms(t *testing.T) {
	_, err := ParseTemplate("idea: Launch")
	var exErr *ExtractionError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, "platforms", exErr.Field)
}

func TestParseTemplateMalformedDate(t *testing.T) {
	_, err := ParseTemplate("idea: Launch\nplatforms: FB\ndate: 15-12-2026")
	var malErr *MalformedFieldError
	require.ErrorAs(t, err, &malErr)
	assert.Equal(t, "date", malErr.Field)
}

func TestParseTemplateMalformedTime(t *testing.T) {
	_, err := ParseTemplate("idea: Launch\nplatforms: FB\ntime: 4pm")
	var malErr *MalformedFieldError
	require.ErrorAs(t, err, &malErr)
	assert.Equal(t, "time", malErr.Field)
}
