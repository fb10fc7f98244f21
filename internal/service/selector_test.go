package service

import (
	"testing"
	"time"

	"github.com/globalbiznex/biznexbot/internal/config"
	"github.com/globalbiznex/biznexbot/internal/models"
	"github.com/globalbiznex/biznexbot/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var selectorNow = time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)

func pendingRow(key uint, date, clock string) store.Row {
	return store.Row{
		Key: key,
		Item: models.ContentItem{
			ContentID: int(key),
			Date:      date,
			Time:      clock,
			Platforms: "FB",
			Idea:      "sale",
			Status:    models.StatusPending,
		},
	}
}

func dueKeys(rows []store.Row) []uint {
	keys := make([]uint, 0, len(rows))
	for _, r := range rows {
		keys = append(keys, r.Key)
	}
	return keys
}

func TestDueItemsDateRules(t *testing.T) {
	sel := NewSelector(&config.SchedulerConfig{})

	rows := []store.Row{
		pendingRow(1, "", ""),                // no date: always due
		pendingRow(2, "2026-03-13", ""),      // yesterday
		pendingRow(3, "2026-03-14", ""),      // today, no time
		pendingRow(4, "2026-03-14", "15:30"), // today, exactly now
		pendingRow(5, "2026-03-14", "16:00"), // today, later
		pendingRow(6, "2026-03-15", ""),      // tomorrow
	}

	due := sel.DueItems(selectorNow, rows)
	assert.Equal(t, []uint{1, 2, 3, 4}, dueKeys(due))
}

func TestDueItemsPastDateIgnoresTime(t *testing.T) {
	sel := NewSelector(&config.SchedulerConfig{})

	rows := []store.Row{pendingRow(1, "2026-03-13", "23:59")}
	due := sel.DueItems(selectorNow, rows)
	require.Len(t, due, 1)
}

func TestDueItemsSkipsNonPending(t *testing.T) {
	sel := NewSelector(&config.SchedulerConfig{})

	posted := pendingRow(1, "", "")
	posted.Item.Status = models.StatusPosted
	partial := pendingRow(2, "", "")
	partial.Item.Status = models.StatusPartial
	upper := pendingRow(3, "", "")
	upper.Item.Status = "Pending"

	due := sel.DueItems(selectorNow, []store.Row{posted, partial, upper})
	assert.Equal(t, []uint{3}, dueKeys(due))
}

func TestDueItemsNormalizesFields(t *testing.T) {
	sel := NewSelector(&config.SchedulerConfig{})

	rows := []store.Row{pendingRow(7, "13/03/2026", "09:15:00")}
	due := sel.DueItems(selectorNow, rows)
	require.Len(t, due, 1)
	assert.Equal(t, "2026-03-13", due[0].Item.Date)
	assert.Equal(t, "09:15", due[0].Item.Time)
}

func TestDueItemsUnparseableDateTreatedAsAnyDay(t *testing.T) {
	sel := NewSelector(&config.SchedulerConfig{})

	rows := []store.Row{pendingRow(8, "next tuesday", "")}
	due := sel.DueItems(selectorNow, rows)
	require.Len(t, due, 1)
	assert.Empty(t, due[0].Item.Date)
}

func TestNormalizeDateLayouts(t *testing.T) {
	cases := map[string]string{
		"2026-12-15":          "2026-12-15",
		"15-12-2026":          "2026-12-15",
		"15/12/2026":          "2026-12-15",
		"2026/12/15":          "2026-12-15",
		"2026-12-15 16:00:00": "2026-12-15",
		"":                    "",
		"  2026-12-15  ":      "2026-12-15",
		"someday":             "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeDate(in), "input %q", in)
	}
	// already-normalized input is a fixed point
	assert.Equal(t, "2026-12-15", NormalizeDate(NormalizeDate("15/12/2026")))
}

func TestNormalizeTimeLayouts(t *testing.T) {
	cases := map[string]string{
		"16:00":    "16:00",
		"16:00:30": "16:00",
		"9:05":     "09:05",
		"":         "",
		"4pm":      "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeTime(in), "input %q", in)
	}
}

func TestSelectorNowAppliesOffset(t *testing.T) {
	sel := NewSelector(&config.SchedulerConfig{TimezoneOffsetHours: 5, TimezoneOffsetMinutes: 30})
	got := sel.Now()
	diff := got.Sub(time.Now().UTC())
	assert.InDelta(t, (5*time.Hour + 30*time.Minute).Seconds(), diff.Seconds(), 5)
}
