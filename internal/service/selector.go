package service

import (
	"strings"
	"time"

	"github.com/globalbiznex/biznexbot/internal/config"
	"github.com/globalbiznex/biznexbot/internal/models"
	"github.com/globalbiznex/biznexbot/internal/store"
)

// Selector decides which stored content items are actionable now. The store's
// ambient clock is UTC; due decisions are made against the business timezone,
// a fixed offset from UTC.
type Selector struct {
	offset time.Duration
}

func NewSelector(cfg *config.SchedulerConfig) *Selector {
	offset := time.Duration(cfg.TimezoneOffsetHours)*time.Hour +
		time.Duration(cfg.TimezoneOffsetMinutes)*time.Minute
	return &Selector{offset: offset}
}

// Now returns the current business-timezone instant.
func (s *Selector) Now() time.Time {
	return time.Now().UTC().Add(s.offset)
}

// DueItems returns the subset of rows that are actionable at now, in store
// order. Date and time fields in the returned rows are normalized.
//
// A pending row is due when its date is blank, or in the past, or today with
// a blank time or a time that has already passed. A past date is due
// unconditionally: the time of day is deliberately ignored so overdue items
// are always picked up.
func (s *Selector) DueItems(now time.Time, rows []store.Row) []store.Row {
	today := now.Format("2006-01-02")
	clock := now.Format("15:04")

	var due []store.Row
	for _, row := range rows {
		if strings.ToLower(strings.TrimSpace(row.Item.Status)) != models.StatusPending {
			continue
		}

		dateVal := NormalizeDate(row.Item.Date)
		timeVal := NormalizeTime(row.Item.Time)
		row.Item.Date = dateVal
		row.Item.Time = timeVal

		if dateVal != "" {
			// ISO strings order the same way the dates do.
			if dateVal > today {
				continue
			}
			if dateVal == today && timeVal != "" && timeVal > clock {
				continue
			}
		}

		due = append(due, row)
	}
	return due
}

var sheetDateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"2006-01-02 15:04:05",
}

// NormalizeDate converts the stored date text to ISO YYYY-MM-DD. Blank or
// unparseable input normalizes to "", meaning "any day".
func NormalizeDate(value string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return ""
	}

	for _, layout := range sheetDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

var sheetTimeLayouts = []string{
	"15:04",
	"15:04:05",
}

// NormalizeTime converts the stored time text to 24-hour HH:MM. Blank or
// unparseable input normalizes to "", meaning "any time".
func NormalizeTime(value string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return ""
	}

	for _, layout := range sheetTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04")
		}
	}
	return ""
}
