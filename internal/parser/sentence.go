package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/globalbiznex/biznexbot/internal/models"
)

// platformAliases maps lowercase alias tokens to canonical platform codes.
var platformAliases = map[string]string{
	"fb":        "FB",
	"facebook":  "FB",
	"ig":        "IG",
	"insta":     "IG",
	"instagram": "IG",
	"linkedin":  "LinkedIn",
	"li":        "LinkedIn",
}

var (
	urlRe         = regexp.MustCompile(`https?://\S+`)
	hashtagRe     = regexp.MustCompile(`#\w+`)
	wordRe        = regexp.MustCompile(`[A-Za-z]+`)
	isoDateRe     = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	clockRe       = regexp.MustCompile(`\b(\d{1,2}:\d{2})\b`)
	meridiemRe    = regexp.MustCompile(`\b(\d{1,2})\s*(am|pm)\b`)
	tomorrowRe    = regexp.MustCompile(`(?i)\btomorrow\b`)
	todayRe       = regexp.MustCompile(`(?i)\btoday\b`)
	groupSplitRe  = regexp.MustCompile(`(?i)\bgroups?\b`)
	connectorRe   = regexp.MustCompile(`(?i)\b(?:on|at|today|tomorrow)\b`)
	actionVerbRe  = regexp.MustCompile(`(?i)\b(?:post|schedule|publish|share)\b`)
	meridiemCutRe = regexp.MustCompile(`(?i)\b\d{1,2}\s*(?:am|pm)\b`)
	spaceRe       = regexp.MustCompile(`\s+`)

	// A run of platform aliases joined by "and"/"&" is consumed as one
	// unit, so "on FB and IG" leaves no stray connector in the idea.
	aliasAlt       = `(?:fb|facebook|ig|insta|instagram|linkedin|li)`
	platformListRe = regexp.MustCompile(`(?i)\b` + aliasAlt + `\b(?:\s+(?:and|&)\s+` + aliasAlt + `\b)*`)

	// Leading "key:" means the prompt is templated, not a sentence.
	templateKeyRe = regexp.MustCompile(`(?i)^\s*(?:date|time|platforms|idea|groups|caption|hashtags|image_url)\s*:`)
)

// ParseSentence extracts a draft from a single free-text sentence, e.g.
// "Post 20% off for new subscribers on FB and IG tomorrow 4pm #sale".
// Extraction is order-sensitive: URL, hashtags, platforms, date, time,
// groups, and the idea is whatever text remains after stripping the rest.
// now supplies the calendar date for the "today"/"tomorrow" literals.
func ParseSentence(text string, now time.Time) (models.Draft, error) {
	raw := strings.TrimSpace(text)
	var d models.Draft

	// Multi-line or "key: value" input belongs to the template grammar.
	if strings.Contains(raw, "\n") || templateKeyRe.MatchString(raw) {
		return models.Draft{}, &ExtractionError{
			Field:   "idea",
			Message: "structured input, not a sentence",
		}
	}

	// 1) image_url: first URL-like token, trailing punctuation stripped
	if m := urlRe.FindString(raw); m != "" {
		d.ImageURL = strings.TrimRight(m, ".,)")
		raw = strings.TrimSpace(strings.Replace(raw, m, "", 1))
	}

	// 2) hashtags, in order of appearance
	if tags := hashtagRe.FindAllString(raw, -1); len(tags) > 0 {
		d.Hashtags = strings.Join(tags, " ")
		raw = strings.TrimSpace(hashtagRe.ReplaceAllString(raw, ""))
	}

	// 3) platforms: alias words, de-duplicated, appearance order
	var platforms []string
	for _, token := range wordRe.FindAllString(strings.ToLower(raw), -1) {
		if code, ok := platformAliases[token]; ok && !contains(platforms, code) {
			platforms = append(platforms, code)
		}
	}
	d.Platforms = strings.Join(platforms, ", ")

	// 4) date: tomorrow/today literals win over an explicit YYYY-MM-DD
	switch {
	case tomorrowRe.MatchString(raw):
		d.Date = now.AddDate(0, 0, 1).Format("2006-01-02")
	case todayRe.MatchString(raw):
		d.Date = now.Format("2006-01-02")
	default:
		d.Date = isoDateRe.FindString(raw)
	}

	// 5) time: explicit H:MM, else "4pm" style meridiem
	if t := clockRe.FindString(raw); t != "" {
		d.Time = t
	} else if m := meridiemRe.FindStringSubmatch(strings.ToLower(raw)); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if m[2] == "pm" && hour != 12 {
			hour += 12
		}
		if m[2] == "am" && hour == 12 {
			hour = 0
		}
		d.Time = fmt.Sprintf("%02d:00", hour)
	}

	// 6) groups: text after "group(s)", cut at the next connector word
	if parts := groupSplitRe.Split(raw, 2); len(parts) == 2 {
		groupText := strings.Trim(parts[1], " :.-")
		groupText = strings.TrimSpace(connectorRe.Split(groupText, 2)[0])
		d.Groups = groupText
	}

	// 7) idea: the sentence minus everything consumed above
	cleaned := raw
	cleaned = actionVerbRe.ReplaceAllString(cleaned, "")
	cleaned = connectorRe.ReplaceAllString(cleaned, "")
	cleaned = isoDateRe.ReplaceAllString(cleaned, "")
	cleaned = clockRe.ReplaceAllString(cleaned, "")
	cleaned = meridiemCutRe.ReplaceAllString(cleaned, "")
	cleaned = platformListRe.ReplaceAllString(cleaned, "")
	cleaned = groupSplitRe.Split(cleaned, 2)[0]
	cleaned = spaceRe.ReplaceAllString(cleaned, " ")
	d.Idea = strings.Trim(cleaned, " :-")

	if d.Idea == "" {
		return models.Draft{}, &ExtractionError{
			Field:   "idea",
			Message: "couldn't detect the idea. Example: 'Post 20% off on FB tomorrow 4pm'",
		}
	}
	if d.Platforms == "" {
		return models.Draft{}, &ExtractionError{
			Field:   "platforms",
			Message: "couldn't detect platforms. Mention FB/IG/LinkedIn in the sentence.",
		}
	}
	if err := validateFormats(d); err != nil {
		return models.Draft{}, err
	}

	return d, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
