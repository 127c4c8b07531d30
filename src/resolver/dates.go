// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

import (
	"regexp"
	"strings"
	"time"
)

// dateFormats are tried in order against a cleaned date string.
// Registries disagree wildly on date rendering; this list covers the
// common variants seen across gTLD and ccTLD WHOIS output.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05.999999Z",
	"2006-01-02T15:04:05.999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"02-Jan-2006 15:04:05",
	"02-Jan-2006",
	"2006-Jan-02",
	"January 2 2006",
	"Jan 2 2006",
	"2006. 01. 02.",
}

var (
	parentheticalRe = regexp.MustCompile(`\s*\([^)]*\)`)
	trailingTZRe    = regexp.MustCompile(`\s+[A-Z]{2,5}(?:[+-]\d{1,2}(?::?\d{2})?)?$`)
	spacesRe        = regexp.MustCompile(`\s+`)
	dayFirstRe      = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})$`)
	dottedDateRe    = regexp.MustCompile(`^(\d{4})\.(\d{2})\.(\d{2})$`)
)

// normalizeDate converts a raw date substring from registration output
// into a timestamp. It strips parenthetical annotations and trailing
// timezone abbreviations, attempts a direct parse across known
// formats, and falls back to reordering day-first ("31-12-2025") and
// dotted ("2025.12.31") renderings.
//
// It never fails hard: unparseable input yields nil.
func normalizeDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	s = parentheticalRe.ReplaceAllString(s, "")
	s = trailingTZRe.ReplaceAllString(s, "")
	s = spacesRe.ReplaceAllString(strings.TrimSpace(s), " ")
	if s == "" {
		return nil
	}

	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}

	// "DD-MM-YYYY" → "MM/DD/YYYY". Day-first ordering dominates the
	// registries that use this rendering.
	if m := dayFirstRe.FindStringSubmatch(s); m != nil {
		if t, err := time.Parse("01/02/2006", m[2]+"/"+m[1]+"/"+m[3]); err == nil {
			t = t.UTC()
			return &t
		}
	}

	// "YYYY.MM.DD" → "YYYY-MM-DD".
	if m := dottedDateRe.FindStringSubmatch(s); m != nil {
		if t, err := time.Parse("2006-01-02", m[1]+"-"+m[2]+"-"+m[3]); err == nil {
			t = t.UTC()
			return &t
		}
	}

	return nil
}
