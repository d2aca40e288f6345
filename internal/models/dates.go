package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// instantLayouts are tried in order by ParseInstant. Rows written by the
// content pipeline use RFC 3339; imported rows sometimes carry a naive
// ISO timestamp or a bare date, both assumed UTC.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseInstant parses a publish/update timestamp. A trailing "Z" is treated
// as the UTC offset, a timestamp with no offset is assumed UTC, and an
// all-digit string is read as unix seconds. On failure the caller decides
// the fallback: HTML display uses the literal "Recently" while feeds and
// sitemaps substitute the current time.
func ParseInstant(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}

	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

// FormatRFC822 renders an instant for RSS pubDate/lastBuildDate,
// e.g. "Mon, 02 Jan 2006 15:04:05 +0000".
func FormatRFC822(t time.Time) string {
	return t.UTC().Format("Mon, 02 Jan 2006 15:04:05 -0700")
}

// FormatISO8601 renders an instant with an explicit offset ("+00:00" at
// UTC), the form Atom feeds and news sitemaps use.
func FormatISO8601(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05-07:00")
}

// FormatDay renders the sitemap lastmod form, "2006-01-02".
func FormatDay(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// FormatLongDate renders the HTML display form, "January 02, 2006".
func FormatLongDate(t time.Time) string {
	return t.UTC().Format("January 02, 2006")
}
