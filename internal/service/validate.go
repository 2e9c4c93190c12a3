package service

import (
	"regexp"
	"time"
)

// urlPattern matches the URL shape accepted for link fields.
var urlPattern = regexp.MustCompile(`^https?://\S+$`)

func validURL(raw string) bool {
	return urlPattern.MatchString(raw)
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseDate accepts the date shapes browser clients submit.
func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func contains(haystack []string, needle string) bool {
	for _, candidate := range haystack {
		if candidate == needle {
			return true
		}
	}
	return false
}
