package shacl

import (
	"strings"
	"time"
)

// Offset-less layouts are read as UTC so that comparisons do not depend on
// the host time zone.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z0700",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// ParseDate parses the ISO 8601 date and date-time forms accepted for
// booking and prediction dates.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (c *shapeCheck) requiredDate(property string, s *string, missingKey, formatKey string) {
	if !present(s) {
		c.fail(property, nil, missingKey)
		return
	}
	if _, ok := ParseDate(*s); !ok {
		c.fail(property, *s, formatKey)
	}
}
