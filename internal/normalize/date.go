package normalize

import (
	"fmt"
	"strings"
	"time"
)

// ISO forms are unambiguous and accepted under every profile.
var isoLayouts = []string{"2006-01-02", "2006-01-02T15:04:05"}

// Ambiguous day/month ordering is resolved by the profile's date_order
// setting, never by guessing which interpretation parses.
var orderedLayouts = map[string][]string{
	"dmy": {"02.01.2006", "02.01.06", "02/01/2006", "02/01/06", "02-01-2006", "2 Jan 2006", "2 January 2006"},
	"mdy": {"01/02/2006", "01/02/06", "01-02-2006", "01.02.2006", "Jan 2, 2006", "January 2, 2006"},
	"ymd": {"2006/01/02", "2006.01.02"},
}

// ParseDate normalizes a statement date into a single calendar representation
// (midnight UTC, date precision).
func ParseDate(raw, order string) (time.Time, error) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, "\n", ""))
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateToDate(t), nil
		}
	}
	for _, layout := range orderedLayouts[order] {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateToDate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q (order %s)", raw, order)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
