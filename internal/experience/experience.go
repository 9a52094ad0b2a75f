// Package experience aggregates employment intervals into years of experience.
package experience

import (
	"strings"
	"time"

	"github.com/spigell/jobfit/internal/model"
)

// dateLayouts are tried in order when parsing experience dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
	"2006/01",
	"01/2006",
	"01.2006",
	"02.01.2006",
	"2006",
}

// ParseDate parses the ISO-like date formats found in stored profiles.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Months returns the whole calendar months covered by a single interval,
// never negative. The second value is false when the start date is unparsable.
func Months(exp model.Experience, now time.Time) (int, bool) {
	start, ok := ParseDate(exp.StartDate)
	if !ok {
		return 0, false
	}

	end := now
	if !exp.IsCurrent {
		if parsed, ok := ParseDate(exp.EndDate); ok {
			end = parsed
		}
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		months = 0
	}
	return months, true
}

// TotalYears sums all intervals (overlaps count twice) and returns full years.
// Entries with an unparsable start date are skipped.
func TotalYears(experiences []model.Experience, now time.Time) int {
	total := 0
	for _, exp := range experiences {
		months, ok := Months(exp, now)
		if !ok {
			continue
		}
		total += months
	}
	return total / 12
}
