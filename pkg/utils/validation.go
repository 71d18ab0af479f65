package utils

import (
	"regexp"
	"time"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneStrip   = regexp.MustCompile(`[\s\-()]`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{9,14}$`)
)

// ValidEmail reports whether s looks like a local@domain.tld address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPhone strips spaces, dashes and parentheses, then requires an
// optional leading + followed by 10-15 digits with a nonzero first digit.
func ValidPhone(s string) bool {
	cleaned := phoneStrip.ReplaceAllString(s, "")
	return phonePattern.MatchString(cleaned)
}

// ParseBookingDate parses a YYYY-MM-DD date string.
func ParseBookingDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// DateInPast reports whether d falls strictly before today's date. The
// comparison uses now's calendar date rebuilt in d's location, so a
// same-day booking is accepted regardless of the server's timezone offset.
func DateInPast(d time.Time, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, d.Location())
	return d.Before(today)
}
