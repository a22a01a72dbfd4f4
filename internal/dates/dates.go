// Package dates resolves locale-dependent date and time text into moments.
//
// Parsing is pattern driven: a locale.Profile supplies the candidate date and
// time patterns in priority order, and a DateOverride or TimeOverride narrows
// the candidates to exactly one family. Overrides never fall back.
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	DateLayout            = "2006-01-02"
	TimeLayout            = "15:04:05"
	DatetimeLayout        = "2006-01-02 15:04"
	DatetimeSecondsLayout = "2006-01-02 15:04:05"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDate checks if a string is a valid YYYY-MM-DD date.
func IsValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseISODate parses a YYYY-MM-DD date in the local zone.
func ParseISODate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !IsValidDate(s) {
		return time.Time{}, fmt.Errorf("invalid date: %q", s)
	}
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// Canonicalize rewrites a valid ISO date in its zero-padded form.
func Canonicalize(s string) (string, error) {
	t, err := ParseISODate(s)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}
