package dates

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormatOverride is returned when a time format override is neither
// "12h" nor "24h".
var ErrInvalidFormatOverride = errors.New("invalid time format override")

// DateParseError reports a date string that no candidate pattern accepted.
type DateParseError struct {
	Input     string
	Locale    string
	Attempted []string
	// Forced is set when a date format override was in effect.
	Forced bool
	// Err carries a pattern compilation failure, if any.
	Err error
}

func (e *DateParseError) Error() string {
	if e.Forced {
		pattern := ""
		if len(e.Attempted) > 0 {
			pattern = e.Attempted[0]
		}
		msg := fmt.Sprintf("could not parse date %q with format override %s", e.Input, pattern)
		if e.Err != nil {
			msg += ": " + e.Err.Error()
		}
		return msg
	}
	return fmt.Sprintf("could not parse date %q for locale %s (tried %s)",
		e.Input, e.Locale, strings.Join(e.Attempted, ", "))
}

func (e *DateParseError) Unwrap() error { return e.Err }

// TimeParseError reports a time string that no candidate pattern accepted.
type TimeParseError struct {
	Input    string
	Locale   string
	Override TimeOverride
}

func (e *TimeParseError) Error() string {
	if e.Override != TimeOverrideNone {
		return fmt.Sprintf("could not parse time %q with format override %s", e.Input, e.Override)
	}
	return fmt.Sprintf("could not parse time %q for locale %s", e.Input, e.Locale)
}

// FormatOverrideMismatchError reports input that belongs to the other clock
// family than the one forced, e.g. "2:30 PM" under a 24-hour override.
type FormatOverrideMismatchError struct {
	Input  string
	Forced TimeOverride
}

func (e *FormatOverrideMismatchError) Error() string {
	other := Forced12Hour
	if e.Forced == Forced12Hour {
		other = Forced24Hour
	}
	return fmt.Sprintf("time %q looks like %s but the format override is %s", e.Input, other, e.Forced)
}
