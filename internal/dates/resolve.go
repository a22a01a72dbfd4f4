package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/aidanlsb/journey/internal/locale"
)

// TimeOverride forces time parsing to a single clock family.
type TimeOverride int

const (
	TimeOverrideNone TimeOverride = iota
	Forced12Hour
	Forced24Hour
)

func (o TimeOverride) String() string {
	switch o {
	case Forced12Hour:
		return "12h"
	case Forced24Hour:
		return "24h"
	default:
		return ""
	}
}

// ParseTimeOverride maps a configured or flag value to a TimeOverride.
// The empty string means no override.
func ParseTimeOverride(value string) (TimeOverride, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return TimeOverrideNone, nil
	case "12h":
		return Forced12Hour, nil
	case "24h":
		return Forced24Hour, nil
	default:
		return TimeOverrideNone, fmt.Errorf("%w: %q (use '12h' or '24h')", ErrInvalidFormatOverride, value)
	}
}

// DateOverride optionally forces date parsing to one pattern.
// The zero value means no override.
type DateOverride struct {
	pattern string
	forced  bool
}

// ForceDatePattern returns an override that only accepts pattern.
func ForceDatePattern(pattern string) DateOverride {
	return DateOverride{pattern: pattern, forced: true}
}

// DateOverrideFrom converts an optional configured pattern.
func DateOverrideFrom(pattern *string) DateOverride {
	if pattern == nil || strings.TrimSpace(*pattern) == "" {
		return DateOverride{}
	}
	return ForceDatePattern(strings.TrimSpace(*pattern))
}

// Pattern returns the forced pattern and whether one is set.
func (o DateOverride) Pattern() (string, bool) {
	return o.pattern, o.forced
}

var (
	builtin24Hour = []string{"HH:mm", "HH:mm:ss"}
	builtin12Hour = []string{"h:mm a", "h:mm:ss a", "h:mma", "h:mm:ssa"}
)

// ParseDate parses text using the forced pattern if there is one, otherwise
// the locale's patterns in order. The first structurally valid date wins.
func ParseDate(text string, prof *locale.Profile, override DateOverride) (time.Time, error) {
	if prof == nil {
		prof = locale.Default()
	}
	input := strings.TrimSpace(text)

	if forced, ok := override.Pattern(); ok {
		perr := &DateParseError{Input: text, Locale: prof.Key, Attempted: []string{forced}, Forced: true}
		p, err := compilePattern(forced)
		if err != nil {
			perr.Err = err
			return time.Time{}, perr
		}
		if d, ok := dateFromPattern(p, input, prof); ok {
			return d, nil
		}
		return time.Time{}, perr
	}

	for _, src := range prof.DatePatterns {
		p, err := compilePattern(src)
		if err != nil {
			continue
		}
		if d, ok := dateFromPattern(p, input, prof); ok {
			return d, nil
		}
	}
	return time.Time{}, &DateParseError{
		Input:     text,
		Locale:    prof.Key,
		Attempted: append([]string(nil), prof.DatePatterns...),
	}
}

func dateFromPattern(p pattern, input string, prof *locale.Profile) (time.Time, bool) {
	f, ok := p.match(input, prof)
	if !ok || !f.hasYear || !f.hasMonth || !f.hasDay {
		return time.Time{}, false
	}
	return validDate(f.year, f.month, f.day)
}

// validDate rejects combinations time.Date would silently normalize,
// such as February 30.
func validDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// ParseTime parses a time of day.
//
// With Forced24Hour only bare HH:MM[:SS] is accepted; with Forced12Hour only
// inputs carrying an AM/PM marker are. Without an override the locale's
// 24-hour patterns are tried before its 12-hour ones.
func ParseTime(text string, prof *locale.Profile, override TimeOverride) (TimeOfDay, error) {
	if prof == nil {
		prof = locale.Default()
	}
	input := strings.TrimSpace(text)

	switch override {
	case Forced24Hour:
		if tod, ok := firstTimeMatch(builtin24Hour, input, prof); ok {
			return tod, nil
		}
		if _, ok := firstTimeMatch(builtin12Hour, input, prof); ok {
			return TimeOfDay{}, &FormatOverrideMismatchError{Input: text, Forced: override}
		}
		return TimeOfDay{}, &TimeParseError{Input: text, Locale: prof.Key, Override: override}
	case Forced12Hour:
		if tod, ok := firstTimeMatch(builtin12Hour, input, prof); ok {
			return tod, nil
		}
		if _, ok := firstTimeMatch(builtin24Hour, input, prof); ok {
			return TimeOfDay{}, &FormatOverrideMismatchError{Input: text, Forced: override}
		}
		return TimeOfDay{}, &TimeParseError{Input: text, Locale: prof.Key, Override: override}
	}

	var h24, h12 []pattern
	for _, src := range prof.TimePatterns {
		p, err := compilePattern(src)
		if err != nil {
			continue
		}
		if p.isTwelveHour() {
			h12 = append(h12, p)
		} else {
			h24 = append(h24, p)
		}
	}
	for _, p := range append(h24, h12...) {
		if tod, ok := timeFromPattern(p, input, prof); ok {
			return tod, nil
		}
	}
	return TimeOfDay{}, &TimeParseError{Input: text, Locale: prof.Key}
}

func firstTimeMatch(sources []string, input string, prof *locale.Profile) (TimeOfDay, bool) {
	for _, src := range sources {
		p, err := compilePattern(src)
		if err != nil {
			continue
		}
		if tod, ok := timeFromPattern(p, input, prof); ok {
			return tod, true
		}
	}
	return TimeOfDay{}, false
}

func timeFromPattern(p pattern, input string, prof *locale.Profile) (TimeOfDay, bool) {
	f, ok := p.match(input, prof)
	if !ok || !f.hasHour || !f.hasMinute {
		return TimeOfDay{}, false
	}
	return TimeOfDay{Hour: f.hour, Minute: f.minute, Second: f.second}, true
}

// FormatDate renders t with a custom pattern, or as YYYY-MM-DD when pattern
// is empty. A pattern that fails to compile also falls back to ISO.
func FormatDate(t time.Time, pattern string, prof *locale.Profile) string {
	if strings.TrimSpace(pattern) == "" {
		return t.Format(DateLayout)
	}
	if prof == nil {
		prof = locale.Default()
	}
	p, err := compilePattern(pattern)
	if err != nil {
		return t.Format(DateLayout)
	}
	return p.render(t, prof)
}

// ValidatePattern reports whether pattern compiles.
func ValidatePattern(pattern string) error {
	_, err := compilePattern(pattern)
	return err
}
