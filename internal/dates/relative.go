package dates

import (
	"strings"
	"time"

	"github.com/aidanlsb/journey/internal/locale"
)

// relativeDateOffsets maps keywords to RelativeDate offsets.
var relativeDateOffsets = map[string]int{
	"today":     0,
	"yesterday": 1,
	"tomorrow":  -1,
}

// RelativeDateResolution is a relative keyword resolved to a calendar date.
type RelativeDateResolution struct {
	Keyword string
	Offset  int
	Date    time.Time
}

// NormalizeRelativeDateKeyword normalizes and validates a relative date keyword.
func NormalizeRelativeDateKeyword(value string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if _, ok := relativeDateOffsets[normalized]; !ok {
		return "", false
	}
	return normalized, true
}

// ResolveRelativeDateKeyword resolves today, yesterday or tomorrow against now.
func ResolveRelativeDateKeyword(value string, now time.Time) (RelativeDateResolution, bool) {
	keyword, ok := NormalizeRelativeDateKeyword(value)
	if !ok {
		return RelativeDateResolution{}, false
	}
	offset := relativeDateOffsets[keyword]
	return RelativeDateResolution{
		Keyword: keyword,
		Offset:  offset,
		Date:    RelativeDate(startOfDay(now), offset),
	}, true
}

// RelativeDate moves base back by offset days. Positive offsets are in the
// past, negative ones in the future.
func RelativeDate(base time.Time, offset int) time.Time {
	return base.AddDate(0, 0, -offset)
}

// ResolveDateArg interprets a CLI date argument. Relative keywords are
// resolved against now; anything else goes through ParseDate.
func ResolveDateArg(arg string, now time.Time, prof *locale.Profile, override DateOverride) (time.Time, error) {
	if strings.TrimSpace(arg) == "" {
		return startOfDay(now), nil
	}
	if res, ok := ResolveRelativeDateKeyword(arg, now); ok {
		return res.Date, nil
	}
	return ParseDate(arg, prof, override)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
