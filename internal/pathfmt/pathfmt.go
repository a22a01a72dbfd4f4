// Package pathfmt renders file path templates such as
// "{year}/{month:02}/{Weekday}-{day:02}" against a date.
package pathfmt

import (
	"strconv"
	"strings"
	"time"

	"github.com/aidanlsb/journey/internal/locale"
	"github.com/aidanlsb/journey/internal/paths"
)

type placeholder func(d time.Time, prof *locale.Profile) string

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// placeholders maps the text between the braces to its renderer.
var placeholders = map[string]placeholder{
	"year":     func(d time.Time, _ *locale.Profile) string { return strconv.Itoa(d.Year()) },
	"month":    func(d time.Time, _ *locale.Profile) string { return strconv.Itoa(int(d.Month())) },
	"month:02": func(d time.Time, _ *locale.Profile) string { return pad2(int(d.Month())) },
	"day":      func(d time.Time, _ *locale.Profile) string { return strconv.Itoa(d.Day()) },
	"day:02":   func(d time.Time, _ *locale.Profile) string { return pad2(d.Day()) },
	"date":     func(d time.Time, _ *locale.Profile) string { return strconv.Itoa(d.Day()) },
	"date:02":  func(d time.Time, _ *locale.Profile) string { return pad2(d.Day()) },

	"Weekday":       func(d time.Time, p *locale.Profile) string { return p.WeekdayName(d.Weekday(), false) },
	"weekday":       func(d time.Time, p *locale.Profile) string { return p.LowerWeekdayName(d.Weekday(), false) },
	"Weekday_short": func(d time.Time, p *locale.Profile) string { return p.WeekdayName(d.Weekday(), true) },
	"weekday_short": func(d time.Time, p *locale.Profile) string { return p.LowerWeekdayName(d.Weekday(), true) },

	"Month":       func(d time.Time, p *locale.Profile) string { return p.MonthName(d.Month(), false) },
	"month_name":  func(d time.Time, p *locale.Profile) string { return p.LowerMonthName(d.Month(), false) },
	"Month_short": func(d time.Time, p *locale.Profile) string { return p.MonthName(d.Month(), true) },
	"month_short": func(d time.Time, p *locale.Profile) string { return p.LowerMonthName(d.Month(), true) },
}

// legacy placeholders accept both {X} and {{X}}.
var legacy = map[string]placeholder{
	"YY": func(d time.Time, _ *locale.Profile) string { return pad2(d.Year() % 100) },
	"MM": func(d time.Time, _ *locale.Profile) string { return pad2(int(d.Month())) },
}

// Render substitutes every recognized placeholder in tmpl in a single
// left-to-right scan. Unrecognized brace sequences are copied unchanged.
func Render(tmpl string, d time.Time, prof *locale.Profile) string {
	if prof == nil {
		prof = locale.Default()
	}

	var b strings.Builder
	b.Grow(len(tmpl) + 16)
	for i := 0; i < len(tmpl); {
		if tmpl[i] != '{' {
			next := strings.IndexByte(tmpl[i:], '{')
			if next < 0 {
				b.WriteString(tmpl[i:])
				break
			}
			b.WriteString(tmpl[i : i+next])
			i += next
			continue
		}
		if out, width, ok := expandAt(tmpl[i:], d, prof); ok {
			b.WriteString(out)
			i += width
			continue
		}
		b.WriteByte('{')
		i++
	}
	return b.String()
}

// expandAt tries to read a placeholder at the start of s, which begins with '{'.
func expandAt(s string, d time.Time, prof *locale.Profile) (string, int, bool) {
	if strings.HasPrefix(s, "{{") {
		if end := strings.Index(s, "}}"); end > 2 {
			if fn, ok := legacy[s[2:end]]; ok {
				return fn(d, prof), end + 2, true
			}
		}
	}
	end := strings.IndexByte(s, '}')
	if end < 0 {
		return "", 0, false
	}
	name := s[1:end]
	if fn, ok := placeholders[name]; ok {
		return fn(d, prof), end + 1, true
	}
	if fn, ok := legacy[name]; ok {
		return fn(d, prof), end + 1, true
	}
	return "", 0, false
}

// DefaultFileName is used when no path template is configured.
func DefaultFileName(d time.Time) string {
	return d.Format("2006-01-02") + ".md"
}

// NotePath renders an optional template into a vault-relative markdown path.
// A nil or blank template yields the ISO file name at the vault root.
func NotePath(tmpl *string, d time.Time, prof *locale.Profile) string {
	if tmpl == nil || strings.TrimSpace(*tmpl) == "" {
		return DefaultFileName(d)
	}
	return paths.EnsureMarkdownExt(paths.NormalizeRelPath(Render(*tmpl, d, prof)))
}
