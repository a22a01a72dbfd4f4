// Package template provides template loading and variable substitution for
// new journal documents.
//
// Variables may be written with single or double braces ({date} or
// {{date}}). A lexer pass turns both spellings into the same token before
// substitution, so every variable is handled exactly once.
package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aidanlsb/journey/internal/dates"
	"github.com/aidanlsb/journey/internal/locale"
	"github.com/aidanlsb/journey/internal/paths"
)

// ReadError reports a template file that is missing or unreadable.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read template file %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Variables holds the values available to a template.
type Variables struct {
	// Date is the recorded date, also exposed as {today}.
	Date      string
	Time      string
	Datetime  string
	Created   string
	Yesterday string
	Tomorrow  string
	// Weekday is the full weekday name; WeekdayShort backs {Weekday}.
	Weekday      string
	WeekdayShort string
	// SectionHeader backs {section_header} and the legacy {section_name}.
	SectionHeader string
	// Note is the rendered note block.
	Note string

	// isoDates back date variables inside the frontmatter block, which always
	// carries YYYY-MM-DD whatever the display pattern.
	isoDates map[string]string
}

// NewVariables derives template values from the moment being recorded.
// datePattern is an optional display pattern for date values; empty means ISO.
func NewVariables(m dates.Moment, prof *locale.Profile, datePattern, sectionHeader, note string) *Variables {
	if prof == nil {
		prof = locale.Default()
	}
	t := m.Time()
	full := t.Format(dates.DatetimeSecondsLayout)
	return &Variables{
		Date:          dates.FormatDate(t, datePattern, prof),
		Time:          dates.FormatTimeOfDay(m),
		Datetime:      full,
		Created:       full,
		Yesterday:     dates.FormatDate(dates.RelativeDate(t, 1), datePattern, prof),
		Tomorrow:      dates.FormatDate(dates.RelativeDate(t, -1), datePattern, prof),
		Weekday:       prof.WeekdayName(t.Weekday(), false),
		WeekdayShort:  prof.WeekdayName(t.Weekday(), true),
		SectionHeader: sectionHeader,
		Note:          note,
		isoDates: map[string]string{
			"date":      t.Format(dates.DateLayout),
			"today":     t.Format(dates.DateLayout),
			"yesterday": dates.RelativeDate(t, 1).Format(dates.DateLayout),
			"tomorrow":  dates.RelativeDate(t, -1).Format(dates.DateLayout),
		},
	}
}

func (v *Variables) lookup(name string) (string, bool) {
	switch name {
	case "date", "today":
		return v.Date, true
	case "time":
		return v.Time, true
	case "datetime":
		return v.Datetime, true
	case "created":
		return v.Created, true
	case "yesterday":
		return v.Yesterday, true
	case "tomorrow":
		return v.Tomorrow, true
	case "weekday":
		return v.Weekday, true
	case "Weekday":
		return v.WeekdayShort, true
	case "section_header", "section_name":
		return v.SectionHeader, true
	}
	return "", false
}

// Load reads a template file. Relative paths are resolved against the vault
// root; "~" and $VAR are expanded first.
func Load(vaultPath, templateFile string) (string, error) {
	if strings.TrimSpace(templateFile) == "" {
		return "", nil
	}
	p, err := paths.ExpandHome(templateFile)
	if err != nil {
		return "", &ReadError{Path: templateFile, Err: err}
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(vaultPath, p)
	}
	content, err := os.ReadFile(p)
	if err != nil {
		return "", &ReadError{Path: templateFile, Err: err}
	}
	return string(content), nil
}

// Apply substitutes template variables in content. Unknown variables keep
// their original spelling. The first {note} receives vars.Note and later
// ones render empty; without a {note} the note is appended at the end.
// Escaped braces (\{{ or \{) are emitted literally. Date variables inside
// a leading frontmatter block always render as YYYY-MM-DD.
func Apply(content string, vars *Variables) string {
	if vars == nil {
		return content
	}

	fmEnd := frontmatterEnd(content)
	var b strings.Builder
	noted := false
	offset := 0
	for _, tok := range lex(content) {
		start := offset
		offset += len(tok.text)
		if iso, ok := vars.isoDates[tok.name]; ok && start < fmEnd {
			b.WriteString(iso)
			continue
		}
		switch {
		case tok.name == "":
			b.WriteString(tok.text)
		case tok.name == "note":
			if !noted {
				b.WriteString(vars.Note)
				noted = true
			}
		default:
			if v, ok := vars.lookup(tok.name); ok {
				b.WriteString(v)
			} else {
				b.WriteString(tok.text)
			}
		}
	}

	if !noted && vars.Note != "" {
		if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
			b.WriteByte('\n')
		}
		b.WriteString(vars.Note)
	}
	return b.String()
}

// frontmatterEnd returns the offset of the closing "---" line of a leading
// frontmatter block, or -1.
func frontmatterEnd(content string) int {
	if !strings.HasPrefix(content, "---\n") && !strings.HasPrefix(content, "---\r\n") {
		return -1
	}
	offset := strings.Index(content, "\n") + 1
	for offset < len(content) {
		line := content[offset:]
		next := strings.Index(line, "\n")
		if next >= 0 {
			line = line[:next]
		}
		if strings.TrimSpace(line) == "---" {
			return offset
		}
		if next < 0 {
			break
		}
		offset += next + 1
	}
	return -1
}
