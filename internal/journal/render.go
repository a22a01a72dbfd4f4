package journal

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aidanlsb/journey/internal/dates"
	"github.com/aidanlsb/journey/internal/locale"
)

// ListType selects how note lines are written.
type ListType string

const (
	ListBullet ListType = "bullet"
	ListTable  ListType = "table"
)

// Entry is one note line.
type Entry struct {
	Time    dates.TimeOfDay
	Content string
}

// Format controls line rendering.
type Format struct {
	ListType ListType
	// TableHeader labels the header row; empty labels fall back to English.
	TableHeader locale.TableHeader
	// ShowTableHeader requests a header row in table mode.
	ShowTableHeader bool
}

func (f Format) isTable() bool { return f.ListType == ListTable }

func (f Format) headerLabels() locale.TableHeader {
	h := f.TableHeader
	if h.Time == "" {
		h.Time = "Time"
	}
	if h.Content == "" {
		h.Content = "Content"
	}
	return h
}

// HeaderRows returns the table header and separator rows.
func (f Format) HeaderRows() []string {
	h := f.headerLabels()
	return []string{
		fmt.Sprintf("| %s | %s |", escapeCell(h.Time), escapeCell(h.Content)),
		"|------|---------|",
	}
}

// RenderEntry renders a single note line.
func (f Format) RenderEntry(e Entry) string {
	if f.isTable() {
		return fmt.Sprintf("| %s | %s |", e.Time, escapeCell(e.Content))
	}
	return fmt.Sprintf("- %s %s", e.Time, e.Content)
}

// block is what gets inserted into s for e: the entry line, preceded by a
// header row pair when one is requested and s has no table header yet.
func (f Format) block(s *Section, e Entry) []string {
	line := f.RenderEntry(e)
	if f.isTable() && f.ShowTableHeader && !hasTableHeader(s.Lines) {
		return append(f.HeaderRows(), line)
	}
	return []string{line}
}

// NoteBlock is the text a template's {note} placeholder receives.
func (f Format) NoteBlock(e Entry) string {
	return strings.Join(f.block(&Section{}, e), "\n")
}

var (
	separatorRow = regexp.MustCompile(`^\|(\s*:?-+:?\s*\|)+\s*$`)
	bulletEntry  = regexp.MustCompile(`^[-*]\s+(\d{2}:\d{2}:\d{2})\s+(.*)$`)
	legacyEntry  = regexp.MustCompile(`^[-*]\s+\[([^\]]+)\]\s*(.*)$`)
	tableEntry   = regexp.MustCompile(`^\|\s*(\d{2}:\d{2}:\d{2})\s*\|(.*)\|\s*$`)
)

func hasTableHeader(lines []string) bool {
	for _, l := range lines {
		if separatorRow.MatchString(strings.TrimSpace(l)) {
			return true
		}
	}
	return false
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func unescapeCell(s string) string {
	return strings.ReplaceAll(s, `\|`, "|")
}

// ListedEntry is a note line recognized in an existing document.
type ListedEntry struct {
	// Stamp is the time column, or the bracketed timestamp of legacy lines.
	Stamp   string `json:"time"`
	Content string `json:"content"`
	Section string `json:"section,omitempty"`
	Line    string `json:"-"`
}

// Entries returns the note lines of every section in document order.
// Table header and separator rows are never entries.
func (d *Document) Entries() []ListedEntry {
	var out []ListedEntry
	for _, s := range d.Sections {
		for _, line := range s.Lines {
			if e, ok := parseEntryLine(line); ok {
				e.Section = s.Title
				out = append(out, e)
			}
		}
	}
	return out
}

func parseEntryLine(line string) (ListedEntry, bool) {
	t := strings.TrimSpace(line)
	if m := bulletEntry.FindStringSubmatch(t); m != nil {
		return ListedEntry{Stamp: m[1], Content: m[2], Line: line}, true
	}
	if m := legacyEntry.FindStringSubmatch(t); m != nil {
		return ListedEntry{Stamp: m[1], Content: m[2], Line: line}, true
	}
	if m := tableEntry.FindStringSubmatch(t); m != nil {
		return ListedEntry{Stamp: m[1], Content: unescapeCell(strings.TrimSpace(m[2])), Line: line}, true
	}
	return ListedEntry{}, false
}

// RenderList renders entries for display in the configured list style.
// In table mode with a header requested the header appears once.
func RenderList(entries []ListedEntry, f Format) []string {
	if len(entries) == 0 {
		return nil
	}
	var out []string
	if f.isTable() && f.ShowTableHeader {
		out = append(out, f.HeaderRows()...)
	}
	for _, e := range entries {
		if f.isTable() {
			out = append(out, fmt.Sprintf("| %s | %s |", e.Stamp, escapeCell(e.Content)))
		} else {
			out = append(out, fmt.Sprintf("- %s %s", e.Stamp, e.Content))
		}
	}
	return out
}
