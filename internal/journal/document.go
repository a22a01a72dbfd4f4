// Package journal reads, composes and writes journal documents: a YAML
// frontmatter block followed by heading-delimited sections of timestamped
// note lines.
package journal

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Section is a heading and the lines up to the next heading. The leading
// region before any heading is a section with an empty Header.
type Section struct {
	Header string
	Title  string
	Level  int
	Lines  []string
}

// Document is an in-memory journal file. Lines outside the regions a note is
// inserted into are kept byte for byte.
type Document struct {
	Frontmatter []string
	Date        string
	Sections    []*Section

	trailingNewline bool
}

// Parse splits content into frontmatter and sections. Headings are found
// with goldmark, so '#' lines inside code blocks are not section breaks.
func Parse(content string) *Document {
	doc := &Document{trailingNewline: strings.HasSuffix(content, "\n")}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	if content == "" {
		lines = nil
	}

	if end, ok := frontmatterBounds(lines); ok {
		doc.Frontmatter = append([]string(nil), lines[:end+1]...)
		doc.Date, _ = frontmatterDate(doc.Frontmatter)
		lines = lines[end+1:]
	}

	headings := findHeadings(lines)
	current := &Section{}
	doc.Sections = append(doc.Sections, current)
	for i, line := range lines {
		if level, ok := headings[i]; ok {
			current = &Section{Header: line, Title: headingTitle(line), Level: level}
			doc.Sections = append(doc.Sections, current)
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	return doc
}

// findHeadings maps body line indexes to heading levels.
func findHeadings(lines []string) map[int]int {
	out := make(map[int]int)
	if len(lines) == 0 {
		return out
	}
	source := []byte(strings.Join(lines, "\n"))
	lineStarts := []int{0}
	for i, c := range source {
		if c == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}

	root := goldmark.New().Parser().Parse(text.NewReader(source))
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Lines().Len() == 0 {
			continue
		}
		line := lineOf(lineStarts, heading.Lines().At(0).Start)
		out[line] = heading.Level
	}
	return out
}

func lineOf(lineStarts []int, offset int) int {
	lo, hi := 0, len(lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// headingTitle strips ATX markers from a heading line.
func headingTitle(line string) string {
	t := strings.TrimSpace(line)
	if !strings.HasPrefix(t, "#") {
		return t
	}
	t = strings.TrimLeft(t, "#")
	t = strings.TrimSpace(t)
	if i := strings.LastIndex(t, " #"); i >= 0 && strings.Trim(t[i+1:], "#") == "" {
		t = strings.TrimSpace(t[:i])
	} else if strings.Trim(t, "#") == "" {
		t = ""
	}
	return t
}

// HeaderLine returns the heading line written for a new section named
// target. Targets already spelled as headings are used verbatim.
func HeaderLine(target string) string {
	target = strings.TrimSpace(target)
	if strings.HasPrefix(target, "#") {
		return target
	}
	return "# " + target
}

// FindSection returns the first section whose heading matches target.
// A target starting with '#' must equal the whole heading line; otherwise
// it is compared with the heading text. Later duplicates are never matched.
func (d *Document) FindSection(target string) (*Section, bool) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, false
	}
	for _, s := range d.Sections {
		if s.Header == "" {
			continue
		}
		if strings.HasPrefix(target, "#") {
			if strings.TrimSpace(s.Header) == target {
				return s, true
			}
			continue
		}
		if s.Title == target {
			return s, true
		}
	}
	return nil, false
}

// lastContent is the index of the last non-blank line, or -1.
func (s *Section) lastContent() int {
	for i := len(s.Lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(s.Lines[i]) != "" {
			return i
		}
	}
	return -1
}

// insert places block after the section's last content line. An empty
// headed section takes the block right under its heading; an empty
// preamble takes it after any blank lines. It reports whether the block
// landed after every existing line of the section.
func (s *Section) insert(block []string) bool {
	at := s.lastContent() + 1
	if at == 0 && s.Header == "" {
		at = len(s.Lines)
	}
	atEnd := at == len(s.Lines)
	lines := make([]string, 0, len(s.Lines)+len(block))
	lines = append(lines, s.Lines[:at]...)
	lines = append(lines, block...)
	lines = append(lines, s.Lines[at:]...)
	s.Lines = lines
	return atEnd
}

// Insert adds the rendered entry under target. An empty target means the
// end of the document. A missing target section is created after all
// existing content. The returned flag reports section creation.
func (d *Document) Insert(e Entry, target string, f Format) bool {
	last := d.Sections[len(d.Sections)-1]

	if strings.TrimSpace(target) == "" {
		if last.insert(f.block(last, e)) {
			d.trailingNewline = true
		}
		return false
	}

	if s, ok := d.FindSection(target); ok {
		if s.insert(f.block(s, e)) && s == last {
			d.trailingNewline = true
		}
		return false
	}

	d.trailingNewline = true
	if n := len(last.Lines); n > 0 && strings.TrimSpace(last.Lines[n-1]) != "" {
		last.Lines = append(last.Lines, "")
	} else if n == 0 && last.Header == "" && len(d.Frontmatter) > 0 {
		last.Lines = append(last.Lines, "")
	}
	header := HeaderLine(target)
	s := &Section{Header: header, Title: headingTitle(header), Level: headingLevel(header)}
	s.Lines = f.block(s, e)
	d.Sections = append(d.Sections, s)
	return true
}

func headingLevel(line string) int {
	t := strings.TrimSpace(line)
	return len(t) - len(strings.TrimLeft(t, "#"))
}

// String renders the document.
func (d *Document) String() string {
	var lines []string
	lines = append(lines, d.Frontmatter...)
	for _, s := range d.Sections {
		if s.Header != "" {
			lines = append(lines, s.Header)
		}
		lines = append(lines, s.Lines...)
	}
	out := strings.Join(lines, "\n")
	if d.trailingNewline && len(lines) > 0 {
		out += "\n"
	}
	return out
}
