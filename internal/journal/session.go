package journal

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aidanlsb/journey/internal/atomicfile"
	"github.com/aidanlsb/journey/internal/dates"
	"github.com/aidanlsb/journey/internal/locale"
	"github.com/aidanlsb/journey/internal/phrases"
	"github.com/aidanlsb/journey/internal/template"
)

// ErrEmptyNote is returned for notes with no content.
var ErrEmptyNote = errors.New("note is empty")

// ErrMultilineNote is returned for notes that span several lines.
var ErrMultilineNote = errors.New("note must be a single line")

// WriteError reports a filesystem failure while creating or writing a document.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// BatchError reports the input line that stopped a batch. Line is 1-based.
type BatchError struct {
	Line int
	Err  error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }

// Options configure how notes are composed into a document.
type Options struct {
	Format  Format
	Locale  *locale.Profile
	Phrases *phrases.Expander
	// Section is the default target section; empty means end of document.
	Section string
	// Template is the loaded template content; empty selects the built-in layout.
	Template string
	// DatePattern optionally formats template date values.
	DatePattern string
	Logger      *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Session composes notes into one document file. The file is read once when
// the session opens and written once by Flush.
type Session struct {
	path  string
	opts  Options
	doc   *Document
	dirty bool
	added int
	last  Entry
}

// Open loads the document at path, if it exists, for appending.
func Open(path string, opts Options) (*Session, error) {
	if opts.Locale == nil {
		opts.Locale = locale.Default()
	}
	s := &Session{path: path, opts: opts}
	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		s.doc = Parse(string(content))
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, err
	}
	return s, nil
}

// Path returns the document path.
func (s *Session) Path() string { return s.path }

// Added reports how many notes were added.
func (s *Session) Added() int { return s.added }

// Last returns the most recently added entry, with phrases expanded.
func (s *Session) Last() Entry { return s.last }

// Document returns the in-memory document, or nil before the first note of
// a new file.
func (s *Session) Document() *Document { return s.doc }

// Add expands phrases in content and inserts it at moment m under section
// (or the configured default section when section is empty). The expanded
// note must be a single non-empty line.
func (s *Session) Add(m dates.Moment, content, section string) error {
	content = strings.TrimSpace(s.opts.Phrases.Expand(strings.TrimSpace(content)))
	if content == "" {
		return ErrEmptyNote
	}
	if strings.ContainsAny(content, "\r\n") {
		return ErrMultilineNote
	}
	if section == "" {
		section = s.opts.Section
	}

	entry := Entry{Time: dates.TimeOfDayFrom(m.Time()), Content: content}
	log := s.opts.logger()

	if s.doc == nil {
		s.doc = Parse(s.initialContent(m, entry, section))
		log.Debug("created document", "path", s.path, "date", m.DateString())
	} else if s.doc.Insert(entry, section, s.opts.Format) {
		log.Debug("created section", "path", s.path, "section", section)
	}

	s.dirty = true
	s.added++
	s.last = entry
	return nil
}

// initialContent renders a new document holding entry.
func (s *Session) initialContent(m dates.Moment, entry Entry, section string) string {
	note := s.opts.Format.NoteBlock(entry)
	if s.opts.Template != "" {
		vars := template.NewVariables(m, s.opts.Locale, s.opts.DatePattern, section, note)
		content := template.Apply(s.opts.Template, vars)
		return ensureTrailingNewline(withFrontmatterDate(content, m.DateString()))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\ndate: %s\n%s\n\n", frontmatterMarker, m.DateString(), frontmatterMarker)
	if strings.TrimSpace(section) != "" {
		b.WriteString(HeaderLine(section))
		b.WriteString("\n\n")
	}
	b.WriteString(note)
	b.WriteString("\n")
	return b.String()
}

func ensureTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// Flush writes the document if anything was added, creating parent
// directories first.
func (s *Session) Flush() error {
	if !s.dirty || s.doc == nil {
		return nil
	}
	if err := atomicfile.WriteFile(s.path, []byte(s.doc.String())); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	s.dirty = false
	s.opts.logger().Debug("wrote document", "path", s.path, "notes", s.added)
	return nil
}

// AddLines adds one note per non-blank line. Lines are trimmed. Processing
// stops at the first failing line; notes accepted before it are still
// flushed and the failure is returned as a *BatchError.
func (s *Session) AddLines(m dates.Moment, lines []string, section string) (int, error) {
	before := s.added
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if err := s.Add(m, line, section); err != nil {
			batchErr := &BatchError{Line: i + 1, Err: err}
			if ferr := s.Flush(); ferr != nil {
				return s.added - before, errors.Join(batchErr, ferr)
			}
			return s.added - before, batchErr
		}
	}
	if err := s.Flush(); err != nil {
		return s.added - before, err
	}
	return s.added - before, nil
}

// Read loads the document at path. A missing file yields (nil, nil).
func Read(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return Parse(string(content)), nil
}
