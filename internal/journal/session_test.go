package journal

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidanlsb/journey/internal/dates"
	"github.com/aidanlsb/journey/internal/locale"
	"github.com/aidanlsb/journey/internal/phrases"
)

func moment(t *testing.T, date string, h, m, s int) dates.Moment {
	t.Helper()
	d, err := dates.ParseISODate(date)
	require.NoError(t, err)
	return dates.Combine(d, &dates.TimeOfDay{Hour: h, Minute: m, Second: s}, time.Now())
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestNewDocumentFromTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2025", "10", "24.md")
	s, err := Open(path, Options{
		Format:   bullets,
		Locale:   locale.Lookup("en"),
		Section:  "Work",
		Template: "# {section_header}\n{note}",
	})
	require.NoError(t, err)

	require.NoError(t, s.Add(moment(t, "2025-10-24", 14, 30, 0), "done", ""))
	require.NoError(t, s.Flush())

	got := readFile(t, path)
	assert.Equal(t, "---\ndate: 2025-10-24\n---\n\n# Work\n- 14:30:00 done\n", got)

	doc := Parse(got)
	assert.Equal(t, "2025-10-24", doc.Date)
}

func TestNewDocumentDefaultLayout(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.md")
	s, err := Open(plain, Options{Format: bullets})
	require.NoError(t, err)
	require.NoError(t, s.Add(moment(t, "2025-10-24", 14, 30, 0), "done", ""))
	require.NoError(t, s.Flush())
	assert.Equal(t, "---\ndate: 2025-10-24\n---\n\n- 14:30:00 done\n", readFile(t, plain))

	sectioned := filepath.Join(dir, "sectioned.md")
	s, err = Open(sectioned, Options{Format: bullets, Section: "Work"})
	require.NoError(t, err)
	m := moment(t, "2025-10-24", 14, 30, 0)
	require.NoError(t, s.Add(m, "one", ""))
	require.NoError(t, s.Add(m, "two", ""))
	require.NoError(t, s.Add(m, "three", "Personal"))
	require.NoError(t, s.Flush())
	assert.Equal(t,
		"---\ndate: 2025-10-24\n---\n\n# Work\n\n- 14:30:00 one\n- 14:30:00 two\n\n# Personal\n- 14:30:00 three\n",
		readFile(t, sectioned))
}

func TestTemplateWithoutNotePlaceholderAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "n.md")
	s, err := Open(path, Options{
		Format:   bullets,
		Template: "---\ntitle: Daily\n---\n## {weekday} {today}\n",
	})
	require.NoError(t, err)
	require.NoError(t, s.Add(moment(t, "2025-01-15", 9, 0, 0), "hello", ""))
	require.NoError(t, s.Flush())

	assert.Equal(t, "---\ndate: 2025-01-15\ntitle: Daily\n---\n## Wednesday 2025-01-15\n- 09:00:00 hello\n", readFile(t, path))
}

func TestTemplateFrontmatterDateIgnoresDatePattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "n.md")
	s, err := Open(path, Options{
		Format:      bullets,
		Locale:      locale.Lookup("no"),
		Template:    "---\ndate: {date}\n---\n# {date}\n{note}\n",
		DatePattern: "DD.MM.YYYY",
	})
	require.NoError(t, err)
	require.NoError(t, s.Add(moment(t, "2025-10-24", 14, 30, 0), "done", ""))
	require.NoError(t, s.Flush())

	got := readFile(t, path)
	assert.Equal(t, "---\ndate: 2025-10-24\n---\n# 24.10.2025\n- 14:30:00 done\n", got)

	doc, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "2025-10-24", doc.Date)
}

func TestExistingDocumentIsReadOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "n.md")
	require.NoError(t, os.WriteFile(path, []byte("# Work\n- 09:00:00 old\n# Personal\n- 10:00:00 other"), 0o644))

	s, err := Open(path, Options{Format: bullets})
	require.NoError(t, err)
	require.NoError(t, s.Add(moment(t, "2025-10-24", 11, 0, 0), "new", "Work"))
	require.NoError(t, s.Flush())

	assert.Equal(t, "# Work\n- 09:00:00 old\n- 11:00:00 new\n# Personal\n- 10:00:00 other", readFile(t, path))
}

func TestTableHeaderWrittenOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "n.md")
	opts := Options{Format: Format{ListType: ListTable, ShowTableHeader: true}, Section: "Log"}

	for i, note := range []string{"first", "second"} {
		s, err := Open(path, opts)
		require.NoError(t, err)
		require.NoError(t, s.Add(moment(t, "2025-10-24", 9+i, 0, 0), note, ""))
		require.NoError(t, s.Flush())
	}

	got := readFile(t, path)
	assert.Equal(t, 1, strings.Count(got, "| Time | Content |"))
	assert.Equal(t, 1, strings.Count(got, "|------|---------|"))
	assert.Contains(t, got, "| 09:00:00 | first |\n| 10:00:00 | second |\n")

	doc, err := Read(path)
	require.NoError(t, err)
	assert.Len(t, RenderList(doc.Entries(), opts.Format), 4)
}

func TestAddExpandsPhrases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "n.md")
	s, err := Open(path, Options{
		Format:  bullets,
		Phrases: phrases.New(map[string]string{"@work": "W", "@workout": "WO"}),
	})
	require.NoError(t, err)
	require.NoError(t, s.Add(moment(t, "2025-10-24", 7, 0, 0), "@workout done", ""))
	assert.Equal(t, "WO done", s.Last().Content)
	require.NoError(t, s.Flush())

	assert.Contains(t, readFile(t, path), "- 07:00:00 WO done\n")
}

func TestAddRejectsInvalidNotes(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "n.md"), Options{
		Format:  bullets,
		Phrases: phrases.New(map[string]string{"@nl": "a\nb"}),
	})
	require.NoError(t, err)
	m := moment(t, "2025-10-24", 7, 0, 0)

	assert.ErrorIs(t, s.Add(m, "   ", ""), ErrEmptyNote)
	assert.ErrorIs(t, s.Add(m, "one\ntwo", ""), ErrMultilineNote)
	assert.ErrorIs(t, s.Add(m, "@nl", ""), ErrMultilineNote)
	assert.Nil(t, s.Document())
	assert.NoError(t, s.Flush())
}

func TestAddLinesStopsAtFirstFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "n.md")
	s, err := Open(path, Options{
		Format:  bullets,
		Phrases: phrases.New(map[string]string{"@nothing": ""}),
	})
	require.NoError(t, err)

	added, err := s.AddLines(moment(t, "2025-10-24", 8, 0, 0), []string{"  first  ", "", "@nothing", "fourth"}, "")

	var batchErr *BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, 3, batchErr.Line)
	assert.ErrorIs(t, err, ErrEmptyNote)
	assert.Equal(t, 1, added)

	got := readFile(t, path)
	assert.Contains(t, got, "- 08:00:00 first\n")
	assert.NotContains(t, got, "fourth")
}

func TestAddLinesWritesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "n.md")
	s, err := Open(path, Options{Format: bullets, Section: "Inbox"})
	require.NoError(t, err)

	added, err := s.AddLines(moment(t, "2025-10-24", 8, 0, 0), []string{"a", "b", "", "c"}, "")
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	doc, err := Read(path)
	require.NoError(t, err)
	require.Len(t, doc.Entries(), 3)
	assert.Equal(t, "c", doc.Entries()[2].Content)
}

func TestFlushReportsWriteError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2025", "n.md")

	s, err := Open(path, Options{Format: bullets})
	require.NoError(t, err)
	require.NoError(t, s.Add(moment(t, "2025-10-24", 8, 0, 0), "note", ""))

	// A file where the parent directory should go makes the write fail.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2025"), []byte("x"), 0o644))

	err = s.Flush()
	var werr *WriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, path, werr.Path)
}

func TestReadMissingDocument(t *testing.T) {
	doc, err := Read(filepath.Join(t.TempDir(), "missing.md"))
	require.NoError(t, err)
	assert.Nil(t, doc)

	_, err = Read(t.TempDir())
	assert.True(t, err != nil && !errors.Is(err, os.ErrNotExist))
}
