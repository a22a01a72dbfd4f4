package index

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/aidanlsb/journey/internal/sqlutil"
)

// Result is one matching note.
type Result struct {
	File    string  `json:"file"`
	Date    string  `json:"date,omitempty"`
	Time    string  `json:"time"`
	Section string  `json:"section,omitempty"`
	Content string  `json:"content"`
	Snippet string  `json:"snippet"`
	Rank    float64 `json:"-"`
}

// SearchOptions narrows a search.
type SearchOptions struct {
	// Limit caps the number of results; 0 means 20.
	Limit int
	// From and To bound the document date (YYYY-MM-DD, inclusive).
	From string
	To   string
}

// Search runs a full-text query over note content, best matches first.
// Bare words are ANDed; quoted phrases, OR, NOT and prefix* work as in FTS5.
func (x *Index) Search(query string, opts SearchOptions) ([]Result, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}

	where := []string{"notes MATCH ?"}
	args := []interface{}{matchQuery(query)}
	if opts.From != "" {
		where = append(where, "date >= ?")
		args = append(args, opts.From)
	}
	if opts.To != "" {
		where = append(where, "date <= ?")
		args = append(args, opts.To)
	}
	args = append(args, limit)

	rows, err := x.db.Query(`
		SELECT
			file_path,
			date,
			time,
			section,
			content,
			snippet(notes, 0, '»', '«', '...', 24) AS snippet,
			bm25(notes) AS rank
		FROM notes
		WHERE `+strings.Join(where, " AND ")+`
		ORDER BY rank, date DESC, time DESC
		LIMIT ?
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return sqlutil.ScanRows(rows, func(rows *sql.Rows) (Result, error) {
		var r Result
		err := rows.Scan(&r.File, &r.Date, &r.Time, &r.Section, &r.Content, &r.Snippet, &r.Rank)
		return r, err
	})
}

// matchQuery scopes a user query to the content column. Tokens containing a
// hyphen are quoted so FTS5 does not read them as column filters or NOT.
func matchQuery(userQuery string) string {
	q := strings.TrimSpace(userQuery)
	if q == "" {
		return `content:""`
	}
	return "content: (" + quoteHyphenated(q) + ")"
}

func quoteHyphenated(q string) string {
	var b strings.Builder
	b.Grow(len(q) + 8)

	isBreak := func(c byte) bool {
		return c == '"' || c == '(' || c == ')' || c == ' ' || c == '\t' || c == '\n' || c == '\r'
	}

	inQuotes := false
	for i := 0; i < len(q); {
		c := q[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			b.WriteByte(c)
			i++
			continue
		case inQuotes, isBreak(c):
			b.WriteByte(c)
			i++
			continue
		}

		start := i
		for i < len(q) && !isBreak(q[i]) {
			i++
		}
		tok := q[start:i]

		switch {
		case isOperator(tok), strings.Contains(tok, ":"):
			b.WriteString(tok)
		case strings.Contains(tok, "-") && !strings.HasPrefix(tok, "-"):
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(tok, `"`, `""`))
			b.WriteByte('"')
		default:
			b.WriteString(tok)
		}
	}
	return b.String()
}

func isOperator(tok string) bool {
	switch strings.ToUpper(tok) {
	case "AND", "OR", "NOT", "NEAR":
		return true
	}
	return false
}
