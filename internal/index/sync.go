package index

import (
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aidanlsb/journey/internal/dates"
	"github.com/aidanlsb/journey/internal/journal"
	"github.com/aidanlsb/journey/internal/sqlutil"
)

// SyncStats summarizes one Sync pass.
type SyncStats struct {
	Indexed   int `json:"indexed"`
	Unchanged int `json:"unchanged"`
	Removed   int `json:"removed"`
	Notes     int `json:"notes"`
}

// Sync brings the index up to date with the markdown documents under
// vaultPath. Documents whose modification time is unchanged are skipped;
// documents that disappeared are dropped. Hidden directories are ignored.
func (x *Index) Sync(vaultPath string) (SyncStats, error) {
	var stats SyncStats

	known, err := x.knownDocuments()
	if err != nil {
		return stats, err
	}

	seen := make(map[string]bool)
	err = filepath.WalkDir(vaultPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != vaultPath && shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		rel, err := filepath.Rel(vaultPath, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		seen[rel] = true

		info, err := d.Info()
		if err != nil {
			return nil
		}
		mtime := info.ModTime().UnixNano()
		if prev, ok := known[rel]; ok && prev == mtime {
			stats.Unchanged++
			return nil
		}

		n, err := x.indexFile(path, rel, mtime)
		if err != nil {
			return fmt.Errorf("index %s: %w", rel, err)
		}
		stats.Indexed++
		stats.Notes += n
		return nil
	})
	if err != nil {
		return stats, err
	}

	for rel := range known {
		if seen[rel] {
			continue
		}
		if err := x.remove(rel); err != nil {
			return stats, err
		}
		stats.Removed++
	}

	slog.Debug("index synced", "vault", vaultPath,
		"indexed", stats.Indexed, "unchanged", stats.Unchanged, "removed", stats.Removed)
	return stats, nil
}

// Reset drops every indexed document so the next Sync reads them all again.
func (x *Index) Reset() error {
	if _, err := x.db.Exec(`DELETE FROM notes; DELETE FROM documents;`); err != nil {
		return fmt.Errorf("failed to reset index: %w", err)
	}
	return nil
}

func shouldSkipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "node_modules"
}

func (x *Index) knownDocuments() (map[string]int64, error) {
	rows, err := x.db.Query(`SELECT file_path, file_mtime FROM documents`)
	if err != nil {
		return nil, fmt.Errorf("failed to read indexed documents: %w", err)
	}
	type stamp struct {
		path  string
		mtime int64
	}
	stamps, err := sqlutil.ScanRows(rows, func(rows *sql.Rows) (stamp, error) {
		var s stamp
		err := rows.Scan(&s.path, &s.mtime)
		return s, err
	})
	if err != nil {
		return nil, err
	}

	known := make(map[string]int64, len(stamps))
	for _, s := range stamps {
		known[s.path] = s.mtime
	}
	return known, nil
}

// indexFile replaces the rows of one document and returns its note count.
func (x *Index) indexFile(path, rel string, mtime int64) (int, error) {
	doc, err := journal.Read(path)
	if err != nil {
		return 0, err
	}
	if doc == nil {
		return 0, nil
	}
	date := documentDate(doc, rel)
	entries := doc.Entries()

	tx, err := x.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if err := deleteDocument(tx, rel); err != nil {
		return 0, err
	}
	for _, e := range entries {
		_, err := tx.Exec(`INSERT INTO notes (content, section, file_path, date, time) VALUES (?, ?, ?, ?, ?)`,
			e.Content, e.Section, rel, date, e.Stamp)
		if err != nil {
			return 0, fmt.Errorf("failed to insert note: %w", err)
		}
	}
	_, err = tx.Exec(`INSERT INTO documents (file_path, date, file_mtime, entries) VALUES (?, ?, ?, ?)`,
		rel, date, mtime, len(entries))
	if err != nil {
		return 0, fmt.Errorf("failed to insert document: %w", err)
	}
	return len(entries), tx.Commit()
}

func (x *Index) remove(rel string) error {
	tx, err := x.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if err := deleteDocument(tx, rel); err != nil {
		return err
	}
	return tx.Commit()
}

func deleteDocument(tx *sql.Tx, rel string) error {
	if _, err := tx.Exec(`DELETE FROM notes WHERE file_path = ?`, rel); err != nil {
		return fmt.Errorf("failed to delete notes: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM documents WHERE file_path = ?`, rel); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// documentDate prefers the frontmatter date, then an ISO file name.
func documentDate(doc *journal.Document, rel string) string {
	if canonical, err := dates.Canonicalize(doc.Date); err == nil {
		return canonical
	}
	stem := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
	if dates.IsValidDate(stem) {
		return stem
	}
	return ""
}
