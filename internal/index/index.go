// Package index keeps a SQLite full-text index of the notes in a vault so
// they can be searched across days.
//
// The index lives in .journey/index.db inside the vault and is a cache: it
// can be deleted at any time and is rebuilt from the markdown documents.
package index

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"
)

// Dir is the vault-relative directory holding the index.
const Dir = ".journey"

// CurrentVersion is the index schema version. A database written with another
// version is dropped and rebuilt.
const CurrentVersion = 1

// ErrLocked indicates another process is updating the index.
var ErrLocked = errors.New("index is locked by another journey process")

// Index is an open note index.
type Index struct {
	db   *sql.DB
	lock *fileLock
}

// Open opens (creating if needed) the index of the vault at vaultPath and
// takes the index lock. Close releases it.
func Open(vaultPath string) (*Index, error) {
	dir := filepath.Join(vaultPath, Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", Dir, err)
	}

	lock, err := acquireLock(filepath.Join(dir, "index.lock"))
	if err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "index.db")
	idx, err := openDB(dbPath)
	if err == nil && idx.version() != CurrentVersion {
		idx.db.Close()
		if err := removeDatabaseFiles(dbPath); err != nil {
			lock.release()
			return nil, err
		}
		idx, err = openDB(dbPath)
	}
	if err != nil {
		lock.release()
		return nil, err
	}
	if err := idx.initialize(); err != nil {
		idx.db.Close()
		lock.release()
		return nil, err
	}
	idx.lock = lock
	return idx, nil
}

// OpenInMemory opens an in-memory index (for testing).
func OpenInMemory() (*Index, error) {
	idx, err := openDB(":memory:")
	if err != nil {
		return nil, err
	}
	// Every pooled connection to :memory: would see its own empty database.
	idx.db.SetMaxOpenConns(1)
	if err := idx.initialize(); err != nil {
		idx.db.Close()
		return nil, err
	}
	return idx, nil
}

func openDB(dsn string) (*Index, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}
	return &Index{db: db}, nil
}

// Close closes the database and releases the lock.
func (x *Index) Close() error {
	err := x.db.Close()
	if lerr := x.lock.release(); err == nil {
		err = lerr
	}
	return err
}

// version returns the stored schema version, or 0 for a new or foreign file.
func (x *Index) version() int {
	var value string
	if err := x.db.QueryRow(`SELECT value FROM meta WHERE key = 'version'`).Scan(&value); err != nil {
		return 0
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return v
}

func (x *Index) initialize() error {
	schema := `
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		-- One row per indexed document, for staleness checks.
		CREATE TABLE IF NOT EXISTS documents (
			file_path TEXT PRIMARY KEY,
			date TEXT NOT NULL DEFAULT '',
			file_mtime INTEGER NOT NULL,
			entries INTEGER NOT NULL
		);

		CREATE VIRTUAL TABLE IF NOT EXISTS notes USING fts5(
			content,
			section,
			file_path UNINDEXED,
			date UNINDEXED,
			time UNINDEXED,
			tokenize='porter unicode61'
		);
	`
	if _, err := x.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize index schema: %w", err)
	}
	_, err := x.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('version', ?)`,
		strconv.Itoa(CurrentVersion))
	if err != nil {
		return fmt.Errorf("failed to set index version: %w", err)
	}
	return nil
}

func removeDatabaseFiles(dbPath string) error {
	for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", p, err)
		}
	}
	return nil
}
