package codebase

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// On-disk symbol cache. Saving writes the index's per-file breakdown
// into a per-project SQLite database so a later session has symbols
// available before its first full scan finishes.

const cacheSchemaVersion = 2

const cacheSchema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS functions (
    name TEXT NOT NULL,
    path TEXT NOT NULL,
    UNIQUE(name, path)
);

CREATE TABLE IF NOT EXISTS headers (
    name TEXT NOT NULL,
    path TEXT NOT NULL,
    UNIQUE(name, path)
);

CREATE TABLE IF NOT EXISTS types (
    name TEXT NOT NULL,
    path TEXT NOT NULL,
    UNIQUE(name, path)
);

CREATE INDEX IF NOT EXISTS idx_functions_name ON functions(name);
`

// CachePath returns the default cache location for a project root.
func CachePath(rootDir string) string {
	return filepath.Join(rootDir, ".chix", "symbols.db")
}

func openCache(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)"); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating version table: %w", err)
	}

	var version int
	err = db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	switch {
	case err == sql.ErrNoRows:
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", cacheSchemaVersion); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting schema version: %w", err)
		}
	case err != nil:
		db.Close()
		return nil, fmt.Errorf("reading schema version: %w", err)
	case version != cacheSchemaVersion:
		// Stale layout: the cache is rebuildable from source, so drop it
		// and start over.
		for _, stmt := range []string{
			"DROP TABLE IF EXISTS functions",
			"DROP TABLE IF EXISTS headers",
			"DROP TABLE IF EXISTS types",
			"DELETE FROM schema_version",
		} {
			if _, err := db.Exec(stmt); err != nil {
				db.Close()
				return nil, fmt.Errorf("resetting stale cache: %w", err)
			}
		}
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", cacheSchemaVersion); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting schema version: %w", err)
		}
	}

	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return db, nil
}

// SaveCache writes the current index state to the cache database at
// dbPath, replacing any previous contents.
func (idx *Index) SaveCache(dbPath string) error {
	db, err := openCache(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting cache transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"functions", "headers", "types"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	for path, symbols := range idx.files {
		for _, fn := range symbols.Functions {
			if _, err := tx.Exec("INSERT OR IGNORE INTO functions (name, path) VALUES (?, ?)", fn, path); err != nil {
				return fmt.Errorf("saving function %s: %w", fn, err)
			}
		}
		for _, h := range symbols.Headers {
			if _, err := tx.Exec("INSERT OR IGNORE INTO headers (name, path) VALUES (?, ?)", h, path); err != nil {
				return fmt.Errorf("saving header %s: %w", h, err)
			}
		}
		for _, t := range symbols.Types {
			if _, err := tx.Exec("INSERT OR IGNORE INTO types (name, path) VALUES (?, ?)", t, path); err != nil {
				return fmt.Errorf("saving type %s: %w", t, err)
			}
		}
	}

	return tx.Commit()
}

// LoadCache replaces the index state with the cache contents at dbPath.
// The per-file breakdown is restored too, so single-file updates
// arriving before the first full scan keep the cached symbols of every
// other file.
func (idx *Index) LoadCache(dbPath string) error {
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("no symbol cache: %w", err)
	}

	db, err := openCache(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	files := make(map[string]*fileSymbols)
	get := func(path string) *fileSymbols {
		fs := files[path]
		if fs == nil {
			fs = &fileSymbols{}
			files[path] = fs
		}
		return fs
	}

	if err := loadSymbolTable(db, "functions", func(name, path string) {
		fs := get(path)
		fs.Functions = append(fs.Functions, name)
	}); err != nil {
		return err
	}
	if err := loadSymbolTable(db, "headers", func(name, path string) {
		fs := get(path)
		fs.Headers = append(fs.Headers, name)
	}); err != nil {
		return err
	}
	if err := loadSymbolTable(db, "types", func(name, path string) {
		fs := get(path)
		fs.Types = append(fs.Types, name)
	}); err != nil {
		return err
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.files = files
	idx.rebuildLocked()
	return nil
}

func loadSymbolTable(db *sql.DB, table string, add func(name, path string)) error {
	rows, err := db.Query("SELECT name, path FROM " + table + " ORDER BY path, name")
	if err != nil {
		return fmt.Errorf("reading %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, path string
		if err := rows.Scan(&name, &path); err != nil {
			return fmt.Errorf("scanning %s row: %w", table, err)
		}
		add(name, path)
	}
	return rows.Err()
}
