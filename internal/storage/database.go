package storage

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
// It enables foreign keys and sets connection pool settings.
func New(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys (disabled by default in SQLite)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS content (
			id TEXT PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			raw_content TEXT NOT NULL,
			excerpt TEXT NOT NULL DEFAULT '',
			meta_description TEXT NOT NULL DEFAULT '',
			content_type TEXT NOT NULL,
			category TEXT NOT NULL,
			difficulty_level TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT '[]',
			semantic_keywords TEXT NOT NULL DEFAULT '[]',
			readability_score INTEGER NOT NULL DEFAULT 0,
			reading_time_minutes INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'draft',
			calculator_config TEXT,
			tool_config TEXT,
			checklist_config TEXT,
			metadata TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_content_status ON content(status);`,
		`CREATE INDEX IF NOT EXISTS idx_content_category ON content(category);`,
		`CREATE INDEX IF NOT EXISTS idx_content_type ON content(content_type);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
