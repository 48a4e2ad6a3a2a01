package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"journeydeck/internal/domain"
	"journeydeck/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Exporter implements ports.ContentExporter by writing a SQLite file
type Exporter struct {
	db     *sql.DB
	dbPath string
}

// Ensure Exporter implements ContentExporter
var _ ports.ContentExporter = (*Exporter)(nil)

// NewExporter creates an exporter for the given database path
func NewExporter(dbPath string) *Exporter {
	return &Exporter{dbPath: dbPath}
}

// Open creates the database file and schema if needed
func (e *Exporter) Open() error {
	if len(e.dbPath) > 0 && e.dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		e.dbPath = filepath.Join(home, e.dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(e.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	db, err := sql.Open("sqlite", e.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	e.db = db

	_, err = db.Exec(`
		PRAGMA foreign_keys = ON;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS journeys (
			name TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			tagline TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS steps (
			journey TEXT NOT NULL REFERENCES journeys(name) ON DELETE CASCADE,
			step_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			PRIMARY KEY (journey, step_id)
		);
		CREATE TABLE IF NOT EXISTS pain_points (
			journey TEXT NOT NULL,
			step_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			text TEXT NOT NULL,
			PRIMARY KEY (journey, step_id, position),
			FOREIGN KEY (journey, step_id) REFERENCES steps(journey, step_id) ON DELETE CASCADE
		);
		CREATE TABLE IF NOT EXISTS solutions (
			journey TEXT NOT NULL,
			step_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			text TEXT NOT NULL,
			PRIMARY KEY (journey, step_id, position),
			FOREIGN KEY (journey, step_id) REFERENCES steps(journey, step_id) ON DELETE CASCADE
		);
		CREATE TABLE IF NOT EXISTS slides (
			number INTEGER PRIMARY KEY,
			heading TEXT NOT NULL,
			markdown TEXT NOT NULL,
			link_url TEXT
		);
		CREATE TABLE IF NOT EXISTS slide_images (
			number INTEGER NOT NULL REFERENCES slides(number) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			src TEXT NOT NULL,
			alt TEXT NOT NULL,
			PRIMARY KEY (number, position)
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection
func (e *Exporter) Close() error {
	if e.db != nil {
		return e.db.Close()
	}
	return nil
}

// Path returns the database file path
func (e *Exporter) Path() string {
	return e.dbPath
}

// Export replaces the stored content with the given content in one transaction
func (e *Exporter) Export(ctx context.Context, content domain.Content) error {
	if e.db == nil {
		return fmt.Errorf("exporter not open")
	}

	sqlTx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	tx := &exportTx{ctx: ctx, tx: sqlTx}

	if err := tx.write(content); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
