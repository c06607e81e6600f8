package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/minelate/packscan/internal/engine"
)

// SQLiteStore implements Store using SQLite via modernc.org/sqlite (pure Go).
type SQLiteStore struct {
	db *sql.DB
}

// Compile-time check that SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates a new SQLite-backed store.
// dbPath is the path to the SQLite database file; use ":memory:" for testing.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	// Verify the connection works.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: ping database: %w", err)
	}

	// Create the scans table if it does not exist.
	createTableSQL := `
		CREATE TABLE IF NOT EXISTS scans (
			id            TEXT PRIMARY KEY,
			project_path  TEXT NOT NULL,
			result_json   TEXT NOT NULL,
			total_mods    INTEGER DEFAULT 0,
			total_keys    INTEGER DEFAULT 0,
			created_at    DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create table: %w", err)
	}

	// Create an index on project_path for fast lookups.
	createIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_scans_project_path ON scans(project_path);
	`
	if _, err := db.Exec(createIndexSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create index: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save persists a completed scan result keyed by its scan id.
func (s *SQLiteStore) Save(ctx context.Context, result *engine.ScanResult) error {
	if result.ScanID == "" {
		return fmt.Errorf("history: scan result has no scan id")
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("history: marshal result: %w", err)
	}

	query := `
		INSERT INTO scans (id, project_path, result_json, total_mods, total_keys, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			project_path = excluded.project_path,
			result_json  = excluded.result_json,
			total_mods   = excluded.total_mods,
			total_keys   = excluded.total_keys
	`
	_, err = s.db.ExecContext(ctx, query,
		result.ScanID,
		result.ProjectPath,
		string(resultJSON),
		result.TotalMods,
		result.TotalTranslatableKeys,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("history: save result: %w", err)
	}

	return nil
}

// LoadByID retrieves a persisted scan by its scan id.
// Returns (nil, nil) if no record is found.
func (s *SQLiteStore) LoadByID(ctx context.Context, id string) (*Record, error) {
	query := `SELECT result_json, created_at FROM scans WHERE id = ?`

	var resultJSON, createdAt string
	err := s.db.QueryRowContext(ctx, query, id).Scan(&resultJSON, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("history: load scan: %w", err)
	}

	var result engine.ScanResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("history: unmarshal result: %w", err)
	}

	record := &Record{
		ID:          id,
		ProjectPath: result.ProjectPath,
		Result:      &result,
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		record.CreatedAt = t
	}
	return record, nil
}

// List returns summaries of all persisted scans, most recent first.
func (s *SQLiteStore) List(ctx context.Context) ([]*Summary, error) {
	query := `
		SELECT id, project_path, total_mods, total_keys, created_at
		FROM scans
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("history: list scans: %w", err)
	}
	defer rows.Close()

	var summaries []*Summary
	for rows.Next() {
		var sum Summary
		var createdAt string
		if err := rows.Scan(&sum.ID, &sum.ProjectPath, &sum.TotalMods, &sum.TotalTranslatableKeys, &createdAt); err != nil {
			return nil, fmt.Errorf("history: scan row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			sum.CreatedAt = t
		}
		summaries = append(summaries, &sum)
	}
	return summaries, rows.Err()
}

// Delete removes a persisted scan by id.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM scans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("history: delete scan: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
