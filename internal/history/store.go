package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"sidesplit/internal/splitter"
)

const schema = `
CREATE TABLE IF NOT EXISTS split_results (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    batch_id TEXT NOT NULL,
    input TEXT NOT NULL,
    left_output TEXT NOT NULL,
    right_output TEXT NOT NULL,
    left_bytes INTEGER NOT NULL,
    right_bytes INTEGER NOT NULL,
    elapsed_seconds REAL NOT NULL,
    encoder TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_split_results_created_at ON split_results(created_at);
`

// Store manages history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Record is one persisted split result.
type Record struct {
	ID             int64
	BatchID        string
	Input          string
	LeftOutput     string
	RightOutput    string
	LeftBytes      int64
	RightBytes     int64
	ElapsedSeconds float64
	Encoder        string
	CreatedAt      time.Time
}

// Open initializes or connects to the history database.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("history: empty database path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// SaveReport persists every result in a finished batch.
func (s *Store) SaveReport(ctx context.Context, report splitter.Report) error {
	if len(report.Results) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin history tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	for _, result := range report.Results {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO split_results (
                batch_id, input, left_output, right_output,
                left_bytes, right_bytes, elapsed_seconds, encoder, created_at
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			report.BatchID,
			result.Input,
			result.LeftOutput,
			result.RightOutput,
			result.LeftSize,
			result.RightSize,
			result.Elapsed.Seconds(),
			result.Capability.Encoder(),
			timestamp,
		)
		if err != nil {
			return fmt.Errorf("insert split result: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit history tx: %w", err)
	}
	return nil
}

// Recent returns the newest records, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, batch_id, input, left_output, right_output,
                left_bytes, right_bytes, elapsed_seconds, encoder, created_at
         FROM split_results ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		var createdAt string
		if err := rows.Scan(
			&record.ID,
			&record.BatchID,
			&record.Input,
			&record.LeftOutput,
			&record.RightOutput,
			&record.LeftBytes,
			&record.RightBytes,
			&record.ElapsedSeconds,
			&record.Encoder,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if parsed, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			record.CreatedAt = parsed
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
