// Package session persists computed scale sessions into the patient record
// store. Scale results and normalized variables are stored as JSON documents
// keyed by session id; saving the same session id again replaces the bundle.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/clinical-scales-server/internal/domain"
)

// SQLiteStore implements domain.SessionStore using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLite session store.
// It creates the database file and schema if they don't exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createSessionSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// createSessionSchema creates the session table and indexes.
func createSessionSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS scale_sessions (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL UNIQUE,
		language TEXT NOT NULL DEFAULT 'en',
		scales TEXT NOT NULL,
		variables TEXT NOT NULL,
		llm_interpretation TEXT DEFAULT '',
		calculated_by TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_scale_sessions_created_at ON scale_sessions(created_at);
	`

	_, err := db.Exec(schema)
	return err
}

// SaveScaleSession stores or replaces the session bundle.
func (s *SQLiteStore) SaveScaleSession(ctx context.Context, record *domain.SessionRecord) error {
	scalesJSON, variablesJSON, err := encodeRecord(record)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO scale_sessions (id, session_id, language, scales, variables, llm_interpretation, calculated_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			id = excluded.id,
			language = excluded.language,
			scales = excluded.scales,
			variables = excluded.variables,
			llm_interpretation = excluded.llm_interpretation,
			calculated_by = excluded.calculated_by,
			created_at = excluded.created_at
	`

	_, err = s.db.ExecContext(ctx, query,
		record.ID, record.SessionID, record.Language,
		scalesJSON, variablesJSON,
		record.Narrative, record.CalculatedBy, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save scale session: %w", err)
	}
	return nil
}

// GetScaleSession retrieves the session bundle by session id.
// Returns (nil, nil) when no session exists for the id.
func (s *SQLiteStore) GetScaleSession(ctx context.Context, sessionID string) (*domain.SessionRecord, error) {
	query := `
		SELECT id, session_id, language, scales, variables, llm_interpretation, calculated_by, created_at
		FROM scale_sessions
		WHERE session_id = ?
	`

	record := &domain.SessionRecord{}
	var scalesJSON, variablesJSON string

	err := s.db.QueryRowContext(ctx, query, sessionID).Scan(
		&record.ID, &record.SessionID, &record.Language,
		&scalesJSON, &variablesJSON,
		&record.Narrative, &record.CalculatedBy, &record.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scale session: %w", err)
	}

	if err := decodeRecord(record, scalesJSON, variablesJSON); err != nil {
		return nil, err
	}
	return record, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// encodeRecord serializes the scales and variables maps for storage
func encodeRecord(record *domain.SessionRecord) (string, string, error) {
	scalesJSON, err := json.Marshal(record.Scales)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode scales: %w", err)
	}
	variablesJSON, err := json.Marshal(record.Values)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode variables: %w", err)
	}
	return string(scalesJSON), string(variablesJSON), nil
}

// decodeRecord deserializes the stored scales and variables maps
func decodeRecord(record *domain.SessionRecord, scalesJSON, variablesJSON string) error {
	if err := json.Unmarshal([]byte(scalesJSON), &record.Scales); err != nil {
		return fmt.Errorf("failed to decode scales: %w", err)
	}
	if err := json.Unmarshal([]byte(variablesJSON), &record.Values); err != nil {
		return fmt.Errorf("failed to decode variables: %w", err)
	}
	return nil
}
