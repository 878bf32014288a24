package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/clinical-scales-server/internal/domain"
)

// PostgresStore implements domain.SessionStore using PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgreSQL session store.
// It expects the schema to already exist (created via migrations).
func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreFromURL creates a new PostgreSQL session store from a
// connection URL.
func NewPostgresStoreFromURL(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	store, err := NewPostgresStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// SaveScaleSession stores or replaces the session bundle.
func (s *PostgresStore) SaveScaleSession(ctx context.Context, record *domain.SessionRecord) error {
	scalesJSON, variablesJSON, err := encodeRecord(record)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO scale_sessions (id, session_id, language, scales, variables, llm_interpretation, calculated_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (session_id) DO UPDATE SET
			id = EXCLUDED.id,
			language = EXCLUDED.language,
			scales = EXCLUDED.scales,
			variables = EXCLUDED.variables,
			llm_interpretation = EXCLUDED.llm_interpretation,
			calculated_by = EXCLUDED.calculated_by,
			created_at = EXCLUDED.created_at
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
func (s *PostgresStore) GetScaleSession(ctx context.Context, sessionID string) (*domain.SessionRecord, error) {
	query := `
		SELECT id, session_id, language, scales, variables, llm_interpretation, calculated_by, created_at
		FROM scale_sessions
		WHERE session_id = $1
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
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
