package catalog

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

// SQLiteStore implements the catalog store over a SQLite database. Definition
// documents are stored as JSON blobs keyed by code name so catalog edits do
// not require schema changes.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (or creates) the catalog database. An empty database
// is seeded with the built-in catalog.
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

	if err := createCatalogSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	store := &SQLiteStore{db: db, dbPath: dbPath}
	if err := store.seedIfEmpty(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}
	return store, nil
}

// createCatalogSchema creates the catalog tables and indexes.
func createCatalogSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS scales (
		code_name TEXT PRIMARY KEY,
		definition TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS variables (
		name TEXT PRIMARY KEY,
		definition TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := db.Exec(schema)
	return err
}

// seedIfEmpty loads the built-in catalog into a fresh database.
func (s *SQLiteStore) seedIfEmpty(ctx context.Context) error {
	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM scales").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, scale := range seedScales() {
		doc, err := json.Marshal(scale)
		if err != nil {
			return fmt.Errorf("failed to marshal scale %s: %w", scale.CodeName, err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO scales (code_name, definition) VALUES (?, ?)",
			scale.CodeName, string(doc),
		); err != nil {
			return fmt.Errorf("failed to insert scale %s: %w", scale.CodeName, err)
		}
	}
	for _, variable := range seedVariables() {
		doc, err := json.Marshal(variable)
		if err != nil {
			return fmt.Errorf("failed to marshal variable %s: %w", variable.Name, err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO variables (name, definition) VALUES (?, ?)",
			variable.Name, string(doc),
		); err != nil {
			return fmt.Errorf("failed to insert variable %s: %w", variable.Name, err)
		}
	}

	return tx.Commit()
}

// FindScaleByCode returns the scale definition, or (nil, nil) when absent
func (s *SQLiteStore) FindScaleByCode(ctx context.Context, codeName string) (*domain.ScaleDefinition, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		"SELECT definition FROM scales WHERE code_name = ?", codeName,
	).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query scale: %w", err)
	}

	var scale domain.ScaleDefinition
	if err := json.Unmarshal([]byte(doc), &scale); err != nil {
		return nil, fmt.Errorf("failed to decode scale %s: %w", codeName, err)
	}
	return &scale, nil
}

// FindVariableByName returns the variable definition, or (nil, nil) when absent
func (s *SQLiteStore) FindVariableByName(ctx context.Context, name string) (*domain.VariableDefinition, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		"SELECT definition FROM variables WHERE name = ?", name,
	).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query variable: %w", err)
	}

	var variable domain.VariableDefinition
	if err := json.Unmarshal([]byte(doc), &variable); err != nil {
		return nil, fmt.Errorf("failed to decode variable %s: %w", name, err)
	}
	return &variable, nil
}

// ListScales returns all scale definitions ordered by code name
func (s *SQLiteStore) ListScales(ctx context.Context) ([]domain.ScaleDefinition, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT definition FROM scales ORDER BY code_name")
	if err != nil {
		return nil, fmt.Errorf("failed to query scales: %w", err)
	}
	defer rows.Close()

	var scales []domain.ScaleDefinition
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		var scale domain.ScaleDefinition
		if err := json.Unmarshal([]byte(doc), &scale); err != nil {
			return nil, fmt.Errorf("failed to decode scale: %w", err)
		}
		scales = append(scales, scale)
	}
	return scales, rows.Err()
}

// UpsertScale inserts or replaces a scale definition
func (s *SQLiteStore) UpsertScale(ctx context.Context, scale *domain.ScaleDefinition) error {
	doc, err := json.Marshal(scale)
	if err != nil {
		return fmt.Errorf("failed to marshal scale: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO scales (code_name, definition) VALUES (?, ?)
		ON CONFLICT(code_name) DO UPDATE SET
			definition = excluded.definition,
			updated_at = CURRENT_TIMESTAMP
	`, scale.CodeName, string(doc))
	return err
}

// UpsertVariable inserts or replaces a variable definition
func (s *SQLiteStore) UpsertVariable(ctx context.Context, variable *domain.VariableDefinition) error {
	doc, err := json.Marshal(variable)
	if err != nil {
		return fmt.Errorf("failed to marshal variable: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO variables (name, definition) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET
			definition = excluded.definition,
			updated_at = CURRENT_TIMESTAMP
	`, variable.Name, string(doc))
	return err
}

// Close closes the store and releases resources.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
