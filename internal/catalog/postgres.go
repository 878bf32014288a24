package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clinical-scales-server/internal/database"
	"github.com/clinical-scales-server/internal/domain"
)

// PostgresStore implements the catalog store over the shared pgx pool.
// The schema is managed by the migration runner; an empty catalog is seeded
// with the built-in content on first open.
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates a catalog store over an established pool
func NewPostgresStore(ctx context.Context, db *database.DB) (*PostgresStore, error) {
	store := &PostgresStore{db: db}
	if err := store.seedIfEmpty(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}
	return store, nil
}

func (s *PostgresStore) seedIfEmpty(ctx context.Context) error {
	var count int64
	if err := s.db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM scales").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, scale := range seedScales() {
		doc, err := json.Marshal(scale)
		if err != nil {
			return fmt.Errorf("failed to marshal scale %s: %w", scale.CodeName, err)
		}
		if _, err := tx.Exec(ctx,
			"INSERT INTO scales (code_name, definition) VALUES ($1, $2)",
			scale.CodeName, doc,
		); err != nil {
			return fmt.Errorf("failed to insert scale %s: %w", scale.CodeName, err)
		}
	}
	for _, variable := range seedVariables() {
		doc, err := json.Marshal(variable)
		if err != nil {
			return fmt.Errorf("failed to marshal variable %s: %w", variable.Name, err)
		}
		if _, err := tx.Exec(ctx,
			"INSERT INTO variables (name, definition) VALUES ($1, $2)",
			variable.Name, doc,
		); err != nil {
			return fmt.Errorf("failed to insert variable %s: %w", variable.Name, err)
		}
	}

	return tx.Commit(ctx)
}

// FindScaleByCode returns the scale definition, or (nil, nil) when absent
func (s *PostgresStore) FindScaleByCode(ctx context.Context, codeName string) (*domain.ScaleDefinition, error) {
	var doc []byte
	err := s.db.Pool.QueryRow(ctx,
		"SELECT definition FROM scales WHERE code_name = $1", codeName,
	).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query scale: %w", err)
	}

	var scale domain.ScaleDefinition
	if err := json.Unmarshal(doc, &scale); err != nil {
		return nil, fmt.Errorf("failed to decode scale %s: %w", codeName, err)
	}
	return &scale, nil
}

// FindVariableByName returns the variable definition, or (nil, nil) when absent
func (s *PostgresStore) FindVariableByName(ctx context.Context, name string) (*domain.VariableDefinition, error) {
	var doc []byte
	err := s.db.Pool.QueryRow(ctx,
		"SELECT definition FROM variables WHERE name = $1", name,
	).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query variable: %w", err)
	}

	var variable domain.VariableDefinition
	if err := json.Unmarshal(doc, &variable); err != nil {
		return nil, fmt.Errorf("failed to decode variable %s: %w", name, err)
	}
	return &variable, nil
}

// ListScales returns all scale definitions ordered by code name
func (s *PostgresStore) ListScales(ctx context.Context) ([]domain.ScaleDefinition, error) {
	rows, err := s.db.Pool.Query(ctx,
		"SELECT definition FROM scales ORDER BY code_name")
	if err != nil {
		return nil, fmt.Errorf("failed to query scales: %w", err)
	}
	defer rows.Close()

	var scales []domain.ScaleDefinition
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		var scale domain.ScaleDefinition
		if err := json.Unmarshal(doc, &scale); err != nil {
			return nil, fmt.Errorf("failed to decode scale: %w", err)
		}
		scales = append(scales, scale)
	}
	return scales, rows.Err()
}

// UpsertScale inserts or replaces a scale definition
func (s *PostgresStore) UpsertScale(ctx context.Context, scale *domain.ScaleDefinition) error {
	doc, err := json.Marshal(scale)
	if err != nil {
		return fmt.Errorf("failed to marshal scale: %w", err)
	}
	_, err = s.db.Pool.Exec(ctx, `
		INSERT INTO scales (code_name, definition) VALUES ($1, $2)
		ON CONFLICT (code_name) DO UPDATE SET
			definition = EXCLUDED.definition,
			updated_at = NOW()
	`, scale.CodeName, doc)
	return err
}
