package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
)

// Migrator brings the catalog and scale-session schema up to date from the
// SQL files in the migrations directory. It owns its own connection and is
// closed once the schema is current, before the pool opens.
type Migrator struct {
	migrate *migrate.Migrate
	log     *logrus.Logger
}

// NewMigrator opens a migrator over the migration source directory and the
// target database URL.
func NewMigrator(databaseURL, migrationsPath string, logger *logrus.Logger) (*Migrator, error) {
	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), databaseURL)
	if err != nil {
		return nil, fmt.Errorf("opening migration source %q: %w", migrationsPath, err)
	}
	return &Migrator{migrate: m, log: logger}, nil
}

// Apply runs every pending migration. A schema that is already current is
// not an error.
func (m *Migrator) Apply(ctx context.Context) error {
	start := time.Now()

	err := m.migrate.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		version, _, _ := m.Status()
		m.log.WithField("version", version).Debug("Schema already current, no migrations applied")
		return nil
	}
	if err != nil {
		return fmt.Errorf("applying schema migrations: %w", err)
	}

	version, dirty, err := m.Status()
	if err != nil {
		m.log.WithError(err).Warn("Schema migrated but version could not be read")
		return nil
	}
	m.log.WithFields(logrus.Fields{
		"version":  version,
		"dirty":    dirty,
		"duration": time.Since(start),
	}).Info("Catalog and session schema migrated")
	return nil
}

// Rollback undoes the most recent migration
func (m *Migrator) Rollback(ctx context.Context) error {
	err := m.migrate.Steps(-1)
	if errors.Is(err, migrate.ErrNoChange) {
		m.log.Debug("No migration to roll back")
		return nil
	}
	if err != nil {
		return fmt.Errorf("rolling back schema migration: %w", err)
	}
	version, dirty, _ := m.Status()
	m.log.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("Rolled back one schema migration")
	return nil
}

// Status reports the current schema version. A fresh database with no applied
// migrations reports version 0.
func (m *Migrator) Status() (uint, bool, error) {
	version, dirty, err := m.migrate.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// Close releases the migrator's source and database handles
func (m *Migrator) Close() error {
	sourceErr, dbErr := m.migrate.Close()
	if sourceErr != nil {
		return fmt.Errorf("closing migration source: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("closing migration connection: %w", dbErr)
	}
	return nil
}
