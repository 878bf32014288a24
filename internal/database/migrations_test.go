package database

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestNewMigrator_MissingSourceDirectory(t *testing.T) {
	_, err := NewMigrator("postgres://localhost/scales", "/no/such/migrations", testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening migration source")
}

func TestNewMigrator_UnknownDatabaseScheme(t *testing.T) {
	_, err := NewMigrator("bogus://localhost/scales", t.TempDir(), testLogger())
	assert.Error(t, err)
}
