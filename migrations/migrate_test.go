package migrations_test

import (
	"io"
	"path/filepath"
	"testing"

	"crm/migrations"
	"crm/src/config"
	"crm/src/database"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openSQLite(t *testing.T) (*gorm.DB, *logrus.Logger) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	backend, err := database.ResolveBackend(config.SQLConfig{SQLitePath: filepath.Join(t.TempDir(), "crm.db")})
	require.NoError(t, err)
	db, err := database.Open(backend, config.SQLConfig{}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db, logger
}

func TestMigratorUpAndDown(t *testing.T) {
	db, logger := openSQLite(t)

	m, err := migrations.NewMigrator(db, database.SQLite, logger)
	require.NoError(t, err)

	require.NoError(t, m.Up())
	version, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	for _, table := range []string{"accounts", "contacts", "opportunities", "quotes", "quote_items", "activities"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	// Up is idempotent.
	require.NoError(t, m.Up())

	require.NoError(t, m.Down())
	assert.False(t, db.Migrator().HasTable("accounts"))
}

func TestMigratorRejectsUnknownCommand(t *testing.T) {
	db, logger := openSQLite(t)
	m, err := migrations.NewMigrator(db, database.SQLite, logger)
	require.NoError(t, err)

	assert.Error(t, m.Run("sideways"))
	assert.NoError(t, m.Run("up"))
}

func TestNewMigratorUnknownBackend(t *testing.T) {
	db, logger := openSQLite(t)
	_, err := migrations.NewMigrator(db, database.BackendKind("oracle"), logger)
	assert.Error(t, err)
}
