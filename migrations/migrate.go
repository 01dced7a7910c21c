package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"crm/src/database"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedded embed.FS

// Migrator applies the embedded SQL migrations for one backend.
type Migrator struct {
	db      *sql.DB
	dialect string
	dir     string
}

func NewMigrator(db *gorm.DB, kind database.BackendKind, logger *logrus.Logger) (*Migrator, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQL DB from GORM DB")
	}

	m := &Migrator{db: sqlDB}
	switch kind {
	case database.SQLite:
		m.dialect, m.dir = "sqlite3", "sqlite"
	case database.Postgres:
		m.dialect, m.dir = "postgres", "postgres"
	default:
		return nil, errors.Errorf("no migrations for backend %q", kind)
	}

	goose.SetBaseFS(embedded)
	goose.SetLogger(logger)
	if err := goose.SetDialect(m.dialect); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Migrator) Up() error {
	if err := goose.Up(m.db, m.dir); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}
	return nil
}

// Down rolls back the most recent migration only.
func (m *Migrator) Down() error {
	if err := goose.Down(m.db, m.dir); err != nil {
		return errors.Wrap(err, "failed to roll back migration")
	}
	return nil
}

func (m *Migrator) Status() error {
	return goose.Status(m.db, m.dir)
}

func (m *Migrator) Version() (int64, error) {
	return goose.GetDBVersion(m.db)
}

// Run dispatches a migrate sub-command by name.
func (m *Migrator) Run(command string) error {
	switch command {
	case "up":
		return m.Up()
	case "down":
		return m.Down()
	case "status":
		return m.Status()
	default:
		return fmt.Errorf("migration command %q is not supported", command)
	}
}
