package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"crm/src/config"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type BackendKind string

const (
	Postgres BackendKind = "postgres"
	SQLite   BackendKind = "sqlite"
)

const sqliteParams = "_foreign_keys=on&_busy_timeout=5000"

// Backend is the storage selected for this process.
type Backend struct {
	Kind BackendKind
	// DSN is handed to the gorm driver as is.
	DSN string
	// Path is the SQLite file, empty for PostgreSQL.
	Path string
	// Description never contains a password.
	Description string
}

var (
	driverSuffix = regexp.MustCompile(`^(postgres|postgresql)\+[A-Za-z0-9_]+://`)
	urlPassword  = regexp.MustCompile(`(://[^:/@\s]*):[^@\s]*@`)
	kvPassword   = regexp.MustCompile(`(password=)\S+`)
)

// ResolveBackend picks PostgreSQL when a connection string is configured and
// the embedded SQLite file otherwise.
func ResolveBackend(cfg config.SQLConfig) (*Backend, error) {
	raw := strings.TrimSpace(cfg.PostgresURL)
	if raw == "" {
		if cfg.SQLitePath == "" {
			return nil, errors.New("no database configured")
		}
		return sqliteBackend(cfg.SQLitePath), nil
	}

	if path, ok := sqlitePathFromURL(raw); ok {
		return sqliteBackend(path), nil
	}

	dsn := driverSuffix.ReplaceAllString(raw, "$1://")
	pgCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Errorf("invalid %s: %s", config.PostgresURLEnv, redactPassword(err.Error()))
	}

	return &Backend{
		Kind:        Postgres,
		DSN:         dsn,
		Description: fmt.Sprintf("postgres %s@%s:%d/%s", pgCfg.User, pgCfg.Host, pgCfg.Port, pgCfg.Database),
	}, nil
}

func redactPassword(s string) string {
	s = urlPassword.ReplaceAllString(s, "$1:xxxxx@")
	return kvPassword.ReplaceAllString(s, "${1}xxxxx")
}

// sqliteBackend keeps any query options already on the path and adds the
// connection parameters after them.
func sqliteBackend(path string) *Backend {
	file, query, _ := strings.Cut(path, "?")
	dsn := file + "?" + sqliteParams
	if query != "" {
		dsn = file + "?" + query + "&" + sqliteParams
	}
	return &Backend{
		Kind:        SQLite,
		DSN:         dsn,
		Path:        file,
		Description: "sqlite " + file,
	}
}

// sqlitePathFromURL understands SQLAlchemy sqlite URLs: three slashes for a
// relative path, four for an absolute one, none for an in-memory database.
func sqlitePathFromURL(raw string) (string, bool) {
	if !strings.HasPrefix(raw, "sqlite:") {
		return "", false
	}
	rest := strings.TrimPrefix(raw, "sqlite:")
	rest = strings.TrimPrefix(rest, "//")
	if rest == "" || rest == "/" {
		return ":memory:", true
	}
	return strings.TrimPrefix(rest, "/"), true
}

// Open connects gorm to the backend and verifies the connection with a ping.
func Open(backend *Backend, cfg config.SQLConfig, logger *logrus.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch backend.Kind {
	case SQLite:
		if backend.Path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(backend.Path), 0o755); err != nil {
				return nil, errors.Wrapf(err, "failed to create directory for %s", backend.Path)
			}
		}
		dialector = sqlite.Open(backend.DSN)
	case Postgres:
		dialector = postgres.Open(backend.DSN)
	default:
		return nil, errors.Errorf("unsupported backend %q", backend.Kind)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         NewGormLogger(logger),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", backend.Description)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQL DB from GORM DB")
	}
	if backend.Kind == SQLite {
		// single writer; an in-memory database also lives on one connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Ping(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrapf(err, "failed to ping %s", backend.Description)
	}

	logger.WithField("backend", backend.Kind).Infof("connected to %s", backend.Description)
	return db, nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NewGormLogger routes gorm's own messages through logrus.
func NewGormLogger(logger *logrus.Logger) gormlogger.Interface {
	level := gormlogger.Warn
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		level = gormlogger.Info
	}
	return gormlogger.New(logger, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}
