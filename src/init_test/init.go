package init_test

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"crm/migrations"
	"crm/src/config"
	"crm/src/database"
	"crm/src/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// QuietLogger discards everything; tests assert on behaviour, not log lines.
func QuietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// SetupTestDB opens a fresh migrated SQLite database under t.TempDir.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger := QuietLogger()

	backend, err := database.ResolveBackend(config.SQLConfig{SQLitePath: filepath.Join(t.TempDir(), "crm_test.db")})
	require.NoError(t, err)

	db, err := database.Open(backend, config.SQLConfig{}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	m, err := migrations.NewMigrator(db, backend.Kind, logger)
	require.NoError(t, err)
	require.NoError(t, m.Up())
	return db
}

func Date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func CreateAccount(t *testing.T, db *gorm.DB, name string) *models.Account {
	t.Helper()
	account := &models.Account{
		Name:         name,
		Type:         models.DefaultAccountType,
		PaymentTerms: models.DefaultPaymentTerms,
		RiskRating:   models.DefaultRiskRating,
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func CreateOpportunity(t *testing.T, db *gorm.DB, accountID uint, name, stage string, value float64, closeDate *time.Time) *models.Opportunity {
	t.Helper()
	opportunity := &models.Opportunity{
		AccountID:         accountID,
		Name:              name,
		Stage:             stage,
		ExpectedCloseDate: closeDate,
		Value:             value,
		ProductType:       models.DefaultProductType,
		Probability:       models.DefaultProbability,
		Source:            models.DefaultSource,
	}
	require.NoError(t, db.Create(opportunity).Error)
	return opportunity
}
