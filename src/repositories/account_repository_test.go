package repositories_test

import (
	"context"
	"testing"

	"crm/src/init_test"
	"crm/src/models"
	"crm/src/repositories"
	"crm/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository(t *testing.T) {
	db := init_test.SetupTestDB(t)
	repo := repositories.NewAccountRepository(db)
	ctx := context.Background()

	t.Run("Create and GetByID", func(t *testing.T) {
		account := &models.Account{
			Name:         "Harrow Build Ltd",
			Type:         "Developer",
			Region:       "North West",
			CreditLimit:  50000,
			PaymentTerms: "60 days",
			RiskRating:   "Medium",
		}
		require.NoError(t, repo.Create(ctx, account))
		require.NotZero(t, account.ID)

		retrieved, err := repo.GetByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, account.Name, retrieved.Name)
		assert.Equal(t, account.Type, retrieved.Type)
		assert.Equal(t, account.Region, retrieved.Region)
		assert.Equal(t, account.CreditLimit, retrieved.CreditLimit)
		assert.Equal(t, account.PaymentTerms, retrieved.PaymentTerms)
		assert.Equal(t, account.RiskRating, retrieved.RiskRating)
		assert.False(t, retrieved.CreatedAt.IsZero())
	})

	t.Run("GetAll newest first and options by name", func(t *testing.T) {
		init_test.CreateAccount(t, db, "Zenith Civils")
		init_test.CreateAccount(t, db, "Abbey Groundworks")

		accounts, err := repo.GetAll(ctx, utils.Paginate{})
		require.NoError(t, err)
		require.Len(t, accounts, 3)
		assert.Equal(t, "Abbey Groundworks", accounts[0].Name)
		assert.Equal(t, "Harrow Build Ltd", accounts[2].Name)

		page, err := repo.GetAll(ctx, utils.Paginate{Offset: 1, Size: 1, Page: 2})
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "Zenith Civils", page[0].Name)

		options, err := repo.GetOptions(ctx)
		require.NoError(t, err)
		require.Len(t, options, 3)
		assert.Equal(t, "Abbey Groundworks", options[0].Name)
		assert.Equal(t, "Zenith Civils", options[2].Name)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("Update", func(t *testing.T) {
		account := init_test.CreateAccount(t, db, "Old Name")
		account.Name = "New Name"
		account.RiskRating = "High"
		require.NoError(t, repo.Update(ctx, account))

		retrieved, err := repo.GetByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Name", retrieved.Name)
		assert.Equal(t, "High", retrieved.RiskRating)
	})

	t.Run("Delete cascades to contacts and opportunities", func(t *testing.T) {
		account := init_test.CreateAccount(t, db, "Short Lived")
		require.NoError(t, db.Create(&models.Contact{AccountID: account.ID, Name: "Pat"}).Error)
		init_test.CreateOpportunity(t, db, account.ID, "Car park deck", "Lead", 1000, nil)

		require.NoError(t, repo.Delete(ctx, account.ID))

		exists, err := repo.Exists(ctx, account.ID)
		require.NoError(t, err)
		assert.False(t, exists)

		var contacts, opportunities int64
		require.NoError(t, db.Model(&models.Contact{}).Where("account_id = ?", account.ID).Count(&contacts).Error)
		require.NoError(t, db.Model(&models.Opportunity{}).Where("account_id = ?", account.ID).Count(&opportunities).Error)
		assert.Zero(t, contacts)
		assert.Zero(t, opportunities)
	})

	t.Run("Missing rows", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, 9999), repositories.ErrNotFound)
	})
}
