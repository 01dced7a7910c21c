package repositories_test

import (
	"context"
	"testing"

	"crm/src/init_test"
	"crm/src/repositories"
	"crm/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpportunityRepository(t *testing.T) {
	db := init_test.SetupTestDB(t)
	repo := repositories.NewOpportunityRepository(db)
	ctx := context.Background()

	account := init_test.CreateAccount(t, db, "Ridge Developments")
	school := init_test.CreateOpportunity(t, db, account.ID, "School extension", "Estimating", 120000, init_test.Date(2024, 3, 1))
	init_test.CreateOpportunity(t, db, account.ID, "Retail unit", "Estimating", 30000, nil)
	init_test.CreateOpportunity(t, db, account.ID, "Bridge beams", "Closed Won", 400000, init_test.Date(2024, 1, 15))
	init_test.CreateOpportunity(t, db, account.ID, "Warehouse slab", "Lead", 0, nil)

	t.Run("PipelineByStage orders by total descending", func(t *testing.T) {
		totals, err := repo.PipelineByStage(ctx)
		require.NoError(t, err)
		require.Len(t, totals, 3)
		assert.Equal(t, "Closed Won", totals[0].Stage)
		assert.Equal(t, 400000.0, totals[0].Total)
		assert.Equal(t, "Estimating", totals[1].Stage)
		assert.Equal(t, 150000.0, totals[1].Total)
		assert.Equal(t, "Lead", totals[2].Stage)
		assert.Equal(t, 0.0, totals[2].Total)
	})

	t.Run("GetAll joins account and keeps dates", func(t *testing.T) {
		opportunities, err := repo.GetAll(ctx, utils.Paginate{})
		require.NoError(t, err)
		require.Len(t, opportunities, 4)
		assert.Equal(t, "Warehouse slab", opportunities[0].Name)
		require.NotNil(t, opportunities[0].AccountName)
		assert.Equal(t, "Ridge Developments", *opportunities[0].AccountName)

		last := opportunities[3]
		assert.Equal(t, school.ID, last.ID)
		require.NotNil(t, last.ExpectedCloseDate)
		assert.Equal(t, "2024-03-01", utils.FormatDate(*last.ExpectedCloseDate))
	})

	t.Run("GetOpen skips closed stages", func(t *testing.T) {
		open, err := repo.GetOpen(ctx)
		require.NoError(t, err)
		require.Len(t, open, 3)
		for _, o := range open {
			assert.NotEqual(t, "Closed Won", o.Stage)
		}
	})

	t.Run("GetOptions newest first", func(t *testing.T) {
		options, err := repo.GetOptions(ctx)
		require.NoError(t, err)
		require.Len(t, options, 4)
		assert.Equal(t, "Warehouse slab", options[0].Name)
	})

	t.Run("Update clears the close date", func(t *testing.T) {
		school.ExpectedCloseDate = nil
		school.Stage = "Bid Submitted"
		require.NoError(t, repo.Update(ctx, school))

		retrieved, err := repo.GetByID(ctx, school.ID)
		require.NoError(t, err)
		assert.Nil(t, retrieved.ExpectedCloseDate)
		assert.Equal(t, "Bid Submitted", retrieved.Stage)
	})

	t.Run("Exists", func(t *testing.T) {
		ok, err := repo.Exists(ctx, school.ID)
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = repo.Exists(ctx, 777)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, school.ID))
		assert.ErrorIs(t, repo.Delete(ctx, school.ID), repositories.ErrNotFound)
	})
}
