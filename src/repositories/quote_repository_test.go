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

func TestQuoteRepository(t *testing.T) {
	db := init_test.SetupTestDB(t)
	repo := repositories.NewQuoteRepository(db)
	ctx := context.Background()

	account := init_test.CreateAccount(t, db, "Fenwick Estates")
	opportunity := init_test.CreateOpportunity(t, db, account.ID, "Stair cores", "Bid Submitted", 80000, nil)

	number, err := repo.NextQuoteNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Q-0001", number)

	quote := &models.Quote{
		OpportunityID:    opportunity.ID,
		QuoteNumber:      number,
		Date:             init_test.Date(2024, 5, 20),
		Status:           "Submitted",
		TotalValue:       78500,
		Currency:         "GBP",
		PriceIndexClause: true,
	}
	require.NoError(t, repo.Create(ctx, quote))

	t.Run("NextQuoteNumber advances", func(t *testing.T) {
		next, err := repo.NextQuoteNumber(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Q-0002", next)
	})

	t.Run("Duplicate quote number", func(t *testing.T) {
		dup := &models.Quote{OpportunityID: opportunity.ID, QuoteNumber: number, Status: "Draft", Currency: "GBP"}
		assert.ErrorIs(t, repo.Create(ctx, dup), repositories.ErrDuplicate)
	})

	t.Run("GetAll joins opportunity name", func(t *testing.T) {
		quotes, err := repo.GetAll(ctx, utils.Paginate{})
		require.NoError(t, err)
		require.Len(t, quotes, 1)
		require.NotNil(t, quotes[0].OpportunityName)
		assert.Equal(t, "Stair cores", *quotes[0].OpportunityName)
		assert.True(t, quotes[0].PriceIndexClause)
		require.NotNil(t, quotes[0].Date)
		assert.Equal(t, "2024-05-20", utils.FormatDate(*quotes[0].Date))
	})

	t.Run("Items", func(t *testing.T) {
		require.NoError(t, repo.AddItem(ctx, &models.QuoteItem{QuoteID: quote.ID, Description: "Landing slab", Quantity: 4, Unit: "ea", UnitPrice: 1250}))
		second := &models.QuoteItem{QuoteID: quote.ID, Description: "Delivery", Quantity: 1, UnitPrice: 600}
		require.NoError(t, repo.AddItem(ctx, second))

		items, err := repo.GetItems(ctx, quote.ID)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, 5000.0, items[0].LineTotal())

		assert.ErrorIs(t, repo.DeleteItem(ctx, quote.ID+1, second.ID), repositories.ErrNotFound)
		require.NoError(t, repo.DeleteItem(ctx, quote.ID, second.ID))
		items, err = repo.GetItems(ctx, quote.ID)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("Deleting the opportunity removes its quotes", func(t *testing.T) {
		require.NoError(t, repositories.NewOpportunityRepository(db).Delete(ctx, opportunity.ID))
		_, err := repo.GetByID(ctx, quote.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}
