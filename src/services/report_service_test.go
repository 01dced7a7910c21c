package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"crm/src/init_test"
	"crm/src/models"
	"crm/src/repositories"
	"crm/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReportService(db *gorm.DB) *services.ReportService {
	return services.NewReportService(
		repositories.NewAccountRepository(db),
		repositories.NewOpportunityRepository(db),
		repositories.NewActivityRepository(db),
	)
}

func TestReportServiceEmpty(t *testing.T) {
	db := init_test.SetupTestDB(t)
	rs := newReportService(db)
	ctx := context.Background()
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	pipeline, err := rs.Pipeline(ctx)
	require.NoError(t, err)
	assert.Empty(t, pipeline.Stages)
	assert.Zero(t, pipeline.Total)

	dashboard, err := rs.Dashboard(ctx, "CRM", today)
	require.NoError(t, err)
	assert.Equal(t, "No opportunities yet.", dashboard.Message)
	assert.Zero(t, dashboard.Accounts)

	board, err := rs.Board(ctx)
	require.NoError(t, err)
	assert.Empty(t, board.Columns)
	assert.Equal(t, "No opportunities yet.", board.Message)

	overdue, err := rs.Overdue(ctx, today)
	require.NoError(t, err)
	assert.Empty(t, overdue.Opportunities)
	assert.Equal(t, "2024-06-15", overdue.AsOf)
}

func TestReportService(t *testing.T) {
	db := init_test.SetupTestDB(t)
	rs := newReportService(db)
	ctx := context.Background()
	today := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

	account := init_test.CreateAccount(t, db, "Granite Homes")
	past := init_test.CreateOpportunity(t, db, account.ID, "Past due", "Negotiation", 100000, init_test.Date(2024, 6, 14))
	init_test.CreateOpportunity(t, db, account.ID, "Due today", "Lead", 5000, init_test.Date(2024, 6, 15))
	init_test.CreateOpportunity(t, db, account.ID, "No date", "Lead", 7000, nil)
	init_test.CreateOpportunity(t, db, account.ID, "Closed late", "Closed Lost", 40000, init_test.Date(2024, 1, 1))
	init_test.CreateOpportunity(t, db, account.ID, "Future", "Negotiation", 20000, init_test.Date(2024, 9, 1))
	require.NoError(t, db.Create(&models.Activity{Type: "Call", Owner: "Sales"}).Error)

	t.Run("Pipeline", func(t *testing.T) {
		pipeline, err := rs.Pipeline(ctx)
		require.NoError(t, err)
		require.Len(t, pipeline.Stages, 3)
		assert.Equal(t, "Negotiation", pipeline.Stages[0].Stage)
		assert.Equal(t, 120000.0, pipeline.Stages[0].Total)
		assert.Equal(t, "Closed Lost", pipeline.Stages[1].Stage)
		assert.Equal(t, "Lead", pipeline.Stages[2].Stage)
		assert.Equal(t, 172000.0, pipeline.Total)
	})

	t.Run("Overdue excludes today, undated and closed", func(t *testing.T) {
		overdue, err := rs.Overdue(ctx, today)
		require.NoError(t, err)
		require.Len(t, overdue.Opportunities, 1)
		assert.Equal(t, past.ID, overdue.Opportunities[0].ID)
		assert.Empty(t, overdue.Message)
	})

	t.Run("Dashboard", func(t *testing.T) {
		dashboard, err := rs.Dashboard(ctx, "Rockland Concrete CRM", today)
		require.NoError(t, err)
		assert.Equal(t, "Rockland Concrete CRM", dashboard.Title)
		assert.Equal(t, int64(1), dashboard.Accounts)
		assert.Equal(t, 4, dashboard.OpenOpportunities)
		assert.Equal(t, 1, dashboard.OpenActivities)
		assert.Equal(t, 1, dashboard.OverdueOpportunities)
		assert.InDelta(t, 132000*0.3, dashboard.WeightedPipeline, 0.001)
		assert.Empty(t, dashboard.Message)
	})

	t.Run("Board groups by first appearance", func(t *testing.T) {
		board, err := rs.Board(ctx)
		require.NoError(t, err)
		require.Len(t, board.Columns, 3)
		assert.Equal(t, "Negotiation", board.Columns[0].Stage)
		assert.Equal(t, "Closed Lost", board.Columns[1].Stage)
		assert.Equal(t, "Lead", board.Columns[2].Stage)

		negotiation := board.Columns[0]
		require.Len(t, negotiation.Opportunities, 2)
		assert.Equal(t, "Future", negotiation.Opportunities[0].Name)
		assert.Equal(t, "Past due", negotiation.Opportunities[1].Name)
		assert.Equal(t, 120000.0, negotiation.Total)
	})

	t.Run("Pipeline chart", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, rs.RenderPipelineChart(ctx, &buf))
		assert.Contains(t, buf.String(), "Negotiation")
	})
}
