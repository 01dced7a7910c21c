package services

import (
	"context"
	"io"
	"time"

	"crm/src/models"
	"crm/src/repositories"
	"crm/src/schemas"
	"crm/src/utils"
	"crm/src/utils/render"
)

const (
	noOpportunitiesMessage = "No opportunities yet."
	noOverdueMessage       = "No overdue opportunities."
)

type ReportServiceI interface {
	Pipeline(ctx context.Context) (*schemas.PipelineResponse, error)
	Dashboard(ctx context.Context, title string, today time.Time) (*schemas.DashboardResponse, error)
	Overdue(ctx context.Context, today time.Time) (*schemas.OverdueResponse, error)
	Board(ctx context.Context) (*schemas.BoardResponse, error)
	RenderPipelineChart(ctx context.Context, w io.Writer) error
}

type ReportService struct {
	Accounts      repositories.AccountRepository
	Opportunities repositories.OpportunityRepository
	Activities    repositories.ActivityRepository
}

func NewReportService(
	accounts repositories.AccountRepository,
	opportunities repositories.OpportunityRepository,
	activities repositories.ActivityRepository,
) *ReportService {
	return &ReportService{Accounts: accounts, Opportunities: opportunities, Activities: activities}
}

// Pipeline sums opportunity value per stage, largest total first.
func (rs *ReportService) Pipeline(ctx context.Context) (*schemas.PipelineResponse, error) {
	totals, err := rs.Opportunities.PipelineByStage(ctx)
	if err != nil {
		return nil, err
	}
	response := &schemas.PipelineResponse{Stages: make([]schemas.StageTotalResponse, 0, len(totals))}
	for _, t := range totals {
		response.Stages = append(response.Stages, schemas.StageTotalResponse{Stage: t.Stage, Total: t.Total})
		response.Total += t.Total
	}
	return response, nil
}

func (rs *ReportService) Dashboard(ctx context.Context, title string, today time.Time) (*schemas.DashboardResponse, error) {
	pipeline, err := rs.Pipeline(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := rs.Accounts.Count(ctx)
	if err != nil {
		return nil, err
	}
	openActivities, err := rs.Activities.CountOpen(ctx)
	if err != nil {
		return nil, err
	}
	open, err := rs.Opportunities.GetOpen(ctx)
	if err != nil {
		return nil, err
	}

	response := &schemas.DashboardResponse{
		Title:                title,
		Pipeline:             *pipeline,
		Accounts:             accounts,
		OpenOpportunities:    len(open),
		OpenActivities:       int(openActivities),
		OverdueOpportunities: len(overdue(open, today)),
	}
	for _, o := range open {
		response.WeightedPipeline += o.Value * o.Probability
	}
	if len(pipeline.Stages) == 0 {
		response.Message = noOpportunitiesMessage
	}
	return response, nil
}

// Overdue lists open opportunities whose expected close date is strictly
// before today. Opportunities without a date are never overdue.
func (rs *ReportService) Overdue(ctx context.Context, today time.Time) (*schemas.OverdueResponse, error) {
	open, err := rs.Opportunities.GetOpen(ctx)
	if err != nil {
		return nil, err
	}
	rows := overdue(open, today)

	response := &schemas.OverdueResponse{
		AsOf:          utils.FormatDate(today),
		Opportunities: make([]*schemas.OpportunityResponse, 0, len(rows)),
	}
	for i := range rows {
		response.Opportunities = append(response.Opportunities, schemas.NewOpportunityRowResponse(&rows[i]))
	}
	if len(rows) == 0 {
		response.Message = noOverdueMessage
	}
	return response, nil
}

func overdue(open []models.OpportunityWithAccount, today time.Time) []models.OpportunityWithAccount {
	out := make([]models.OpportunityWithAccount, 0)
	for _, o := range open {
		if models.IsClosedStage(o.Stage) || o.ExpectedCloseDate == nil {
			continue
		}
		if utils.IsBeforeDay(*o.ExpectedCloseDate, today) {
			out = append(out, o)
		}
	}
	return out
}

// Board groups every opportunity by stage. Columns appear in the order their
// stage is first seen in the newest-first listing.
func (rs *ReportService) Board(ctx context.Context) (*schemas.BoardResponse, error) {
	opportunities, err := rs.Opportunities.GetAll(ctx, utils.Paginate{})
	if err != nil {
		return nil, err
	}

	response := &schemas.BoardResponse{Columns: make([]schemas.BoardColumn, 0)}
	index := make(map[string]int)
	for i := range opportunities {
		o := &opportunities[i]
		pos, ok := index[o.Stage]
		if !ok {
			pos = len(response.Columns)
			index[o.Stage] = pos
			response.Columns = append(response.Columns, schemas.BoardColumn{
				Stage:         o.Stage,
				Opportunities: make([]*schemas.OpportunityResponse, 0),
			})
		}
		column := &response.Columns[pos]
		column.Opportunities = append(column.Opportunities, schemas.NewOpportunityRowResponse(o))
		column.Total += o.Value
	}
	if len(opportunities) == 0 {
		response.Message = noOpportunitiesMessage
	}
	return response, nil
}

func (rs *ReportService) RenderPipelineChart(ctx context.Context, w io.Writer) error {
	pipeline, err := rs.Pipeline(ctx)
	if err != nil {
		return err
	}
	data := make([]render.BarSeries, 0, len(pipeline.Stages))
	for _, s := range pipeline.Stages {
		data = append(data, render.BarSeries{Label: s.Stage, Value: s.Total})
	}
	return render.RenderBarGraph(w, "Pipeline by stage", "Value", data)
}
