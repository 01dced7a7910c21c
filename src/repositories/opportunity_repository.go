package repositories

import (
	"context"

	"crm/src/models"
	"crm/src/utils"

	"gorm.io/gorm"
)

type OpportunityRepository interface {
	GetAll(ctx context.Context, page utils.Paginate) ([]models.OpportunityWithAccount, error)
	GetOpen(ctx context.Context) ([]models.OpportunityWithAccount, error)
	GetOptions(ctx context.Context) ([]models.Option, error)
	PipelineByStage(ctx context.Context) ([]models.StageTotal, error)
	GetByID(ctx context.Context, id uint) (*models.Opportunity, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, opportunity *models.Opportunity) error
	Update(ctx context.Context, opportunity *models.Opportunity) error
	Delete(ctx context.Context, id uint) error
}

type opportunityRepo struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) OpportunityRepository {
	return &opportunityRepo{db: db}
}

const opportunityColumns = "o.id, o.account_id, a.name AS account_name, o.name, o.stage, o.expected_close_date, " +
	"o.value, o.product_type, o.region, o.probability, o.source"

const pipelineQuery = `
	SELECT stage, COALESCE(SUM(value), 0) AS total
	FROM opportunities
	GROUP BY stage
	ORDER BY total DESC, stage ASC`

func (r *opportunityRepo) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("opportunities AS o").
		Select(opportunityColumns).
		Joins("LEFT JOIN accounts a ON a.id = o.account_id")
}

// GetAll lists opportunities newest first with their account name.
func (r *opportunityRepo) GetAll(ctx context.Context, page utils.Paginate) ([]models.OpportunityWithAccount, error) {
	opportunities := make([]models.OpportunityWithAccount, 0)
	err := paginate(r.joined(ctx).Order("o.id DESC"), page).Scan(&opportunities).Error
	return opportunities, err
}

// GetOpen lists opportunities outside the closed stages, newest first.
func (r *opportunityRepo) GetOpen(ctx context.Context) ([]models.OpportunityWithAccount, error) {
	opportunities := make([]models.OpportunityWithAccount, 0)
	err := r.joined(ctx).
		Where("o.stage NOT IN ?", models.ClosedStages).
		Order("o.id DESC").
		Scan(&opportunities).Error
	return opportunities, err
}

func (r *opportunityRepo) GetOptions(ctx context.Context) ([]models.Option, error) {
	options := make([]models.Option, 0)
	err := r.db.WithContext(ctx).Model(&models.Opportunity{}).
		Select("id, name").
		Order("id DESC").
		Scan(&options).Error
	return options, err
}

// PipelineByStage sums opportunity value per stage, largest total first.
func (r *opportunityRepo) PipelineByStage(ctx context.Context) ([]models.StageTotal, error) {
	totals := make([]models.StageTotal, 0)
	err := r.db.WithContext(ctx).Raw(pipelineQuery).Scan(&totals).Error
	return totals, err
}

func (r *opportunityRepo) GetByID(ctx context.Context, id uint) (*models.Opportunity, error) {
	var opportunity models.Opportunity
	if err := r.db.WithContext(ctx).First(&opportunity, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &opportunity, nil
}

func (r *opportunityRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(r.db.WithContext(ctx), models.Opportunity{}.TableName(), id)
}

func (r *opportunityRepo) Create(ctx context.Context, opportunity *models.Opportunity) error {
	return translateError(r.db.WithContext(ctx).Create(opportunity).Error)
}

func (r *opportunityRepo) Update(ctx context.Context, opportunity *models.Opportunity) error {
	return translateError(r.db.WithContext(ctx).Save(opportunity).Error)
}

func (r *opportunityRepo) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Opportunity{}, id)
}
