package repositories

import (
	"context"
	"fmt"

	"crm/src/models"
	"crm/src/utils"

	"gorm.io/gorm"
)

type QuoteRepository interface {
	GetAll(ctx context.Context, page utils.Paginate) ([]models.QuoteWithOpportunity, error)
	GetByID(ctx context.Context, id uint) (*models.Quote, error)
	NextQuoteNumber(ctx context.Context) (string, error)
	Create(ctx context.Context, quote *models.Quote) error
	Update(ctx context.Context, quote *models.Quote) error
	Delete(ctx context.Context, id uint) error

	GetItems(ctx context.Context, quoteID uint) ([]models.QuoteItem, error)
	AddItem(ctx context.Context, item *models.QuoteItem) error
	DeleteItem(ctx context.Context, quoteID uint, itemID uint) error
}

type quoteRepo struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) QuoteRepository {
	return &quoteRepo{db: db}
}

func (r *quoteRepo) GetAll(ctx context.Context, page utils.Paginate) ([]models.QuoteWithOpportunity, error) {
	query := r.db.WithContext(ctx).
		Table("quotes AS q").
		Select("q.id, q.opportunity_id, o.name AS opportunity_name, q.quote_number, q.date, q.status, " +
			"q.total_value, q.currency, q.price_index_clause").
		Joins("LEFT JOIN opportunities o ON o.id = q.opportunity_id").
		Order("q.id DESC")

	quotes := make([]models.QuoteWithOpportunity, 0)
	err := paginate(query, page).Scan(&quotes).Error
	return quotes, err
}

func (r *quoteRepo) GetByID(ctx context.Context, id uint) (*models.Quote, error) {
	var quote models.Quote
	if err := r.db.WithContext(ctx).First(&quote, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &quote, nil
}

// NextQuoteNumber proposes Q-NNNN after the highest quote id.
func (r *quoteRepo) NextQuoteNumber(ctx context.Context) (string, error) {
	var maxID int64
	err := r.db.WithContext(ctx).Model(&models.Quote{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Q-%04d", maxID+1), nil
}

func (r *quoteRepo) Create(ctx context.Context, quote *models.Quote) error {
	return translateError(r.db.WithContext(ctx).Create(quote).Error)
}

func (r *quoteRepo) Update(ctx context.Context, quote *models.Quote) error {
	return translateError(r.db.WithContext(ctx).Save(quote).Error)
}

func (r *quoteRepo) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Quote{}, id)
}

func (r *quoteRepo) GetItems(ctx context.Context, quoteID uint) ([]models.QuoteItem, error) {
	items := make([]models.QuoteItem, 0)
	err := r.db.WithContext(ctx).
		Where("quote_id = ?", quoteID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *quoteRepo) AddItem(ctx context.Context, item *models.QuoteItem) error {
	return translateError(r.db.WithContext(ctx).Create(item).Error)
}

func (r *quoteRepo) DeleteItem(ctx context.Context, quoteID uint, itemID uint) error {
	return deleteByID(r.db.WithContext(ctx).Where("quote_id = ?", quoteID), &models.QuoteItem{}, itemID)
}
