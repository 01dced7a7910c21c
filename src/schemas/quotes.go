package schemas

import (
	"time"

	"crm/src/models"
	"crm/src/utils"
)

type CreateQuoteRequest struct {
	OpportunityID uint `json:"opportunity_id" validate:"required"`
	// Generated as Q-NNNN when empty.
	QuoteNumber      string  `json:"quote_number" validate:"max=50"`
	Date             *string `json:"date" validate:"omitnil,date"`
	Status           string  `json:"status" validate:"quote_status"`
	TotalValue       float64 `json:"total_value" validate:"gte=0,lte=1000000000"`
	Currency         string  `json:"currency" validate:"currency"`
	PriceIndexClause bool    `json:"price_index_clause"`
}

func (r *CreateQuoteRequest) Normalize(today time.Time) {
	trim(&r.QuoteNumber)
	orDefault(&r.Status, models.DefaultQuoteStatus)
	orDefault(&r.Currency, models.DefaultCurrency)
	if r.Date == nil {
		d := utils.FormatDate(today)
		r.Date = &d
	}
}

func (r *CreateQuoteRequest) ToModel() (*models.Quote, error) {
	var date *time.Time
	if r.Date != nil {
		d, err := utils.ParseOptionalDate(*r.Date)
		if err != nil {
			return nil, utils.UnprocessableEntity(err.Error())
		}
		date = d
	}
	return &models.Quote{
		OpportunityID:    r.OpportunityID,
		QuoteNumber:      r.QuoteNumber,
		Date:             date,
		Status:           r.Status,
		TotalValue:       r.TotalValue,
		Currency:         r.Currency,
		PriceIndexClause: r.PriceIndexClause,
	}, nil
}

type UpdateQuoteRequest struct {
	ID               uint     `json:"-"`
	QuoteNumber      *string  `json:"quote_number" validate:"omitnil,min=1,max=50"`
	Date             *string  `json:"date" validate:"omitnil,date"`
	Status           *string  `json:"status" validate:"omitnil,quote_status"`
	TotalValue       *float64 `json:"total_value" validate:"omitnil,gte=0,lte=1000000000"`
	Currency         *string  `json:"currency" validate:"omitnil,currency"`
	PriceIndexClause *bool    `json:"price_index_clause"`
}

func (r *UpdateQuoteRequest) Normalize() {
	trim(r.QuoteNumber)
}

func (r *UpdateQuoteRequest) Apply(q *models.Quote) error {
	if r.Date != nil {
		d, err := utils.ParseOptionalDate(*r.Date)
		if err != nil {
			return utils.UnprocessableEntity(err.Error())
		}
		q.Date = d
	}
	if r.QuoteNumber != nil {
		q.QuoteNumber = *r.QuoteNumber
	}
	if r.Status != nil {
		q.Status = *r.Status
	}
	if r.TotalValue != nil {
		q.TotalValue = *r.TotalValue
	}
	if r.Currency != nil {
		q.Currency = *r.Currency
	}
	if r.PriceIndexClause != nil {
		q.PriceIndexClause = *r.PriceIndexClause
	}
	return nil
}

type QuoteResponse struct {
	ID               uint    `json:"id"`
	OpportunityID    uint    `json:"opportunity_id"`
	OpportunityName  *string `json:"opportunity,omitempty"`
	QuoteNumber      string  `json:"quote_number"`
	Date             *string `json:"date"`
	Status           string  `json:"status"`
	TotalValue       float64 `json:"total_value"`
	Currency         string  `json:"currency"`
	PriceIndexClause bool    `json:"price_index_clause"`
}

func NewQuoteResponse(q *models.Quote) *QuoteResponse {
	return &QuoteResponse{
		ID:               q.ID,
		OpportunityID:    q.OpportunityID,
		QuoteNumber:      q.QuoteNumber,
		Date:             utils.FormatOptionalDate(q.Date),
		Status:           q.Status,
		TotalValue:       q.TotalValue,
		Currency:         q.Currency,
		PriceIndexClause: q.PriceIndexClause,
	}
}

func NewQuoteRowResponse(q *models.QuoteWithOpportunity) *QuoteResponse {
	return &QuoteResponse{
		ID:               q.ID,
		OpportunityID:    q.OpportunityID,
		OpportunityName:  q.OpportunityName,
		QuoteNumber:      q.QuoteNumber,
		Date:             utils.FormatOptionalDate(q.Date),
		Status:           q.Status,
		TotalValue:       q.TotalValue,
		Currency:         q.Currency,
		PriceIndexClause: q.PriceIndexClause,
	}
}

type CreateQuoteItemRequest struct {
	QuoteID     uint     `json:"-"`
	Description string   `json:"description" validate:"required,max=500"`
	Quantity    *float64 `json:"quantity" validate:"omitnil,gt=0"`
	Unit        string   `json:"unit" validate:"max=20"`
	UnitPrice   float64  `json:"unit_price" validate:"gte=0,lte=1000000000"`
}

func (r *CreateQuoteItemRequest) Normalize() {
	trim(&r.Description)
	trim(&r.Unit)
	if r.Quantity == nil {
		one := 1.0
		r.Quantity = &one
	}
}

func (r *CreateQuoteItemRequest) ToModel() *models.QuoteItem {
	quantity := 1.0
	if r.Quantity != nil {
		quantity = *r.Quantity
	}
	return &models.QuoteItem{
		QuoteID:     r.QuoteID,
		Description: r.Description,
		Quantity:    quantity,
		Unit:        r.Unit,
		UnitPrice:   r.UnitPrice,
	}
}

type QuoteItemResponse struct {
	ID          uint    `json:"id"`
	QuoteID     uint    `json:"quote_id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

func NewQuoteItemResponse(i *models.QuoteItem) *QuoteItemResponse {
	return &QuoteItemResponse{
		ID:          i.ID,
		QuoteID:     i.QuoteID,
		Description: i.Description,
		Quantity:    i.Quantity,
		Unit:        i.Unit,
		UnitPrice:   i.UnitPrice,
		LineTotal:   i.LineTotal(),
	}
}

type QuoteItemsResponse struct {
	Items []*QuoteItemResponse `json:"items"`
	Total float64              `json:"total"`
}
