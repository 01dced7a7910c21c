package schemas

import (
	"time"

	"crm/src/models"
)

type CreateAccountRequest struct {
	Name         string  `json:"name" validate:"required,max=200"`
	Type         string  `json:"type" validate:"account_type"`
	Region       string  `json:"region" validate:"max=100"`
	CreditLimit  float64 `json:"credit_limit" validate:"gte=0,lte=1000000000"`
	PaymentTerms string  `json:"payment_terms" validate:"max=100"`
	RiskRating   string  `json:"risk_rating" validate:"risk_rating"`
}

// Normalize trims the free text fields and fills the form defaults.
func (r *CreateAccountRequest) Normalize() {
	trim(&r.Name)
	trim(&r.Region)
	trim(&r.PaymentTerms)
	orDefault(&r.Type, models.DefaultAccountType)
	orDefault(&r.PaymentTerms, models.DefaultPaymentTerms)
	orDefault(&r.RiskRating, models.DefaultRiskRating)
}

func (r *CreateAccountRequest) ToModel() *models.Account {
	return &models.Account{
		Name:         r.Name,
		Type:         r.Type,
		Region:       r.Region,
		CreditLimit:  r.CreditLimit,
		PaymentTerms: r.PaymentTerms,
		RiskRating:   r.RiskRating,
	}
}

type UpdateAccountRequest struct {
	ID           uint     `json:"-"`
	Name         *string  `json:"name" validate:"omitnil,min=1,max=200"`
	Type         *string  `json:"type" validate:"omitnil,account_type"`
	Region       *string  `json:"region" validate:"omitnil,max=100"`
	CreditLimit  *float64 `json:"credit_limit" validate:"omitnil,gte=0,lte=1000000000"`
	PaymentTerms *string  `json:"payment_terms" validate:"omitnil,max=100"`
	RiskRating   *string  `json:"risk_rating" validate:"omitnil,risk_rating"`
}

func (r *UpdateAccountRequest) Normalize() {
	trim(r.Name)
	trim(r.Region)
	trim(r.PaymentTerms)
}

// Apply copies the provided fields onto the stored account.
func (r *UpdateAccountRequest) Apply(a *models.Account) {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Type != nil {
		a.Type = *r.Type
	}
	if r.Region != nil {
		a.Region = *r.Region
	}
	if r.CreditLimit != nil {
		a.CreditLimit = *r.CreditLimit
	}
	if r.PaymentTerms != nil {
		a.PaymentTerms = *r.PaymentTerms
	}
	if r.RiskRating != nil {
		a.RiskRating = *r.RiskRating
	}
}

type AccountResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Region       string    `json:"region"`
	CreditLimit  float64   `json:"credit_limit"`
	PaymentTerms string    `json:"payment_terms"`
	RiskRating   string    `json:"risk_rating"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewAccountResponse(a *models.Account) *AccountResponse {
	return &AccountResponse{
		ID:           a.ID,
		Name:         a.Name,
		Type:         a.Type,
		Region:       a.Region,
		CreditLimit:  a.CreditLimit,
		PaymentTerms: a.PaymentTerms,
		RiskRating:   a.RiskRating,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

type OptionResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// LookupsResponse carries everything a client needs to render the forms.
type LookupsResponse struct {
	Accounts      []OptionResponse `json:"accounts"`
	Opportunities []OptionResponse `json:"opportunities"`
	AccountTypes  []string         `json:"account_types"`
	RiskRatings   []string         `json:"risk_ratings"`
	Stages        []string         `json:"stages"`
	QuoteStatuses []string         `json:"quote_statuses"`
	Currencies    []string         `json:"currencies"`
	ActivityTypes []string         `json:"activity_types"`
}

func NewOptions(options []models.Option) []OptionResponse {
	out := make([]OptionResponse, 0, len(options))
	for _, o := range options {
		out = append(out, OptionResponse{ID: o.ID, Name: o.Name})
	}
	return out
}
