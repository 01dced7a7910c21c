package schemas

import (
	"time"

	"crm/src/models"
	"crm/src/utils"
)

type CreateOpportunityRequest struct {
	AccountID uint   `json:"account_id" validate:"required"`
	Name      string `json:"name" validate:"required,max=200"`
	Stage     string `json:"stage" validate:"stage"`
	// nil defaults to today, "" means no expected close date.
	ExpectedCloseDate *string  `json:"expected_close_date" validate:"omitnil,date"`
	Value             float64  `json:"value" validate:"gte=0,lte=1000000000"`
	ProductType       string   `json:"product_type" validate:"max=100"`
	Region            string   `json:"region" validate:"max=100"`
	Probability       *float64 `json:"probability" validate:"omitnil,gte=0,lte=1"`
	Source            string   `json:"source" validate:"max=100"`
}

func (r *CreateOpportunityRequest) Normalize(today time.Time) {
	trim(&r.Name)
	trim(&r.ProductType)
	trim(&r.Region)
	trim(&r.Source)
	orDefault(&r.Stage, models.DefaultStage)
	orDefault(&r.ProductType, models.DefaultProductType)
	orDefault(&r.Source, models.DefaultSource)
	if r.ExpectedCloseDate == nil {
		d := utils.FormatDate(today)
		r.ExpectedCloseDate = &d
	}
	if r.Probability == nil {
		p := models.DefaultProbability
		r.Probability = &p
	}
}

func (r *CreateOpportunityRequest) ToModel() (*models.Opportunity, error) {
	var closeDate *time.Time
	if r.ExpectedCloseDate != nil {
		d, err := utils.ParseOptionalDate(*r.ExpectedCloseDate)
		if err != nil {
			return nil, utils.UnprocessableEntity(err.Error())
		}
		closeDate = d
	}
	probability := models.DefaultProbability
	if r.Probability != nil {
		probability = *r.Probability
	}
	return &models.Opportunity{
		AccountID:         r.AccountID,
		Name:              r.Name,
		Stage:             r.Stage,
		ExpectedCloseDate: closeDate,
		Value:             r.Value,
		ProductType:       r.ProductType,
		Region:            r.Region,
		Probability:       probability,
		Source:            r.Source,
	}, nil
}

type UpdateOpportunityRequest struct {
	ID                uint     `json:"-"`
	AccountID         *uint    `json:"account_id" validate:"omitnil,gt=0"`
	Name              *string  `json:"name" validate:"omitnil,min=1,max=200"`
	Stage             *string  `json:"stage" validate:"omitnil,stage"`
	ExpectedCloseDate *string  `json:"expected_close_date" validate:"omitnil,date"`
	Value             *float64 `json:"value" validate:"omitnil,gte=0,lte=1000000000"`
	ProductType       *string  `json:"product_type" validate:"omitnil,max=100"`
	Region            *string  `json:"region" validate:"omitnil,max=100"`
	Probability       *float64 `json:"probability" validate:"omitnil,gte=0,lte=1"`
	Source            *string  `json:"source" validate:"omitnil,max=100"`
}

func (r *UpdateOpportunityRequest) Normalize() {
	trim(r.Name)
	trim(r.ProductType)
	trim(r.Region)
	trim(r.Source)
}

func (r *UpdateOpportunityRequest) Apply(o *models.Opportunity) error {
	if r.ExpectedCloseDate != nil {
		d, err := utils.ParseOptionalDate(*r.ExpectedCloseDate)
		if err != nil {
			return utils.UnprocessableEntity(err.Error())
		}
		o.ExpectedCloseDate = d
	}
	if r.AccountID != nil {
		o.AccountID = *r.AccountID
	}
	if r.Name != nil {
		o.Name = *r.Name
	}
	if r.Stage != nil {
		o.Stage = *r.Stage
	}
	if r.Value != nil {
		o.Value = *r.Value
	}
	if r.ProductType != nil {
		o.ProductType = *r.ProductType
	}
	if r.Region != nil {
		o.Region = *r.Region
	}
	if r.Probability != nil {
		o.Probability = *r.Probability
	}
	if r.Source != nil {
		o.Source = *r.Source
	}
	return nil
}

type OpportunityResponse struct {
	ID                uint    `json:"id"`
	AccountID         uint    `json:"account_id"`
	AccountName       *string `json:"account,omitempty"`
	Name              string  `json:"name"`
	Stage             string  `json:"stage"`
	ExpectedCloseDate *string `json:"expected_close_date"`
	Value             float64 `json:"value"`
	ProductType       string  `json:"product_type"`
	Region            string  `json:"region"`
	Probability       float64 `json:"probability"`
	Source            string  `json:"source"`
}

func NewOpportunityResponse(o *models.Opportunity) *OpportunityResponse {
	return &OpportunityResponse{
		ID:                o.ID,
		AccountID:         o.AccountID,
		Name:              o.Name,
		Stage:             o.Stage,
		ExpectedCloseDate: utils.FormatOptionalDate(o.ExpectedCloseDate),
		Value:             o.Value,
		ProductType:       o.ProductType,
		Region:            o.Region,
		Probability:       o.Probability,
		Source:            o.Source,
	}
}

func NewOpportunityRowResponse(o *models.OpportunityWithAccount) *OpportunityResponse {
	return &OpportunityResponse{
		ID:                o.ID,
		AccountID:         o.AccountID,
		AccountName:       o.AccountName,
		Name:              o.Name,
		Stage:             o.Stage,
		ExpectedCloseDate: utils.FormatOptionalDate(o.ExpectedCloseDate),
		Value:             o.Value,
		ProductType:       o.ProductType,
		Region:            o.Region,
		Probability:       o.Probability,
		Source:            o.Source,
	}
}
