package controllers

import (
	"context"

	"crm/src/repositories"
	"crm/src/schemas"
	"crm/src/utils"
)

type OpportunityControllerI interface {
	GetAllOpportunities(ctx context.Context, page utils.Paginate) ([]*schemas.OpportunityResponse, error)
	GetOpportunityByID(ctx context.Context, id uint) (*schemas.OpportunityResponse, error)
	CreateOpportunity(ctx context.Context, req *schemas.CreateOpportunityRequest) (*schemas.OpportunityResponse, error)
	UpdateOpportunity(ctx context.Context, req *schemas.UpdateOpportunityRequest) (*schemas.OpportunityResponse, error)
	DeleteOpportunity(ctx context.Context, id uint) error
}

type OpportunityController struct {
	Opportunities repositories.OpportunityRepository
	Accounts      repositories.AccountRepository
	Clock         Clock
}

func NewOpportunityController(opportunities repositories.OpportunityRepository, accounts repositories.AccountRepository, clock Clock) *OpportunityController {
	return &OpportunityController{Opportunities: opportunities, Accounts: accounts, Clock: clock}
}

func (c *OpportunityController) accountExists(ctx context.Context) existsFunc {
	return func(id uint) (bool, error) { return c.Accounts.Exists(ctx, id) }
}

func (c *OpportunityController) GetAllOpportunities(ctx context.Context, page utils.Paginate) ([]*schemas.OpportunityResponse, error) {
	opportunities, err := c.Opportunities.GetAll(ctx, page)
	if err != nil {
		return nil, err
	}
	responses := make([]*schemas.OpportunityResponse, 0, len(opportunities))
	for i := range opportunities {
		responses = append(responses, schemas.NewOpportunityRowResponse(&opportunities[i]))
	}
	return responses, nil
}

func (c *OpportunityController) GetOpportunityByID(ctx context.Context, id uint) (*schemas.OpportunityResponse, error) {
	opportunity, err := c.Opportunities.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "opportunity")
	}
	return schemas.NewOpportunityResponse(opportunity), nil
}

func (c *OpportunityController) CreateOpportunity(ctx context.Context, req *schemas.CreateOpportunityRequest) (*schemas.OpportunityResponse, error) {
	req.Normalize(today(c.Clock))
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}
	if err := requireRef(req.AccountID, "account_id", c.accountExists(ctx)); err != nil {
		return nil, err
	}
	opportunity, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	if err := c.Opportunities.Create(ctx, opportunity); err != nil {
		return nil, translate(err, "opportunity")
	}
	return schemas.NewOpportunityResponse(opportunity), nil
}

func (c *OpportunityController) UpdateOpportunity(ctx context.Context, req *schemas.UpdateOpportunityRequest) (*schemas.OpportunityResponse, error) {
	req.Normalize()
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}
	opportunity, err := c.Opportunities.GetByID(ctx, req.ID)
	if err != nil {
		return nil, translate(err, "opportunity")
	}
	if req.AccountID != nil {
		if err := requireRef(*req.AccountID, "account_id", c.accountExists(ctx)); err != nil {
			return nil, err
		}
	}
	if err := req.Apply(opportunity); err != nil {
		return nil, err
	}
	if err := c.Opportunities.Update(ctx, opportunity); err != nil {
		return nil, translate(err, "opportunity")
	}
	return schemas.NewOpportunityResponse(opportunity), nil
}

// DeleteOpportunity also removes its quotes; linked activities are kept and
// lose the reference.
func (c *OpportunityController) DeleteOpportunity(ctx context.Context, id uint) error {
	return translate(c.Opportunities.Delete(ctx, id), "opportunity")
}
