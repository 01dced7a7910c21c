package controllers

import (
	"context"

	"crm/src/models"
	"crm/src/repositories"
	"crm/src/schemas"
	"crm/src/utils"
)

type AccountControllerI interface {
	GetAllAccounts(ctx context.Context, page utils.Paginate) ([]*schemas.AccountResponse, error)
	GetAccountByID(ctx context.Context, id uint) (*schemas.AccountResponse, error)
	CreateAccount(ctx context.Context, req *schemas.CreateAccountRequest) (*schemas.AccountResponse, error)
	UpdateAccount(ctx context.Context, req *schemas.UpdateAccountRequest) (*schemas.AccountResponse, error)
	DeleteAccount(ctx context.Context, id uint) error
	GetLookups(ctx context.Context) (*schemas.LookupsResponse, error)
}

type AccountController struct {
	Accounts      repositories.AccountRepository
	Opportunities repositories.OpportunityRepository
}

func NewAccountController(accounts repositories.AccountRepository, opportunities repositories.OpportunityRepository) *AccountController {
	return &AccountController{Accounts: accounts, Opportunities: opportunities}
}

func (c *AccountController) GetAllAccounts(ctx context.Context, page utils.Paginate) ([]*schemas.AccountResponse, error) {
	accounts, err := c.Accounts.GetAll(ctx, page)
	if err != nil {
		return nil, err
	}
	responses := make([]*schemas.AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, schemas.NewAccountResponse(&accounts[i]))
	}
	return responses, nil
}

func (c *AccountController) GetAccountByID(ctx context.Context, id uint) (*schemas.AccountResponse, error) {
	account, err := c.Accounts.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "account")
	}
	return schemas.NewAccountResponse(account), nil
}

func (c *AccountController) CreateAccount(ctx context.Context, req *schemas.CreateAccountRequest) (*schemas.AccountResponse, error) {
	req.Normalize()
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}
	account := req.ToModel()
	if err := c.Accounts.Create(ctx, account); err != nil {
		return nil, translate(err, "account")
	}
	return schemas.NewAccountResponse(account), nil
}

func (c *AccountController) UpdateAccount(ctx context.Context, req *schemas.UpdateAccountRequest) (*schemas.AccountResponse, error) {
	req.Normalize()
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}
	account, err := c.Accounts.GetByID(ctx, req.ID)
	if err != nil {
		return nil, translate(err, "account")
	}
	req.Apply(account)
	if err := c.Accounts.Update(ctx, account); err != nil {
		return nil, translate(err, "account")
	}
	return schemas.NewAccountResponse(account), nil
}

// DeleteAccount removes the account together with its contacts and
// opportunities.
func (c *AccountController) DeleteAccount(ctx context.Context, id uint) error {
	return translate(c.Accounts.Delete(ctx, id), "account")
}

func (c *AccountController) GetLookups(ctx context.Context) (*schemas.LookupsResponse, error) {
	accounts, err := c.Accounts.GetOptions(ctx)
	if err != nil {
		return nil, err
	}
	opportunities, err := c.Opportunities.GetOptions(ctx)
	if err != nil {
		return nil, err
	}
	return &schemas.LookupsResponse{
		Accounts:      schemas.NewOptions(accounts),
		Opportunities: schemas.NewOptions(opportunities),
		AccountTypes:  models.AccountTypes,
		RiskRatings:   models.RiskRatings,
		Stages:        models.OpportunityStages,
		QuoteStatuses: models.QuoteStatuses,
		Currencies:    models.Currencies,
		ActivityTypes: models.ActivityTypes,
	}, nil
}
