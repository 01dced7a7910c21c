package controllers

import (
	"errors"
	"time"

	"crm/src/repositories"
	"crm/src/utils"

	"gorm.io/gorm"
)

// Controller groups the per-resource controllers behind the HTTP handlers.
type Controller struct {
	Accounts      AccountControllerI
	Contacts      ContactControllerI
	Opportunities OpportunityControllerI
	Quotes        QuoteControllerI
	Activities    ActivityControllerI
}

// Clock returns the current time; form defaults use its calendar date.
type Clock func() time.Time

func NewController(db *gorm.DB, clock Clock) *Controller {
	if clock == nil {
		clock = time.Now
	}
	accounts := repositories.NewAccountRepository(db)
	opportunities := repositories.NewOpportunityRepository(db)

	return &Controller{
		Accounts:      NewAccountController(accounts, opportunities),
		Contacts:      NewContactController(repositories.NewContactRepository(db), accounts),
		Opportunities: NewOpportunityController(opportunities, accounts, clock),
		Quotes:        NewQuoteController(repositories.NewQuoteRepository(db), opportunities, clock),
		Activities:    NewActivityController(repositories.NewActivityRepository(db), accounts, opportunities, clock),
	}
}

func today(clock Clock) time.Time {
	return utils.DateOnly(clock())
}

// translate maps repository errors to HTTP errors; anything else is left
// for the handler to report as a 500.
func translate(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return utils.NotFound(resource + " not found")
	case errors.Is(err, repositories.ErrDuplicate):
		return utils.Conflict(resource + " already exists")
	}
	return err
}

type existsFunc func(id uint) (bool, error)

// requireRef rejects references to rows that do not exist.
func requireRef(id uint, field string, exists existsFunc) error {
	ok, err := exists(id)
	if err != nil {
		return err
	}
	if !ok {
		return utils.UnprocessableEntity(field + " does not exist")
	}
	return nil
}
