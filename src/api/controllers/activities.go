package controllers

import (
	"context"

	"crm/src/repositories"
	"crm/src/schemas"
	"crm/src/utils"
)

type ActivityControllerI interface {
	GetAllActivities(ctx context.Context, openOnly bool, page utils.Paginate) ([]*schemas.ActivityResponse, error)
	GetActivityByID(ctx context.Context, id uint) (*schemas.ActivityResponse, error)
	CreateActivity(ctx context.Context, req *schemas.CreateActivityRequest) (*schemas.ActivityResponse, error)
	UpdateActivity(ctx context.Context, req *schemas.UpdateActivityRequest) (*schemas.ActivityResponse, error)
	DeleteActivity(ctx context.Context, id uint) error
}

type ActivityController struct {
	Activities    repositories.ActivityRepository
	Accounts      repositories.AccountRepository
	Opportunities repositories.OpportunityRepository
	Clock         Clock
}

func NewActivityController(
	activities repositories.ActivityRepository,
	accounts repositories.AccountRepository,
	opportunities repositories.OpportunityRepository,
	clock Clock,
) *ActivityController {
	return &ActivityController{Activities: activities, Accounts: accounts, Opportunities: opportunities, Clock: clock}
}

// checkRefs validates the optional account and opportunity links.
func (c *ActivityController) checkRefs(ctx context.Context, accountID, opportunityID *uint) error {
	if accountID != nil {
		err := requireRef(*accountID, "account_id", func(id uint) (bool, error) { return c.Accounts.Exists(ctx, id) })
		if err != nil {
			return err
		}
	}
	if opportunityID != nil {
		err := requireRef(*opportunityID, "opportunity_id", func(id uint) (bool, error) { return c.Opportunities.Exists(ctx, id) })
		if err != nil {
			return err
		}
	}
	return nil
}

// GetAllActivities lists every activity newest first, or only the open ones
// ordered by due date when openOnly is set.
func (c *ActivityController) GetAllActivities(ctx context.Context, openOnly bool, page utils.Paginate) ([]*schemas.ActivityResponse, error) {
	getActivities := c.Activities.GetAll
	if openOnly {
		getActivities = c.Activities.GetOpen
	}
	activities, err := getActivities(ctx, page)
	if err != nil {
		return nil, err
	}
	responses := make([]*schemas.ActivityResponse, 0, len(activities))
	for i := range activities {
		responses = append(responses, schemas.NewActivityResponse(&activities[i]))
	}
	return responses, nil
}

func (c *ActivityController) GetActivityByID(ctx context.Context, id uint) (*schemas.ActivityResponse, error) {
	activity, err := c.Activities.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "activity")
	}
	return schemas.NewActivityResponse(activity), nil
}

func (c *ActivityController) CreateActivity(ctx context.Context, req *schemas.CreateActivityRequest) (*schemas.ActivityResponse, error) {
	req.Normalize(today(c.Clock))
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}
	if err := c.checkRefs(ctx, req.AccountID, req.OpportunityID); err != nil {
		return nil, err
	}
	activity, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	if err := c.Activities.Create(ctx, activity); err != nil {
		return nil, translate(err, "activity")
	}
	return schemas.NewActivityResponse(activity), nil
}

func (c *ActivityController) UpdateActivity(ctx context.Context, req *schemas.UpdateActivityRequest) (*schemas.ActivityResponse, error) {
	req.Normalize()
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}
	activity, err := c.Activities.GetByID(ctx, req.ID)
	if err != nil {
		return nil, translate(err, "activity")
	}
	if err := c.checkRefs(ctx, req.AccountID, req.OpportunityID); err != nil {
		return nil, err
	}
	if err := req.Apply(activity); err != nil {
		return nil, err
	}
	if err := c.Activities.Update(ctx, activity); err != nil {
		return nil, translate(err, "activity")
	}
	return schemas.NewActivityResponse(activity), nil
}

func (c *ActivityController) DeleteActivity(ctx context.Context, id uint) error {
	return translate(c.Activities.Delete(ctx, id), "activity")
}
