package schemas

import (
	"time"

	"crm/src/models"
	"crm/src/utils"
)

type CreateActivityRequest struct {
	AccountID     *uint   `json:"account_id" validate:"omitnil,gt=0"`
	OpportunityID *uint   `json:"opportunity_id" validate:"omitnil,gt=0"`
	Type          string  `json:"type" validate:"activity_type"`
	Subject       string  `json:"subject" validate:"max=200"`
	DueDate       *string `json:"due_date" validate:"omitnil,date"`
	Owner         string  `json:"owner" validate:"max=100"`
	Notes         string  `json:"notes" validate:"max=5000"`
	Completed     bool    `json:"completed"`
}

func (r *CreateActivityRequest) Normalize(today time.Time) {
	trim(&r.Subject)
	trim(&r.Owner)
	orDefault(&r.Type, models.DefaultActivityType)
	orDefault(&r.Owner, models.DefaultActivityOwner)
	if r.DueDate == nil {
		d := utils.FormatDate(today)
		r.DueDate = &d
	}
}

func (r *CreateActivityRequest) ToModel() (*models.Activity, error) {
	var due *time.Time
	if r.DueDate != nil {
		d, err := utils.ParseOptionalDate(*r.DueDate)
		if err != nil {
			return nil, utils.UnprocessableEntity(err.Error())
		}
		due = d
	}
	return &models.Activity{
		AccountID:     r.AccountID,
		OpportunityID: r.OpportunityID,
		Type:          r.Type,
		Subject:       r.Subject,
		DueDate:       due,
		Owner:         r.Owner,
		Notes:         r.Notes,
		Completed:     r.Completed,
	}, nil
}

type UpdateActivityRequest struct {
	ID            uint    `json:"-"`
	AccountID     *uint   `json:"account_id" validate:"omitnil,gt=0"`
	OpportunityID *uint   `json:"opportunity_id" validate:"omitnil,gt=0"`
	Type          *string `json:"type" validate:"omitnil,activity_type"`
	Subject       *string `json:"subject" validate:"omitnil,max=200"`
	DueDate       *string `json:"due_date" validate:"omitnil,date"`
	Owner         *string `json:"owner" validate:"omitnil,max=100"`
	Notes         *string `json:"notes" validate:"omitnil,max=5000"`
	Completed     *bool   `json:"completed"`
}

func (r *UpdateActivityRequest) Normalize() {
	trim(r.Subject)
	trim(r.Owner)
}

func (r *UpdateActivityRequest) Apply(a *models.Activity) error {
	if r.DueDate != nil {
		d, err := utils.ParseOptionalDate(*r.DueDate)
		if err != nil {
			return utils.UnprocessableEntity(err.Error())
		}
		a.DueDate = d
	}
	if r.AccountID != nil {
		a.AccountID = r.AccountID
	}
	if r.OpportunityID != nil {
		a.OpportunityID = r.OpportunityID
	}
	if r.Type != nil {
		a.Type = *r.Type
	}
	if r.Subject != nil {
		a.Subject = *r.Subject
	}
	if r.Owner != nil {
		a.Owner = *r.Owner
	}
	if r.Notes != nil {
		a.Notes = *r.Notes
	}
	if r.Completed != nil {
		a.Completed = *r.Completed
	}
	return nil
}

type ActivityResponse struct {
	ID            uint    `json:"id"`
	AccountID     *uint   `json:"account_id"`
	OpportunityID *uint   `json:"opportunity_id"`
	Type          string  `json:"type"`
	Subject       string  `json:"subject"`
	DueDate       *string `json:"due_date"`
	Owner         string  `json:"owner"`
	Notes         string  `json:"notes"`
	Completed     bool    `json:"completed"`
}

func NewActivityResponse(a *models.Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:            a.ID,
		AccountID:     a.AccountID,
		OpportunityID: a.OpportunityID,
		Type:          a.Type,
		Subject:       a.Subject,
		DueDate:       utils.FormatOptionalDate(a.DueDate),
		Owner:         a.Owner,
		Notes:         a.Notes,
		Completed:     a.Completed,
	}
}
