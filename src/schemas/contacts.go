package schemas

import (
	"time"

	"crm/src/models"
)

type CreateContactRequest struct {
	AccountID uint   `json:"account_id" validate:"required"`
	Name      string `json:"name" validate:"required,max=200"`
	Role      string `json:"role" validate:"max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=200"`
	Phone     string `json:"phone" validate:"max=50"`
}

func (r *CreateContactRequest) Normalize() {
	trim(&r.Name)
	trim(&r.Role)
	trim(&r.Email)
	trim(&r.Phone)
}

func (r *CreateContactRequest) ToModel() *models.Contact {
	return &models.Contact{
		AccountID: r.AccountID,
		Name:      r.Name,
		Role:      r.Role,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}

type UpdateContactRequest struct {
	ID        uint    `json:"-"`
	AccountID *uint   `json:"account_id" validate:"omitnil,gt=0"`
	Name      *string `json:"name" validate:"omitnil,min=1,max=200"`
	Role      *string `json:"role" validate:"omitnil,max=100"`
	Email     *string `json:"email" validate:"omitnil,email_or_empty,max=200"`
	Phone     *string `json:"phone" validate:"omitnil,max=50"`
}

func (r *UpdateContactRequest) Normalize() {
	trim(r.Name)
	trim(r.Role)
	trim(r.Email)
	trim(r.Phone)
}

func (r *UpdateContactRequest) Apply(c *models.Contact) {
	if r.AccountID != nil {
		c.AccountID = *r.AccountID
	}
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Role != nil {
		c.Role = *r.Role
	}
	if r.Email != nil {
		c.Email = *r.Email
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
}

type ContactResponse struct {
	ID          uint      `json:"id"`
	AccountID   uint      `json:"account_id"`
	AccountName *string   `json:"account,omitempty"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewContactResponse(c *models.Contact) *ContactResponse {
	return &ContactResponse{
		ID:        c.ID,
		AccountID: c.AccountID,
		Name:      c.Name,
		Role:      c.Role,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

func NewContactRowResponse(c *models.ContactWithAccount) *ContactResponse {
	return &ContactResponse{
		ID:          c.ID,
		AccountID:   c.AccountID,
		AccountName: c.AccountName,
		Name:        c.Name,
		Role:        c.Role,
		Email:       c.Email,
		Phone:       c.Phone,
		CreatedAt:   c.CreatedAt,
	}
}
