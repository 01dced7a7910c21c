package controllers

import (
	"context"

	"crm/src/repositories"
	"crm/src/schemas"
	"crm/src/utils"
)

type ContactControllerI interface {
	GetAllContacts(ctx context.Context, accountID *uint, page utils.Paginate) ([]*schemas.ContactResponse, error)
	GetContactByID(ctx context.Context, id uint) (*schemas.ContactResponse, error)
	CreateContact(ctx context.Context, req *schemas.CreateContactRequest) (*schemas.ContactResponse, error)
	UpdateContact(ctx context.Context, req *schemas.UpdateContactRequest) (*schemas.ContactResponse, error)
	DeleteContact(ctx context.Context, id uint) error
}

type ContactController struct {
	Contacts repositories.ContactRepository
	Accounts repositories.AccountRepository
}

func NewContactController(contacts repositories.ContactRepository, accounts repositories.AccountRepository) *ContactController {
	return &ContactController{Contacts: contacts, Accounts: accounts}
}

func (c *ContactController) accountExists(ctx context.Context) existsFunc {
	return func(id uint) (bool, error) { return c.Accounts.Exists(ctx, id) }
}

func (c *ContactController) GetAllContacts(ctx context.Context, accountID *uint, page utils.Paginate) ([]*schemas.ContactResponse, error) {
	contacts, err := c.Contacts.GetAll(ctx, accountID, page)
	if err != nil {
		return nil, err
	}
	responses := make([]*schemas.ContactResponse, 0, len(contacts))
	for i := range contacts {
		responses = append(responses, schemas.NewContactRowResponse(&contacts[i]))
	}
	return responses, nil
}

func (c *ContactController) GetContactByID(ctx context.Context, id uint) (*schemas.ContactResponse, error) {
	contact, err := c.Contacts.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "contact")
	}
	return schemas.NewContactResponse(contact), nil
}

func (c *ContactController) CreateContact(ctx context.Context, req *schemas.CreateContactRequest) (*schemas.ContactResponse, error) {
	req.Normalize()
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}
	if err := requireRef(req.AccountID, "account_id", c.accountExists(ctx)); err != nil {
		return nil, err
	}
	contact := req.ToModel()
	if err := c.Contacts.Create(ctx, contact); err != nil {
		return nil, translate(err, "contact")
	}
	return schemas.NewContactResponse(contact), nil
}

func (c *ContactController) UpdateContact(ctx context.Context, req *schemas.UpdateContactRequest) (*schemas.ContactResponse, error) {
	req.Normalize()
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}
	contact, err := c.Contacts.GetByID(ctx, req.ID)
	if err != nil {
		return nil, translate(err, "contact")
	}
	if req.AccountID != nil {
		if err := requireRef(*req.AccountID, "account_id", c.accountExists(ctx)); err != nil {
			return nil, err
		}
	}
	req.Apply(contact)
	if err := c.Contacts.Update(ctx, contact); err != nil {
		return nil, translate(err, "contact")
	}
	return schemas.NewContactResponse(contact), nil
}

func (c *ContactController) DeleteContact(ctx context.Context, id uint) error {
	return translate(c.Contacts.Delete(ctx, id), "contact")
}
