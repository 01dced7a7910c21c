package repositories

import (
	"context"

	"crm/src/models"
	"crm/src/utils"

	"gorm.io/gorm"
)

type ContactRepository interface {
	GetAll(ctx context.Context, accountID *uint, page utils.Paginate) ([]models.ContactWithAccount, error)
	GetByID(ctx context.Context, id uint) (*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) error
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id uint) error
}

type contactRepo struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) GetAll(ctx context.Context, accountID *uint, page utils.Paginate) ([]models.ContactWithAccount, error) {
	query := r.db.WithContext(ctx).
		Table("contacts AS c").
		Select("c.id, c.account_id, a.name AS account_name, c.name, c.role, c.email, c.phone, c.created_at").
		Joins("LEFT JOIN accounts a ON a.id = c.account_id")
	if accountID != nil {
		query = query.Where("c.account_id = ?", *accountID)
	}

	contacts := make([]models.ContactWithAccount, 0)
	err := paginate(query.Order("c.id DESC"), page).Scan(&contacts).Error
	return contacts, err
}

func (r *contactRepo) GetByID(ctx context.Context, id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &contact, nil
}

func (r *contactRepo) Create(ctx context.Context, contact *models.Contact) error {
	return translateError(r.db.WithContext(ctx).Create(contact).Error)
}

func (r *contactRepo) Update(ctx context.Context, contact *models.Contact) error {
	return translateError(r.db.WithContext(ctx).Save(contact).Error)
}

func (r *contactRepo) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Contact{}, id)
}
