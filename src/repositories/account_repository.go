package repositories

import (
	"context"

	"crm/src/models"
	"crm/src/utils"

	"gorm.io/gorm"
)

type AccountRepository interface {
	GetAll(ctx context.Context, page utils.Paginate) ([]models.Account, error)
	GetOptions(ctx context.Context) ([]models.Option, error)
	GetByID(ctx context.Context, id uint) (*models.Account, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, account *models.Account) error
	Update(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, id uint) error
}

type accountRepo struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepo{db: db}
}

// GetAll lists accounts newest first.
func (r *accountRepo) GetAll(ctx context.Context, page utils.Paginate) ([]models.Account, error) {
	accounts := make([]models.Account, 0)
	err := paginate(r.db.WithContext(ctx).Order("id DESC"), page).Find(&accounts).Error
	return accounts, err
}

// GetOptions lists id/name pairs alphabetically for select boxes.
func (r *accountRepo) GetOptions(ctx context.Context) ([]models.Option, error) {
	options := make([]models.Option, 0)
	err := r.db.WithContext(ctx).Model(&models.Account{}).
		Select("id, name").
		Order("name ASC").
		Scan(&options).Error
	return options, err
}

func (r *accountRepo) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &account, nil
}

func (r *accountRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(r.db.WithContext(ctx), models.Account{}.TableName(), id)
}

func (r *accountRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Account{}).Count(&count).Error
	return count, err
}

func (r *accountRepo) Create(ctx context.Context, account *models.Account) error {
	return translateError(r.db.WithContext(ctx).Create(account).Error)
}

func (r *accountRepo) Update(ctx context.Context, account *models.Account) error {
	return translateError(r.db.WithContext(ctx).Save(account).Error)
}

// Delete removes the account; its contacts and opportunities go with it.
func (r *accountRepo) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Account{}, id)
}
