package repositories

import (
	"context"

	"crm/src/models"
	"crm/src/utils"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	GetAll(ctx context.Context, page utils.Paginate) ([]models.Activity, error)
	GetOpen(ctx context.Context, page utils.Paginate) ([]models.Activity, error)
	CountOpen(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id uint) (*models.Activity, error)
	Create(ctx context.Context, activity *models.Activity) error
	Update(ctx context.Context, activity *models.Activity) error
	Delete(ctx context.Context, id uint) error
}

type activityRepo struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) GetAll(ctx context.Context, page utils.Paginate) ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	err := paginate(r.db.WithContext(ctx).Order("id DESC"), page).Find(&activities).Error
	return activities, err
}

// GetOpen lists incomplete activities by due date, undated ones last.
func (r *activityRepo) GetOpen(ctx context.Context, page utils.Paginate) ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	query := r.db.WithContext(ctx).
		Where("completed = ?", false).
		Order("CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC, id ASC")
	err := paginate(query, page).Find(&activities).Error
	return activities, err
}

func (r *activityRepo) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Activity{}).Where("completed = ?", false).Count(&count).Error
	return count, err
}

func (r *activityRepo) GetByID(ctx context.Context, id uint) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.WithContext(ctx).First(&activity, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &activity, nil
}

func (r *activityRepo) Create(ctx context.Context, activity *models.Activity) error {
	return translateError(r.db.WithContext(ctx).Create(activity).Error)
}

func (r *activityRepo) Update(ctx context.Context, activity *models.Activity) error {
	return translateError(r.db.WithContext(ctx).Save(activity).Error)
}

func (r *activityRepo) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Activity{}, id)
}
