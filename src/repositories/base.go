package repositories

import (
	"errors"

	"crm/src/utils"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// translateError maps gorm's sentinel errors onto the repository ones so
// callers never import gorm to classify a failure.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}

func paginate(db *gorm.DB, page utils.Paginate) *gorm.DB {
	if page.Size > 0 {
		return db.Offset(page.Offset).Limit(page.Size)
	}
	return db
}

func deleteByID(db *gorm.DB, model interface{}, id uint) error {
	result := db.Delete(model, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func exists(db *gorm.DB, table string, id uint) (bool, error) {
	var count int64
	if err := db.Table(table).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
