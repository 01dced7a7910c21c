package models

import "time"

type Contact struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	AccountID uint      `gorm:"column:account_id"`
	Name      string    `gorm:"column:name"`
	Role      string    `gorm:"column:role"`
	Email     string    `gorm:"column:email"`
	Phone     string    `gorm:"column:phone"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Contact) TableName() string {
	return "contacts"
}

// ContactWithAccount is a contact row joined with its account name.
type ContactWithAccount struct {
	ID          uint      `gorm:"column:id"`
	AccountID   uint      `gorm:"column:account_id"`
	AccountName *string   `gorm:"column:account_name"`
	Name        string    `gorm:"column:name"`
	Role        string    `gorm:"column:role"`
	Email       string    `gorm:"column:email"`
	Phone       string    `gorm:"column:phone"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}
