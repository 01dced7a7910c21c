package models

import "time"

type Activity struct {
	ID            uint       `gorm:"column:id;primaryKey"`
	AccountID     *uint      `gorm:"column:account_id"`
	OpportunityID *uint      `gorm:"column:opportunity_id"`
	Type          string     `gorm:"column:type"`
	Subject       string     `gorm:"column:subject"`
	DueDate       *time.Time `gorm:"column:due_date;type:date"`
	Owner         string     `gorm:"column:owner"`
	Notes         string     `gorm:"column:notes"`
	Completed     bool       `gorm:"column:completed"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (Activity) TableName() string {
	return "activities"
}
