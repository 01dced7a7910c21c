package models

import "time"

type Opportunity struct {
	ID                uint       `gorm:"column:id;primaryKey"`
	AccountID         uint       `gorm:"column:account_id"`
	Name              string     `gorm:"column:name"`
	Stage             string     `gorm:"column:stage"`
	ExpectedCloseDate *time.Time `gorm:"column:expected_close_date;type:date"`
	Value             float64    `gorm:"column:value"`
	ProductType       string     `gorm:"column:product_type"`
	Region            string     `gorm:"column:region"`
	Probability       float64    `gorm:"column:probability"`
	Source            string     `gorm:"column:source"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

func (Opportunity) TableName() string {
	return "opportunities"
}

// OpportunityWithAccount is an opportunity row joined with its account name.
type OpportunityWithAccount struct {
	ID                uint       `gorm:"column:id"`
	AccountID         uint       `gorm:"column:account_id"`
	AccountName       *string    `gorm:"column:account_name"`
	Name              string     `gorm:"column:name"`
	Stage             string     `gorm:"column:stage"`
	ExpectedCloseDate *time.Time `gorm:"column:expected_close_date"`
	Value             float64    `gorm:"column:value"`
	ProductType       string     `gorm:"column:product_type"`
	Region            string     `gorm:"column:region"`
	Probability       float64    `gorm:"column:probability"`
	Source            string     `gorm:"column:source"`
}

type StageTotal struct {
	Stage string  `gorm:"column:stage"`
	Total float64 `gorm:"column:total"`
}
