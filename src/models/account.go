package models

import "time"

type Account struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Type         string    `gorm:"column:type"`
	Region       string    `gorm:"column:region"`
	CreditLimit  float64   `gorm:"column:credit_limit"`
	PaymentTerms string    `gorm:"column:payment_terms"`
	RiskRating   string    `gorm:"column:risk_rating"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// Option is the id/name pair used to fill form select boxes.
type Option struct {
	ID   uint   `gorm:"column:id"`
	Name string `gorm:"column:name"`
}
