package models

import "time"

type Quote struct {
	ID               uint       `gorm:"column:id;primaryKey"`
	OpportunityID    uint       `gorm:"column:opportunity_id"`
	QuoteNumber      string     `gorm:"column:quote_number"`
	Date             *time.Time `gorm:"column:date;type:date"`
	Status           string     `gorm:"column:status"`
	TotalValue       float64    `gorm:"column:total_value"`
	Currency         string     `gorm:"column:currency"`
	PriceIndexClause bool       `gorm:"column:price_index_clause"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (Quote) TableName() string {
	return "quotes"
}

type QuoteWithOpportunity struct {
	ID               uint       `gorm:"column:id"`
	OpportunityID    uint       `gorm:"column:opportunity_id"`
	OpportunityName  *string    `gorm:"column:opportunity_name"`
	QuoteNumber      string     `gorm:"column:quote_number"`
	Date             *time.Time `gorm:"column:date"`
	Status           string     `gorm:"column:status"`
	TotalValue       float64    `gorm:"column:total_value"`
	Currency         string     `gorm:"column:currency"`
	PriceIndexClause bool       `gorm:"column:price_index_clause"`
}

type QuoteItem struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	QuoteID     uint      `gorm:"column:quote_id"`
	Description string    `gorm:"column:description"`
	Quantity    float64   `gorm:"column:quantity"`
	Unit        string    `gorm:"column:unit"`
	UnitPrice   float64   `gorm:"column:unit_price"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (QuoteItem) TableName() string {
	return "quote_items"
}

func (i QuoteItem) LineTotal() float64 {
	return i.Quantity * i.UnitPrice
}
