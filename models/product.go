package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	StockLow    = "LOW"
	StockMedium = "MEDIUM"
	StockHigh   = "HIGH"
)

type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:128;uniqueIndex;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	Stock       int     `gorm:"not null;default:0" json:"stock"`
	BuyPrice    float64 `gorm:"not null;default:0" json:"buy_price"`
	Price       float64 `gorm:"not null" json:"price"`
	ImageURL    *string `gorm:"size:255" json:"image_url,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// StockLevel buckets the raw count so the storefront never sees exact stock.
func (p *Product) StockLevel() string {
	switch {
	case p.Stock < 5:
		return StockLow
	case p.Stock < 20:
		return StockMedium
	default:
		return StockHigh
	}
}
