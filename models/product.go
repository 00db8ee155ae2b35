package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string         `gorm:"not null;index" json:"name"`
	Description string         `json:"description"`
	Image       string         `gorm:"default:default.png" json:"image"`
	Quantity    int            `gorm:"default:0" json:"quantity"` // available stock
	Price       float64        `gorm:"not null" json:"price"`
	Discount    float64        `gorm:"default:0" json:"discount"` // percentage
	// SpecialPrice = Price - Discount% of Price, recomputed on every price/discount edit.
	SpecialPrice float64        `json:"special_price"`
	CategoryID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"category_id"`
	Category     Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ComputeSpecialPrice returns the discounted unit price for the product's
// current price and discount percentage.
func (p *Product) ComputeSpecialPrice() float64 {
	return p.Price - (p.Discount*0.01)*p.Price
}
