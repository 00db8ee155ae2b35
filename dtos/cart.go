package dtos

import (
	"emporia-backend/models"

	"github.com/google/uuid"
)

type CartDTO struct {
	ID         uuid.UUID    `json:"id"`
	TotalPrice float64      `json:"total_price"`
	Products   []ProductDTO `json:"products"`
}

// NewCartDTO maps a cart and its items to the transfer shape. Each product
// entry carries the line-item quantity instead of the stock level, and items
// keep their insertion order.
func NewCartDTO(c models.Cart) CartDTO {
	dto := CartDTO{
		ID:         c.ID,
		TotalPrice: c.TotalPrice,
		Products:   make([]ProductDTO, 0, len(c.Items)),
	}
	for _, item := range c.Items {
		p := NewProductDTO(item.Product)
		p.Quantity = item.Quantity
		dto.Products = append(dto.Products, p)
	}
	return dto
}
