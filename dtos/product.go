package dtos

import (
	"emporia-backend/models"

	"github.com/google/uuid"
)

// ProductDTO is the transfer shape for products. In cart projections the
// Quantity field carries the line-item quantity rather than the stock level.
type ProductDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	Discount     float64   `json:"discount"`
	SpecialPrice float64   `json:"special_price"`
}

// NewProductDTO maps a product entity to its transfer shape field by field.
func NewProductDTO(p models.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Image:        p.Image,
		Quantity:     p.Quantity,
		Price:        p.Price,
		Discount:     p.Discount,
		SpecialPrice: p.SpecialPrice,
	}
}

// ProductPage is the paginated product listing response.
type ProductPage struct {
	Content       []ProductDTO `json:"content"`
	Page          int          `json:"page"`
	Limit         int          `json:"limit"`
	TotalElements int64        `json:"total_elements"`
	TotalPages    int          `json:"total_pages"`
	LastPage      bool         `json:"last_page"`
}
