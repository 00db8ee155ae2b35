package services

import (
	"errors"
	"fmt"

	"emporia-backend/dtos"
	"emporia-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartService owns all cart mutations: adding, updating and removing line
// items, incremental total-price maintenance, and resynchronizing carts when
// a product's price changes. Every mutating operation validates before
// touching state and runs inside a single transaction.
type CartService struct {
	DB *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{DB: db}
}

// AddProductToCart creates the user's cart if absent, then appends a new line
// item snapshotting the product's current special price and discount.
func (s *CartService) AddProductToCart(userID, productID uuid.UUID, quantity int) (*dtos.CartDTO, error) {
	var result *dtos.CartDTO
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := getOrCreateCart(tx, userID)
		if err != nil {
			return err
		}

		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Product not found with id %s", productID)
			}
			return err
		}

		var existing models.CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&existing).Error
		if err == nil {
			return Conflict("Product %s already exists in the cart", product.Name)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if product.Quantity == 0 {
			return InvalidState("%s is not available", product.Name)
		}
		if product.Quantity < quantity {
			return InvalidState("Please make an order of the %s less than or equal to the quantity %d",
				product.Name, product.Quantity)
		}

		item := models.CartItem{
			CartID:       cart.ID,
			ProductID:    product.ID,
			Quantity:     quantity,
			ProductPrice: product.SpecialPrice,
			Discount:     product.Discount,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		cart.TotalPrice += product.SpecialPrice * float64(quantity)
		if err := tx.Save(cart).Error; err != nil {
			return err
		}

		result, err = cartProjection(tx, cart.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateProductQuantity applies a signed quantity delta to the calling user's
// line item. The item's snapshot price is refreshed to the product's current
// special price; the discount snapshot is left as taken at add time. A delta
// that drives the quantity to exactly zero removes the item.
func (s *CartService) UpdateProductQuantity(userID, productID uuid.UUID, delta int) (*dtos.CartDTO, error) {
	var result *dtos.CartDTO
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Cart not found for user %s", userID)
			}
			return err
		}

		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Product not found with id %s", productID)
			}
			return err
		}

		if product.Quantity == 0 {
			return InvalidState("%s is not available", product.Name)
		}
		if product.Quantity < delta {
			return InvalidState("Please make an order of the %s less than or equal to the quantity %d",
				product.Name, product.Quantity)
		}

		var item models.CartItem
		if err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Product %s does not exist in the cart", product.Name)
			}
			return err
		}

		newQuantity := item.Quantity + delta
		if newQuantity < 0 {
			return InvalidState("The resulting quantity cannot be negative")
		}

		if newQuantity == 0 {
			cart.TotalPrice -= item.ProductPrice * float64(item.Quantity)
			if err := tx.Save(&cart).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Delete(&item).Error; err != nil {
				return err
			}
		} else {
			item.ProductPrice = product.SpecialPrice
			item.Quantity = newQuantity
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
			cart.TotalPrice += item.ProductPrice * float64(delta)
			if err := tx.Save(&cart).Error; err != nil {
				return err
			}
		}

		var err error
		result, err = cartProjection(tx, cart.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveProductFromCart deletes the line item for (cart, product) and
// subtracts its contribution from the cart total. Returns a confirmation
// message naming the removed product.
func (s *CartService) RemoveProductFromCart(cartID, productID uuid.UUID) (string, error) {
	var message string
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.First(&cart, "id = ?", cartID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Cart not found with id %s", cartID)
			}
			return err
		}

		var item models.CartItem
		if err := tx.Preload("Product").
			Where("cart_id = ? AND product_id = ?", cartID, productID).
			First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Product not found in the cart with id %s", productID)
			}
			return err
		}

		cart.TotalPrice -= item.ProductPrice * float64(item.Quantity)
		if err := tx.Save(&cart).Error; err != nil {
			return err
		}
		// Hard delete: the (cart_id, product_id) unique index must free up
		// so the product can be re-added later.
		if err := tx.Unscoped().Delete(&item).Error; err != nil {
			return err
		}

		message = fmt.Sprintf("Product %s removed from the cart", item.Product.Name)
		return nil
	})
	if err != nil {
		return "", err
	}
	return message, nil
}

// SyncProductPrice refreshes a line item's snapshot price to the product's
// current special price and rebalances the cart total: the old contribution
// is subtracted and the new one added back. Quantity is unchanged, so the
// operation is idempotent absent intervening price changes.
func (s *CartService) SyncProductPrice(cartID, productID uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.First(&cart, "id = ?", cartID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Cart not found with id %s", cartID)
			}
			return err
		}

		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Product not found with id %s", productID)
			}
			return err
		}

		var item models.CartItem
		if err := tx.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Product %s does not exist in the cart", product.Name)
			}
			return err
		}

		cart.TotalPrice -= item.ProductPrice * float64(item.Quantity)
		item.ProductPrice = product.SpecialPrice
		cart.TotalPrice += item.ProductPrice * float64(item.Quantity)

		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		return tx.Save(&cart).Error
	})
}

// ListCarts returns every cart with product summaries attached.
func (s *CartService) ListCarts() ([]dtos.CartDTO, error) {
	var carts []models.Cart
	if err := s.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		Preload("Items.Product").
		Find(&carts).Error; err != nil {
		return nil, err
	}
	if len(carts) == 0 {
		return nil, NotFound("No carts exist")
	}

	result := make([]dtos.CartDTO, 0, len(carts))
	for _, cart := range carts {
		result = append(result, dtos.NewCartDTO(cart))
	}
	return result, nil
}

// GetCart returns the cart matching the (user, cart) pair.
func (s *CartService) GetCart(userID, cartID uuid.UUID) (*dtos.CartDTO, error) {
	var cart models.Cart
	err := s.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		Preload("Items.Product").
		Where("user_id = ? AND id = ?", userID, cartID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Cart not found with id %s", cartID)
		}
		return nil, err
	}

	dto := dtos.NewCartDTO(cart)
	return &dto, nil
}

// CartsContaining returns every cart holding a line item for the product.
// The catalog service uses this to fan out resync and removal hooks.
func (s *CartService) CartsContaining(productID uuid.UUID) ([]models.Cart, error) {
	var carts []models.Cart
	err := s.DB.
		Select("carts.*").
		Joins("JOIN cart_items ON cart_items.cart_id = carts.id").
		Where("cart_items.product_id = ? AND cart_items.deleted_at IS NULL", productID).
		Find(&carts).Error
	if err != nil {
		return nil, err
	}
	return carts, nil
}

// getOrCreateCart looks the user's cart up and, on absence, constructs and
// persists an empty one.
func getOrCreateCart(tx *gorm.DB, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := tx.Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = models.Cart{UserID: userID, TotalPrice: 0}
	if err := tx.Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// cartProjection loads the cart with items in insertion order and maps it to
// the transfer shape.
func cartProjection(tx *gorm.DB, cartID uuid.UUID) (*dtos.CartDTO, error) {
	var cart models.Cart
	err := tx.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		Preload("Items.Product").
		First(&cart, "id = ?", cartID).Error
	if err != nil {
		return nil, err
	}

	dto := dtos.NewCartDTO(cart)
	return &dto, nil
}
