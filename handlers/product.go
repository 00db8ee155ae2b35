package handlers

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"emporia-backend/dtos"
	"emporia-backend/models"
	"emporia-backend/services"
	"emporia-backend/storage"
	"emporia-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductHandler struct {
	DB      *gorm.DB
	Carts   *services.CartService
	Storage storage.StorageClient
}

// allowedSortColumns whitelists the columns a listing may be sorted by.
var allowedSortColumns = map[string]bool{
	"name":          true,
	"price":         true,
	"special_price": true,
	"quantity":      true,
	"created_at":    true,
}

func (h *ProductHandler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	sortBy := c.DefaultQuery("sort_by", "created_at")
	if !allowedSortColumns[sortBy] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort_by column"})
		return
	}
	sortOrder := c.DefaultQuery("sort_order", "asc")
	if sortOrder != "asc" && sortOrder != "desc" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort_order, must be asc or desc"})
		return
	}

	query := h.DB.Model(&models.Product{})

	// Filter by category
	if categoryID := c.Query("category_id"); categoryID != "" {
		if err := h.DB.First(&models.Category{}, "id = ?", categoryID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		query = query.Where("category_id = ?", categoryID)
	}

	// Search by name substring
	if keyword := c.Query("keyword"); keyword != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	var products []models.Product
	if err := query.Order(sortBy + " " + sortOrder).
		Offset(offset).Limit(limit).
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	content := make([]dtos.ProductDTO, 0, len(products))
	for _, p := range products {
		content = append(content, dtos.NewProductDTO(p))
	}

	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}

	c.JSON(http.StatusOK, dtos.ProductPage{
		Content:       content,
		Page:          page,
		Limit:         limit,
		TotalElements: total,
		TotalPages:    totalPages,
		LastPage:      page >= totalPages,
	})
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	var product models.Product

	if err := h.DB.Preload("Category").Where("id = ?", id).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, dtos.NewProductDTO(product))
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req struct {
		Name        string    `json:"name" binding:"required"`
		Description string    `json:"description"`
		Quantity    int       `json:"quantity" binding:"min=0"`
		Price       float64   `json:"price" binding:"required,min=0"`
		Discount    float64   `json:"discount" binding:"min=0,max=100"`
		CategoryID  uuid.UUID `json:"category_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	var category models.Category
	if err := h.DB.First(&category, "id = ?", req.CategoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	// Product names are unique within a category
	var count int64
	h.DB.Model(&models.Product{}).
		Where("category_id = ? AND name = ?", req.CategoryID, req.Name).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Product already exists in this category"})
		return
	}

	product := models.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Image:       "default.png",
		Quantity:    req.Quantity,
		Price:       req.Price,
		Discount:    req.Discount,
		CategoryID:  req.CategoryID,
	}
	product.SpecialPrice = product.ComputeSpecialPrice()

	if err := h.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, dtos.NewProductDTO(product))
}

// UpdateProduct edits the product's catalog fields, recomputes the special
// price, and resynchronizes every cart that references the product so
// snapshotted totals reflect the new price.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	if err := h.DB.Where("id = ?", id).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Quantity    int     `json:"quantity" binding:"min=0"`
		Price       float64 `json:"price" binding:"required,min=0"`
		Discount    float64 `json:"discount" binding:"min=0,max=100"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Quantity = req.Quantity
	product.Price = req.Price
	product.Discount = req.Discount
	product.SpecialPrice = product.ComputeSpecialPrice()

	if err := h.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	carts, err := h.Carts.CartsContaining(product.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resync carts"})
		return
	}
	for _, cart := range carts {
		if err := h.Carts.SyncProductPrice(cart.ID, product.ID); err != nil {
			writeServiceError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, dtos.NewProductDTO(product))
}

// DeleteProduct removes the product from every cart referencing it, then
// deletes the product record itself.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	if err := h.DB.First(&product, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	carts, err := h.Carts.CartsContaining(product.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch carts"})
		return
	}
	for _, cart := range carts {
		if _, err := h.Carts.RemoveProductFromCart(cart.ID, product.ID); err != nil {
			writeServiceError(c, err)
			return
		}
	}

	// Clean up the stored image unless the product still carries the default
	if product.Image != "" && product.Image != "default.png" {
		objectPath, err := utils.ExtractObjectPath(product.Image)
		if err == nil && objectPath != "" {
			if err := h.Storage.DeleteFile(objectPath); err != nil {
				log.Printf("Failed to delete image %s from storage: %v", product.Image, err)
			}
		}
	}

	if err := h.DB.Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
		"product": dtos.NewProductDTO(product),
	})
}

// UploadProductImage stores a new product image and records its URL.
func (h *ProductHandler) UploadProductImage(c *gin.Context) {
	id := c.Param("id")
	var product models.Product

	if err := h.DB.Where("id = ?", id).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	if err := utils.ValidateFileUpload(fileHeader); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image"})
		return
	}
	defer file.Close()

	imageURL, err := h.Storage.UploadProductImage(
		file,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
		return
	}

	product.Image = imageURL
	if err := h.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, dtos.NewProductDTO(product))
}
