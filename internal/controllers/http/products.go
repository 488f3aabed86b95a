package http

import (
	"net/http"

	"github.com/KristellVM/tienda-online/internal/domain"
	"github.com/KristellVM/tienda-online/internal/repository"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.products.FindAll()
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := domain.Product{
		Name:     req.Name,
		Stock:    *req.Stock,
		Price:    *req.Price,
		Photos:   req.Photos,
		Category: req.Category,
	}
	if product.Photos == nil {
		product.Photos = domain.PhotoList{}
	}
	if err := h.products.Create(&product); err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        product.ID,
		"nombre":    product.Name,
		"stock":     product.Stock,
		"precio":    product.Price,
		"fotos":     product.Photos,
		"categoria": product.Category,
		"success":   true,
	})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	name := c.Param("nombre")

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		changes int64
		err     error
	)
	if req.StockOnly() {
		changes, err = h.products.UpdateStock(name, *req.Stock)
	} else {
		fields := domain.Product{Name: name, Stock: *req.Stock}
		if req.Name != nil {
			fields.Name = *req.Name
		}
		if req.Price != nil {
			fields.Price = *req.Price
		}
		if req.Category != nil {
			fields.Category = *req.Category
		}
		fields.Photos = req.Photos
		if fields.Photos == nil {
			fields.Photos = domain.PhotoList{}
		}
		changes, err = h.products.Update(name, &fields)
	}
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "changes": changes})
}

func (h *Handler) BulkUpdateStock(c *gin.Context) {
	var updates []repository.StockUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.products.UpdateStockBulk(updates); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	changes, err := h.products.Delete(c.Param("nombre"))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "changes": changes})
}
