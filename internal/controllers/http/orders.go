package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/KristellVM/tienda-online/internal/domain"
	"github.com/KristellVM/tienda-online/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orders.FindAll()
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreateOrder is the plain insert the original client used: the caller has
// already computed the total and is expected to follow up with the bulk
// stock write. New clients should POST /api/checkout instead.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos del pedido inválidos"})
		return
	}

	order := domain.Order{
		OrderDate:   req.OrderDate,
		TotalPrice:  req.TotalPrice,
		Description: req.Description,
		Products:    req.Products,
	}
	if order.Products == nil {
		order.Products = domain.LineItems{}
	}
	if err := h.orders.Save(&order); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": order.ID, "success": true})
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}

	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	changes, err := h.orders.Update(id, &domain.Order{
		OrderDate:   req.OrderDate,
		TotalPrice:  req.TotalPrice,
		Description: req.Description,
		Products:    req.Products,
	})
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "changes": changes})
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}

	changes, err := h.orders.Delete(id)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "changes": changes})
}

// Checkout persists the order and its stock decrements atomically.
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.checkout.Checkout(c.Request.Context(), req.Products)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          order.ID,
		"precioTotal": order.TotalPrice,
		"success":     true,
	})
}
