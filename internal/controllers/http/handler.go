package http

import (
	"net/http"

	"github.com/KristellVM/tienda-online/internal/repository"
	"github.com/KristellVM/tienda-online/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	users    repository.UserRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
	checkout *services.CheckoutService
}

func NewHandler(users repository.UserRepository, products repository.ProductRepository, orders repository.OrderRepository, checkout *services.CheckoutService) *Handler {
	return &Handler{users: users, products: products, orders: orders, checkout: checkout}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/usuarios", h.ListUsers)
	api.POST("/usuarios", h.CreateUser)
	api.PUT("/usuarios/:id", h.UpdateUser)
	api.DELETE("/usuarios/:id", h.DeleteUser)

	api.GET("/productos", h.ListProducts)
	api.POST("/productos", h.CreateProduct)
	api.PUT("/productos/:nombre", h.UpdateProduct)
	api.PUT("/productos", h.BulkUpdateStock)
	api.DELETE("/productos/:nombre", h.DeleteProduct)

	api.GET("/pedidos", h.ListOrders)
	api.POST("/pedidos", h.CreateOrder)
	api.PUT("/pedidos/:id", h.UpdateOrder)
	api.DELETE("/pedidos/:id", h.DeleteOrder)

	api.POST("/checkout", h.Checkout)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ruta no encontrada"})
	})
}

// storeError maps persistence failures onto the wire. Duplicate keys keep
// the raw constraint message rather than a 409, as the original backend did.
func storeError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
