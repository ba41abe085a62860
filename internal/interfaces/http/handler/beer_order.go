package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	orderingapp "github.com/brewery/backend/internal/application/ordering"
)

// BeerOrderHandler handles order API endpoints
type BeerOrderHandler struct {
	BaseHandler
	orderService *orderingapp.BeerOrderService
}

// NewBeerOrderHandler creates a new BeerOrderHandler
func NewBeerOrderHandler(orderService *orderingapp.BeerOrderService) *BeerOrderHandler {
	return &BeerOrderHandler{orderService: orderService}
}

// RegisterRoutes wires the order endpoints into the API group
func (h *BeerOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/beerOrder")
	orders.POST("", h.Create)
	orders.GET("/:orderId", h.GetByID)
	orders.DELETE("/:orderId", h.DeleteByID)
}

// Create places a new order for an existing customer
func (h *BeerOrderHandler) Create(c *gin.Context) {
	var req orderingapp.CreateBeerOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/v1/beerOrder/%s", order.ID))
	c.JSON(http.StatusCreated, order)
}

// GetByID returns a single order with its lines and shipment
func (h *BeerOrderHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "orderId")
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteByID removes an order
func (h *BeerOrderHandler) DeleteByID(c *gin.Context) {
	id, ok := h.parseID(c, "orderId")
	if !ok {
		return
	}

	if err := h.orderService.DeleteByID(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusOK)
}
