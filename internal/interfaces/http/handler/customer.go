package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	orderingapp "github.com/brewery/backend/internal/application/ordering"
	"github.com/brewery/backend/internal/interfaces/http/dto"
)

// CustomerHandler handles customer API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *orderingapp.CustomerService
	orderService    *orderingapp.BeerOrderService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *orderingapp.CustomerService, orderService *orderingapp.BeerOrderService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		orderService:    orderService,
	}
}

// RegisterRoutes wires the customer endpoints into the API group
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customer")
	customers.GET("", h.List)
	customers.POST("", h.Create)
	customers.GET("/:customerId", h.GetByID)
	customers.PUT("/:customerId", h.UpdateByID)
	customers.DELETE("/:customerId", h.DeleteByID)
	customers.GET("/:customerId/orders", h.ListOrders)
}

type pageQuery struct {
	PageNumber *int `form:"pageNumber"`
	PageSize   *int `form:"pageSize"`
}

// List returns one page of customers
func (h *CustomerHandler) List(c *gin.Context) {
	var query pageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.customerService.List(c.Request.Context(), query.PageNumber, query.PageSize)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(page))
}

// GetByID returns a single customer
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "customerId")
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Create persists a new customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req orderingapp.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/v1/customer/%s", customer.ID))
	c.JSON(http.StatusCreated, customer)
}

// UpdateByID replaces an existing customer's mutable fields
func (h *CustomerHandler) UpdateByID(c *gin.Context) {
	id, ok := h.parseID(c, "customerId")
	if !ok {
		return
	}

	var req orderingapp.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	customer, err := h.customerService.UpdateByID(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DeleteByID removes a customer
func (h *CustomerHandler) DeleteByID(c *gin.Context) {
	id, ok := h.parseID(c, "customerId")
	if !ok {
		return
	}

	if err := h.customerService.DeleteByID(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// ListOrders returns one page of the customer's orders, newest first
func (h *CustomerHandler) ListOrders(c *gin.Context) {
	id, ok := h.parseID(c, "customerId")
	if !ok {
		return
	}

	var query pageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.orderService.ListByCustomer(c.Request.Context(), id, query.PageNumber, query.PageSize)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(page))
}
