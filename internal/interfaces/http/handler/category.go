package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/brewery/backend/internal/application/catalog"
	"github.com/brewery/backend/internal/interfaces/http/dto"
)

// CategoryHandler handles category API endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *catalogapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *catalogapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// RegisterRoutes wires the category endpoints into the API group
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/category")
	categories.GET("", h.List)
	categories.POST("", h.Create)
	categories.PUT("/:categoryId", h.UpdateByID)
	categories.DELETE("/:categoryId", h.DeleteByID)
	categories.PUT("/:categoryId/beer/:beerId", h.AssignBeer)
	categories.DELETE("/:categoryId/beer/:beerId", h.UnassignBeer)
	categories.GET("/:categoryId/beers", h.ListBeers)
}

// List returns all categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	if categories == nil {
		categories = []catalogapp.CategoryResponse{}
	}
	c.JSON(http.StatusOK, categories)
}

// Create persists a new category
func (h *CategoryHandler) Create(c *gin.Context) {
	var req catalogapp.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/v1/category/%s", category.ID))
	c.JSON(http.StatusCreated, category)
}

// UpdateByID renames a category
func (h *CategoryHandler) UpdateByID(c *gin.Context) {
	id, ok := h.parseID(c, "categoryId")
	if !ok {
		return
	}

	var req catalogapp.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	category, err := h.categoryService.UpdateByID(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteByID removes a category
func (h *CategoryHandler) DeleteByID(c *gin.Context) {
	id, ok := h.parseID(c, "categoryId")
	if !ok {
		return
	}

	if err := h.categoryService.DeleteByID(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// AssignBeer adds a beer to a category
func (h *CategoryHandler) AssignBeer(c *gin.Context) {
	categoryID, ok := h.parseID(c, "categoryId")
	if !ok {
		return
	}
	beerID, ok := h.parseID(c, "beerId")
	if !ok {
		return
	}

	if err := h.categoryService.AssignBeer(c.Request.Context(), categoryID, beerID); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UnassignBeer removes a beer from a category
func (h *CategoryHandler) UnassignBeer(c *gin.Context) {
	categoryID, ok := h.parseID(c, "categoryId")
	if !ok {
		return
	}
	beerID, ok := h.parseID(c, "beerId")
	if !ok {
		return
	}

	if err := h.categoryService.UnassignBeer(c.Request.Context(), categoryID, beerID); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListBeers returns one page of the category's beers
func (h *CategoryHandler) ListBeers(c *gin.Context) {
	categoryID, ok := h.parseID(c, "categoryId")
	if !ok {
		return
	}

	var query pageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.categoryService.ListBeers(c.Request.Context(), categoryID, query.PageNumber, query.PageSize)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(page))
}
