package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/brewery/backend/internal/application/catalog"
	"github.com/brewery/backend/internal/interfaces/http/dto"
)

// BeerHandler handles beer catalog API endpoints
type BeerHandler struct {
	BaseHandler
	beerService *catalogapp.BeerService
}

// NewBeerHandler creates a new BeerHandler
func NewBeerHandler(beerService *catalogapp.BeerService) *BeerHandler {
	return &BeerHandler{beerService: beerService}
}

// RegisterRoutes wires the beer endpoints into the API group
func (h *BeerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	beers := rg.Group("/beer")
	beers.GET("", h.List)
	beers.POST("", h.Create)
	beers.GET("/:beerId", h.GetByID)
	beers.PUT("/:beerId", h.UpdateByID)
	beers.PATCH("/:beerId", h.PatchByID)
	beers.DELETE("/:beerId", h.DeleteByID)
}

// List returns one page of beers, optionally filtered by name
// substring and style
func (h *BeerHandler) List(c *gin.Context) {
	var query catalogapp.ListBeersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.beerService.List(c.Request.Context(), query)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(page))
}

// GetByID returns a single beer
func (h *BeerHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "beerId")
	if !ok {
		return
	}

	beer, err := h.beerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, beer)
}

// Create persists a new beer and reports its location
func (h *BeerHandler) Create(c *gin.Context) {
	var req catalogapp.CreateBeerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	beer, err := h.beerService.Create(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/v1/beer/%s", beer.ID))
	c.JSON(http.StatusCreated, beer)
}

// UpdateByID replaces every mutable field of an existing beer
func (h *BeerHandler) UpdateByID(c *gin.Context) {
	id, ok := h.parseID(c, "beerId")
	if !ok {
		return
	}

	var req catalogapp.UpdateBeerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	beer, err := h.beerService.UpdateByID(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, beer)
}

// PatchByID applies the supplied fields to an existing beer
func (h *BeerHandler) PatchByID(c *gin.Context) {
	id, ok := h.parseID(c, "beerId")
	if !ok {
		return
	}

	var req catalogapp.PatchBeerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.beerService.PatchByID(c.Request.Context(), id, req); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteByID removes a beer
func (h *BeerHandler) DeleteByID(c *gin.Context) {
	id, ok := h.parseID(c, "beerId")
	if !ok {
		return
	}

	if err := h.beerService.DeleteByID(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusOK)
}
