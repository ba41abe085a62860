package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brewery/backend/internal/domain/catalog"
)

// CreateBeerRequest represents a request to create a new beer
type CreateBeerRequest struct {
	BeerName       string           `json:"beerName" binding:"required,notblank,max=50"`
	BeerStyle      string           `json:"beerStyle" binding:"required"`
	UPC            string           `json:"upc" binding:"required,notblank,max=255"`
	QuantityOnHand *int             `json:"quantityOnHand" binding:"omitempty,min=0"`
	Price          *decimal.Decimal `json:"price" binding:"required"`
}

// UpdateBeerRequest represents a full-replace update of a beer. The
// version, when supplied, must match the stored version.
type UpdateBeerRequest struct {
	Version        *int             `json:"version"`
	BeerName       string           `json:"beerName" binding:"required,notblank,max=50"`
	BeerStyle      string           `json:"beerStyle" binding:"required"`
	UPC            string           `json:"upc" binding:"required,notblank,max=255"`
	QuantityOnHand *int             `json:"quantityOnHand" binding:"omitempty,min=0"`
	Price          *decimal.Decimal `json:"price" binding:"required"`
}

// PatchBeerRequest represents a partial update. String fields apply
// only when supplied non-blank; the rest apply when supplied.
type PatchBeerRequest struct {
	BeerName       *string          `json:"beerName" binding:"omitempty,max=50"`
	BeerStyle      *string          `json:"beerStyle"`
	UPC            *string          `json:"upc" binding:"omitempty,max=255"`
	QuantityOnHand *int             `json:"quantityOnHand" binding:"omitempty,min=0"`
	Price          *decimal.Decimal `json:"price"`
}

// ListBeersQuery carries the raw listing parameters before
// normalization
type ListBeersQuery struct {
	Name          string `form:"name"`
	Style         string `form:"style"`
	ShowInventory *bool  `form:"showInventory"`
	PageNumber    *int   `form:"pageNumber"`
	PageSize      *int   `form:"pageSize"`
}

// BeerResponse represents a beer in API responses
type BeerResponse struct {
	ID             uuid.UUID       `json:"id"`
	Version        int             `json:"version"`
	BeerName       string          `json:"beerName"`
	BeerStyle      string          `json:"beerStyle"`
	UPC            string          `json:"upc"`
	QuantityOnHand *int            `json:"quantityOnHand"`
	Price          decimal.Decimal `json:"price"`
	CreatedDate    time.Time       `json:"createdDate"`
	UpdateDate     time.Time       `json:"updateDate"`
}

// ToBeerResponse converts a domain Beer to BeerResponse. Field names
// carry over as is; the only shaping is inventory redaction applied by
// the service before conversion.
func ToBeerResponse(b *catalog.Beer) BeerResponse {
	return BeerResponse{
		ID:             b.ID,
		Version:        b.Version,
		BeerName:       b.BeerName,
		BeerStyle:      b.BeerStyle.String(),
		UPC:            b.UPC,
		QuantityOnHand: b.QuantityOnHand,
		Price:          b.Price,
		CreatedDate:    b.CreatedAt,
		UpdateDate:     b.UpdatedAt,
	}
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Description string `json:"description" binding:"required,notblank,max=120"`
}

// UpdateCategoryRequest represents a rename of a category. The
// version, when supplied, must match the stored version.
type UpdateCategoryRequest struct {
	Version     *int   `json:"version"`
	Description string `json:"description" binding:"required,notblank,max=120"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Version     int       `json:"version"`
	Description string    `json:"description"`
	CreatedDate time.Time `json:"createdDate"`
	UpdateDate  time.Time `json:"updateDate"`
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Version:     c.Version,
		Description: c.Description,
		CreatedDate: c.CreatedAt,
		UpdateDate:  c.UpdatedAt,
	}
}
