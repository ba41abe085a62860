package ordering

import (
	"time"

	"github.com/google/uuid"

	"github.com/brewery/backend/internal/domain/ordering"
)

// CreateCustomerRequest represents a request to create a customer
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required,notblank,max=120"`
	Email string `json:"email" binding:"omitempty,email,max=255"`
}

// UpdateCustomerRequest represents a full-replace customer update
type UpdateCustomerRequest struct {
	Version *int   `json:"version"`
	Name    string `json:"name" binding:"required,notblank,max=120"`
	Email   string `json:"email" binding:"omitempty,email,max=255"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID          uuid.UUID `json:"id"`
	Version     int       `json:"version"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CreatedDate time.Time `json:"createdDate"`
	UpdateDate  time.Time `json:"updateDate"`
}

// ToCustomerResponse converts a domain Customer to CustomerResponse
func ToCustomerResponse(c *ordering.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Version:     c.Version,
		Name:        c.Name,
		Email:       c.Email,
		CreatedDate: c.CreatedAt,
		UpdateDate:  c.UpdatedAt,
	}
}

// OrderLineRequest is one beer/quantity pair of a new order
type OrderLineRequest struct {
	BeerID        uuid.UUID `json:"beerId" binding:"required"`
	OrderQuantity int       `json:"orderQuantity" binding:"required,min=1"`
}

// CreateBeerOrderRequest represents a request to place an order. A
// tracking number, when supplied, creates the order's shipment in the
// same transaction.
type CreateBeerOrderRequest struct {
	CustomerID     uuid.UUID          `json:"customerId" binding:"required"`
	CustomerRef    string             `json:"customerRef" binding:"max=255"`
	Lines          []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
	TrackingNumber *string            `json:"trackingNumber"`
}

// OrderLineResponse represents an order line in API responses
type OrderLineResponse struct {
	ID                uuid.UUID `json:"id"`
	BeerID            uuid.UUID `json:"beerId"`
	OrderQuantity     int       `json:"orderQuantity"`
	QuantityAllocated int       `json:"quantityAllocated"`
}

// ShipmentResponse represents a shipment in API responses
type ShipmentResponse struct {
	ID             uuid.UUID `json:"id"`
	TrackingNumber string    `json:"trackingNumber"`
}

// BeerOrderResponse represents an order in API responses
type BeerOrderResponse struct {
	ID          uuid.UUID           `json:"id"`
	Version     int                 `json:"version"`
	CustomerID  uuid.UUID           `json:"customerId"`
	CustomerRef string              `json:"customerRef"`
	Lines       []OrderLineResponse `json:"lines"`
	Shipment    *ShipmentResponse   `json:"shipment"`
	CreatedDate time.Time           `json:"createdDate"`
	UpdateDate  time.Time           `json:"updateDate"`
}

// ToBeerOrderResponse converts a domain BeerOrder to BeerOrderResponse
func ToBeerOrderResponse(o *ordering.BeerOrder) BeerOrderResponse {
	resp := BeerOrderResponse{
		ID:          o.ID,
		Version:     o.Version,
		CustomerID:  o.CustomerID,
		CustomerRef: o.CustomerRef,
		CreatedDate: o.CreatedAt,
		UpdateDate:  o.UpdatedAt,
	}
	for _, line := range o.Lines {
		resp.Lines = append(resp.Lines, OrderLineResponse{
			ID:                line.ID,
			BeerID:            line.BeerID,
			OrderQuantity:     line.OrderQuantity,
			QuantityAllocated: line.QuantityAllocated,
		})
	}
	if o.Shipment != nil {
		resp.Shipment = &ShipmentResponse{
			ID:             o.Shipment.ID,
			TrackingNumber: o.Shipment.TrackingNumber,
		}
	}
	return resp
}
