package ordering

import (
	"strings"

	"github.com/google/uuid"

	"github.com/brewery/backend/internal/domain/shared"
)

// BeerOrder is the ordering aggregate root. It references its customer
// by ID only; the customer side keeps no order collection. The
// shipment, when present, belongs exclusively to the order and is
// persisted in the same transaction.
type BeerOrder struct {
	shared.BaseAggregateRoot
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerRef string          `gorm:"size:255"`
	Lines       []BeerOrderLine `gorm:"foreignKey:BeerOrderID;constraint:OnDelete:CASCADE"`
	Shipment    *Shipment       `gorm:"foreignKey:BeerOrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name
func (BeerOrder) TableName() string {
	return "beer_order"
}

// BeerOrderLine ties one beer and a quantity to an order
type BeerOrderLine struct {
	shared.BaseEntity
	BeerOrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	BeerID            uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderQuantity     int       `gorm:"not null"`
	QuantityAllocated int       `gorm:"not null;default:0"`
}

// TableName returns the database table name
func (BeerOrderLine) TableName() string {
	return "beer_order_line"
}

// Shipment is owned exclusively by one order
type Shipment struct {
	shared.BaseEntity
	BeerOrderID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	TrackingNumber string    `gorm:"size:120"`
}

// TableName returns the database table name
func (Shipment) TableName() string {
	return "beer_order_shipment"
}

// NewBeerOrder creates a new order for a customer. At least one line
// is required and every line quantity must be positive.
func NewBeerOrder(customerID uuid.UUID, customerRef string, lines []BeerOrderLine) (*BeerOrder, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "order requires a customer")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "order requires at least one line")
	}
	o := &BeerOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		CustomerRef:       customerRef,
	}
	for _, line := range lines {
		if line.BeerID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "order line requires a beer")
		}
		if line.OrderQuantity <= 0 {
			return nil, shared.NewDomainError("INVALID_INPUT", "order line quantity must be positive")
		}
		line.BaseEntity = shared.NewBaseEntity()
		line.BeerOrderID = o.ID
		o.Lines = append(o.Lines, line)
	}
	return o, nil
}

// NewBeerOrderLine builds an order line for a beer and quantity
func NewBeerOrderLine(beerID uuid.UUID, quantity int) BeerOrderLine {
	return BeerOrderLine{
		BeerID:        beerID,
		OrderQuantity: quantity,
	}
}

// AttachShipment creates the order's shipment. An order carries at
// most one; attaching twice is an invalid state transition.
func (o *BeerOrder) AttachShipment(trackingNumber string) error {
	if o.Shipment != nil {
		return shared.NewDomainError("INVALID_STATE", "order already has a shipment")
	}
	if strings.TrimSpace(trackingNumber) == "" {
		return shared.NewDomainError("INVALID_INPUT", "tracking number must not be blank")
	}
	o.Shipment = &Shipment{
		BaseEntity:     shared.NewBaseEntity(),
		BeerOrderID:    o.ID,
		TrackingNumber: trackingNumber,
	}
	o.Touch()
	return nil
}
