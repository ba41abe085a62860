package ordering

import (
	"context"

	"github.com/google/uuid"

	"github.com/brewery/backend/internal/domain/shared"
)

// CustomerRepository is the persistence gateway for customers
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindAll(ctx context.Context, page shared.PageRequest) (shared.Page[Customer], error)
	Save(ctx context.Context, customer *Customer) error
	Update(ctx context.Context, customer *Customer, previousVersion int) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// BeerOrderRepository is the persistence gateway for beer orders.
// Save persists the order together with its lines and shipment in one
// transaction.
type BeerOrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BeerOrder, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, page shared.PageRequest) (shared.Page[BeerOrder], error)
	Save(ctx context.Context, order *BeerOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
}
