package ordering

import (
	"context"

	"github.com/google/uuid"

	"github.com/brewery/backend/internal/domain/catalog"
	"github.com/brewery/backend/internal/domain/ordering"
	"github.com/brewery/backend/internal/domain/shared"
)

// BeerOrderService places and looks up beer orders. It validates the
// customer and every referenced beer before persisting.
type BeerOrderService struct {
	orders    ordering.BeerOrderRepository
	customers ordering.CustomerRepository
	beers     catalog.BeerRepository
}

// NewBeerOrderService creates a new beer order service
func NewBeerOrderService(orders ordering.BeerOrderRepository, customers ordering.CustomerRepository, beers catalog.BeerRepository) *BeerOrderService {
	return &BeerOrderService{orders: orders, customers: customers, beers: beers}
}

// Create places a new order. The shipment, when requested, is created
// with the order in one transaction.
func (s *BeerOrderService) Create(ctx context.Context, req CreateBeerOrderRequest) (BeerOrderResponse, error) {
	exists, err := s.customers.ExistsByID(ctx, req.CustomerID)
	if err != nil {
		return BeerOrderResponse{}, err
	}
	if !exists {
		return BeerOrderResponse{}, shared.ErrNotFound
	}

	lines := make([]ordering.BeerOrderLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		beerExists, err := s.beers.ExistsByID(ctx, line.BeerID)
		if err != nil {
			return BeerOrderResponse{}, err
		}
		if !beerExists {
			return BeerOrderResponse{}, shared.ErrNotFound
		}
		lines = append(lines, ordering.NewBeerOrderLine(line.BeerID, line.OrderQuantity))
	}

	order, err := ordering.NewBeerOrder(req.CustomerID, req.CustomerRef, lines)
	if err != nil {
		return BeerOrderResponse{}, err
	}
	if req.TrackingNumber != nil {
		if err := order.AttachShipment(*req.TrackingNumber); err != nil {
			return BeerOrderResponse{}, err
		}
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return BeerOrderResponse{}, err
	}
	return ToBeerOrderResponse(order), nil
}

// GetByID returns a single order with its lines and shipment
func (s *BeerOrderService) GetByID(ctx context.Context, id uuid.UUID) (BeerOrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return BeerOrderResponse{}, err
	}
	return ToBeerOrderResponse(order), nil
}

// DeleteByID removes an order together with its lines and shipment
func (s *BeerOrderService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.orders.Delete(ctx, id)
}

// ListByCustomer returns one page of a customer's orders
func (s *BeerOrderService) ListByCustomer(ctx context.Context, customerID uuid.UUID, pageNumber, pageSize *int) (shared.Page[BeerOrderResponse], error) {
	exists, err := s.customers.ExistsByID(ctx, customerID)
	if err != nil {
		return shared.Page[BeerOrderResponse]{}, err
	}
	if !exists {
		return shared.Page[BeerOrderResponse]{}, shared.ErrNotFound
	}

	page, err := s.orders.FindByCustomerID(ctx, customerID, normalizePage(pageNumber, pageSize))
	if err != nil {
		return shared.Page[BeerOrderResponse]{}, err
	}

	content := make([]BeerOrderResponse, 0, len(page.Content))
	for i := range page.Content {
		content = append(content, ToBeerOrderResponse(&page.Content[i]))
	}
	return shared.Page[BeerOrderResponse]{
		Content:          content,
		Number:           page.Number,
		Size:             page.Size,
		TotalElements:    page.TotalElements,
		TotalPages:       page.TotalPages,
		First:            page.First,
		Last:             page.Last,
		NumberOfElements: page.NumberOfElements,
	}, nil
}
