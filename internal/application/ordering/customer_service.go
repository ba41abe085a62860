package ordering

import (
	"context"

	"github.com/google/uuid"

	"github.com/brewery/backend/internal/domain/ordering"
	"github.com/brewery/backend/internal/domain/shared"
)

const (
	defaultPageSize = 25
	maxPageSize     = 1000
)

// CustomerService orchestrates customer lifecycle operations
type CustomerService struct {
	customers ordering.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customers ordering.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

func normalizePage(pageNumber, pageSize *int) shared.PageRequest {
	number := 0
	if pageNumber != nil && *pageNumber > 0 {
		number = *pageNumber - 1
	}
	size := defaultPageSize
	if pageSize != nil && *pageSize > 0 {
		size = *pageSize
		if size > maxPageSize {
			size = maxPageSize
		}
	}
	return shared.PageRequest{Number: number, Size: size}
}

// List returns one page of customers
func (s *CustomerService) List(ctx context.Context, pageNumber, pageSize *int) (shared.Page[CustomerResponse], error) {
	page, err := s.customers.FindAll(ctx, normalizePage(pageNumber, pageSize))
	if err != nil {
		return shared.Page[CustomerResponse]{}, err
	}

	content := make([]CustomerResponse, 0, len(page.Content))
	for i := range page.Content {
		content = append(content, ToCustomerResponse(&page.Content[i]))
	}
	return shared.Page[CustomerResponse]{
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

// GetByID returns a single customer
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (CustomerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return CustomerResponse{}, err
	}
	return ToCustomerResponse(customer), nil
}

// Create persists a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (CustomerResponse, error) {
	customer, err := ordering.NewCustomer(req.Name, req.Email)
	if err != nil {
		return CustomerResponse{}, err
	}
	if err := s.customers.Save(ctx, customer); err != nil {
		return CustomerResponse{}, err
	}
	return ToCustomerResponse(customer), nil
}

// UpdateByID overwrites the customer's mutable fields under the same
// optimistic version rules as beers
func (s *CustomerService) UpdateByID(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (CustomerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return CustomerResponse{}, err
	}
	if req.Version != nil && *req.Version != customer.Version {
		return CustomerResponse{}, shared.ErrConcurrencyConflict
	}

	previousVersion := customer.Version
	if err := customer.Replace(req.Name, req.Email); err != nil {
		return CustomerResponse{}, err
	}
	if err := s.customers.Update(ctx, customer, previousVersion); err != nil {
		return CustomerResponse{}, err
	}
	return ToCustomerResponse(customer), nil
}

// DeleteByID removes a customer after an explicit existence check
func (s *CustomerService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	exists, err := s.customers.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}
	return s.customers.Delete(ctx, id)
}
