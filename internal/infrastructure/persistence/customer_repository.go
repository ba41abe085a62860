package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brewery/backend/internal/domain/ordering"
	"github.com/brewery/backend/internal/domain/shared"
)

// GormCustomerRepository implements ordering.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Customer, error) {
	var customer ordering.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	return &customer, nil
}

// FindAll returns one page of customers ordered by name
func (r *GormCustomerRepository) FindAll(ctx context.Context, page shared.PageRequest) (shared.Page[ordering.Customer], error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&ordering.Customer{}).Count(&total).Error; err != nil {
		return shared.Page[ordering.Customer]{}, fmt.Errorf("failed to count customers: %w", err)
	}

	var customers []ordering.Customer
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&customers).Error
	if err != nil {
		return shared.Page[ordering.Customer]{}, fmt.Errorf("failed to list customers: %w", err)
	}

	return shared.NewPage(customers, page, total), nil
}

// Save inserts a new customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *ordering.Customer) error {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

// Update persists a modified customer guarded by a compare-and-swap on
// the previous version
func (r *GormCustomerRepository) Update(ctx context.Context, customer *ordering.Customer, previousVersion int) error {
	result := r.db.WithContext(ctx).Model(&ordering.Customer{}).
		Where("id = ? AND version = ?", customer.ID, previousVersion).
		Updates(map[string]interface{}{
			"name":       customer.Name,
			"email":      customer.Email,
			"version":    customer.Version,
			"updated_at": customer.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var exists int64
		if err := r.db.WithContext(ctx).Model(&ordering.Customer{}).
			Where("id = ?", customer.ID).Count(&exists).Error; err != nil {
			return fmt.Errorf("failed to check customer existence: %w", err)
		}
		if exists == 0 {
			return shared.ErrNotFound
		}
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete removes a customer by ID. A foreign key violation means the
// customer still has orders.
func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ordering.Customer{}, "id = ?", id)
	if result.Error != nil {
		if isConstraintViolation(result.Error) {
			return shared.NewConstraintViolation("customerId", "cannot delete a customer with existing orders")
		}
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByID checks whether a customer exists
func (r *GormCustomerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ordering.Customer{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}
	return count > 0, nil
}

// Ensure GormCustomerRepository implements ordering.CustomerRepository
var _ ordering.CustomerRepository = (*GormCustomerRepository)(nil)
