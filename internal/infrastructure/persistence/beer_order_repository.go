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

// GormBeerOrderRepository implements ordering.BeerOrderRepository
// using GORM. Orders persist together with their lines and shipment.
type GormBeerOrderRepository struct {
	db *gorm.DB
}

// NewGormBeerOrderRepository creates a new GORM beer order repository
func NewGormBeerOrderRepository(db *gorm.DB) *GormBeerOrderRepository {
	return &GormBeerOrderRepository{db: db}
}

// FindByID finds an order with its lines and shipment
func (r *GormBeerOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.BeerOrder, error) {
	var order ordering.BeerOrder
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Shipment").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find beer order: %w", err)
	}
	return &order, nil
}

// FindByCustomerID returns one page of a customer's orders, newest first
func (r *GormBeerOrderRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID, page shared.PageRequest) (shared.Page[ordering.BeerOrder], error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&ordering.BeerOrder{}).
		Where("customer_id = ?", customerID).Count(&total).Error; err != nil {
		return shared.Page[ordering.BeerOrder]{}, fmt.Errorf("failed to count beer orders: %w", err)
	}

	var orders []ordering.BeerOrder
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Shipment").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&orders).Error
	if err != nil {
		return shared.Page[ordering.BeerOrder]{}, fmt.Errorf("failed to list beer orders: %w", err)
	}

	return shared.NewPage(orders, page, total), nil
}

// Save inserts a new order with its lines and shipment in one
// transaction
func (r *GormBeerOrderRepository) Save(ctx context.Context, order *ordering.BeerOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			// The customer or a beer can vanish between the service's
			// existence checks and the insert.
			if isConstraintViolation(err) {
				return shared.NewConstraintViolation(
					constraintField(err, "customerId"), "referenced record no longer exists")
			}
			return fmt.Errorf("failed to save beer order: %w", err)
		}
		return nil
	})
}

// Delete removes an order; lines and shipment cascade
func (r *GormBeerOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ordering.BeerOrder{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete beer order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormBeerOrderRepository implements ordering.BeerOrderRepository
var _ ordering.BeerOrderRepository = (*GormBeerOrderRepository)(nil)
