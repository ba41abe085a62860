package ordering

import (
	"strings"

	"github.com/brewery/backend/internal/domain/shared"
)

// Customer places beer orders. It keeps no order collection of its
// own; a customer's orders are found through
// BeerOrderRepository.FindByCustomerID.
type Customer struct {
	shared.BaseAggregateRoot
	Name  string `gorm:"size:120;not null"`
	Email string `gorm:"size:255"`
}

// TableName returns the database table name
func (Customer) TableName() string {
	return "customer"
}

// NewCustomer creates a new customer
func NewCustomer(name, email string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "customer name must not be blank")
	}
	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             email,
	}, nil
}

// Replace overwrites the customer's mutable fields
func (c *Customer) Replace(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "customer name must not be blank")
	}
	c.Name = name
	c.Email = email
	c.Touch()
	c.IncrementVersion()
	return nil
}
