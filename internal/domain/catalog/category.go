package catalog

import (
	"strings"

	"github.com/brewery/backend/internal/domain/shared"
)

// Category groups beers. It holds no back-reference to its beers;
// membership is answered by BeerRepository.FindByCategoryID.
type Category struct {
	shared.BaseAggregateRoot
	Description string `gorm:"size:120;not null"`
}

// TableName returns the database table name
func (Category) TableName() string {
	return "category"
}

// NewCategory creates a new category
func NewCategory(description string) (*Category, error) {
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "category description must not be blank")
	}
	return &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Description:       description,
	}, nil
}

// Rename updates the category description
func (c *Category) Rename(description string) error {
	if strings.TrimSpace(description) == "" {
		return shared.NewDomainError("INVALID_INPUT", "category description must not be blank")
	}
	c.Description = description
	c.Touch()
	c.IncrementVersion()
	return nil
}
