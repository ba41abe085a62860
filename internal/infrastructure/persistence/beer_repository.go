package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brewery/backend/internal/domain/catalog"
	"github.com/brewery/backend/internal/domain/shared"
)

// GormBeerRepository implements catalog.BeerRepository using GORM
type GormBeerRepository struct {
	db *gorm.DB
}

// NewGormBeerRepository creates a new GORM beer repository
func NewGormBeerRepository(db *gorm.DB) *GormBeerRepository {
	return &GormBeerRepository{db: db}
}

// FindByID finds a beer by ID
func (r *GormBeerRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Beer, error) {
	var beer catalog.Beer
	err := r.db.WithContext(ctx).Preload("Categories").First(&beer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find beer: %w", err)
	}
	return &beer, nil
}

// applyQuery selects one of four predicate shapes based on which
// filters are present: name only, style only, both, or none.
func applyQuery(db *gorm.DB, query catalog.BeerQuery) *gorm.DB {
	switch {
	case query.Name != "" && query.Style != "":
		return db.Where("LOWER(beer_name) LIKE LOWER(?) AND beer_style = ?",
			"%"+query.Name+"%", query.Style)
	case query.Name != "":
		return db.Where("LOWER(beer_name) LIKE LOWER(?)", "%"+query.Name+"%")
	case query.Style != "":
		return db.Where("beer_style = ?", query.Style)
	default:
		return db
	}
}

// List returns one page of beers ordered by name ascending
func (r *GormBeerRepository) List(ctx context.Context, query catalog.BeerQuery) (shared.Page[catalog.Beer], error) {
	var total int64
	if err := applyQuery(r.db.WithContext(ctx).Model(&catalog.Beer{}), query).
		Count(&total).Error; err != nil {
		return shared.Page[catalog.Beer]{}, fmt.Errorf("failed to count beers: %w", err)
	}

	var beers []catalog.Beer
	err := applyQuery(r.db.WithContext(ctx).Model(&catalog.Beer{}), query).
		Order("beer_name ASC").
		Offset(query.Page.Offset()).
		Limit(query.Page.Size).
		Find(&beers).Error
	if err != nil {
		return shared.Page[catalog.Beer]{}, fmt.Errorf("failed to list beers: %w", err)
	}

	return shared.NewPage(beers, query.Page, total), nil
}

// FindByCategoryID returns one page of the beers attached to a category
func (r *GormBeerRepository) FindByCategoryID(ctx context.Context, categoryID uuid.UUID, page shared.PageRequest) (shared.Page[catalog.Beer], error) {
	inCategory := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&catalog.Beer{}).
			Joins("JOIN beer_category ON beer_category.beer_id = beer.id").
			Where("beer_category.category_id = ?", categoryID)
	}

	var total int64
	if err := inCategory().Count(&total).Error; err != nil {
		return shared.Page[catalog.Beer]{}, fmt.Errorf("failed to count beers in category: %w", err)
	}

	var beers []catalog.Beer
	err := inCategory().
		Order("beer_name ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&beers).Error
	if err != nil {
		return shared.Page[catalog.Beer]{}, fmt.Errorf("failed to list beers in category: %w", err)
	}

	return shared.NewPage(beers, page, total), nil
}

// Save inserts a new beer
func (r *GormBeerRepository) Save(ctx context.Context, beer *catalog.Beer) error {
	if err := r.db.WithContext(ctx).Create(beer).Error; err != nil {
		return fmt.Errorf("failed to save beer: %w", err)
	}
	return nil
}

// Update persists a modified beer guarded by a compare-and-swap on the
// previous version. Zero matched rows mean either the beer is gone or
// another writer got there first.
func (r *GormBeerRepository) Update(ctx context.Context, beer *catalog.Beer, previousVersion int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&catalog.Beer{}).
			Where("id = ? AND version = ?", beer.ID, previousVersion).
			Updates(map[string]interface{}{
				"beer_name":        beer.BeerName,
				"beer_style":       beer.BeerStyle,
				"upc":              beer.UPC,
				"quantity_on_hand": beer.QuantityOnHand,
				"price":            beer.Price,
				"version":          beer.Version,
				"updated_at":       beer.UpdatedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update beer: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			var exists int64
			if err := tx.Model(&catalog.Beer{}).Where("id = ?", beer.ID).Count(&exists).Error; err != nil {
				return fmt.Errorf("failed to check beer existence: %w", err)
			}
			if exists == 0 {
				return shared.ErrNotFound
			}
			return shared.ErrConcurrencyConflict
		}
		// Replace with the full set so removals also persist
		if err := tx.Model(beer).Association("Categories").Replace(beer.Categories); err != nil {
			return fmt.Errorf("failed to update beer categories: %w", err)
		}
		return nil
	})
}

// Delete removes a beer by ID. A foreign key violation means order
// lines still reference the beer.
func (r *GormBeerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Beer{}, "id = ?", id)
	if result.Error != nil {
		if isConstraintViolation(result.Error) {
			return shared.NewConstraintViolation("beerId", "cannot delete a beer referenced by orders")
		}
		return fmt.Errorf("failed to delete beer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByID checks whether a beer exists
func (r *GormBeerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&catalog.Beer{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check beer existence: %w", err)
	}
	return count > 0, nil
}

// Count returns the total number of beers
func (r *GormBeerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&catalog.Beer{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count beers: %w", err)
	}
	return count, nil
}

// Ensure GormBeerRepository implements catalog.BeerRepository
var _ catalog.BeerRepository = (*GormBeerRepository)(nil)
