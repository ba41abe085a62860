package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/brewery/backend/internal/domain/shared"
)

// BeerQuery carries the normalized listing parameters. An empty Name
// means no name filter; an empty Style means no style filter. The page
// request is already zero-based and clamped by the caller.
type BeerQuery struct {
	Name  string
	Style BeerStyle
	Page  shared.PageRequest
}

// BeerRepository is the persistence gateway for beers. Update applies
// a compare-and-swap against previousVersion and returns
// shared.ErrConcurrencyConflict when the stored row has moved on.
type BeerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Beer, error)
	List(ctx context.Context, query BeerQuery) (shared.Page[Beer], error)
	FindByCategoryID(ctx context.Context, categoryID uuid.UUID, page shared.PageRequest) (shared.Page[Beer], error)
	Save(ctx context.Context, beer *Beer) error
	Update(ctx context.Context, beer *Beer, previousVersion int) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// CategoryRepository is the persistence gateway for categories.
// Update follows the same compare-and-swap contract as
// BeerRepository.Update.
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	Save(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category, previousVersion int) error
	Delete(ctx context.Context, id uuid.UUID) error
}
