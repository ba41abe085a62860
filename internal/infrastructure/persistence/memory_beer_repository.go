package persistence

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/brewery/backend/internal/domain/catalog"
	"github.com/brewery/backend/internal/domain/shared"
)

// MemoryBeerRepository implements catalog.BeerRepository with an
// in-process map. It is interchangeable with the GORM variant at
// construction time and honors the same paging, ordering and
// compare-and-swap semantics.
type MemoryBeerRepository struct {
	mu    sync.RWMutex
	beers map[uuid.UUID]catalog.Beer
}

// NewMemoryBeerRepository creates an empty in-memory beer repository
func NewMemoryBeerRepository() *MemoryBeerRepository {
	return &MemoryBeerRepository{beers: make(map[uuid.UUID]catalog.Beer)}
}

// FindByID finds a beer by ID
func (r *MemoryBeerRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Beer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	beer, ok := r.beers[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := beer
	return &copied, nil
}

func matches(beer *catalog.Beer, query catalog.BeerQuery) bool {
	if query.Name != "" && !strings.Contains(strings.ToLower(beer.BeerName), strings.ToLower(query.Name)) {
		return false
	}
	if query.Style != "" && beer.BeerStyle != query.Style {
		return false
	}
	return true
}

// List returns one page of beers ordered by name ascending
func (r *MemoryBeerRepository) List(ctx context.Context, query catalog.BeerQuery) (shared.Page[catalog.Beer], error) {
	r.mu.RLock()
	matched := make([]catalog.Beer, 0, len(r.beers))
	for _, beer := range r.beers {
		if matches(&beer, query) {
			matched = append(matched, beer)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].BeerName < matched[j].BeerName
	})

	return pageOf(matched, query.Page), nil
}

// FindByCategoryID returns one page of the beers attached to a category
func (r *MemoryBeerRepository) FindByCategoryID(ctx context.Context, categoryID uuid.UUID, page shared.PageRequest) (shared.Page[catalog.Beer], error) {
	r.mu.RLock()
	matched := make([]catalog.Beer, 0)
	for _, beer := range r.beers {
		for _, category := range beer.Categories {
			if category.ID == categoryID {
				matched = append(matched, beer)
				break
			}
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].BeerName < matched[j].BeerName
	})

	return pageOf(matched, page), nil
}

func pageOf(matched []catalog.Beer, page shared.PageRequest) shared.Page[catalog.Beer] {
	total := int64(len(matched))
	start := page.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.Size
	if end > len(matched) {
		end = len(matched)
	}
	return shared.NewPage(matched[start:end], page, total)
}

// Save inserts a new beer
func (r *MemoryBeerRepository) Save(ctx context.Context, beer *catalog.Beer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.beers[beer.ID]; exists {
		return shared.ErrAlreadyExists
	}
	r.beers[beer.ID] = *beer
	return nil
}

// Update applies a compare-and-swap against the stored version
func (r *MemoryBeerRepository) Update(ctx context.Context, beer *catalog.Beer, previousVersion int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.beers[beer.ID]
	if !ok {
		return shared.ErrNotFound
	}
	if stored.Version != previousVersion {
		return shared.ErrConcurrencyConflict
	}
	r.beers[beer.ID] = *beer
	return nil
}

// Delete removes a beer by ID
func (r *MemoryBeerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.beers[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.beers, id)
	return nil
}

// ExistsByID checks whether a beer exists
func (r *MemoryBeerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.beers[id]
	return ok, nil
}

// Count returns the total number of beers
func (r *MemoryBeerRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.beers)), nil
}

// Ensure MemoryBeerRepository implements catalog.BeerRepository
var _ catalog.BeerRepository = (*MemoryBeerRepository)(nil)
