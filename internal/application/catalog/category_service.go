package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/brewery/backend/internal/domain/catalog"
	"github.com/brewery/backend/internal/domain/shared"
)

// CategoryService manages beer categories and their membership
type CategoryService struct {
	categories catalog.CategoryRepository
	beers      catalog.BeerRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categories catalog.CategoryRepository, beers catalog.BeerRepository) *CategoryService {
	return &CategoryService{categories: categories, beers: beers}
}

// Create persists a new category
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error) {
	category, err := catalog.NewCategory(req.Description)
	if err != nil {
		return CategoryResponse{}, err
	}
	if err := s.categories.Save(ctx, category); err != nil {
		return CategoryResponse{}, err
	}
	return ToCategoryResponse(category), nil
}

// List returns all categories
func (s *CategoryService) List(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, ToCategoryResponse(&categories[i]))
	}
	return out, nil
}

// UpdateByID renames a category guarded by the optimistic version
func (s *CategoryService) UpdateByID(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (CategoryResponse, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return CategoryResponse{}, err
	}
	if req.Version != nil && *req.Version != category.Version {
		return CategoryResponse{}, shared.ErrConcurrencyConflict
	}

	previousVersion := category.Version
	if err := category.Rename(req.Description); err != nil {
		return CategoryResponse{}, err
	}
	if err := s.categories.Update(ctx, category, previousVersion); err != nil {
		return CategoryResponse{}, err
	}
	return ToCategoryResponse(category), nil
}

// DeleteByID removes a category
func (s *CategoryService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.categories.Delete(ctx, id)
}

// AssignBeer attaches a beer to a category. The link lives on the beer
// side only.
func (s *CategoryService) AssignBeer(ctx context.Context, categoryID, beerID uuid.UUID) error {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return err
	}
	beer, err := s.beers.FindByID(ctx, beerID)
	if err != nil {
		return err
	}

	previousVersion := beer.Version
	beer.AddCategory(*category)
	return s.beers.Update(ctx, beer, previousVersion)
}

// UnassignBeer detaches a beer from a category
func (s *CategoryService) UnassignBeer(ctx context.Context, categoryID, beerID uuid.UUID) error {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return err
	}
	beer, err := s.beers.FindByID(ctx, beerID)
	if err != nil {
		return err
	}

	previousVersion := beer.Version
	beer.RemoveCategory(*category)
	return s.beers.Update(ctx, beer, previousVersion)
}

// ListBeers returns one page of the beers attached to a category
func (s *CategoryService) ListBeers(ctx context.Context, categoryID uuid.UUID, pageNumber, pageSize *int) (shared.Page[BeerResponse], error) {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return shared.Page[BeerResponse]{}, err
	}

	page, err := s.beers.FindByCategoryID(ctx, categoryID, normalizePage(pageNumber, pageSize))
	if err != nil {
		return shared.Page[BeerResponse]{}, err
	}

	content := make([]BeerResponse, 0, len(page.Content))
	for i := range page.Content {
		content = append(content, ToBeerResponse(&page.Content[i]))
	}
	return shared.Page[BeerResponse]{
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
