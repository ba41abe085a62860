package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/brewery/backend/internal/domain/catalog"
	"github.com/brewery/backend/internal/domain/shared"
)

const (
	defaultPageSize = 25
	maxPageSize     = 1000
)

// BeerService orchestrates beer listing and lifecycle against the
// repository. It is agnostic to which repository variant backs it.
type BeerService struct {
	beers catalog.BeerRepository
}

// NewBeerService creates a new beer service
func NewBeerService(beers catalog.BeerRepository) *BeerService {
	return &BeerService{beers: beers}
}

// normalizePage turns the 1-based wire parameters into a zero-based,
// clamped page request. Out-of-range page numbers fall back to the
// first page; oversized page sizes clamp silently.
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

// List returns one page of beers matching the optional name substring
// and style filters. An empty result is a valid page, never an error.
func (s *BeerService) List(ctx context.Context, query ListBeersQuery) (shared.Page[BeerResponse], error) {
	q := catalog.BeerQuery{
		Name: query.Name,
		Page: normalizePage(query.PageNumber, query.PageSize),
	}
	if query.Style != "" {
		style, ok := catalog.ParseBeerStyle(query.Style)
		if !ok {
			return shared.Page[BeerResponse]{}, shared.NewDomainError("INVALID_INPUT",
				fmt.Sprintf("unknown beer style %q", query.Style))
		}
		q.Style = style
	}

	page, err := s.beers.List(ctx, q)
	if err != nil {
		return shared.Page[BeerResponse]{}, err
	}

	hideInventory := query.ShowInventory != nil && !*query.ShowInventory
	content := make([]BeerResponse, 0, len(page.Content))
	for i := range page.Content {
		beer := page.Content[i]
		if hideInventory {
			beer.RedactInventory()
		}
		content = append(content, ToBeerResponse(&beer))
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

// GetByID returns a single beer
func (s *BeerService) GetByID(ctx context.Context, id uuid.UUID) (BeerResponse, error) {
	beer, err := s.beers.FindByID(ctx, id)
	if err != nil {
		return BeerResponse{}, err
	}
	return ToBeerResponse(beer), nil
}

// Create persists a new beer with server-assigned identity, version
// and timestamps
func (s *BeerService) Create(ctx context.Context, req CreateBeerRequest) (BeerResponse, error) {
	style, ok := catalog.ParseBeerStyle(req.BeerStyle)
	if !ok {
		return BeerResponse{}, shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("unknown beer style %q", req.BeerStyle))
	}

	beer, err := catalog.NewBeer(req.BeerName, style, req.UPC, req.QuantityOnHand, *req.Price)
	if err != nil {
		return BeerResponse{}, err
	}
	if err := s.beers.Save(ctx, beer); err != nil {
		return BeerResponse{}, err
	}
	return ToBeerResponse(beer), nil
}

// UpdateByID overwrites all mutable fields of an existing beer. The
// stored version is compared against the request's version (when
// supplied) and again at write time, so a stale write fails with a
// conflict instead of silently losing an update.
func (s *BeerService) UpdateByID(ctx context.Context, id uuid.UUID, req UpdateBeerRequest) (BeerResponse, error) {
	beer, err := s.beers.FindByID(ctx, id)
	if err != nil {
		return BeerResponse{}, err
	}
	if req.Version != nil && *req.Version != beer.Version {
		return BeerResponse{}, shared.ErrConcurrencyConflict
	}

	style, ok := catalog.ParseBeerStyle(req.BeerStyle)
	if !ok {
		return BeerResponse{}, shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("unknown beer style %q", req.BeerStyle))
	}

	previousVersion := beer.Version
	if err := beer.Replace(req.BeerName, style, req.UPC, req.QuantityOnHand, *req.Price); err != nil {
		return BeerResponse{}, err
	}
	if err := s.beers.Update(ctx, beer, previousVersion); err != nil {
		return BeerResponse{}, err
	}
	return ToBeerResponse(beer), nil
}

// PatchByID merges the supplied fields into an existing beer
func (s *BeerService) PatchByID(ctx context.Context, id uuid.UUID, req PatchBeerRequest) error {
	beer, err := s.beers.FindByID(ctx, id)
	if err != nil {
		return err
	}

	patch := catalog.BeerPatch{
		BeerName:       req.BeerName,
		UPC:            req.UPC,
		QuantityOnHand: req.QuantityOnHand,
		Price:          req.Price,
	}
	if req.BeerStyle != nil {
		style, ok := catalog.ParseBeerStyle(*req.BeerStyle)
		if !ok {
			return shared.NewDomainError("INVALID_INPUT",
				fmt.Sprintf("unknown beer style %q", *req.BeerStyle))
		}
		patch.BeerStyle = &style
	}

	previousVersion := beer.Version
	if err := beer.ApplyPatch(patch); err != nil {
		return err
	}
	return s.beers.Update(ctx, beer, previousVersion)
}

// DeleteByID removes a beer. The existence check is explicit: deleting
// an absent id reports NotFound rather than succeeding silently.
func (s *BeerService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	exists, err := s.beers.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}
	return s.beers.Delete(ctx, id)
}
