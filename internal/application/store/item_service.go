package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/samplestore/backend/internal/domain/shared"
	"github.com/samplestore/backend/internal/domain/store"
)

// ItemService handles catalog item operations
type ItemService struct {
	itemRepo store.ItemRepository
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo store.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// Create creates a new item
func (s *ItemService) Create(ctx context.Context, req ItemRequest) (*ItemResponse, error) {
	item, err := store.NewItem(req.Title, req.Price)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	return ToItemResponse(item), nil
}

// Get retrieves an item by ID
func (s *ItemService) Get(ctx context.Context, id uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

// List retrieves items matching the filter
func (s *ItemService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ItemResponse], error) {
	items, err := s.itemRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.itemRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = *ToItemResponse(&items[i])
	}

	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update changes an item's title and price
func (s *ItemService) Update(ctx context.Context, id uuid.UUID, req ItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := item.Update(req.Title, req.Price); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	return ToItemResponse(item), nil
}

// Delete removes an item
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.itemRepo.Delete(ctx, id)
}
