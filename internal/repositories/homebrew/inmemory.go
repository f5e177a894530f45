package homebrew

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/item"
	caterr "github.com/KirkDiggler/dnd-item-catalog/internal/errors"
	"github.com/KirkDiggler/dnd-item-catalog/internal/uuid"
)

// InMemoryRepository keeps homebrew items in process memory
type InMemoryRepository struct {
	mu            sync.RWMutex
	items         map[string]*item.Item
	uuidGenerator uuid.Generator
}

func NewInMemoryRepository(generator uuid.Generator) Repository {
	if generator == nil {
		generator = uuid.NewGoogleUUIDGenerator()
	}
	return &InMemoryRepository{
		items:         make(map[string]*item.Item),
		uuidGenerator: generator,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, it *item.Item) error {
	if err := validate(it); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if it.UniqueID == "" {
		it.UniqueID = r.uuidGenerator.New()
	}
	if _, exists := r.items[it.UniqueID]; exists {
		return caterr.AlreadyExistsf("homebrew item with ID '%s' already exists", it.UniqueID).
			WithMeta("item_id", it.UniqueID)
	}

	stored := *it
	r.items[it.UniqueID] = &stored
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*item.Item, error) {
	if id == "" {
		return nil, caterr.InvalidArgument("item ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	it, exists := r.items[id]
	if !exists {
		return nil, caterr.NotFoundf("homebrew item with ID '%s' not found", id).
			WithMeta("item_id", id)
	}
	out := *it
	return &out, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return caterr.InvalidArgument("item ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return caterr.NotFoundf("homebrew item with ID '%s' not found", id).
			WithMeta("item_id", id)
	}
	delete(r.items, id)
	return nil
}

func (r *InMemoryRepository) ListBaseItems(ctx context.Context) ([]*item.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*item.Item, 0, len(r.items))
	for _, it := range r.items {
		out := *it
		items = append(items, &out)
	}
	sortItems(items)
	return items, nil
}
