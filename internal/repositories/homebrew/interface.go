package homebrew

//go:generate mockgen -destination=mock/mock.go -package=mockhomebrew -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/item"
)

// Repository stores user-contributed base items. It satisfies picker.Source.
type Repository interface {
	// Create stores a new base item. An empty UniqueID is filled in.
	Create(ctx context.Context, it *item.Item) error

	Get(ctx context.Context, id string) (*item.Item, error)

	Delete(ctx context.Context, id string) error

	// ListBaseItems returns every stored item ordered by name
	ListBaseItems(ctx context.Context) ([]*item.Item, error)
}
