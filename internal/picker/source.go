package picker

//go:generate mockgen -destination=mock/mock_source.go -package=mockpicker -source=source.go

import (
	"context"

	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/item"
)

// Source supplies base items for the picker
type Source interface {
	ListBaseItems(ctx context.Context) ([]*item.Item, error)
}
