package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/item"
)

// Client reads base weapons and armor from the dnd5e API as catalog records
type Client interface {
	ListBaseItems(ctx context.Context) ([]*item.Item, error)
	GetBaseItem(key string) (*item.Item, error)
}
