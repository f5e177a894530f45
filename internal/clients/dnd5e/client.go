package dnd5e

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dnd-item-catalog/internal"
	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/item"
	caterr "github.com/KirkDiggler/dnd-item-catalog/internal/errors"
)

// SourceDND5e is the source tag stamped on every record from the API
const SourceDND5e = "SRD"

// DefaultCategories are the API equipment categories fetched as base items
var DefaultCategories = []string{"weapon", "armor"}

const maxConcurrentFetches = 8

type client struct {
	client     dnd5e.Interface
	categories []string
}

type Config struct {
	HttpClient *http.Client
	Categories []string
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}
	if cfg.HttpClient == nil {
		return nil, internal.NewMissingParamError("cfg.HttpClient")
	}

	dndClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, err
	}

	categories := cfg.Categories
	if len(categories) == 0 {
		categories = DefaultCategories
	}

	return &client{
		client:     dndClient,
		categories: categories,
	}, nil
}

func (c *client) GetBaseItem(key string) (*item.Item, error) {
	if key == "" {
		return nil, internal.NewMissingParamError("GetBaseItem.key")
	}

	response, err := c.client.GetEquipment(key)
	if err != nil {
		return nil, caterr.Wrapf(err, "failed to get equipment %s", key)
	}

	it := apiEquipmentToItem(response)
	if it == nil {
		return nil, caterr.NotFoundf("equipment '%s' is not a weapon or armor", key).
			WithMeta("equipment_key", key)
	}

	return it, nil
}

// ListBaseItems fetches every weapon and armor in the configured categories.
// Equipment that fails to load is logged and skipped.
func (c *client) ListBaseItems(ctx context.Context) ([]*item.Item, error) {
	// TODO: pass ctx through once dnd5e-api accepts a context
	keys := make([]string, 0)
	seen := make(map[string]bool)
	for _, category := range c.categories {
		categoryData, err := c.client.GetEquipmentCategory(category)
		if err != nil {
			return nil, caterr.WrapWithCode(err, caterr.CodeUnavailable,
				fmt.Sprintf("failed to get equipment category %s", category))
		}
		for _, ref := range categoryData.Equipment {
			if ref == nil || ref.Key == "" || seen[ref.Key] {
				continue
			}
			seen[ref.Key] = true
			keys = append(keys, ref.Key)
		}
	}

	items := make([]*item.Item, len(keys))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, key := range keys {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			it, err := c.GetBaseItem(key)
			if err != nil {
				log.Printf("Failed to get equipment %s: %v", key, err)
				return nil
			}
			items[i] = it
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*item.Item, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, it)
		}
	}

	log.Printf("Loaded %d base items from the dnd5e API", len(out))
	return out, nil
}
