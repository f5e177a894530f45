package picker

import (
	"context"
	"log"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dnd-item-catalog/internal"
	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/item"
	caterr "github.com/KirkDiggler/dnd-item-catalog/internal/errors"
)

// DefaultCategories are the base item categories the picker offers
var DefaultCategories = []string{item.CategoryArmor, item.CategoryWeapon}

// Loader gathers picker candidates from the homebrew overlay and the
// canonical catalog
type Loader struct {
	overlay    Source
	canonical  Source
	categories []string
}

type LoaderConfig struct {
	Overlay   Source
	Canonical Source
	// Categories restricts the loaded items; defaults to DefaultCategories
	Categories []string
}

func NewLoader(cfg *LoaderConfig) (*Loader, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("LoaderConfig")
	}
	if cfg.Overlay == nil {
		return nil, internal.NewMissingParamError("Overlay")
	}
	if cfg.Canonical == nil {
		return nil, internal.NewMissingParamError("Canonical")
	}

	categories := cfg.Categories
	if len(categories) == 0 {
		categories = DefaultCategories
	}

	return &Loader{
		overlay:    cfg.Overlay,
		canonical:  cfg.Canonical,
		categories: slices.Clone(categories),
	}, nil
}

// Categories returns the categories the loader keeps
func (l *Loader) Categories() []string {
	return slices.Clone(l.categories)
}

// Load reads both sources concurrently. Both must succeed. Overlay items come
// first, then canonical ones, keeping only the configured categories.
func (l *Loader) Load(ctx context.Context) ([]*item.Item, error) {
	var brew, data []*item.Item

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := l.overlay.ListBaseItems(ctx)
		if err != nil {
			return caterr.Wrap(err, "failed to load homebrew base items")
		}
		brew = items
		return nil
	})
	g.Go(func() error {
		items, err := l.canonical.ListBaseItems(ctx)
		if err != nil {
			return caterr.Wrap(err, "failed to load base items")
		}
		data = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// TODO: homebrew may define its own base item categories; accept those
	// once the overlay exposes them.
	out := make([]*item.Item, 0, len(brew)+len(data))
	for _, it := range slices.Concat(brew, data) {
		if it != nil && l.keep(it) {
			out = append(out, it)
		}
	}

	log.Printf("Loaded %d picker items (%d homebrew, %d canonical before filtering)", len(out), len(brew), len(data))
	return out, nil
}

func (l *Loader) keep(it *item.Item) bool {
	for _, c := range l.categories {
		if it.HasCategory(c) {
			return true
		}
	}
	return false
}
