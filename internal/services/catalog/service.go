package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=mockcatalog -source=service.go

import (
	"context"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/KirkDiggler/dnd-item-catalog/internal"
	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/item"
	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/source"
	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/trait"
	caterr "github.com/KirkDiggler/dnd-item-catalog/internal/errors"
	"github.com/KirkDiggler/dnd-item-catalog/internal/facet"
	"github.com/KirkDiggler/dnd-item-catalog/internal/itemfilter"
	"github.com/KirkDiggler/dnd-item-catalog/internal/metrics"
	"github.com/KirkDiggler/dnd-item-catalog/internal/picker"
	"github.com/KirkDiggler/dnd-item-catalog/internal/repositories/homebrew"
)

const (
	metricsSourceCatalog = "catalog"
	metricsSourcePicker  = "picker"
)

// Service defines the item catalog service interface
type Service interface {
	// Reload re-reads the canonical catalog and rebuilds its facets
	Reload(ctx context.Context) (*ReloadOutput, error)

	// Facets describes the catalog facets in display order
	Facets(ctx context.Context) (*FacetsOutput, error)

	// Browse lists the visible catalog rows under a selection
	Browse(ctx context.Context, input *BrowseInput) (*BrowseOutput, error)

	// Pick lists base item picker rows from homebrew and canonical data
	Pick(ctx context.Context, input *PickInput) (*PickOutput, error)

	// AddHomebrew stores a user contributed base item
	AddHomebrew(ctx context.Context, it *item.Item) (*item.Item, error)

	// RemoveHomebrew deletes a user contributed base item by unique ID
	RemoveHomebrew(ctx context.Context, id string) error
}

// ItemSource provides the canonical non-base items of the catalog
type ItemSource interface {
	ListItems(ctx context.Context) ([]*item.Item, error)
}

// ReloadOutput summarises one catalog load
type ReloadOutput struct {
	Loaded   int
	Skipped  int
	Stats    itemfilter.Stats
	Duration time.Duration
}

// FacetsOutput is the filter sidebar of the current catalog
type FacetsOutput struct {
	Facets               []facet.Description `json:"facets"`
	DefaultSelection     facet.Selection     `json:"defaultSelection"`
	RuneTargetCategories []string            `json:"runeTargetCategories,omitempty"`
}

// BrowseInput selects and orders catalog rows. Selection is applied over
// the registry's default selection.
type BrowseInput struct {
	Selection facet.Selection
	Sort      itemfilter.SortOptions
	Offset    int
	Limit     int
}

type BrowseOutput struct {
	Rows  []*itemfilter.Row `json:"rows"`
	Total int               `json:"total"`
}

// PickInput configures one picker listing
type PickInput struct {
	Radio     bool
	Selection facet.Selection
	Sort      itemfilter.SortOptions
}

type PickOutput struct {
	Columns []picker.Column   `json:"columns"`
	Rows    []*itemfilter.Row `json:"rows"`
}

// snapshot is one extracted, registered catalog. It is read-only once built.
type snapshot struct {
	registry *itemfilter.Registry
	derived  []*itemfilter.Derived
	excluded []bool
}

type service struct {
	items     ItemSource
	baseItems picker.Source
	homebrew  homebrew.Repository
	loader    *picker.Loader
	extractor *itemfilter.Extractor

	traits        *trait.Registry
	sources       *source.Catalog
	discard       []string
	excluded      map[string]bool
	skipMalformed bool

	loadMu  sync.Mutex
	mu      sync.RWMutex
	current *snapshot
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	// Items is optional; the catalog then holds base items only
	Items     ItemSource
	BaseItems picker.Source
	Homebrew  homebrew.Repository

	PickerCategories       []string
	DiscardTraitCategories []string
	// Excluded lists item hashes kept out of the facets and browse rows
	Excluded      []string
	SkipMalformed bool

	Traits  *trait.Registry
	Sources *source.Catalog
}

// NewService creates a new catalog service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("ServiceConfig")
	}
	if cfg.BaseItems == nil {
		return nil, internal.NewMissingParamError("BaseItems")
	}
	if cfg.Homebrew == nil {
		return nil, internal.NewMissingParamError("Homebrew")
	}

	loader, err := picker.NewLoader(&picker.LoaderConfig{
		Overlay:    cfg.Homebrew,
		Canonical:  cfg.BaseItems,
		Categories: cfg.PickerCategories,
	})
	if err != nil {
		return nil, err
	}

	svc := &service{
		items:         cfg.Items,
		baseItems:     cfg.BaseItems,
		homebrew:      cfg.Homebrew,
		loader:        loader,
		traits:        cfg.Traits,
		sources:       cfg.Sources,
		discard:       cfg.DiscardTraitCategories,
		excluded:      make(map[string]bool, len(cfg.Excluded)),
		skipMalformed: cfg.SkipMalformed,
	}
	if svc.traits == nil {
		svc.traits = trait.DefaultRegistry()
	}
	if svc.sources == nil {
		svc.sources = source.DefaultCatalog()
	}
	for _, hash := range cfg.Excluded {
		svc.excluded[hash] = true
	}
	svc.extractor = itemfilter.NewExtractor(&itemfilter.ExtractorConfig{Traits: svc.traits})

	return svc, nil
}

func (s *service) Reload(ctx context.Context) (*ReloadOutput, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	return s.reload(ctx)
}

func (s *service) reload(ctx context.Context) (*ReloadOutput, error) {
	start := time.Now()
	records, err := s.loadCatalog(ctx)
	metrics.ObserveLoad(metricsSourceCatalog, time.Since(start).Seconds(), err)
	if err != nil {
		return nil, err
	}

	derived, skipped, err := s.extractAll(records)
	if err != nil {
		return nil, err
	}

	snap := &snapshot{
		registry: s.newRegistry(),
		derived:  derived,
		excluded: make([]bool, len(derived)),
	}
	for i, d := range derived {
		snap.excluded[i] = s.excluded[picker.Hash(d.Item())]
		snap.registry.AddToFilters(d, snap.excluded[i])
	}

	stats := snap.registry.Stats()
	metrics.ItemsRegistered.Add(float64(stats.Registered))
	metrics.ItemsExcluded.Add(float64(stats.Excluded))

	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()

	out := &ReloadOutput{
		Loaded:   len(derived),
		Skipped:  skipped,
		Stats:    stats,
		Duration: time.Since(start),
	}
	log.Printf("Catalog loaded: %d items (%d skipped, %d excluded) in %s", out.Loaded, out.Skipped, stats.Excluded, out.Duration)
	return out, nil
}

// loadCatalog reads canonical base items and items; base items come first
func (s *service) loadCatalog(ctx context.Context) ([]*item.Item, error) {
	base, err := s.baseItems.ListBaseItems(ctx)
	if err != nil {
		return nil, caterr.Wrap(err, "failed to load base items")
	}
	if s.items == nil {
		return base, nil
	}

	items, err := s.items.ListItems(ctx)
	if err != nil {
		return nil, caterr.Wrap(err, "failed to load items")
	}
	return slices.Concat(base, items), nil
}

// extractAll derives every record. A malformed record aborts the batch
// unless skipMalformed is set, in which case it is logged and counted.
func (s *service) extractAll(records []*item.Item) ([]*itemfilter.Derived, int, error) {
	derived := make([]*itemfilter.Derived, 0, len(records))
	skipped := 0
	for i, it := range records {
		if it == nil {
			continue
		}
		d, err := s.extractor.Extract(it)
		if err != nil {
			if !s.skipMalformed {
				return nil, 0, caterr.Wrapf(err, "failed to extract record %d of %d", i+1, len(records))
			}
			log.Printf("Skipping malformed record %q: %v", it.Name, err)
			metrics.ItemsSkipped.Inc()
			skipped++
			continue
		}
		derived = append(derived, d)
	}
	metrics.ItemsExtracted.Add(float64(len(derived)))
	return derived, skipped, nil
}

func (s *service) newRegistry() *itemfilter.Registry {
	return itemfilter.NewRegistry(&itemfilter.RegistryConfig{
		DiscardTraitCategories: s.discard,
		Traits:                 s.traits,
		Sources:                s.sources,
	})
}

// snapshot returns the loaded catalog, loading it on first use
func (s *service) snapshot(ctx context.Context) (*snapshot, error) {
	s.mu.RLock()
	snap := s.current
	s.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	s.mu.RLock()
	snap = s.current
	s.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}

	if _, err := s.reload(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, nil
}

func (s *service) Facets(ctx context.Context) (*FacetsOutput, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	facets := snap.registry.Facets()
	out := &FacetsOutput{
		Facets:               make([]facet.Description, 0, len(facets)),
		DefaultSelection:     snap.registry.DefaultSelection(),
		RuneTargetCategories: snap.registry.RuneTargetCategories(),
	}
	for _, f := range facets {
		out.Facets = append(out.Facets, facet.Describe(f))
	}
	return out, nil
}

func (s *service) Browse(ctx context.Context, input *BrowseInput) (*BrowseOutput, error) {
	if input == nil {
		input = &BrowseInput{}
	}
	if input.Offset < 0 || input.Limit < 0 {
		return nil, caterr.InvalidArgument("offset and limit must not be negative")
	}
	if err := validateSort(input.Sort); err != nil {
		return nil, err
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateSelection(snap.registry, input.Selection); err != nil {
		return nil, err
	}

	sel := snap.registry.DefaultSelection().Merge(input.Selection)
	builder := picker.NewBuilder(&picker.BuilderConfig{Plain: true, Sources: s.sources})

	rows := make([]*itemfilter.Row, 0)
	for i, d := range snap.derived {
		if snap.excluded[i] || !snap.registry.ToDisplay(sel, d) {
			continue
		}
		row, err := builder.Row(d, len(rows))
		if err != nil {
			return nil, caterr.Wrapf(err, "failed to build row for %s", d.Name())
		}
		rows = append(rows, row)
	}

	itemfilter.SortRows(rows, input.Sort)
	metrics.BrowseRequests.WithLabelValues("browse").Inc()

	return &BrowseOutput{
		Rows:  page(rows, input.Offset, input.Limit),
		Total: len(rows),
	}, nil
}

func (s *service) Pick(ctx context.Context, input *PickInput) (*PickOutput, error) {
	if input == nil {
		input = &PickInput{}
	}
	if err := validateSort(input.Sort); err != nil {
		return nil, err
	}

	start := time.Now()
	records, err := s.loader.Load(ctx)
	metrics.ObserveLoad(metricsSourcePicker, time.Since(start).Seconds(), err)
	if err != nil {
		return nil, err
	}

	derived, _, err := s.extractAll(records)
	if err != nil {
		return nil, err
	}

	registry := s.newRegistry()
	for _, d := range derived {
		registry.AddToFilters(d, false)
	}
	if err := validateSelection(registry, input.Selection); err != nil {
		return nil, err
	}
	sel := registry.DefaultSelection().Merge(input.Selection)

	builder := picker.NewBuilder(&picker.BuilderConfig{Radio: input.Radio, Sources: s.sources})
	rows := make([]*itemfilter.Row, 0, len(derived))
	for _, d := range derived {
		if !registry.ToDisplay(sel, d) {
			continue
		}
		row, err := builder.Row(d, len(rows))
		if err != nil {
			return nil, caterr.Wrapf(err, "failed to build row for %s", d.Name())
		}
		rows = append(rows, row)
	}

	itemfilter.SortRows(rows, input.Sort)
	metrics.BrowseRequests.WithLabelValues("picker").Inc()

	return &PickOutput{
		Columns: picker.ColumnHeaders(),
		Rows:    rows,
	}, nil
}

func (s *service) AddHomebrew(ctx context.Context, it *item.Item) (*item.Item, error) {
	if it == nil {
		return nil, caterr.InvalidArgument("item is required")
	}
	if _, err := s.extractor.Extract(it); err != nil {
		return nil, err
	}
	if !slices.ContainsFunc(s.loader.Categories(), it.HasCategory) {
		return nil, caterr.InvalidArgumentf("homebrew base items must be one of %v", s.loader.Categories()).
			WithMeta("item_name", it.Name)
	}

	if err := s.homebrew.Create(ctx, it); err != nil {
		return nil, err
	}

	return it, nil
}

func (s *service) RemoveHomebrew(ctx context.Context, id string) error {
	if id == "" {
		return caterr.InvalidArgument("item ID is required")
	}
	return s.homebrew.Delete(ctx, id)
}

func validateSort(opts itemfilter.SortOptions) error {
	if opts.SortBy != "" && !slices.Contains(itemfilter.SortKeys, opts.SortBy) {
		return caterr.InvalidArgumentf("unknown sort key %q", opts.SortBy).
			WithMeta("sort", opts.SortBy)
	}
	switch opts.Direction {
	case "", itemfilter.DirectionAsc, itemfilter.DirectionDesc:
		return nil
	default:
		return caterr.InvalidArgumentf("unknown sort direction %q", opts.Direction).
			WithMeta("direction", opts.Direction)
	}
}

// validateSelection rejects unknown facets and states the facet kind cannot
// apply: values on a range facet, bounds on a set facet, anything on a
// composite (its children are selected instead).
func validateSelection(registry *itemfilter.Registry, sel facet.Selection) error {
	for id, st := range sel {
		f, ok := registry.Facet(id)
		if !ok {
			return caterr.InvalidArgumentf("unknown facet %q", id).WithMeta("facet", id)
		}

		hasValues := len(st.Include) > 0 || len(st.Exclude) > 0
		hasBounds := st.Min != nil || st.Max != nil
		switch f.Kind() {
		case facet.KindSet:
			if hasBounds {
				return caterr.InvalidArgumentf("facet %q takes include/exclude values, not a range", id).
					WithMeta("facet", id)
			}
		case facet.KindRange:
			if hasValues {
				return caterr.InvalidArgumentf("facet %q takes a range, not include/exclude values", id).
					WithMeta("facet", id)
			}
		case facet.KindComposite:
			if hasValues || hasBounds {
				return caterr.InvalidArgumentf("facet %q is a group; select its child facets", id).
					WithMeta("facet", id)
			}
		}
	}
	return nil
}

func page(rows []*itemfilter.Row, offset, limit int) []*itemfilter.Row {
	if offset >= len(rows) {
		return []*itemfilter.Row{}
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}
