package services

import (
	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/source"
	"github.com/KirkDiggler/dnd-item-catalog/internal/picker"
	"github.com/KirkDiggler/dnd-item-catalog/internal/repositories/homebrew"
	"github.com/KirkDiggler/dnd-item-catalog/internal/services/catalog"
)

// Provider holds all service instances
type Provider struct {
	CatalogService catalog.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Items              catalog.ItemSource
	BaseItems          picker.Source
	HomebrewRepository homebrew.Repository
	Sources            *source.Catalog

	PickerCategories       []string
	DiscardTraitCategories []string
	Excluded               []string
	SkipMalformed          bool
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	// Use in-memory repository if none provided
	brewRepo := cfg.HomebrewRepository
	if brewRepo == nil {
		brewRepo = homebrew.NewInMemoryRepository(nil)
	}

	catalogService, err := catalog.NewService(&catalog.ServiceConfig{
		Items:                  cfg.Items,
		BaseItems:              cfg.BaseItems,
		Homebrew:               brewRepo,
		PickerCategories:       cfg.PickerCategories,
		DiscardTraitCategories: cfg.DiscardTraitCategories,
		Excluded:               cfg.Excluded,
		SkipMalformed:          cfg.SkipMalformed,
		Sources:                cfg.Sources,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		CatalogService: catalogService,
	}, nil
}
