package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockitemdata "github.com/KirkDiggler/dnd-item-catalog/internal/clients/itemdata/mock"
	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/item"
	mockpicker "github.com/KirkDiggler/dnd-item-catalog/internal/picker/mock"
	mockhomebrew "github.com/KirkDiggler/dnd-item-catalog/internal/repositories/homebrew/mock"
	"github.com/KirkDiggler/dnd-item-catalog/internal/services"
	"github.com/KirkDiggler/dnd-item-catalog/internal/services/catalog"
)

func TestNewProvider(t *testing.T) {
	ctrl := gomock.NewController(t)

	p, err := services.NewProvider(&services.ProviderConfig{
		BaseItems: mockpicker.NewMockSource(ctrl),
	})
	require.NoError(t, err)
	assert.NotNil(t, p.CatalogService)

	_, err = services.NewProvider(&services.ProviderConfig{})
	assert.Error(t, err)
}

func TestNewProvider_ItemDataAndHomebrew(t *testing.T) {
	ctrl := gomock.NewController(t)
	data := mockitemdata.NewMockClient(ctrl)
	brew := mockhomebrew.NewMockRepository(ctrl)

	p, err := services.NewProvider(&services.ProviderConfig{
		Items:              data,
		BaseItems:          data,
		HomebrewRepository: brew,
	})
	require.NoError(t, err)

	club := &item.Item{
		Name:     "Club",
		Source:   "CRB",
		Category: item.StringList{item.CategoryWeapon},
		Entries:  []item.Entry{item.TextEntry("A club.")},
	}
	spiked := &item.Item{
		UniqueID: "brew-1",
		Name:     "Spiked Club",
		Source:   "MyBrew",
		Category: item.StringList{item.CategoryWeapon},
		Entries:  []item.Entry{item.TextEntry("Homemade.")},
	}

	brew.EXPECT().ListBaseItems(gomock.Any()).Return([]*item.Item{spiked}, nil)
	data.EXPECT().ListBaseItems(gomock.Any()).Return([]*item.Item{club}, nil)

	out, err := p.CatalogService.Pick(context.Background(), &catalog.PickInput{})
	require.NoError(t, err)
	require.Len(t, out.Rows, 2)
	assert.Equal(t, "brew-1", out.Rows[0].ID)
}
