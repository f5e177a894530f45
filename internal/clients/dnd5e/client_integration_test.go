//go:build integration
// +build integration

package dnd5e_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-item-catalog/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/item"
	"github.com/KirkDiggler/dnd-item-catalog/internal/itemfilter"
)

func TestClient_ListBaseItems_Integration(t *testing.T) {
	// This test requires network access to the D&D 5e API
	client, err := dnd5e.New(&dnd5e.Config{
		HttpClient: http.DefaultClient,
	})
	require.NoError(t, err)

	items, err := client.ListBaseItems(context.Background())
	require.NoError(t, err)
	assert.Greater(t, len(items), 30, "API should have many weapons and armor")

	extractor := itemfilter.NewExtractor(nil)
	foundWeapon := false
	foundArmor := false
	for _, it := range items {
		assert.NotEmpty(t, it.Name)
		_, err := extractor.Extract(it)
		assert.NoError(t, err, "every API record should extract")

		if it.HasCategory(item.CategoryWeapon) {
			foundWeapon = true
		}
		if it.HasCategory(item.CategoryArmor) {
			foundArmor = true
		}
	}

	assert.True(t, foundWeapon, "Should find at least one weapon")
	assert.True(t, foundArmor, "Should find at least one armor")
}

func TestClient_GetBaseItem_Integration(t *testing.T) {
	client, err := dnd5e.New(&dnd5e.Config{
		HttpClient: http.DefaultClient,
	})
	require.NoError(t, err)

	it, err := client.GetBaseItem("longsword")
	require.NoError(t, err)
	assert.Equal(t, "Longsword", it.Name)
	require.NotNil(t, it.WeaponData)
	assert.Equal(t, "1d8", it.WeaponData.Damage)
}
