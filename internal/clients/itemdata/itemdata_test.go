package itemdata_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-item-catalog/internal/clients/itemdata"
	caterr "github.com/KirkDiggler/dnd-item-catalog/internal/errors"
)

const sample = `{
	"baseitem": [
		{"name": "Longsword", "source": "CRB", "category": "Weapon", "price": {"amount": 1, "coin": "gp"},
		 "entries": ["A versatile blade."], "weaponData": {"damage": "1d8", "damageType": "S", "group": "sword"}},
		{"name": "Leather Armor", "source": "CRB", "category": "Armor", "bulk": 1,
		 "entries": ["Supple leather."], "armorData": {"ac": 1, "dexCap": 4}}
	],
	"item": [
		{"name": "Bag of Holding", "source": "CRB", "level": 4, "entries": ["Extradimensional."]}
	]
}`

func newClient(t *testing.T, files fstest.MapFS) itemdata.Client {
	t.Helper()
	c, err := itemdata.New(&itemdata.Config{Path: "items.json", FS: files})
	require.NoError(t, err)
	return c
}

func TestNew_Validation(t *testing.T) {
	_, err := itemdata.New(nil)
	assert.Error(t, err)

	_, err = itemdata.New(&itemdata.Config{})
	assert.Error(t, err)

	c, err := itemdata.New(&itemdata.Config{Path: "/does/not/exist.json"})
	require.NoError(t, err)

	_, err = c.ListBaseItems(context.Background())
	require.Error(t, err)
	assert.True(t, caterr.IsUnavailable(err))
}

func TestClient_ListBaseItems(t *testing.T) {
	c := newClient(t, fstest.MapFS{"items.json": {Data: []byte(sample)}})

	items, err := c.ListBaseItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Longsword", items[0].Name)
	assert.Equal(t, 100, items[0].Price.Value())
	require.NotNil(t, items[0].WeaponData)
	assert.Equal(t, "sword", items[0].WeaponData.Group)
	assert.Equal(t, 4, items[1].ArmorData.DexCap)

	// Reordering the returned slice does not affect later calls
	items[0], items[1] = items[1], items[0]
	again, err := c.ListBaseItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Longsword", again[0].Name)
}

func TestClient_ListItems(t *testing.T) {
	c := newClient(t, fstest.MapFS{"items.json": {Data: []byte(sample)}})

	items, err := c.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Bag of Holding", items[0].Name)
	assert.Equal(t, 4.0, items[0].Level.Float())
}

func TestClient_InvalidJSON(t *testing.T) {
	c := newClient(t, fstest.MapFS{"items.json": {Data: []byte(`{"baseitem": [`)}})

	_, err := c.ListBaseItems(context.Background())
	require.Error(t, err)
	assert.True(t, caterr.IsDataIntegrity(err))
}

func TestClient_CancelledContext(t *testing.T) {
	c := newClient(t, fstest.MapFS{"items.json": {Data: []byte(sample)}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListItems(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
