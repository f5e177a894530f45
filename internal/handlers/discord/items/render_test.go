package items_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/item"
	"github.com/KirkDiggler/dnd-item-catalog/internal/facet"
	"github.com/KirkDiggler/dnd-item-catalog/internal/handlers/discord/items"
	"github.com/KirkDiggler/dnd-item-catalog/internal/itemfilter"
)

func row(id, name string, price int, bulk float64) *itemfilter.Row {
	return &itemfilter.Row{
		ID:   id,
		Name: name,
		Values: itemfilter.RowValues{
			Source:   "CRB",
			Category: "Weapon",
			Price:    price,
			Bulk:     bulk,
		},
	}
}

func TestBuildListEmbed(t *testing.T) {
	rows := []*itemfilter.Row{
		row("0", "Longsword", 100, 1),
		row("1", "Dagger", 0, itemfilter.LightBulk),
	}

	embed := items.BuildListEmbed(rows, 7)
	assert.Equal(t, "Showing 2 of 7 item(s)", embed.Description)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "Longsword", embed.Fields[0].Name)
	assert.Equal(t, "Weapon · 1 gp · Bulk 1 · CRB", embed.Fields[0].Value)
	assert.Equal(t, "Weapon · "+item.NoValue+" · Bulk L · CRB", embed.Fields[1].Value)
}

func TestBuildListEmbed_Empty(t *testing.T) {
	embed := items.BuildListEmbed(nil, 0)
	assert.Equal(t, "No items match the current filters.", embed.Description)
	assert.Empty(t, embed.Fields)
}

func TestBuildListEmbed_CapsFields(t *testing.T) {
	rows := make([]*itemfilter.Row, 0, 30)
	for i := range 30 {
		rows = append(rows, row(fmt.Sprint(i), fmt.Sprintf("Item %d", i), i, 1))
	}

	embed := items.BuildListEmbed(rows, 30)
	assert.Len(t, embed.Fields, 25)
	assert.Equal(t, "Showing 25 of 30 item(s)", embed.Description)
}

func TestBuildPickMenu(t *testing.T) {
	rows := []*itemfilter.Row{
		row("brew-1", "Spiked Club", 500, 1),
		row("0", "Club", 0, 1),
	}

	single := items.BuildPickMenu(rows, false)
	assert.Equal(t, items.PickCustomID, single.CustomID)
	require.Len(t, single.Options, 2)
	assert.Equal(t, "brew-1", single.Options[0].Value)
	assert.Equal(t, "Spiked Club", single.Options[0].Label)
	require.NotNil(t, single.MinValues)
	assert.Equal(t, 1, *single.MinValues)
	assert.Equal(t, 1, single.MaxValues)

	multi := items.BuildPickMenu(rows, true)
	assert.Equal(t, 2, multi.MaxValues)
}

func TestBuildPickMenu_Empty(t *testing.T) {
	menu := items.BuildPickMenu(nil, true)
	assert.Empty(t, menu.Options)
	assert.Equal(t, 1, menu.MaxValues)
}

func TestPickedNames(t *testing.T) {
	rows := []*itemfilter.Row{
		row("0", "Club", 0, 1),
		row("1", "Dagger", 200, itemfilter.LightBulk),
	}

	assert.Equal(t, []string{"Dagger", "Club"}, items.PickedNames(rows, []string{"1", "missing", "0"}))
	assert.Empty(t, items.PickedNames(rows, nil))
}

func TestListRequest_Input(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		input := (&items.ListRequest{}).Input()
		assert.Equal(t, itemfilter.SortOptions{SortBy: itemfilter.SortName}, input.Sort)
		assert.Equal(t, 25, input.Limit)
		assert.Empty(t, input.Selection)
	})

	t.Run("options", func(t *testing.T) {
		input := (&items.ListRequest{Sort: "price", Category: " Armor ", Descending: true}).Input()
		assert.Equal(t, itemfilter.SortOptions{SortBy: "price", Direction: itemfilter.DirectionDesc}, input.Sort)
		assert.Equal(t, facet.State{Include: []string{"Armor"}}, input.Selection[itemfilter.FacetCategory])
	})
}

func TestCommand(t *testing.T) {
	cmd := items.Command()
	assert.Equal(t, "items", cmd.Name)
	require.Len(t, cmd.Options, 2)
	assert.Equal(t, "list", cmd.Options[0].Name)
	assert.Len(t, cmd.Options[0].Options[0].Choices, len(itemfilter.SortKeys))
	assert.Equal(t, "pick", cmd.Options[1].Name)
}
