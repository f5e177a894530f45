package itemfilter_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/dnd-item-catalog/internal/itemfilter"
)

func TestDisplayHelpers(t *testing.T) {
	assert.Equal(t, "1 hand", itemfilter.HandsMini("1"))
	assert.Equal(t, "2 hands", itemfilter.HandsMini("2"))
	assert.Equal(t, "1+ hands", itemfilter.HandsMini("1+"))

	assert.Equal(t, "sword", itemfilter.GroupDisplay("sword|CRB"))
	assert.Equal(t, "bow", itemfilter.GroupDisplay("bow"))

	assert.Equal(t, "Slashing", itemfilter.DamageTypeFull("S"))
	assert.Equal(t, "Bludgeoning", itemfilter.DamageTypeFull("B"))
	assert.Equal(t, "Force", itemfilter.DamageTypeFull("force"))

	assert.Equal(t, "+2 AC", itemfilter.ShieldACDisplay("2"))
	assert.Equal(t, "-1 AC", itemfilter.ShieldACDisplay("-1"))
	assert.Equal(t, "+0", itemfilter.Bonus(0))

	assert.Equal(t, "L", itemfilter.BulkDisplay(0.1))
	assert.Equal(t, "2", itemfilter.BulkDisplay(2))

	assert.Equal(t, "5 sp", itemfilter.PriceDisplay(50))
	assert.Equal(t, "1,000 gp", itemfilter.PriceDisplay(100000))
}

func TestCompareDice(t *testing.T) {
	dice := []string{"2d4", "1d8", "special", "1d4", "d6", "1d12"}
	slices.SortFunc(dice, itemfilter.CompareDice)
	assert.Equal(t, []string{"1d4", "d6", "1d8", "1d12", "2d4", "special"}, dice)
}

func TestPriceLabels(t *testing.T) {
	assert.Len(t, itemfilter.PriceLabels, 20)
	assert.True(t, slices.IsSorted(itemfilter.PriceLabels))
	assert.Equal(t, float64(10000000), itemfilter.PriceLabels[len(itemfilter.PriceLabels)-1])
}
