package facet_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-item-catalog/internal/facet"
)

func ptr(v float64) *float64 { return &v }

func TestSetFacet_AddKeepsFirstSeenOrder(t *testing.T) {
	f := facet.NewSet(facet.SetConfig{ID: "source", Header: "Source"})
	f.Add("CRB", "", "APG", "CRB", "  ", "GMG")

	assert.Equal(t, []string{"CRB", "APG", "GMG"}, f.Values())
	assert.True(t, f.Has("APG"))
	assert.False(t, f.Has(""))
}

func TestSetFacet_OptionsUseDisplayAndCompare(t *testing.T) {
	f := facet.NewSet(facet.SetConfig{
		ID:          "damage",
		Items:       []string{"b", "a", "c"},
		Display:     strings.ToUpper,
		MiniDisplay: func(s string) string { return "mini-" + s },
		Compare:     strings.Compare,
	})

	opts := f.Options()
	require.Len(t, opts, 3)
	assert.Equal(t, "a", opts[0].Value)
	assert.Equal(t, "A", opts[0].Label)
	assert.Equal(t, "mini-a", opts[0].Mini)
	assert.Equal(t, "c", opts[2].Value)
}

func TestSetFacet_Nests(t *testing.T) {
	f := facet.NewSet(facet.SetConfig{ID: "category"})
	f.AddNest("Weapon", true)
	f.AddNest("Weapon", false)
	f.AddNested("Weapon", "Sword", "Axe")
	f.AddNested("Armor", "Plate")
	f.Add("Shield")

	assert.Equal(t, []facet.Nest{
		{Name: "Weapon", Hidden: true},
		{Name: "Armor"},
	}, f.Nests())

	opts := f.Options()
	require.Len(t, opts, 4)
	assert.Equal(t, "Weapon", opts[0].Nest)
	assert.Equal(t, "Armor", opts[2].Nest)
	assert.Empty(t, opts[3].Nest)
}

func TestSetFacet_Default(t *testing.T) {
	f := facet.NewSet(facet.SetConfig{
		ID:       "misc",
		Items:    []string{"Generic Variant", "Specific Variant"},
		Deselect: func(v string) bool { return v == "Specific Variant" },
	})
	assert.Equal(t, []string{"Specific Variant"}, f.Default().Exclude)

	plain := facet.NewSet(facet.SetConfig{ID: "x", Items: []string{"a"}})
	assert.True(t, plain.Default().IsEmpty())
}

func TestSetFacet_Matches(t *testing.T) {
	f := facet.NewSet(facet.SetConfig{ID: "traits", Items: []string{"Agile", "Finesse", "Magical"}})

	testCases := []struct {
		name string
		sel  facet.Selection
		in   facet.Input
		want bool
	}{
		{"no selection", facet.Selection{}, facet.Keys("Agile"), true},
		{"empty input no selection", facet.Selection{}, facet.Input{}, true},
		{"include hit", facet.Selection{}.Include("traits", "Agile"), facet.Keys("Agile", "Finesse"), true},
		{"include miss", facet.Selection{}.Include("traits", "Magical"), facet.Keys("Agile"), false},
		{"include any", facet.Selection{}.Include("traits", "Magical", "Finesse"), facet.Keys("Finesse"), true},
		{"exclude hit", facet.Selection{}.Exclude("traits", "Magical"), facet.Keys("Agile", "Magical"), false},
		{"exclude miss", facet.Selection{}.Exclude("traits", "Magical"), facet.Keys("Agile"), true},
		{"include and exclude", facet.Selection{}.Include("traits", "Agile").Exclude("traits", "Magical"), facet.Keys("Agile", "Magical"), false},
		{"other facet", facet.Selection{}.Include("source", "CRB"), facet.Keys("Agile"), true},
		{"padded key matches trimmed option", facet.Selection{}.Include("traits", "Agile"), facet.Keys(" Agile "), true},
		{"blank keys are no value", facet.Selection{}.Include("traits", "Agile"), facet.Keys(" ", ""), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.Matches(tc.sel, tc.in))
		})
	}
}

func TestSetFacet_PaddedValuesRoundTrip(t *testing.T) {
	f := facet.NewSet(facet.SetConfig{ID: "category"})
	f.Add(" Weapon")

	assert.Equal(t, []string{"Weapon"}, f.Values())
	sel := facet.Selection{}.Include("category", f.Values()[0])
	assert.True(t, f.Matches(sel, facet.Keys(" Weapon")))
}

func TestRangeFacet_AddAndBounds(t *testing.T) {
	f := facet.NewRange(facet.RangeConfig{ID: "level"})
	_, _, ok := f.Bounds()
	assert.False(t, ok)

	f.Add(5, 1, 5, 3)
	lo, hi, ok := f.Bounds()
	require.True(t, ok)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 5.0, hi)
	assert.Equal(t, []float64{1, 3, 5}, f.Observed())
}

func TestRangeFacet_Options(t *testing.T) {
	t.Run("labels", func(t *testing.T) {
		f := facet.NewRange(facet.RangeConfig{ID: "price", Labels: []float64{10, 0, 1}})
		opts := f.Options()
		require.Len(t, opts, 3)
		assert.Equal(t, "0", opts[0].Value)
		assert.Equal(t, 10.0, opts[2].Number)
	})
	t.Run("labelled", func(t *testing.T) {
		f := facet.NewRange(facet.RangeConfig{ID: "level", Labelled: true, Display: func(v float64) string { return "L" }})
		f.Add(2, 0, 1)
		opts := f.Options()
		require.Len(t, opts, 3)
		assert.Equal(t, "L", opts[1].Label)
	})
	t.Run("min max", func(t *testing.T) {
		f := facet.NewRange(facet.RangeConfig{ID: "hp"})
		f.Add(4, 20, 8)
		opts := f.Options()
		require.Len(t, opts, 2)
		assert.Equal(t, "4", opts[0].Value)
		assert.Equal(t, "20", opts[1].Value)
	})
}

func TestRangeFacet_Matches(t *testing.T) {
	f := facet.NewRange(facet.RangeConfig{ID: "price", Labels: []float64{0, 100, 1000}, AllowGreater: true})

	testCases := []struct {
		name string
		sel  facet.Selection
		in   facet.Input
		want bool
	}{
		{"unbounded passes absent", facet.Selection{}, facet.Input{}, true},
		{"bounded rejects absent", facet.Selection{}.Range("price", ptr(0), nil), facet.Input{}, false},
		{"inside", facet.Selection{}.Range("price", ptr(0), ptr(100)), facet.Num(50), true},
		{"below", facet.Selection{}.Range("price", ptr(100), nil), facet.Num(50), false},
		{"above", facet.Selection{}.Range("price", nil, ptr(100)), facet.Num(150), false},
		{"top label unbounded", facet.Selection{}.Range("price", nil, ptr(1000)), facet.Num(5000), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.Matches(tc.sel, tc.in))
		})
	}

	strict := facet.NewRange(facet.RangeConfig{ID: "price", Labels: []float64{0, 1000}})
	assert.False(t, strict.Matches(facet.Selection{}.Range("price", nil, ptr(1000)), facet.Num(5000)))
}

func TestCompositeFacet_Matches(t *testing.T) {
	damage := facet.NewSet(facet.SetConfig{ID: "damage", Items: []string{"1d6", "1d8"}})
	hands := facet.NewSet(facet.SetConfig{ID: "hands", Items: []string{"1", "2"}})
	c := facet.NewComposite("weapon", "Weapon Damage", damage, hands)

	assert.Equal(t, facet.KindComposite, c.Kind())
	assert.Nil(t, c.Options())

	sel := facet.Selection{}.Include("damage", "1d8").Include("hands", "2")
	assert.True(t, c.Matches(sel, facet.Group(facet.Keys("1d8"), facet.Keys("2"))))
	assert.False(t, c.Matches(sel, facet.Group(facet.Keys("1d8"), facet.Keys("1"))))
	assert.False(t, c.Matches(sel, facet.Group(facet.Keys("1d8"))))
	assert.True(t, c.Matches(facet.Selection{}, facet.Input{}))
}

func TestDescribe(t *testing.T) {
	set := facet.NewSet(facet.SetConfig{ID: "category", Header: "Category"})
	set.AddNested("Weapon", "Sword")
	rng := facet.NewRange(facet.RangeConfig{ID: "hp", Header: "HP"})
	rng.Add(3, 9)
	c := facet.NewComposite("shield", "Shield Stats", rng)

	d := facet.Describe(set)
	assert.Equal(t, facet.KindSet, d.Kind)
	assert.Len(t, d.Nests, 1)

	d = facet.Describe(c)
	require.Len(t, d.Children, 1)
	require.NotNil(t, d.Children[0].Min)
	assert.Equal(t, 3.0, *d.Children[0].Min)
	assert.Equal(t, 9.0, *d.Children[0].Max)
}

func TestSelection_Merge(t *testing.T) {
	base := facet.Selection{}.Exclude("misc", "Specific Variant")
	over := facet.Selection{}.Include("source", "CRB")
	merged := base.Merge(over)

	assert.Len(t, merged, 2)
	assert.Len(t, base, 1)

	replaced := base.Merge(facet.Selection{"misc": {}})
	assert.True(t, replaced["misc"].IsEmpty())
}
