package trait_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/trait"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_Name(t *testing.T) {
	r := trait.DefaultRegistry()

	tests := []struct {
		identifier string
		want       string
	}{
		{identifier: "sweep", want: "Sweep"},
		{identifier: "uncommon", want: "Uncommon"},
		{identifier: "magical|CRB", want: "Magical"},
		{identifier: "deadly d8", want: "Deadly d8"},
		{identifier: "versatile p", want: "Versatile P"},
		{identifier: "brand new trait", want: "Brand New Trait"},
		{identifier: "  ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Name(tt.identifier))
		})
	}
}

func TestRegistry_InCategory(t *testing.T) {
	r := trait.DefaultRegistry()

	assert.True(t, r.InCategory("Rare", trait.CategoryRarity))
	assert.True(t, r.InCategory("unique", trait.CategoryRarity))
	assert.False(t, r.InCategory("Magical", trait.CategoryRarity))
	assert.True(t, r.InCategory("Magical", trait.CategoryEquipment))
	assert.True(t, r.InCategory("Deadly d8", trait.CategoryWeapon))
	assert.False(t, r.InCategory("Sweep", "Nope"))
}

func TestRegistry_RegisterCustom(t *testing.T) {
	r := trait.NewRegistry()
	assert.False(t, r.AnyInCategory([]string{"Artifact"}, trait.CategoryRarity))

	r.Register("Artifact", trait.CategoryRarity, trait.CategoryEquipment)

	assert.Equal(t, "Artifact", r.Name("artifact"))
	assert.True(t, r.AnyInCategory([]string{"Sweep", "Artifact"}, trait.CategoryRarity))
	assert.True(t, r.InCategory("Artifact", trait.CategoryEquipment))
}
