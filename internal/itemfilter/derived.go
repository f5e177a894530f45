package itemfilter

import (
	"slices"

	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/item"
)

const (
	TypeEquipment       = "Equipment"
	TypeGenericVariant  = "Generic Variant"
	TypeSpecificVariant = "Specific Variant"

	RangeMelee  = "Melee"
	RangeRanged = "Ranged"

	MiscActivatable = "Activatable"
)

// SubCategory is an item's subcategories nested under its first category
type SubCategory struct {
	Nest   string
	Values []string
}

// ShieldStats mirrors shieldData; zero means the stat is absent
type ShieldStats struct {
	AC       int
	HP       int
	BT       int
	Hardness int
}

// Derived is the facet projection of one item. It is built once by
// Extractor.Extract and never changed afterwards; accessors return copies.
type Derived struct {
	item *item.Item

	level float64
	bulk  float64
	price int

	sources     []string
	types       []string
	categories  []string
	subCategory *SubCategory
	groups      []string
	weaponRange []string
	hands       []string
	misc        []string
	traits      []string
	damageDice  []string
	damageTypes []string
	shield      ShieldStats
	ammunition  string
	appliesTo   []string
}

// Item returns the record the projection was built from. Callers must not
// modify it.
func (d *Derived) Item() *item.Item { return d.item }

func (d *Derived) Level() float64 { return d.level }
func (d *Derived) Bulk() float64  { return d.bulk }

// Price is the item price in copper
func (d *Derived) Price() int { return d.price }

func (d *Derived) Sources() []string     { return slices.Clone(d.sources) }
func (d *Derived) Types() []string       { return slices.Clone(d.types) }
func (d *Derived) Categories() []string  { return slices.Clone(d.categories) }
func (d *Derived) Groups() []string      { return slices.Clone(d.groups) }
func (d *Derived) Hands() []string       { return slices.Clone(d.hands) }
func (d *Derived) Misc() []string        { return slices.Clone(d.misc) }
func (d *Derived) Traits() []string      { return slices.Clone(d.traits) }
func (d *Derived) DamageDice() []string  { return slices.Clone(d.damageDice) }
func (d *Derived) DamageTypes() []string { return slices.Clone(d.damageTypes) }
func (d *Derived) AppliesTo() []string   { return slices.Clone(d.appliesTo) }
func (d *Derived) Shield() ShieldStats   { return d.shield }
func (d *Derived) Ammunition() string    { return d.ammunition }

// WeaponRange is nil for items outside the Weapon category
func (d *Derived) WeaponRange() []string { return slices.Clone(d.weaponRange) }

// SubCategory is nil when the item has none
func (d *Derived) SubCategory() *SubCategory {
	if d.subCategory == nil {
		return nil
	}
	return &SubCategory{
		Nest:   d.subCategory.Nest,
		Values: slices.Clone(d.subCategory.Values),
	}
}

// Name is the item's display name
func (d *Derived) Name() string { return d.item.Name }

// appendUnique appends the non-empty values of add not already in dst
func appendUnique(dst []string, add ...string) []string {
	for _, v := range add {
		if v == "" || slices.Contains(dst, v) {
			continue
		}
		dst = append(dst, v)
	}
	return dst
}
