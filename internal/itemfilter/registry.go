package itemfilter

import (
	"math"
	"slices"
	"strconv"

	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/source"
	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/trait"
	"github.com/KirkDiggler/dnd-item-catalog/internal/facet"
)

// Facet IDs, as used in selections and query strings
const (
	FacetSource       = "source"
	FacetLevel        = "level"
	FacetType         = "type"
	FacetCategory     = "category"
	FacetSubCategory  = "subCategory"
	FacetPrice        = "price"
	FacetBulk         = "bulk"
	FacetWeaponDamage = "weaponDamage"
	FacetDamage       = "damage"
	FacetDamageType   = "damageType"
	FacetHands        = "hands"
	FacetGroup        = "group"
	FacetWeaponRange  = "weaponRange"
	FacetTraits       = "traits"
	FacetMisc         = "misc"
	FacetShieldStats  = "shieldStats"
	FacetShieldAC     = "shieldAc"
	FacetHP           = "hp"
	FacetBT           = "bt"
	FacetHardness     = "hardness"
	FacetAppliesTo    = "appliesTo"
	FacetAmmunition   = "ammunition"
)

// PriceLabels is the price ladder in copper. The top stop allows greater.
var PriceLabels = []float64{
	0, 1, 10, 50,
	100, 500, 1000, 2500, 5000, 7500, 10000, 25000, 50000,
	100000, 250000, 500000, 1000000, 2500000, 5000000, 10000000,
}

type RegistryConfig struct {
	// DiscardTraitCategories are trait categories kept out of the Traits
	// facet; defaults to Equipment
	DiscardTraitCategories []string
	Traits                 *trait.Registry
	Sources                *source.Catalog
}

// Stats counts what a registry has seen in its session
type Stats struct {
	Registered int
	Excluded   int
}

// Registry holds the facets of one filtering session. It is not safe for
// concurrent use; build one per session.
type Registry struct {
	discard []string
	traits  *trait.Registry
	sources *source.Catalog

	source      *facet.SetFacet
	level       *facet.RangeFacet
	typ         *facet.SetFacet
	category    *facet.SetFacet
	subCategory *facet.SetFacet
	price       *facet.RangeFacet
	bulk        *facet.RangeFacet
	damage      *facet.SetFacet
	damageType  *facet.SetFacet
	hands       *facet.SetFacet
	group       *facet.SetFacet
	weaponRange *facet.SetFacet
	traitFacet  *facet.SetFacet
	misc        *facet.SetFacet
	shieldAC    *facet.SetFacet
	hp          *facet.RangeFacet
	bt          *facet.RangeFacet
	hardness    *facet.RangeFacet
	appliesTo   *facet.SetFacet
	ammunition  *facet.SetFacet

	weaponDamage *facet.CompositeFacet
	shieldStats  *facet.CompositeFacet

	display     []facet.Facet
	runeTargets []string
	stats       Stats
}

func NewRegistry(cfg *RegistryConfig) *Registry {
	if cfg == nil {
		cfg = &RegistryConfig{}
	}
	r := &Registry{
		discard: cfg.DiscardTraitCategories,
		traits:  cfg.Traits,
		sources: cfg.Sources,
	}
	if r.discard == nil {
		r.discard = []string{trait.CategoryEquipment}
	}
	if r.traits == nil {
		r.traits = trait.DefaultRegistry()
	}
	if r.sources == nil {
		r.sources = source.DefaultCatalog()
	}

	r.source = facet.NewSet(facet.SetConfig{
		ID:          FacetSource,
		Header:      "Source",
		Display:     r.sources.Full,
		MiniDisplay: r.sources.Abbreviation,
	})
	r.level = facet.NewRange(facet.RangeConfig{ID: FacetLevel, Header: "Level", Labelled: true})
	r.typ = facet.NewSet(facet.SetConfig{
		ID:       FacetType,
		Header:   "Type",
		Items:    []string{TypeEquipment, TypeGenericVariant, TypeSpecificVariant},
		Deselect: func(v string) bool { return v == TypeSpecificVariant },
	})
	r.category = facet.NewSet(facet.SetConfig{ID: FacetCategory, Header: "Category"})
	r.subCategory = facet.NewSet(facet.SetConfig{ID: FacetSubCategory, Header: "Subcategory"})
	r.price = facet.NewRange(facet.RangeConfig{
		ID:           FacetPrice,
		Header:       "Price",
		Labels:       PriceLabels,
		AllowGreater: true,
		Display:      PriceDisplay,
	})
	r.bulk = facet.NewRange(facet.RangeConfig{
		ID:       FacetBulk,
		Header:   "Bulk",
		Labelled: true,
		Display:  BulkDisplay,
	})
	r.damage = facet.NewSet(facet.SetConfig{ID: FacetDamage, Header: "Damage", Compare: CompareDice})
	r.damageType = facet.NewSet(facet.SetConfig{ID: FacetDamageType, Header: "Damage Type", Display: DamageTypeFull})
	r.hands = facet.NewSet(facet.SetConfig{ID: FacetHands, Header: "Hands", MiniDisplay: HandsMini})
	r.weaponDamage = facet.NewComposite(FacetWeaponDamage, "Weapon Damage", r.damage, r.damageType, r.hands)
	r.group = facet.NewSet(facet.SetConfig{ID: FacetGroup, Header: "Group", Display: GroupDisplay})
	r.weaponRange = facet.NewSet(facet.SetConfig{
		ID:     FacetWeaponRange,
		Header: "Weapon Range",
		Items:  []string{RangeMelee, RangeRanged},
	})
	r.traitFacet = facet.NewSet(facet.SetConfig{ID: FacetTraits, Header: "Traits"})
	r.misc = facet.NewSet(facet.SetConfig{ID: FacetMisc, Header: "Miscellaneous"})
	r.shieldAC = facet.NewSet(facet.SetConfig{ID: FacetShieldAC, Header: "AC Bonus", Display: ShieldACDisplay})
	r.hp = facet.NewRange(facet.RangeConfig{ID: FacetHP, Header: "HP"})
	r.bt = facet.NewRange(facet.RangeConfig{ID: FacetBT, Header: "BT"})
	r.hardness = facet.NewRange(facet.RangeConfig{ID: FacetHardness, Header: "Hardness"})
	r.shieldStats = facet.NewComposite(FacetShieldStats, "Shield Stats", r.shieldAC, r.hp, r.bt, r.hardness)
	r.appliesTo = facet.NewSet(facet.SetConfig{ID: FacetAppliesTo, Header: "Applies to"})
	r.ammunition = facet.NewSet(facet.SetConfig{ID: FacetAmmunition, Header: "Ammunition"})

	r.display = []facet.Facet{
		r.source,
		r.level,
		r.typ,
		r.category,
		r.subCategory,
		r.price,
		r.bulk,
		r.weaponDamage,
		r.group,
		r.weaponRange,
		r.traitFacet,
		r.misc,
		r.shieldStats,
		r.appliesTo,
	}

	return r
}

// Facets returns the facets in display order
func (r *Registry) Facets() []facet.Facet {
	return slices.Clone(r.display)
}

// Facet finds a facet by ID, including composite children and Ammunition
func (r *Registry) Facet(id string) (facet.Facet, bool) {
	for _, f := range append(r.Facets(), r.ammunition) {
		if f.ID() == id {
			return f, true
		}
		if c, ok := f.(*facet.CompositeFacet); ok {
			for _, child := range c.Children() {
				if child.ID() == id {
					return child, true
				}
			}
		}
	}
	return nil, false
}

// Ammunition is registered but not part of the display list
func (r *Registry) Ammunition() *facet.SetFacet {
	return r.ammunition
}

// RuneTargetCategories lists every appliesTo value seen, in first-seen order
func (r *Registry) RuneTargetCategories() []string {
	return slices.Clone(r.runeTargets)
}

func (r *Registry) Stats() Stats {
	return r.stats
}

// DefaultSelection is the selection a fresh session starts with
func (r *Registry) DefaultSelection() facet.Selection {
	sel := facet.Selection{}
	for _, f := range []*facet.SetFacet{r.typ} {
		if st := f.Default(); !st.IsEmpty() {
			sel[f.ID()] = st
		}
	}
	return sel
}

// AddToFilters registers d's values into every facet. Excluded items only
// contribute rune target categories.
func (r *Registry) AddToFilters(d *Derived, excluded bool) {
	if d == nil {
		return
	}
	r.runeTargets = appendUnique(r.runeTargets, d.appliesTo...)
	if excluded {
		r.stats.Excluded++
		return
	}
	r.stats.Registered++

	r.source.Add(d.sources...)
	r.level.Add(math.Floor(d.level))
	r.category.Add(d.categories...)
	r.traitFacet.Add(r.keptTraits(d.traits)...)
	r.bulk.Add(d.bulk)
	if sc := d.subCategory; sc != nil {
		r.subCategory.AddNest(sc.Nest, true)
		r.subCategory.AddNested(sc.Nest, sc.Values...)
	}
	r.group.Add(d.groups...)
	r.damageType.Add(d.damageTypes...)
	r.damage.Add(d.damageDice...)
	r.hands.Add(d.hands...)
	if d.shield.AC != 0 {
		r.shieldAC.Add(strconv.Itoa(d.shield.AC))
	}
	if d.shield.HP != 0 {
		r.hp.Add(float64(d.shield.HP))
	}
	if d.shield.BT != 0 {
		r.bt.Add(float64(d.shield.BT))
	}
	if d.shield.Hardness != 0 {
		r.hardness.Add(float64(d.shield.Hardness))
	}
	if d.ammunition != "" {
		r.ammunition.Add(d.ammunition)
	}
	r.misc.Add(d.misc...)
	r.appliesTo.Add(d.appliesTo...)
}

func (r *Registry) keptTraits(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if slices.ContainsFunc(r.discard, func(cat string) bool { return r.traits.InCategory(n, cat) }) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// ToDisplay reports whether d passes every facet under sel
func (r *Registry) ToDisplay(sel facet.Selection, d *Derived) bool {
	if d == nil {
		return false
	}
	for _, f := range r.display {
		if !f.Matches(sel, r.input(f, d)) {
			return false
		}
	}
	return r.ammunition.Matches(sel, facet.Keys(d.ammunition))
}

// input builds d's value for one display facet
func (r *Registry) input(f facet.Facet, d *Derived) facet.Input {
	switch f {
	case r.source:
		return facet.Keys(d.sources...)
	case r.level:
		return facet.Num(math.Floor(d.level))
	case r.typ:
		return facet.Keys(d.types...)
	case r.category:
		return facet.Keys(d.categories...)
	case r.subCategory:
		if d.subCategory == nil {
			return facet.Input{}
		}
		return facet.Keys(d.subCategory.Values...)
	case r.price:
		return facet.Num(float64(d.price))
	case r.bulk:
		return facet.Num(d.bulk)
	case r.weaponDamage:
		return facet.Group(
			facet.Keys(d.damageDice...),
			facet.Keys(d.damageTypes...),
			facet.Keys(d.hands...),
		)
	case r.group:
		return facet.Keys(d.groups...)
	case r.weaponRange:
		return facet.Keys(d.weaponRange...)
	case r.traitFacet:
		return facet.Keys(d.traits...)
	case r.misc:
		return facet.Keys(d.misc...)
	case r.shieldStats:
		var ac facet.Input
		if d.shield.AC != 0 {
			ac = facet.Keys(strconv.Itoa(d.shield.AC))
		}
		return facet.Group(ac, optionalNum(d.shield.HP), optionalNum(d.shield.BT), optionalNum(d.shield.Hardness))
	case r.appliesTo:
		return facet.Keys(d.appliesTo...)
	}
	return facet.Input{}
}

func optionalNum(v int) facet.Input {
	if v == 0 {
		return facet.Input{}
	}
	return facet.Num(float64(v))
}
