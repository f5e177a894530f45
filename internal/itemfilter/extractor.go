package itemfilter

import (
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/item"
	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/trait"
	caterr "github.com/KirkDiggler/dnd-item-catalog/internal/errors"
)

// Extractor turns raw records into Derived projections
type Extractor struct {
	traits *trait.Registry
}

type ExtractorConfig struct {
	// Traits resolves trait names and rarity; defaults to trait.DefaultRegistry
	Traits *trait.Registry
}

func NewExtractor(cfg *ExtractorConfig) *Extractor {
	e := &Extractor{}
	if cfg != nil {
		e.traits = cfg.Traits
	}
	if e.traits == nil {
		e.traits = trait.DefaultRegistry()
	}
	return e
}

// Extract computes the facet projection of it. A record without entries is
// malformed and yields a data_integrity error.
func (e *Extractor) Extract(it *item.Item) (*Derived, error) {
	if it == nil {
		return nil, caterr.InvalidArgument("item is required")
	}
	if len(it.Entries) == 0 {
		return nil, caterr.DataIntegrityf("%q has no entries", it.Name).
			WithMeta("item_name", it.Name)
	}

	d := &Derived{
		item:       it,
		level:      LevelValue(it.Level),
		bulk:       BulkValue(it.Bulk),
		price:      it.Price.Value(),
		categories: appendUnique(nil, it.Category...),
		ammunition: it.Ammunition,
		appliesTo:  appendUnique(nil, it.AppliesTo...),
	}

	d.sources = appendUnique(d.sources, it.Source)
	for _, ref := range it.OtherSources {
		d.sources = appendUnique(d.sources, ref.Source)
	}

	if it.Equipment {
		d.types = append(d.types, TypeEquipment)
	}
	switch it.Generic {
	case item.GenericTemplate:
		d.types = append(d.types, TypeGenericVariant)
	case item.GenericVariant:
		d.types = append(d.types, TypeSpecificVariant)
	}

	if len(it.SubCategory) > 0 {
		d.subCategory = &SubCategory{
			Nest:   it.Category.First(),
			Values: appendUnique(nil, it.SubCategory...),
		}
	}

	weapon, combo := it.WeaponData, it.ComboWeaponData

	d.groups = appendUnique(d.groups, it.Group)
	if weapon != nil {
		d.groups = appendUnique(d.groups, weapon.Group)
	}
	if combo != nil {
		d.groups = appendUnique(d.groups, combo.Group)
	}
	if it.ArmorData != nil {
		d.groups = appendUnique(d.groups, it.ArmorData.Group)
	}
	if it.ShieldData != nil {
		d.groups = appendUnique(d.groups, it.ShieldData.Group)
		d.shield = ShieldStats{
			AC:       it.ShieldData.AC,
			HP:       it.ShieldData.HP,
			BT:       it.ShieldData.BT,
			Hardness: it.ShieldData.Hardness,
		}
	}

	if it.HasCategory(item.CategoryWeapon) {
		d.weaponRange = appendUnique([]string{}, rangeTag(weapon))
		if combo != nil {
			d.weaponRange = appendUnique(d.weaponRange, rangeTag(combo))
		}
	}

	for _, h := range []item.Scalar{it.Hands, handsOf(weapon), handsOf(combo)} {
		if h.Truthy() {
			d.hands = appendUnique(d.hands, h.String())
		}
	}

	for _, w := range []*item.WeaponData{weapon, combo} {
		if w == nil {
			continue
		}
		d.damageDice = appendUnique(d.damageDice, w.Damage)
		d.damageTypes = appendUnique(d.damageTypes, w.DamageType)
	}

	if hasAbility(it.Entries) {
		d.misc = []string{MiscActivatable}
	}

	for _, t := range it.Traits {
		if name := e.traits.Name(t); name != "" {
			d.traits = append(d.traits, name)
		}
	}
	if !e.traits.AnyInCategory(d.traits, trait.CategoryRarity) {
		d.traits = append(d.traits, trait.Common)
	}

	return d, nil
}

// LevelValue ranks a level: numbers as-is, "5+" as 5.1, anything else 0
func LevelValue(level item.Scalar) float64 {
	switch {
	case level.IsNumber():
		return level.Float()
	case level.IsString():
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.Replace(level.Raw(), "+", "", 1)), 64)
		if err != nil || !finite(v) {
			return 0
		}
		return v + 0.1
	}
	return 0
}

// LightBulk is the rank of light ("L") bulk
const LightBulk = 0.1

// BulkValue ranks bulk: numbers as-is, "L" as 0.1, numeric strings parsed,
// anything else 0
func BulkValue(bulk item.Scalar) float64 {
	switch {
	case bulk.IsNumber():
		return bulk.Float()
	case bulk.IsString():
		raw := strings.TrimSpace(bulk.Raw())
		if raw == "L" {
			return LightBulk
		}
		if v, err := strconv.ParseFloat(raw, 64); err == nil && finite(v) {
			return v
		}
	}
	return 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func rangeTag(w *item.WeaponData) string {
	if w.IsRanged() {
		return RangeRanged
	}
	return RangeMelee
}

func handsOf(w *item.WeaponData) item.Scalar {
	if w == nil {
		return item.Scalar{}
	}
	return w.Hands
}

func hasAbility(entries []item.Entry) bool {
	for _, e := range entries {
		if !e.IsObject() {
			continue
		}
		if e.Type == item.EntryTypeAbility || hasAbility(e.Entries) {
			return true
		}
	}
	return false
}
