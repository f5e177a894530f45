package dnd5e

import (
	"fmt"
	"math"
	"strings"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/item"
)

// lightBulkWeight is the heaviest weight in pounds that still counts as light bulk
const lightBulkWeight = 5

var damageTypeCodes = map[string]string{
	"acid":        "A",
	"bludgeoning": "B",
	"cold":        "C",
	"lightning":   "E",
	"fire":        "F",
	"psychic":     "M",
	"piercing":    "P",
	"poison":      "Po",
	"slashing":    "S",
	"thunder":     "So",
	"radiant":     "+",
	"necrotic":    "-",
}

func apiEquipmentToItem(input dnd5e.EquipmentInterface) *item.Item {
	switch equip := input.(type) {
	case *apiEntities.Weapon:
		return apiWeaponToItem(equip)
	case *apiEntities.Armor:
		return apiArmorToItem(equip)
	default:
		return nil
	}
}

func apiWeaponToItem(input *apiEntities.Weapon) *item.Item {
	if input == nil {
		return nil
	}

	traits := apiPropertiesToTraits(input.Properties)
	hands := item.Number(1)
	if containsTrait(traits, "two-handed") {
		hands = item.Number(2)
	}

	weapon := &item.WeaponData{
		Hands: hands,
	}
	if d := input.Damage; d != nil {
		weapon.Damage = d.DamageDice
		weapon.DamageType = apiDamageTypeToCode(d.DamageType)
	}
	if strings.EqualFold(input.WeaponRange, "Ranged") {
		// the API publishes no range increment for the flag to carry
		weapon.Range = item.Number(1)
	}

	out := &item.Item{
		Name:        input.Name,
		Source:      SourceDND5e,
		UniqueID:    input.Key,
		Bulk:        weightToBulk(float64(input.Weight)),
		Price:       apiCostToPrice(input.Cost),
		Category:    item.StringList{item.CategoryWeapon},
		SubCategory: nonEmpty(input.WeaponCategory),
		Hands:       hands,
		Traits:      traits,
		Equipment:   true,
		WeaponData:  weapon,
		Entries: []item.Entry{
			item.TextEntry(strings.TrimSpace(fmt.Sprintf("%s weapon.", input.CategoryRange))),
		},
	}

	if input.TwoHandedDamage != nil {
		out.ComboWeaponData = &item.WeaponData{
			Damage:     input.TwoHandedDamage.DamageDice,
			DamageType: apiDamageTypeToCode(input.TwoHandedDamage.DamageType),
			Hands:      item.Number(2),
		}
	}
	if containsTrait(traits, "ammunition") {
		out.Ammunition = ammunitionFor(input.Name)
	}

	return out
}

func apiArmorToItem(input *apiEntities.Armor) *item.Item {
	if input == nil {
		return nil
	}

	ac := 0
	dexBonus := false
	if input.ArmorClass != nil {
		ac = input.ArmorClass.Base
		dexBonus = input.ArmorClass.DexBonus
	}

	out := &item.Item{
		Name:      input.Name,
		Source:    SourceDND5e,
		UniqueID:  input.Key,
		Bulk:      weightToBulk(float64(input.Weight)),
		Price:     apiCostToPrice(input.Cost),
		Equipment: true,
	}

	entries := make([]item.Entry, 0, 2)
	if strings.EqualFold(input.ArmorCategory, "Shield") {
		out.Category = item.StringList{item.CategoryShield}
		out.Hands = item.Number(1)
		out.ShieldData = &item.ShieldData{AC: ac}
		entries = append(entries, item.TextEntry(fmt.Sprintf("Shield granting +%d AC.", ac)))
	} else {
		out.Category = item.StringList{item.CategoryArmor}
		out.SubCategory = nonEmpty(input.ArmorCategory)
		out.ArmorData = &item.ArmorData{
			AC:    ac,
			Group: strings.ToLower(input.ArmorCategory),
		}
		text := fmt.Sprintf("%s armor with a base AC of %d.", input.ArmorCategory, ac)
		if dexBonus {
			text = fmt.Sprintf("%s armor with a base AC of %d plus Dexterity.", input.ArmorCategory, ac)
		}
		entries = append(entries, item.TextEntry(text))
	}
	if input.StealthDisadvantage {
		out.Traits = append(out.Traits, "noisy")
		entries = append(entries, item.TextEntry("Disadvantage on Stealth checks."))
	}
	out.Entries = entries

	return out
}

func apiCostToPrice(input *apiEntities.Cost) *item.Price {
	if input == nil || input.Quantity == 0 {
		return nil
	}

	return &item.Price{
		Amount: int(input.Quantity),
		Coin:   strings.ToLower(input.Unit),
	}
}

func apiDamageTypeToCode(input *apiEntities.ReferenceItem) string {
	if input == nil {
		return ""
	}
	if code, ok := damageTypeCodes[input.Key]; ok {
		return code
	}
	return input.Key
}

func apiPropertiesToTraits(input []*apiEntities.ReferenceItem) []string {
	traits := make([]string, 0, len(input))
	for _, p := range input {
		if p == nil || p.Key == "" {
			continue
		}
		traits = append(traits, p.Key)
	}
	return traits
}

// weightToBulk converts pounds to bulk at ten pounds per bulk; light items are 0.1
func weightToBulk(weight float64) item.Scalar {
	switch {
	case weight <= 0:
		return item.Scalar{}
	case weight < lightBulkWeight:
		return item.Number(0.1)
	default:
		return item.Number(math.Max(1, math.Round(weight/10)))
	}
}

func ammunitionFor(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "crossbow"):
		return "Bolts"
	case strings.Contains(lower, "bow"):
		return "Arrows"
	case strings.Contains(lower, "sling"):
		return "Sling Bullets"
	case strings.Contains(lower, "blowgun"):
		return "Blowgun Needles"
	default:
		return ""
	}
}

func containsTrait(traits []string, key string) bool {
	for _, t := range traits {
		if t == key {
			return true
		}
	}
	return false
}

func nonEmpty(v string) item.StringList {
	if v == "" {
		return nil
	}
	return item.StringList{v}
}
