package itemfilter

import (
	"cmp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/item"
)

var damageTypes = map[string]string{
	"A":  "acid",
	"B":  "bludgeoning",
	"C":  "cold",
	"E":  "electricity",
	"F":  "fire",
	"M":  "mental",
	"P":  "piercing",
	"Po": "poison",
	"S":  "slashing",
	"So": "sonic",
	"+":  "positive",
	"-":  "negative",
}

// DamageTypeFull expands a damage type abbreviation ("S") to its title-cased
// name ("Slashing"). Unknown values are title-cased as given.
func DamageTypeFull(abbr string) string {
	full, ok := damageTypes[abbr]
	if !ok {
		full = abbr
	}
	return cases.Title(language.English).String(full)
}

// HandsMini renders the compact hands label, "1 hand" or "2 hands"
func HandsMini(v string) string {
	if n, err := strconv.ParseFloat(v, 64); err == nil && n == 1 {
		return v + " hand"
	}
	return v + " hands"
}

// GroupDisplay drops the "|source" suffix of a group identifier
func GroupDisplay(v string) string {
	name, _, _ := strings.Cut(v, "|")
	return name
}

// Bonus renders a signed modifier, "+2" or "-1"
func Bonus(n int) string {
	if n < 0 {
		return strconv.Itoa(n)
	}
	return "+" + strconv.Itoa(n)
}

// ShieldACDisplay renders a shield AC bonus value as "+2 AC"
func ShieldACDisplay(v string) string {
	n, err := strconv.Atoi(v)
	if err != nil {
		return v + " AC"
	}
	return Bonus(n) + " AC"
}

// BulkDisplay renders a bulk rank, light bulk as "L"
func BulkDisplay(v float64) string {
	if v == LightBulk {
		return "L"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PriceDisplay renders a copper amount in the largest whole coin
func PriceDisplay(cp float64) string {
	return item.FormatCopper(int(cp))
}

// CompareDice orders damage dice by count then faces ("1d4" < "1d6" <
// "2d4"). Values that are not dice sort after dice, alphabetically.
func CompareDice(a, b string) int {
	ac, af, aok := parseDice(a)
	bc, bf, bok := parseDice(b)
	switch {
	case aok && bok:
		return cmp.Or(cmp.Compare(ac, bc), cmp.Compare(af, bf), strings.Compare(a, b))
	case aok:
		return -1
	case bok:
		return 1
	}
	return strings.Compare(a, b)
}

func parseDice(s string) (count, faces int, ok bool) {
	c, f, found := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "d")
	if !found {
		return 0, 0, false
	}
	if c == "" {
		count = 1
	} else if n, err := strconv.Atoi(c); err == nil {
		count = n
	} else {
		return 0, 0, false
	}
	n, err := strconv.Atoi(f)
	if err != nil {
		return 0, 0, false
	}
	return count, n, true
}
