package trait

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	CategoryRarity    = "Rarity"
	CategoryEquipment = "Equipment"
	CategoryWeapon    = "Weapon"

	Common = "Common"
)

// Registry resolves trait identifiers to display names and answers category
// membership. Safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	names      map[string]string
	categories map[string]map[string]struct{}
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		names:      make(map[string]string),
		categories: make(map[string]map[string]struct{}),
	}
}

// DefaultRegistry returns a registry preloaded with the rarity, equipment
// and common weapon traits.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, name := range []string{Common, "Uncommon", "Rare", "Unique"} {
		r.Register(name, CategoryRarity)
	}
	for _, name := range []string{"Magical", "Invested", "Consumable", "Alchemical", "Staff", "Wand", "Talisman", "Structure", "Apex", "Cursed"} {
		r.Register(name, CategoryEquipment)
	}
	for _, name := range []string{"Agile", "Backstabber", "Deadly", "Disarm", "Fatal", "Finesse", "Forceful", "Free-Hand", "Parry", "Propulsive", "Reach", "Shove", "Sweep", "Thrown", "Trip", "Two-Hand", "Versatile", "Volley"} {
		r.Register(name, CategoryWeapon)
	}
	return r
}

// Register adds a trait and the categories it belongs to
func (r *Registry) Register(name string, categories ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	r.names[key] = name
	for _, c := range categories {
		members, ok := r.categories[c]
		if !ok {
			members = make(map[string]struct{})
			r.categories[c] = members
		}
		members[key] = struct{}{}
	}
}

// Name resolves a trait identifier ("sweep", "deadly d8", "magical|CRB") to
// its display name.
func (r *Registry) Name(identifier string) string {
	id, _, _ := strings.Cut(identifier, "|")
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}

	r.mu.RLock()
	known, ok := r.names[strings.ToLower(id)]
	r.mu.RUnlock()
	if ok {
		return known
	}

	// a Caser carries state, so one per call
	caser := cases.Title(language.English)
	words := strings.Fields(id)
	for i, w := range words {
		if strings.IndexFunc(w, unicode.IsDigit) >= 0 {
			continue
		}
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

// InCategory reports whether the trait (display name or identifier) belongs
// to category. Parameterised traits match on their first word.
func (r *Registry) InCategory(name, category string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.categories[category]
	if !ok {
		return false
	}
	key := strings.ToLower(strings.TrimSpace(name))
	if _, ok := members[key]; ok {
		return true
	}
	if first, _, found := strings.Cut(key, " "); found {
		_, ok := members[first]
		return ok
	}
	return false
}

// AnyInCategory reports whether at least one of names belongs to category
func (r *Registry) AnyInCategory(names []string, category string) bool {
	for _, n := range names {
		if r.InCategory(n, category) {
			return true
		}
	}
	return false
}
