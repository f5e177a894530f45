package facet

import (
	"slices"
	"strings"
)

// SetConfig configures a SetFacet
type SetConfig struct {
	ID     string
	Header string
	// Items are registered up front, in order
	Items []string
	// Display renders an option label; defaults to the value
	Display func(string) string
	// MiniDisplay renders the compact label shown in selection pills
	MiniDisplay func(string) string
	// Compare orders options; nil keeps first-seen order
	Compare func(a, b string) int
	// Deselect marks values that start out excluded
	Deselect func(string) bool
}

// SetFacet is a set of observed string values
type SetFacet struct {
	cfg    SetConfig
	values []string
	seen   map[string]struct{}
	nests  []Nest
	nestOf map[string]string
}

func NewSet(cfg SetConfig) *SetFacet {
	f := &SetFacet{
		cfg:    cfg,
		seen:   make(map[string]struct{}),
		nestOf: make(map[string]string),
	}
	f.Add(cfg.Items...)
	return f
}

func (f *SetFacet) ID() string     { return f.cfg.ID }
func (f *SetFacet) Kind() Kind     { return KindSet }
func (f *SetFacet) Header() string { return f.cfg.Header }

// Add inserts each previously unseen, non-blank value
func (f *SetFacet) Add(values ...string) {
	for _, v := range values {
		f.add("", v)
	}
}

// AddNested inserts values under a nest. The nest must have been added with
// AddNest for it to be listed; unknown nests are created visible.
func (f *SetFacet) AddNested(nest string, values ...string) {
	if strings.TrimSpace(nest) != "" {
		f.AddNest(nest, false)
	}
	for _, v := range values {
		f.add(nest, v)
	}
}

func (f *SetFacet) add(nest, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	if _, ok := f.seen[value]; ok {
		return
	}
	f.seen[value] = struct{}{}
	f.values = append(f.values, value)
	if nest != "" {
		f.nestOf[value] = nest
	}
}

// AddNest registers a parent group. The first registration decides whether
// it starts hidden.
func (f *SetFacet) AddNest(name string, hidden bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	for _, n := range f.nests {
		if n.Name == name {
			return
		}
	}
	f.nests = append(f.nests, Nest{Name: name, Hidden: hidden})
}

// Values returns the observed values in first-seen order
func (f *SetFacet) Values() []string {
	return slices.Clone(f.values)
}

// Nests returns the registered nests in first-seen order
func (f *SetFacet) Nests() []Nest {
	return slices.Clone(f.nests)
}

// Has reports whether value has been observed
func (f *SetFacet) Has(value string) bool {
	_, ok := f.seen[value]
	return ok
}

func (f *SetFacet) Options() []Option {
	values := f.Values()
	if f.cfg.Compare != nil {
		slices.SortStableFunc(values, f.cfg.Compare)
	}

	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{
			Value: v,
			Label: f.label(v),
			Nest:  f.nestOf[v],
		}
		if f.cfg.MiniDisplay != nil {
			out[i].Mini = f.cfg.MiniDisplay(v)
		}
	}
	return out
}

func (f *SetFacet) label(v string) string {
	if f.cfg.Display != nil {
		return f.cfg.Display(v)
	}
	return v
}

// Default returns the starting state: values matching Deselect are excluded
func (f *SetFacet) Default() State {
	var st State
	if f.cfg.Deselect == nil {
		return st
	}
	for _, v := range f.values {
		if f.cfg.Deselect(v) {
			st.Exclude = append(st.Exclude, v)
		}
	}
	return st
}

// Matches passes when nothing is included or one of the item's keys is
// included, and none of its keys is excluded.
func (f *SetFacet) Matches(sel Selection, in Input) bool {
	st, ok := sel[f.cfg.ID]
	if !ok {
		return true
	}
	if len(st.Include) > 0 && !containsAny(in.keys, st.Include) {
		return false
	}
	return !containsAny(in.keys, st.Exclude)
}
