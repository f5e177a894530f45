package facet

import "slices"

// State is the user's selection for one facet. Set facets use Include and
// Exclude; range facets use Min and Max.
type State struct {
	Include []string `json:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
}

// IsEmpty reports whether the state filters nothing
func (s State) IsEmpty() bool {
	return len(s.Include) == 0 && len(s.Exclude) == 0 && s.Min == nil && s.Max == nil
}

// Selection holds facet states keyed by facet ID
type Selection map[string]State

// Include adds included values for a set facet
func (s Selection) Include(id string, values ...string) Selection {
	st := s[id]
	st.Include = append(st.Include, values...)
	s[id] = st
	return s
}

// Exclude adds excluded values for a set facet
func (s Selection) Exclude(id string, values ...string) Selection {
	st := s[id]
	st.Exclude = append(st.Exclude, values...)
	s[id] = st
	return s
}

// Range bounds a range facet; either bound may be nil
func (s Selection) Range(id string, lo, hi *float64) Selection {
	st := s[id]
	st.Min, st.Max = lo, hi
	s[id] = st
	return s
}

// Merge overlays other onto a copy of s; facets present in other replace
// those in s.
func (s Selection) Merge(other Selection) Selection {
	out := make(Selection, len(s)+len(other))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

func containsAny(have, want []string) bool {
	for _, w := range want {
		if slices.Contains(have, w) {
			return true
		}
	}
	return false
}
