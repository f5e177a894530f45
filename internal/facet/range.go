package facet

import (
	"math"
	"slices"
)

// RangeConfig configures a RangeFacet
type RangeConfig struct {
	ID     string
	Header string
	// Labels is a fixed ladder of selectable stops
	Labels []float64
	// Labelled offers every observed value as a stop when Labels is empty
	Labelled bool
	// AllowGreater treats a max at the top stop as unbounded
	AllowGreater bool
	// Display renders a stop; defaults to the number
	Display func(float64) string
}

// RangeFacet tracks observed numeric values
type RangeFacet struct {
	cfg      RangeConfig
	observed []float64
	seen     map[float64]struct{}
}

func NewRange(cfg RangeConfig) *RangeFacet {
	cfg.Labels = slices.Clone(cfg.Labels)
	slices.Sort(cfg.Labels)
	return &RangeFacet{
		cfg:  cfg,
		seen: make(map[float64]struct{}),
	}
}

func (f *RangeFacet) ID() string     { return f.cfg.ID }
func (f *RangeFacet) Kind() Kind     { return KindRange }
func (f *RangeFacet) Header() string { return f.cfg.Header }

// Add records values; NaN and infinities are dropped
func (f *RangeFacet) Add(values ...float64) {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if _, ok := f.seen[v]; ok {
			continue
		}
		f.seen[v] = struct{}{}
		idx, _ := slices.BinarySearch(f.observed, v)
		f.observed = slices.Insert(f.observed, idx, v)
	}
}

// Observed returns the distinct recorded values in ascending order
func (f *RangeFacet) Observed() []float64 {
	return slices.Clone(f.observed)
}

// Bounds returns the smallest and largest recorded value
func (f *RangeFacet) Bounds() (lo, hi float64, ok bool) {
	if len(f.observed) == 0 {
		return 0, 0, false
	}
	return f.observed[0], f.observed[len(f.observed)-1], true
}

func (f *RangeFacet) stops() []float64 {
	switch {
	case len(f.cfg.Labels) > 0:
		return f.cfg.Labels
	case f.cfg.Labelled:
		return f.observed
	}
	if lo, hi, ok := f.Bounds(); ok {
		if lo == hi {
			return []float64{lo}
		}
		return []float64{lo, hi}
	}
	return nil
}

func (f *RangeFacet) Options() []Option {
	stops := f.stops()
	out := make([]Option, len(stops))
	for i, v := range stops {
		out[i] = Option{
			Value:  formatNumber(v),
			Label:  f.label(v),
			Number: v,
		}
	}
	return out
}

func (f *RangeFacet) label(v float64) string {
	if f.cfg.Display != nil {
		return f.cfg.Display(v)
	}
	return formatNumber(v)
}

// Matches passes everything when unbounded. Once bounded, items without a
// value are filtered out.
func (f *RangeFacet) Matches(sel Selection, in Input) bool {
	st, ok := sel[f.cfg.ID]
	if !ok || (st.Min == nil && st.Max == nil) {
		return true
	}
	if !in.hasNumber {
		return false
	}
	if st.Min != nil && in.number < *st.Min {
		return false
	}
	if st.Max != nil && !f.unboundedAt(*st.Max) && in.number > *st.Max {
		return false
	}
	return true
}

func (f *RangeFacet) unboundedAt(hi float64) bool {
	if !f.cfg.AllowGreater {
		return false
	}
	stops := f.stops()
	return len(stops) > 0 && hi >= stops[len(stops)-1]
}
