package facet

import (
	"strconv"
	"strings"
)

// Kind tags the closed set of facet variants
type Kind uint8

const (
	KindSet Kind = iota + 1
	KindRange
	KindComposite
)

func (k Kind) String() string {
	switch k {
	case KindSet:
		return "set"
	case KindRange:
		return "range"
	case KindComposite:
		return "composite"
	}
	return "unknown"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Facet is one filterable dimension. Values are inserted through the
// variant's own Add methods; Options and Matches are shared.
type Facet interface {
	ID() string
	Kind() Kind
	Header() string
	// Options lists the selectable values in display order
	Options() []Option
	// Matches reports whether an item with the given input passes the
	// selection for this facet
	Matches(sel Selection, in Input) bool
}

// Option is one selectable value as shown in a filter sidebar
type Option struct {
	Value  string  `json:"value"`
	Label  string  `json:"label"`
	Mini   string  `json:"mini,omitempty"`
	Nest   string  `json:"nest,omitempty"`
	Number float64 `json:"number,omitempty"`
}

// Nest groups set options under a parent value
type Nest struct {
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
}

// Input is an item's value for one facet: keys for set facets, a number for
// range facets, children for composite facets. The zero Input is "no value".
type Input struct {
	keys      []string
	number    float64
	hasNumber bool
	children  []Input
}

// Keys builds a set facet input. Values are trimmed the same way options
// are, and empty values are dropped.
func Keys(values ...string) Input {
	keys := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			keys = append(keys, v)
		}
	}
	return Input{keys: keys}
}

// Num builds a range facet input
func Num(v float64) Input {
	return Input{number: v, hasNumber: true}
}

// Group builds a composite facet input, one child per child facet
func Group(children ...Input) Input {
	return Input{children: children}
}

func (in Input) child(i int) Input {
	if i < len(in.children) {
		return in.children[i]
	}
	return Input{}
}

// Description is the serialisable shape of a facet for clients
type Description struct {
	ID       string        `json:"id"`
	Header   string        `json:"header"`
	Kind     Kind          `json:"kind"`
	Options  []Option      `json:"options,omitempty"`
	Nests    []Nest        `json:"nests,omitempty"`
	Min      *float64      `json:"min,omitempty"`
	Max      *float64      `json:"max,omitempty"`
	Children []Description `json:"children,omitempty"`
}

// Describe renders a facet and, for composites, its children
func Describe(f Facet) Description {
	d := Description{
		ID:      f.ID(),
		Header:  f.Header(),
		Kind:    f.Kind(),
		Options: f.Options(),
	}

	switch typed := f.(type) {
	case *SetFacet:
		d.Nests = typed.Nests()
	case *RangeFacet:
		if lo, hi, ok := typed.Bounds(); ok {
			d.Min, d.Max = &lo, &hi
		}
	case *CompositeFacet:
		for _, c := range typed.Children() {
			d.Children = append(d.Children, Describe(c))
		}
	}

	return d
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
