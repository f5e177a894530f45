package facet

import "slices"

// CompositeFacet groups child facets for joint display. Children keep their
// own IDs, are filled independently and must all match.
type CompositeFacet struct {
	id       string
	header   string
	children []Facet
}

func NewComposite(id, header string, children ...Facet) *CompositeFacet {
	return &CompositeFacet{id: id, header: header, children: children}
}

func (f *CompositeFacet) ID() string     { return f.id }
func (f *CompositeFacet) Kind() Kind     { return KindComposite }
func (f *CompositeFacet) Header() string { return f.header }

func (f *CompositeFacet) Children() []Facet {
	return slices.Clone(f.children)
}

// Options is empty; options live on the children
func (f *CompositeFacet) Options() []Option {
	return nil
}

// Matches requires every child to match its positional input
func (f *CompositeFacet) Matches(sel Selection, in Input) bool {
	for i, c := range f.children {
		if !c.Matches(sel, in.child(i)) {
			return false
		}
	}
	return true
}
