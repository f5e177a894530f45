package itemfilter

import (
	"cmp"
	"slices"
	"strings"
)

// Sort keys
const (
	SortName     = "name"
	SortCategory = "category"
	SortSource   = "source"
	SortLevel    = "level"
	SortBulk     = "bulk"
	SortCount    = "count"
	SortPrice    = "price"

	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// SortKeys lists the supported sort keys
var SortKeys = []string{SortName, SortCategory, SortSource, SortLevel, SortBulk, SortCount, SortPrice}

// RowValues is the sortable value bag of a list row
type RowValues struct {
	Hash     string  `json:"hash"`
	Source   string  `json:"source"`
	Category string  `json:"category"`
	Level    float64 `json:"level"`
	Bulk     float64 `json:"bulk"`
	Price    int     `json:"price"`
	Count    int     `json:"count,omitempty"`
}

// Row is one entry of a sortable list
type Row struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Label  string    `json:"label"`
	Values RowValues `json:"values"`
}

type SortOptions struct {
	SortBy    string
	Direction string
}

// Compare orders two rows by opts.SortBy, breaking ties on name. Unknown
// keys compare equal. Direction desc reverses the key order only; ties still
// break on ascending name.
func Compare(a, b *Row, opts SortOptions) int {
	var primary int
	switch opts.SortBy {
	case SortName:
		primary = compareNames(a, b)
		if opts.Direction == DirectionDesc {
			primary = -primary
		}
		return primary
	case SortCategory:
		primary = compareLower(a.Values.Category, b.Values.Category)
	case SortSource:
		primary = compareLower(a.Values.Source, b.Values.Source)
	case SortLevel:
		primary = cmp.Compare(a.Values.Level, b.Values.Level)
	case SortBulk:
		primary = cmp.Compare(a.Values.Bulk, b.Values.Bulk)
	case SortCount:
		primary = cmp.Compare(a.Values.Count, b.Values.Count)
	case SortPrice:
		primary = cmp.Compare(a.Values.Price, b.Values.Price)
	default:
		return 0
	}
	if opts.Direction == DirectionDesc {
		primary = -primary
	}
	return cmp.Or(primary, compareNames(a, b))
}

// SortRows sorts rows in place, keeping the relative order of equal rows
func SortRows(rows []*Row, opts SortOptions) {
	slices.SortStableFunc(rows, func(a, b *Row) int {
		return Compare(a, b, opts)
	})
}

func compareNames(a, b *Row) int {
	return cmp.Or(compareLower(a.Name, b.Name), strings.Compare(a.Name, b.Name))
}

func compareLower(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
