package api

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	caterr "github.com/KirkDiggler/dnd-item-catalog/internal/errors"
	"github.com/KirkDiggler/dnd-item-catalog/internal/facet"
	"github.com/KirkDiggler/dnd-item-catalog/internal/itemfilter"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// BrowseRequest is the query of GET /api/items.
//
//	include=facet:value  exclude=facet:value  range=facet:min:max
//
// Either range bound may be empty.
type BrowseRequest struct {
	Sort    string   `schema:"sort"`
	Dir     string   `schema:"dir"`
	Include []string `schema:"include"`
	Exclude []string `schema:"exclude"`
	Range   []string `schema:"range"`
	Offset  int      `schema:"offset"`
	Limit   int      `schema:"limit,default:100"`
}

// PickRequest is the query of GET /api/picker
type PickRequest struct {
	Radio   bool     `schema:"radio"`
	Sort    string   `schema:"sort"`
	Dir     string   `schema:"dir"`
	Include []string `schema:"include"`
	Exclude []string `schema:"exclude"`
	Range   []string `schema:"range"`
}

func decodeQuery(dst any, query url.Values) error {
	if err := decoder.Decode(dst, query); err != nil {
		return caterr.InvalidArgumentf("invalid query: %v", err)
	}
	return nil
}

func (r *BrowseRequest) sortOptions() itemfilter.SortOptions {
	return itemfilter.SortOptions{SortBy: r.Sort, Direction: r.Dir}
}

func (r *PickRequest) sortOptions() itemfilter.SortOptions {
	return itemfilter.SortOptions{SortBy: r.Sort, Direction: r.Dir}
}

// parseSelection turns include/exclude/range parameters into a selection
func parseSelection(include, exclude, ranges []string) (facet.Selection, error) {
	sel := facet.Selection{}

	for _, v := range include {
		id, value, err := splitPair(v)
		if err != nil {
			return nil, err
		}
		sel.Include(id, value)
	}
	for _, v := range exclude {
		id, value, err := splitPair(v)
		if err != nil {
			return nil, err
		}
		sel.Exclude(id, value)
	}
	for _, v := range ranges {
		parts := strings.Split(v, ":")
		if len(parts) != 3 || parts[0] == "" {
			return nil, caterr.InvalidArgumentf("range %q must be facet:min:max", v).WithMeta("range", v)
		}
		lo, err := parseBound(parts[1])
		if err != nil {
			return nil, caterr.InvalidArgumentf("range %q has a bad minimum", v).WithMeta("range", v)
		}
		hi, err := parseBound(parts[2])
		if err != nil {
			return nil, caterr.InvalidArgumentf("range %q has a bad maximum", v).WithMeta("range", v)
		}
		sel.Range(parts[0], lo, hi)
	}

	return sel, nil
}

func splitPair(v string) (string, string, error) {
	id, value, ok := strings.Cut(v, ":")
	if !ok || id == "" || value == "" {
		return "", "", caterr.InvalidArgumentf("filter %q must be facet:value", v).WithMeta("filter", v)
	}
	return id, value, nil
}

func parseBound(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
