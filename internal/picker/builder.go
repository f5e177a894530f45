package picker

import (
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/item"
	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/source"
	"github.com/KirkDiggler/dnd-item-catalog/internal/itemfilter"
)

var labelTmpl = template.Must(template.New("label").Parse(
	`<label class="w-100 flex-vh-center lst--border no-select lst__wrp-cells">` +
		`{{if not .Plain}}<div class="col-1 pl-0 flex-vh-center">` +
		`{{if .Radio}}<input type="radio" name="radio" class="no-events">{{else}}<input type="checkbox" class="no-events">{{end}}` +
		`</div>{{end}}` +
		`<div class="col-4-2 bold">{{.Name}}</div>` +
		`<div class="col-2-2 text-center">{{.Category}}</div>` +
		`<div class="col-2 text-center">{{.Price}}</div>` +
		`<div class="col-1-3 text-center">{{.Bulk}}</div>` +
		`<div class="col-1-3 text-center {{.SourceClass}} pr-0" title="{{.SourceFull}}"` +
		`{{with .SourceColor}} style="color: {{.}}; border-color: {{.}}; text-decoration-color: {{.}}"{{end}}>{{.Source}}</div>` +
		`</label>`,
))

type labelData struct {
	Plain       bool
	Radio       bool
	Name        string
	Category    string
	Price       string
	Bulk        string
	Source      string
	SourceClass string
	SourceFull  string
	SourceColor string
}

// Builder renders picker rows
type Builder struct {
	plain   bool
	radio   bool
	sources *source.Catalog
}

type BuilderConfig struct {
	// Radio renders single-select rows; otherwise rows get a checkbox
	Radio bool
	// Plain renders browse rows without a selection control
	Plain   bool
	Sources *source.Catalog
}

func NewBuilder(cfg *BuilderConfig) *Builder {
	b := &Builder{}
	if cfg != nil {
		b.radio = cfg.Radio
		b.plain = cfg.Plain
		b.sources = cfg.Sources
	}
	if b.sources == nil {
		b.sources = source.DefaultCatalog()
	}
	return b
}

// Row renders the list row of d at position index of the visible list
func (b *Builder) Row(d *itemfilter.Derived, index int) (*itemfilter.Row, error) {
	it := d.Item()
	abv := b.sources.Abbreviation(it.Source)
	category := strings.Join(it.Category, ", ")

	bulk := item.NoValue
	if it.Bulk.Truthy() {
		bulk = it.Bulk.String()
	}

	var label strings.Builder
	err := labelTmpl.Execute(&label, labelData{
		Plain:       b.plain,
		Radio:       b.radio,
		Name:        it.Name,
		Category:    category,
		Price:       it.Price.Full(),
		Bulk:        bulk,
		Source:      abv,
		SourceClass: b.sources.ColorClass(it.Source),
		SourceFull:  b.sources.Full(it.Source),
		SourceColor: b.sources.Color(it.Source),
	})
	if err != nil {
		return nil, err
	}

	id := it.UniqueID
	if id == "" {
		id = strconv.Itoa(index)
	}

	return &itemfilter.Row{
		ID:    id,
		Name:  it.Name,
		Label: label.String(),
		Values: itemfilter.RowValues{
			Hash:     Hash(it),
			Source:   abv,
			Category: category,
			Level:    d.Level(),
			Bulk:     d.Bulk(),
			Price:    d.Price(),
			Count:    it.Count,
		},
	}, nil
}

// Hash is the page anchor of an item: lowercased name and source, each
// escaped, joined by "_"
func Hash(it *item.Item) string {
	return url.PathEscape(strings.ToLower(it.Name)) + "_" + url.PathEscape(strings.ToLower(it.Source))
}
