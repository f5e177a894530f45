package picker

import "github.com/KirkDiggler/dnd-item-catalog/internal/itemfilter"

// Column is one sortable header of the picker list
type Column struct {
	Sort  string `json:"sort"`
	Text  string `json:"text"`
	Width string `json:"width"`
}

func ColumnHeaders() []Column {
	return []Column{
		{Sort: itemfilter.SortName, Text: "Name", Width: "4-2"},
		{Sort: itemfilter.SortCategory, Text: "Category", Width: "2-2"},
		{Sort: itemfilter.SortPrice, Text: "Price", Width: "2"},
		{Sort: itemfilter.SortBulk, Text: "Bulk", Width: "1-3"},
		{Sort: itemfilter.SortSource, Text: "Source", Width: "1-3"},
	}
}
