package items

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/item"
	"github.com/KirkDiggler/dnd-item-catalog/internal/itemfilter"
)

const (
	// PickCustomID identifies the picker select menu
	PickCustomID = "items:pick"

	// Discord caps select menus at 25 options and embeds at 25 fields
	maxMenuOptions = 25
	maxListRows    = 25
)

// rowLine is the one-line text form of a row
func rowLine(r *itemfilter.Row) string {
	parts := []string{r.Values.Category, priceText(r.Values.Price), "Bulk " + bulkText(r.Values.Bulk), r.Values.Source}
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " · ")
}

func priceText(cp int) string {
	if cp == 0 {
		return item.NoValue
	}
	return item.FormatCopper(cp)
}

func bulkText(b float64) string {
	if b == 0 {
		return item.NoValue
	}
	return itemfilter.BulkDisplay(b)
}

// BuildListEmbed renders browse rows as an embed
func BuildListEmbed(rows []*itemfilter.Row, total int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "📦 Items",
		Description: fmt.Sprintf("Showing %d of %d item(s)", min(len(rows), maxListRows), total),
		Color:       0x3498db,
		Fields:      make([]*discordgo.MessageEmbedField, 0, min(len(rows), maxListRows)),
	}
	if total == 0 {
		embed.Description = "No items match the current filters."
		return embed
	}

	for _, r := range rows[:min(len(rows), maxListRows)] {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   r.Name,
			Value:  rowLine(r),
			Inline: false,
		})
	}
	return embed
}

// BuildPickMenu renders picker rows as a select menu. A single select
// behaves like the radio picker, a multi select like the checkbox one.
func BuildPickMenu(rows []*itemfilter.Row, multi bool) discordgo.SelectMenu {
	n := min(len(rows), maxMenuOptions)
	options := make([]discordgo.SelectMenuOption, 0, n)
	for _, r := range rows[:n] {
		options = append(options, discordgo.SelectMenuOption{
			Label:       truncate(r.Name, 100),
			Value:       r.ID,
			Description: truncate(rowLine(r), 100),
		})
	}

	minValues := 1
	maxValues := 1
	if multi {
		maxValues = max(len(options), 1)
	}

	return discordgo.SelectMenu{
		CustomID:    PickCustomID,
		Placeholder: "Choose a base item",
		MinValues:   &minValues,
		MaxValues:   maxValues,
		Options:     options,
	}
}

// PickedNames maps selected row IDs back to names, in selection order.
// Unknown IDs are dropped.
func PickedNames(rows []*itemfilter.Row, ids []string) []string {
	byID := make(map[string]string, len(rows))
	for _, r := range rows {
		byID[r.ID] = r.Name
	}

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
