package items

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dnd-item-catalog/internal/facet"
	"github.com/KirkDiggler/dnd-item-catalog/internal/itemfilter"
	"github.com/KirkDiggler/dnd-item-catalog/internal/services/catalog"
)

// Command is the /items slash command definition
func Command() *discordgo.ApplicationCommand {
	sortChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(itemfilter.SortKeys))
	for _, k := range itemfilter.SortKeys {
		sortChoices = append(sortChoices, &discordgo.ApplicationCommandOptionChoice{Name: k, Value: k})
	}

	return &discordgo.ApplicationCommand{
		Name:        "items",
		Description: "Browse the item catalog",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "list",
				Description: "List catalog items",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "sort",
						Description: "Sort key",
						Choices:     sortChoices,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "category",
						Description: "Only show this category",
					},
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "descending",
						Description: "Reverse the sort order",
					},
				},
			},
			{
				Name:        "pick",
				Description: "Pick a base item",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "multi",
						Description: "Allow picking several items",
					},
				},
			},
		},
	}
}

// ListRequest carries the /items list options
type ListRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	Sort        string
	Category    string
	Descending  bool
}

// Input converts the command options into a browse input
func (r *ListRequest) Input() *catalog.BrowseInput {
	input := &catalog.BrowseInput{
		Selection: facet.Selection{},
		Sort:      itemfilter.SortOptions{SortBy: r.Sort},
		Limit:     maxListRows,
	}
	if input.Sort.SortBy == "" {
		input.Sort.SortBy = itemfilter.SortName
	}
	if r.Descending {
		input.Sort.Direction = itemfilter.DirectionDesc
	}
	if c := strings.TrimSpace(r.Category); c != "" {
		input.Selection.Include(itemfilter.FacetCategory, c)
	}
	return input
}

// PickRequest carries the /items pick options
type PickRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	Multi       bool
}

// PickedRequest is a submitted picker select menu
type PickedRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
}

type Handler struct {
	catalog catalog.Service
}

type HandlerConfig struct {
	CatalogService catalog.Service
}

func NewHandler(cfg *HandlerConfig) *Handler {
	return &Handler{catalog: cfg.CatalogService}
}

func (h *Handler) HandleList(req *ListRequest) error {
	if err := deferReply(req.Session, req.Interaction); err != nil {
		return err
	}

	out, err := h.catalog.Browse(context.Background(), req.Input())
	if err != nil {
		return editContent(req.Session, req.Interaction, fmt.Sprintf("❌ Failed to list items: %v", err))
	}

	embed := BuildListEmbed(out.Rows, out.Total)
	_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	})
	return err
}

func (h *Handler) HandlePick(req *PickRequest) error {
	if err := deferReply(req.Session, req.Interaction); err != nil {
		return err
	}

	out, err := h.catalog.Pick(context.Background(), &catalog.PickInput{
		Radio: !req.Multi,
		Sort:  itemfilter.SortOptions{SortBy: itemfilter.SortName},
	})
	if err != nil {
		return editContent(req.Session, req.Interaction, fmt.Sprintf("❌ Failed to load base items: %v", err))
	}
	if len(out.Rows) == 0 {
		return editContent(req.Session, req.Interaction, "📝 No base items are available.")
	}

	content := "Choose a base item:"
	if req.Multi {
		content = "Choose one or more base items:"
	}
	_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
		Content: &content,
		Components: &[]discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{BuildPickMenu(out.Rows, req.Multi)}},
		},
	})
	return err
}

func (h *Handler) HandlePicked(req *PickedRequest) error {
	ids := req.Interaction.MessageComponentData().Values

	out, err := h.catalog.Pick(context.Background(), &catalog.PickInput{
		Sort: itemfilter.SortOptions{SortBy: itemfilter.SortName},
	})
	content := ""
	if err != nil {
		content = fmt.Sprintf("❌ Failed to load base items: %v", err)
	} else if names := PickedNames(out.Rows, ids); len(names) == 0 {
		content = "❌ Those items are no longer available."
	} else {
		content = "✅ Picked: **" + strings.Join(names, "**, **") + "**"
	}

	return req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: []discordgo.MessageComponent{},
		},
	})
}

func deferReply(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}
	return nil
}

func editContent(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}
