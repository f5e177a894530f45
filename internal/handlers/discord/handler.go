package discord

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dnd-item-catalog/internal/handlers/discord/items"
	"github.com/KirkDiggler/dnd-item-catalog/internal/services"
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider
	itemsHandler    *items.Handler
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
		itemsHandler: items.NewHandler(&items.HandlerConfig{
			CatalogService: cfg.ServiceProvider.CatalogService,
		}),
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	commands := []*discordgo.ApplicationCommand{
		items.Command(),
	}

	for _, cmd := range commands {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd); err != nil {
			return err
		}
		log.Printf("Registered command: /%s", cmd.Name)
	}

	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(s, i)
	}
}

func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != "items" || len(data.Options) == 0 {
		return
	}

	subcommand := data.Options[0]
	switch subcommand.Name {
	case "list":
		req := &items.ListRequest{
			Session:     s,
			Interaction: i,
		}
		for _, opt := range subcommand.Options {
			switch opt.Name {
			case "sort":
				req.Sort = opt.StringValue()
			case "category":
				req.Category = opt.StringValue()
			case "descending":
				req.Descending = opt.BoolValue()
			}
		}
		if err := h.itemsHandler.HandleList(req); err != nil {
			log.Printf("Error handling items list: %v", err)
		}
	case "pick":
		req := &items.PickRequest{
			Session:     s,
			Interaction: i,
		}
		for _, opt := range subcommand.Options {
			if opt.Name == "multi" {
				req.Multi = opt.BoolValue()
			}
		}
		if err := h.itemsHandler.HandlePick(req); err != nil {
			log.Printf("Error handling items pick: %v", err)
		}
	}
}

func (h *Handler) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	if !strings.HasPrefix(customID, "items:") {
		return
	}

	if customID == items.PickCustomID {
		req := &items.PickedRequest{
			Session:     s,
			Interaction: i,
		}
		if err := h.itemsHandler.HandlePicked(req); err != nil {
			log.Printf("Error handling item pick: %v", err)
		}
	}
}
