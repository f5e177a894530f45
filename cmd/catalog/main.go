package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dnd-item-catalog/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-item-catalog/internal/clients/itemdata"
	"github.com/KirkDiggler/dnd-item-catalog/internal/config"
	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/source"
	"github.com/KirkDiggler/dnd-item-catalog/internal/handlers/api"
	"github.com/KirkDiggler/dnd-item-catalog/internal/handlers/discord"
	"github.com/KirkDiggler/dnd-item-catalog/internal/repositories/homebrew"
	"github.com/KirkDiggler/dnd-item-catalog/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	providerConfig := &services.ProviderConfig{
		Sources:                source.DefaultCatalog(),
		PickerCategories:       cfg.Catalog.PickerCategories,
		DiscardTraitCategories: cfg.Catalog.DiscardTraitCategories,
		Excluded:               cfg.Catalog.Excluded,
		SkipMalformed:          cfg.Catalog.SkipMalformed,
	}

	switch cfg.Catalog.Source {
	case config.SourceDND5e:
		dndClient, clientErr := dnd5e.New(&dnd5e.Config{
			HttpClient: &http.Client{
				Timeout: cfg.DND5E.Timeout,
			},
		})
		if clientErr != nil {
			log.Fatalf("Failed to create D&D 5e client: %v", clientErr)
		}
		providerConfig.BaseItems = dndClient
		log.Println("Using the D&D 5e API for base items")
	default:
		dataClient, clientErr := itemdata.New(&itemdata.Config{Path: cfg.Catalog.ItemDataPath})
		if clientErr != nil {
			log.Fatalf("Failed to create item data client: %v", clientErr)
		}
		providerConfig.Items = dataClient
		providerConfig.BaseItems = dataClient
		log.Printf("Using item data file: %s", cfg.Catalog.ItemDataPath)
	}

	redisClient := connectRedis(cfg)
	if redisClient != nil {
		providerConfig.HomebrewRepository = homebrew.NewRedis(redisClient)
		log.Println("Using Redis for homebrew items")
	} else {
		log.Println("Using in-memory homebrew items")
	}

	serviceProvider, err := services.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	// Warm the catalog so a broken data file fails at startup
	reload, err := serviceProvider.CatalogService.Reload(context.Background())
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Catalog loaded: %d items (%d skipped) in %s", reload.Loaded, reload.Skipped, reload.Duration)

	apiConfig := &api.HandlerConfig{
		CatalogService:     serviceProvider.CatalogService,
		CORSOrigins:        cfg.HTTP.CORSOrigins,
		HomebrewRateLimit:  cfg.HTTP.HomebrewRateLimit,
		HomebrewRateWindow: cfg.HTTP.HomebrewRateWindow,
	}
	if redisClient != nil {
		apiConfig.RateLimitClient = redisClient
	}
	apiHandler, err := api.NewHandler(apiConfig)
	if err != nil {
		log.Fatalf("Failed to create API handler: %v", err)
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           apiHandler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("Browse API listening on %s", cfg.HTTP.Addr)
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", serveErr)
		}
	}()

	var dg *discordgo.Session
	if cfg.Discord.Enabled() {
		dg, err = startDiscord(cfg, serviceProvider)
		if err != nil {
			log.Printf("Failed to start Discord bot: %v", err)
		}
	} else {
		log.Println("No DISCORD_TOKEN found, Discord bot disabled")
	}

	fmt.Println("Catalog is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}

	if dg != nil {
		if err := dg.Close(); err != nil {
			log.Printf("Failed to close Discord connection: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}

// connectRedis returns nil when homebrew should live in memory, either by
// configuration or because Redis is unreachable
func connectRedis(cfg *config.Config) *redis.Client {
	if cfg.Catalog.HomebrewStore != config.StoreRedis {
		return nil
	}

	log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory repositories")
		return nil
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory repositories")
		_ = client.Close()
		return nil
	}

	log.Println("Successfully connected to Redis")
	return client
}

func startDiscord(cfg *config.Config, provider *services.Provider) (*discordgo.Session, error) {
	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: provider,
	})
	dg.AddHandler(discord.RecoverMiddleware("interaction", handler.HandleInteraction))

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("failed to open Discord connection: %w", err)
	}

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		_ = dg.Close()
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	return dg, nil
}
