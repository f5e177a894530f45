package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	SourceFile  = "file"
	SourceDND5e = "dnd5e"

	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Catalog CatalogConfig
	HTTP    HTTPConfig
	Discord DiscordConfig
	Redis   RedisConfig
	DND5E   DND5EConfig
}

// CatalogConfig controls where records come from and how they are filtered
type CatalogConfig struct {
	Source                 string
	ItemDataPath           string
	PickerCategories       []string
	DiscardTraitCategories []string
	SkipMalformed          bool
	HomebrewStore          string
	// Excluded holds item hashes ("name_source") kept out of the facets
	Excluded []string
}

// HTTPConfig holds the browse API listener configuration
type HTTPConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
	// CORSOrigins allows browser clients from these origins; "*" allows any
	CORSOrigins []string
	// HomebrewRateLimit caps homebrew writes per client IP and window; 0 disables it
	HomebrewRateLimit  int
	HomebrewRateWindow time.Duration
}

// DiscordConfig holds Discord-specific configuration. The bot is only
// started when a token is present.
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands
}

// Enabled reports whether the Discord surface should be started
func (d DiscordConfig) Enabled() bool {
	return d.Token != ""
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string
}

// DND5EConfig holds D&D 5e API configuration
type DND5EConfig struct {
	Timeout time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Catalog: CatalogConfig{
			Source:                 strings.ToLower(getEnvOrDefault("CATALOG_SOURCE", SourceFile)),
			ItemDataPath:           getEnvOrDefault("ITEM_DATA_PATH", "data/items.json"),
			PickerCategories:       getEnvAsListOrDefault("PICKER_CATEGORIES", []string{"Armor", "Weapon"}),
			DiscardTraitCategories: getEnvAsListOrDefault("DISCARD_TRAIT_CATEGORIES", []string{"Equipment"}),
			SkipMalformed:          getEnvAsBoolOrDefault("CATALOG_SKIP_MALFORMED", false),
			HomebrewStore:          strings.ToLower(getEnvOrDefault("HOMEBREW_STORE", StoreRedis)),
			Excluded:               getEnvAsListOrDefault("CATALOG_EXCLUDE", nil),
		},
		HTTP: HTTPConfig{
			Addr:               getEnvOrDefault("HTTP_ADDR", ":8080"),
			ShutdownTimeout:    getEnvAsDurationOrDefault("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			CORSOrigins:        getEnvAsListOrDefault("HTTP_CORS_ORIGINS", nil),
			HomebrewRateLimit:  getEnvAsIntOrDefault("HOMEBREW_RATE_LIMIT", 30),
			HomebrewRateWindow: getEnvAsDurationOrDefault("HOMEBREW_RATE_WINDOW", time.Minute),
		},
		Discord: DiscordConfig{
			Token:   os.Getenv("DISCORD_TOKEN"),
			AppID:   os.Getenv("DISCORD_APP_ID"),
			GuildID: os.Getenv("DISCORD_GUILD_ID"),
		},
		Redis: RedisConfig{
			URL: getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		},
		DND5E: DND5EConfig{
			Timeout: getEnvAsDurationOrDefault("DND5E_API_TIMEOUT", 30*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the combinations Load cannot default
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case SourceFile:
		if c.Catalog.ItemDataPath == "" {
			return fmt.Errorf("ITEM_DATA_PATH is required when CATALOG_SOURCE is %s", SourceFile)
		}
	case SourceDND5e:
	default:
		return fmt.Errorf("CATALOG_SOURCE must be %s or %s, got %q", SourceFile, SourceDND5e, c.Catalog.Source)
	}

	switch c.Catalog.HomebrewStore {
	case StoreRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("REDIS_URL is required when HOMEBREW_STORE is %s", StoreRedis)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("HOMEBREW_STORE must be %s or %s, got %q", StoreRedis, StoreMemory, c.Catalog.HomebrewStore)
	}

	if len(c.Catalog.PickerCategories) == 0 {
		return fmt.Errorf("PICKER_CATEGORIES must name at least one category")
	}

	if c.HTTP.HomebrewRateLimit < 0 {
		return fmt.Errorf("HOMEBREW_RATE_LIMIT must not be negative")
	}
	if c.HTTP.HomebrewRateLimit > 0 && c.HTTP.HomebrewRateWindow <= 0 {
		return fmt.Errorf("HOMEBREW_RATE_WINDOW must be positive when HOMEBREW_RATE_LIMIT is set")
	}

	if c.Discord.Enabled() && c.Discord.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required when DISCORD_TOKEN is set")
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma separated value, dropping blanks.
// Setting the variable to "-" yields an empty list.
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if value == "-" {
		return []string{}
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
