package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	Logging LoggingConfig
	Metrics MetricsConfig
	World   WorldConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands
	// ArbiterRoleIDs are the roles allowed to reroll freely, adjust rolls
	// and change world settings
	ArbiterRoleIDs []string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string // Empty means in-memory repositories
}

// LoggingConfig holds zap logger settings
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json or console
}

// MetricsConfig holds the Prometheus listener settings
type MetricsConfig struct {
	Addr string // Empty disables the /metrics listener
}

// WorldConfig holds world-level game settings
type WorldConfig struct {
	// SeedFile is an optional YAML file of characters imported at startup
	SeedFile string
	// Thresholds are used for guilds that never stored their own
	Thresholds rolls.Thresholds
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	defaults := rolls.DefaultThresholds()

	cfg := &Config{
		Discord: DiscordConfig{
			Token:          os.Getenv("DISCORD_TOKEN"),
			AppID:          os.Getenv("DISCORD_APP_ID"),
			GuildID:        os.Getenv("DISCORD_GUILD_ID"),
			ArbiterRoleIDs: splitList(os.Getenv("ARBITER_ROLE_IDS")),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
		},
		Metrics: MetricsConfig{
			Addr: os.Getenv("METRICS_ADDR"),
		},
		World: WorldConfig{
			SeedFile: os.Getenv("WORLD_FILE"),
			Thresholds: rolls.Thresholds{
				GreatDisadvantage: getEnvAsIntOrDefault("N2D6_THRESHOLD_GREAT_DISADVANTAGE", defaults.GreatDisadvantage),
				Disadvantage:      getEnvAsIntOrDefault("N2D6_THRESHOLD_DISADVANTAGE", defaults.Disadvantage),
				Advantage:         getEnvAsIntOrDefault("N2D6_THRESHOLD_ADVANTAGE", defaults.Advantage),
				GreatAdvantage:    getEnvAsIntOrDefault("N2D6_THRESHOLD_GREAT_ADVANTAGE", defaults.GreatAdvantage),
			},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields and the threshold ordering
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Discord.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	if err := c.World.Thresholds.Validate(); err != nil {
		return fmt.Errorf("invalid N2D6_THRESHOLD_* settings: %w", err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
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

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
