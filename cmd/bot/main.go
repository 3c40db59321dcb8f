package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/naruto2d6-discord/internal/config"
	v2 "github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2"
	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/handlers"
	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/middleware"
	"github.com/KirkDiggler/naruto2d6-discord/internal/observe"
	"github.com/KirkDiggler/naruto2d6-discord/internal/repositories/characters"
	"github.com/KirkDiggler/naruto2d6-discord/internal/repositories/moverolls"
	"github.com/KirkDiggler/naruto2d6-discord/internal/repositories/settings"
	"github.com/KirkDiggler/naruto2d6-discord/internal/services"
	"github.com/KirkDiggler/naruto2d6-discord/internal/world"
)

var version = "dev"

func main() {
	// Load .env file
	envErr := godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := observe.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Info("no .env file found")
	}
	logger.Info("starting bot",
		zap.String("version", version),
		zap.String("app_id", cfg.Discord.AppID),
		zap.String("guild_id", cfg.Discord.GuildID),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	telemetry, err := observe.InitProvider(ctx, observe.ProviderConfig{ServiceVersion: version})
	if err != nil {
		logger.Fatal("failed to init metrics", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Warn("failed to shut down metrics", zap.Error(err))
		}
	}()
	if cfg.Metrics.Addr != "" {
		go func() {
			if err := telemetry.Serve(ctx, cfg.Metrics.Addr); err != nil {
				logger.Error("metrics listener stopped", zap.String("addr", cfg.Metrics.Addr), zap.Error(err))
			}
		}()
		logger.Info("serving metrics", zap.String("addr", cfg.Metrics.Addr+"/metrics"))
	}

	// Create service provider config
	providerConfig := &services.ProviderConfig{
		DefaultThresholds: cfg.World.Thresholds,
		Logger:            logger,
		Metrics:           telemetry.Metrics,
	}
	setupConfig := &v2.SetupConfig{
		Logger:  logger,
		Metrics: telemetry.Metrics,
		Arbiter: &middleware.ArbiterConfig{
			RoleIDs:                   cfg.Discord.ArbiterRoleIDs,
			AdministratorsAreArbiters: true,
		},
	}

	// Keep Redis client for cleanup
	redisClient := connectRedis(cfg.Redis.URL, logger)
	if redisClient != nil {
		providerConfig.CharacterRepository = characters.NewRedis(redisClient)
		providerConfig.MoveRollRepository = moverolls.NewRedis(redisClient)
		providerConfig.SettingsRepository = settings.NewRedis(redisClient)
		setupConfig.RateLimitStore = middleware.NewRedisRateLimitStore(redisClient, "ratelimit:move:")
		logger.Info("using Redis for persistence")
	}

	// Create service provider
	serviceProvider := services.NewProvider(providerConfig)
	setupConfig.Provider = serviceProvider

	if cfg.World.SeedFile != "" {
		chars, err := world.LoadFromFile(cfg.World.SeedFile)
		if err != nil {
			logger.Fatal("failed to load world file", zap.String("path", cfg.World.SeedFile), zap.Error(err))
		}
		if _, err := serviceProvider.CharacterService.Import(ctx, chars); err != nil {
			logger.Fatal("failed to import world characters", zap.Error(err))
		}
	}

	pipeline, err := v2.SetupPipeline(setupConfig)
	if err != nil {
		logger.Fatal("failed to set up handlers", zap.Error(err))
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		logger.Fatal("failed to create Discord session", zap.Error(err))
	}

	// Register interaction handler
	dg.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if err := pipeline.Execute(ctx, s, i); err != nil {
			logger.Error("failed to handle interaction", zap.String("interaction_id", i.ID), zap.Error(err))
		}
	})

	// Open connection to Discord
	if err := dg.Open(); err != nil {
		logger.Error("failed to open Discord connection", zap.Error(err))
		return
	}
	defer func() {
		if err := dg.Close(); err != nil {
			logger.Warn("failed to close Discord connection", zap.Error(err))
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handlers.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
		logger.Error("failed to register commands", zap.Error(err))
		return
	}
	if cfg.Discord.GuildID != "" {
		logger.Info("registered commands for guild", zap.String("guild_id", cfg.Discord.GuildID))
	} else {
		logger.Info("registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	<-ctx.Done()
	fmt.Println("Shutting down...")

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn("error closing Redis connection", zap.Error(err))
		}
	}
}

// connectRedis returns nil when url is empty or Redis does not answer, in
// which case the bot keeps everything in memory.
func connectRedis(url string, logger *zap.Logger) *redis.Client {
	if url == "" {
		logger.Info("no REDIS_URL found, using in-memory repositories")
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		logger.Warn("failed to parse Redis URL, falling back to in-memory repositories", zap.Error(err))
		return nil
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("failed to connect to Redis, falling back to in-memory repositories", zap.Error(err))
		_ = client.Close()
		return nil
	}

	logger.Info("connected to Redis", zap.String("addr", opts.Addr))
	return client
}
