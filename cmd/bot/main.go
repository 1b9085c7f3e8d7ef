package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/trickcord/trickcord/internal/catalog"
	"github.com/trickcord/trickcord/internal/common/clock"
	"github.com/trickcord/trickcord/internal/common/uuid"
	"github.com/trickcord/trickcord/internal/handlers/discord"
	"github.com/trickcord/trickcord/internal/logger"
	"github.com/trickcord/trickcord/internal/lottery"
	inventoryRepo "github.com/trickcord/trickcord/internal/repositories/inventory"
	settingsRepo "github.com/trickcord/trickcord/internal/repositories/settings"
	"github.com/trickcord/trickcord/internal/rng"
	huntService "github.com/trickcord/trickcord/internal/services/hunt"
	"github.com/trickcord/trickcord/internal/spawn"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	logger.Init(getEnv("DEBUG", "") != "")
	defer logger.Sync()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}

	// Initialize repositories
	settings, err := settingsRepo.NewRedis(&settingsRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("failed to create settings repository", zap.Error(err))
	}

	cachedSettings, err := settingsRepo.NewCached(&settingsRepo.CachedConfig{
		Repo: settings,
	})
	if err != nil {
		logger.Fatal("failed to create settings cache", zap.Error(err))
	}

	inventory, err := inventoryRepo.NewRedis(&inventoryRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("failed to create inventory repository", zap.Error(err))
	}

	// Initialize static data and game mechanics
	itemCatalog, err := catalog.New()
	if err != nil {
		logger.Fatal("failed to load item catalog", zap.Error(err))
	}

	rarityLottery, err := lottery.New(lottery.DefaultWeights)
	if err != nil {
		logger.Fatal("failed to create lottery", zap.Error(err))
	}

	tracker, err := spawn.New(&spawn.Config{
		Clock: &clock.DefaultClock{},
		UUID:  uuid.New(),
	})
	if err != nil {
		logger.Fatal("failed to create spawn tracker", zap.Error(err))
	}

	// Initialize hunt service
	huntSvc, err := huntService.New(&huntService.Config{
		SettingsRepo:  cachedSettings,
		InventoryRepo: inventory,
		Catalog:       itemCatalog,
		Lottery:       rarityLottery,
		Tracker:       tracker,
		Random:        rng.New(&rng.Config{}),
		Clock:         &clock.DefaultClock{},
	})
	if err != nil {
		logger.Fatal("failed to create hunt service", zap.Error(err))
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		logger.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:         discordToken,
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),
		HuntService:   huntSvc,
	})
	if err != nil {
		logger.Fatal("failed to create Discord bot", zap.Error(err))
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		logger.Fatal("failed to start Discord bot", zap.Error(err))
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		logger.Error("error stopping bot", zap.Error(err))
	}

	logger.Info("bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
