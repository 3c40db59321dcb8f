package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/naruto2d6-discord/internal/repositories/characters"
)

// fix-resources rewrites a stored character so every pool holds plain
// numbers and maxima match the ability level.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: fix-resources <character-id> [--dry-run]")
		os.Exit(1)
	}

	characterID := os.Args[1]
	dryRun := len(os.Args) > 2 && os.Args[2] == "--dry-run"
	ctx := context.Background()

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Decoding coerces numbers stored as strings
	repo := characters.NewRedis(client)
	char, err := repo.Get(ctx, characterID)
	if err != nil {
		log.Fatalf("Failed to get character: %v", err)
	}

	log.Printf("Character: %s (ID: %s), %d abilities", char.Name, char.ID, len(char.Abilities))

	changed := 0
	for _, ability := range char.Abilities {
		before := make(map[string]int, len(ability.Resources))
		for _, p := range ability.Resources {
			before[p.ID] = int(p.MaxValue)
		}

		ability.Recalculate()

		for _, p := range ability.Resources {
			if before[p.ID] != int(p.MaxValue) {
				log.Printf("  %s / %s: max %d -> %d", ability.Name, p.Name, before[p.ID], int(p.MaxValue))
				changed++
			}
		}
	}

	if dryRun {
		log.Printf("Dry run: %d pools would change", changed)
		return
	}

	if err := repo.Update(ctx, char); err != nil {
		log.Fatalf("Failed to save character: %v", err)
	}
	log.Printf("Saved %s, %d pools changed", char.Name, changed)
}
