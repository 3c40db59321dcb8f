package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/naruto2d6-discord/internal/repositories/moverolls"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: inspect-roll <record-id>")
		os.Exit(1)
	}

	recordID := os.Args[1]
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

	repo := moverolls.NewRedis(client)
	record, err := repo.Get(ctx, recordID)
	if err != nil {
		log.Fatalf("Failed to get roll: %v", err)
	}

	ttl, err := client.TTL(ctx, moverolls.Key(recordID)).Result()
	if err != nil {
		log.Printf("Failed to read TTL: %v", err)
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode roll: %v", err)
	}

	fmt.Printf("# %s: %s (%s) expires in %s\n", record.CharacterName, record.MoveName, record.Outcome.Result, ttl)
	fmt.Println(string(out))
}
