package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	apperr "github.com/KirkDiggler/wavebattle/internal/errors"
	"github.com/KirkDiggler/wavebattle/internal/repositories/reports"
)

// Usage: list-reports [limit | report-id]
func main() {
	ctx := context.Background()
	_ = godotenv.Load()

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

	// Test connection
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	repo := reports.NewRedis(client)

	limit := 20
	if len(os.Args) > 1 {
		n, convErr := strconv.Atoi(os.Args[1])
		if convErr != nil {
			showReport(ctx, repo, os.Args[1])
			return
		}
		limit = n
	}

	list, err := repo.List(ctx, limit)
	if err != nil {
		log.Fatalf("Failed to list reports: %v", err)
	}

	fmt.Printf("Found %d reports:\n", len(list))
	for _, r := range list {
		fmt.Printf("  %s  %s  wave %d  seed %d  %s won in %d rounds  survivors: %s\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"), r.ID, r.Wave, r.Seed, r.Winner, r.Rounds, strings.Join(r.Survivors, ", "))
	}
}

func showReport(ctx context.Context, repo reports.Repository, id string) {
	report, err := repo.Get(ctx, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			log.Fatalf("No report with id %s", id)
		}
		log.Fatalf("Failed to get report: %v", err)
	}

	fmt.Printf("Report %s (wave %d, seed %d)\n", report.ID, report.Wave, report.Seed)
	if report.CampaignID != "" {
		fmt.Printf("Campaign: %s\n", report.CampaignID)
	}
	fmt.Printf("Party: %s\n\n", strings.Join(report.Party, ", "))
	for _, line := range report.Log {
		fmt.Println(line)
	}
}
