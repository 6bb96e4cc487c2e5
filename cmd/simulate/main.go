package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/wavebattle/internal/config"
	"github.com/KirkDiggler/wavebattle/internal/events"
	"github.com/KirkDiggler/wavebattle/internal/repositories/reports"
	"github.com/KirkDiggler/wavebattle/internal/roster"
	"github.com/KirkDiggler/wavebattle/internal/services/simulation"
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

	catalog, err := loadCatalog(cfg.Simulation.RosterFile)
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo := openRepository(ctx, cfg.Redis)
	defer closeRepo()

	svc := simulation.NewService(&simulation.ServiceConfig{
		Catalog:    catalog,
		Repository: repo,
		Logger:     slog.Default(),
		TurnDelay:  cfg.Simulation.TurnDelay,
	})

	if cfg.Simulation.Batch > 1 {
		runBatches(ctx, svc, cfg.Simulation)
		return
	}
	runCampaign(ctx, svc, cfg.Simulation)
}

func loadCatalog(path string) (*roster.Catalog, error) {
	if path == "" {
		return roster.LoadCatalog()
	}
	log.Printf("Loading roster overlay from %s", path)
	return roster.LoadCatalogFile(path)
}

// openRepository prefers Redis and falls back to memory when it is missing
// or unreachable
func openRepository(ctx context.Context, cfg config.RedisConfig) (reports.Repository, func()) {
	inMemory := func() (reports.Repository, func()) {
		return reports.NewInMemoryRepository(nil), func() {}
	}

	if !cfg.Enabled() {
		log.Println("No REDIS_URL found, keeping reports in memory")
		return inMemory()
	}

	log.Printf("Connecting to Redis at: %s", cfg.URL)
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory reports")
		return inMemory()
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory reports")
		return inMemory()
	}

	log.Println("Using Redis for battle reports")
	return reports.NewRedis(client), func() {
		if err := client.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		}
	}
}

func runCampaign(ctx context.Context, svc simulation.Service, cfg config.SimulationConfig) {
	var sink func(*events.TurnEvent)
	if cfg.TurnDelay > 0 {
		sink = func(e *events.TurnEvent) {
			fmt.Printf("[round %d] %s uses %s on %s\n", e.Round, e.Actor, e.Ability, strings.Join(e.Targets, ", "))
		}
	}

	result, err := svc.RunCampaign(ctx, &simulation.CampaignInput{
		Seed:  cfg.Seed,
		Party: cfg.Party,
		Waves: cfg.Waves,
		Sink:  sink,
	})
	if err != nil {
		log.Fatalf("Campaign failed: %v", err)
	}

	for _, report := range result.Reports {
		fmt.Printf("\n--- Wave %d ---\n", report.Wave)
		for _, line := range report.Log {
			fmt.Println(line)
		}
	}

	fmt.Printf("\nCampaign %s (seed %d): cleared %d of %d waves\n", result.ID, result.Seed, result.WavesCleared, cfg.Waves)
	if result.Victory(cfg.Waves) {
		fmt.Println("The party survived every wave!")
	} else {
		fmt.Println("The party has fallen.")
	}
}

func runBatches(ctx context.Context, svc simulation.Service, cfg config.SimulationConfig) {
	fmt.Printf("Party: %s\n", strings.Join(cfg.Party, ", "))
	fmt.Printf("%-6s %-8s %-10s %-12s %-14s\n", "Wave", "Battles", "Win rate", "Mean rounds", "Mean survivors")

	for wave := 1; wave <= cfg.Waves; wave++ {
		stats, err := svc.Batch(ctx, &simulation.BatchInput{
			BaseSeed: cfg.Seed,
			Count:    cfg.Batch,
			Party:    cfg.Party,
			Wave:     wave,
		})
		if err != nil {
			if ctx.Err() != nil {
				fmt.Fprintln(os.Stderr, "Interrupted")
				return
			}
			log.Fatalf("Batch for wave %d failed: %v", wave, err)
		}

		fmt.Printf("%-6d %-8d %-10s %-12.1f %-14.2f\n",
			wave, stats.Battles, fmt.Sprintf("%.0f%%", stats.WinRate*100), stats.MeanRounds, stats.MeanSurvivors)
	}
}
