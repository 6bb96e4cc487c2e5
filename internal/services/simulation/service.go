package simulation

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/wavebattle/internal/battle"
	"github.com/KirkDiggler/wavebattle/internal/dice"
	"github.com/KirkDiggler/wavebattle/internal/domain/combatant"
	"github.com/KirkDiggler/wavebattle/internal/domain/shared"
	apperr "github.com/KirkDiggler/wavebattle/internal/errors"
	"github.com/KirkDiggler/wavebattle/internal/events"
	"github.com/KirkDiggler/wavebattle/internal/repositories/reports"
	"github.com/KirkDiggler/wavebattle/internal/roster"
	"github.com/KirkDiggler/wavebattle/internal/runner"
	"github.com/KirkDiggler/wavebattle/internal/uuid"
)

// DefaultParty is fielded when no heroes are named
var DefaultParty = []string{"Warrior", "Mage", "Healer", "Rogue"}

// Service runs battles and archives their reports
type Service interface {
	// Simulate fights a single wave with a fresh party
	Simulate(ctx context.Context, input *SimulateInput) (*Result, error)

	// RunCampaign fights successive waves with one party until it is wiped
	// or the wave limit is reached
	RunCampaign(ctx context.Context, input *CampaignInput) (*CampaignResult, error)

	// Batch fights the same matchup over many seeds concurrently
	Batch(ctx context.Context, input *BatchInput) (*BatchStats, error)

	// GetReport retrieves an archived report
	GetReport(ctx context.Context, id string) (*reports.Report, error)

	// ListReports returns archived reports, newest first
	ListReports(ctx context.Context, limit int) ([]*reports.Report, error)
}

// SimulateInput describes a single battle. A zero Seed picks a random one,
// which is recorded in the report.
type SimulateInput struct {
	Seed  uint64
	Party []string
	Wave  int
	Sink  runner.Sink
}

// Result is the outcome of a single battle
type Result struct {
	Report *reports.Report
	Events []events.Event
}

// CampaignInput describes a multi-wave run
type CampaignInput struct {
	Seed  uint64
	Party []string
	Waves int
	Sink  runner.Sink
}

// CampaignResult holds one report per wave fought
type CampaignResult struct {
	ID           string
	Seed         uint64
	Reports      []*reports.Report
	WavesCleared int
}

// Victory reports whether every requested wave was cleared
func (r *CampaignResult) Victory(waves int) bool {
	return r.WavesCleared == waves
}

// BatchInput describes a balance run. Battle i uses seed BaseSeed+i.
type BatchInput struct {
	BaseSeed uint64
	Count    int
	Party    []string
	Wave     int
	// Persist archives every battle report
	Persist bool
}

// BatchStats summarizes a balance run
type BatchStats struct {
	Battles       int
	PlayerWins    int
	WinRate       float64
	MeanRounds    float64
	MeanSurvivors float64
	Reports       []*reports.Report
}

// ServiceConfig holds the collaborators of the simulation service
type ServiceConfig struct {
	Catalog       *roster.Catalog
	Repository    reports.Repository
	UUIDGenerator uuid.Generator
	Logger        *slog.Logger

	// TurnDelay paces Simulate and RunCampaign. Batch always runs flat out.
	TurnDelay time.Duration

	// Concurrency bounds Batch. Defaults to GOMAXPROCS.
	Concurrency int
}

type service struct {
	catalog       *roster.Catalog
	repository    reports.Repository
	uuidGenerator uuid.Generator
	logger        *slog.Logger
	turnDelay     time.Duration
	concurrency   int
}

// NewService creates a new simulation service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Catalog == nil {
		panic("catalog is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		catalog:       cfg.Catalog,
		repository:    cfg.Repository,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        cfg.Logger,
		turnDelay:     cfg.TurnDelay,
		concurrency:   cfg.Concurrency,
	}

	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	if svc.concurrency <= 0 {
		svc.concurrency = runtime.GOMAXPROCS(0)
	}

	return svc
}

// fight is one battle with its own roller and event recorder
type fight struct {
	seed     uint64
	wave     int
	party    []*combatant.Combatant
	enemies  []*combatant.Combatant
	delay    time.Duration
	sink     runner.Sink
	recorder *events.Recorder
}

func (s *service) Simulate(ctx context.Context, input *SimulateInput) (*Result, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}

	seed := pickSeed(input.Seed)
	factory := s.newFactory(seed)

	party, err := factory.SelectParty(partyOrDefault(input.Party))
	if err != nil {
		return nil, apperr.Wrap(err, "failed to select party")
	}

	f := &fight{seed: seed, wave: input.Wave, party: party, delay: s.turnDelay, sink: input.Sink}
	report, err := s.runWave(ctx, factory, f)
	if err != nil {
		return nil, err
	}

	if err := s.repository.Create(ctx, report); err != nil {
		return nil, apperr.Wrap(err, "failed to archive report")
	}

	s.logger.Info("Battle finished",
		"report_id", report.ID,
		"seed", report.Seed,
		"wave", report.Wave,
		"winner", report.Winner,
		"rounds", report.Rounds)

	return &Result{Report: report, Events: f.recorder.Events()}, nil
}

func (s *service) RunCampaign(ctx context.Context, input *CampaignInput) (*CampaignResult, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if input.Waves < 1 {
		return nil, apperr.InvalidArgumentf("campaign needs at least one wave, got %d", input.Waves)
	}

	seed := pickSeed(input.Seed)
	factory := s.newFactory(seed)

	party, err := factory.SelectParty(partyOrDefault(input.Party))
	if err != nil {
		return nil, apperr.Wrap(err, "failed to select party")
	}

	result := &CampaignResult{ID: s.uuidGenerator.New(), Seed: seed}

	for wave := 1; wave <= input.Waves; wave++ {
		f := &fight{seed: seed, wave: wave, party: party, delay: s.turnDelay, sink: input.Sink}
		report, err := s.runWave(ctx, factory, f)
		if err != nil {
			return nil, apperr.Wrapf(err, "campaign %s wave %d", result.ID, wave)
		}
		report.CampaignID = result.ID

		if err := s.repository.Create(ctx, report); err != nil {
			return nil, apperr.Wrap(err, "failed to archive report")
		}
		result.Reports = append(result.Reports, report)

		if !report.PlayersWon() {
			s.logger.Info("Campaign lost", "campaign_id", result.ID, "wave", wave)
			break
		}
		result.WavesCleared = wave

		// HP and deaths carry over; effects and cooldowns do not
		for _, hero := range party {
			hero.ClearStatusEffects()
			hero.ResetCooldowns()
		}
	}

	s.logger.Info("Campaign finished",
		"campaign_id", result.ID,
		"seed", seed,
		"waves_cleared", result.WavesCleared,
		"waves", input.Waves)

	return result, nil
}

func (s *service) Batch(ctx context.Context, input *BatchInput) (*BatchStats, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if input.Count < 1 {
		return nil, apperr.InvalidArgumentf("batch needs at least one battle, got %d", input.Count)
	}

	base := pickSeed(input.BaseSeed)
	names := partyOrDefault(input.Party)
	results := make([]*reports.Report, input.Count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i := range input.Count {
		g.Go(func() error {
			seed := base + uint64(i)
			factory := s.newFactory(seed)

			party, err := factory.SelectParty(names)
			if err != nil {
				return apperr.Wrap(err, "failed to select party")
			}

			report, err := s.runWave(gctx, factory, &fight{seed: seed, wave: input.Wave, party: party})
			if err != nil {
				return err
			}
			report.Log = nil

			if input.Persist {
				if err := s.repository.Create(gctx, report); err != nil {
					return apperr.Wrapf(err, "failed to archive report for seed %d", seed)
				}
			}

			results[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := summarize(results)
	s.logger.Info("Batch finished",
		"battles", stats.Battles,
		"base_seed", base,
		"wave", input.Wave,
		"win_rate", stats.WinRate,
		"mean_rounds", stats.MeanRounds)

	return stats, nil
}

func (s *service) GetReport(ctx context.Context, id string) (*reports.Report, error) {
	report, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to get report")
	}
	return report, nil
}

func (s *service) ListReports(ctx context.Context, limit int) ([]*reports.Report, error) {
	list, err := s.repository.List(ctx, limit)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list reports")
	}
	return list, nil
}

// runWave builds wave f.wave and fights it to the end. The report is not
// archived here.
func (s *service) runWave(ctx context.Context, factory *roster.Factory, f *fight) (*reports.Report, error) {
	enemies, err := factory.Wave(f.wave)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to build wave")
	}
	f.enemies = enemies

	bus := events.NewBusWithLogger(s.logger)
	f.recorder = events.NewRecorder("simulation")
	bus.SubscribeAll(f.recorder)

	b := battle.New(&battle.Config{
		Players: f.party,
		Enemies: f.enemies,
		Roller:  factory.Roller(),
		Bus:     bus,
		Logger:  s.logger,
	})

	if err := runner.Run(ctx, b, f.delay, f.sink); err != nil {
		return nil, apperr.Wrapf(err, "battle interrupted at round %d", b.Round())
	}
	b.End()

	winner, _ := b.Winner()
	return &reports.Report{
		ID:        s.uuidGenerator.New(),
		Seed:      f.seed,
		Wave:      f.wave,
		Party:     names(f.party),
		Winner:    winner,
		Rounds:    b.Round(),
		Turns:     b.Turns(),
		Survivors: names(b.Living(shared.SidePlayer)),
		Log:       b.Log(),
	}, nil
}

func (s *service) newFactory(seed uint64) *roster.Factory {
	return roster.NewFactory(&roster.FactoryConfig{
		Catalog:     s.catalog,
		Roller:      dice.NewSeededRoller(seed),
		IDGenerator: uuid.NewSequenceGenerator("c"),
	})
}

func summarize(results []*reports.Report) *BatchStats {
	stats := &BatchStats{Battles: len(results), Reports: results}
	if stats.Battles == 0 {
		return stats
	}

	rounds, survivors := 0, 0
	for _, r := range results {
		if r.PlayersWon() {
			stats.PlayerWins++
		}
		rounds += r.Rounds
		survivors += len(r.Survivors)
	}

	n := float64(stats.Battles)
	stats.WinRate = float64(stats.PlayerWins) / n
	stats.MeanRounds = float64(rounds) / n
	stats.MeanSurvivors = float64(survivors) / n
	return stats
}

func pickSeed(seed uint64) uint64 {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return seed
}

func partyOrDefault(party []string) []string {
	if len(party) == 0 {
		return DefaultParty
	}
	return party
}

func names(cs []*combatant.Combatant) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Name)
	}
	return out
}
