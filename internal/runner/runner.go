package runner

//go:generate mockgen -destination=mock/mock_stepper.go -package=mockrunner -source=runner.go

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/wavebattle/internal/events"
)

// Stepper is anything that can be advanced one turn at a time
type Stepper interface {
	Step() *events.TurnEvent
	IsOver() bool
}

// Sink receives every executed turn
type Sink func(*events.TurnEvent)

// Run steps s until it is over, waiting delay between steps. The wait lives
// here so the engine itself never sleeps. A zero delay runs flat out.
// Returns ctx.Err() if the context is cancelled first.
func Run(ctx context.Context, s Stepper, delay time.Duration, sink Sink) error {
	var tick <-chan time.Time
	if delay > 0 {
		ticker := time.NewTicker(delay)
		defer ticker.Stop()
		tick = ticker.C
	}

	steps := 0
	for !s.IsOver() {
		if err := ctx.Err(); err != nil {
			slog.Debug("runner cancelled", "steps", steps, "error", err)
			return err
		}

		if event := s.Step(); event != nil && sink != nil {
			sink(event)
		}
		steps++

		if tick == nil || s.IsOver() {
			continue
		}

		select {
		case <-ctx.Done():
			slog.Debug("runner cancelled", "steps", steps, "error", ctx.Err())
			return ctx.Err()
		case <-tick:
		}
	}

	slog.Debug("runner finished", "steps", steps)
	return nil
}
