package reports

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/KirkDiggler/wavebattle/internal/repositories/reports Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/wavebattle/internal/domain/shared"
)

// Report is the archived outcome of one finished battle
type Report struct {
	ID         string      `json:"id"`
	CampaignID string      `json:"campaign_id,omitempty"`
	Seed       uint64      `json:"seed"`
	Wave       int         `json:"wave"`
	Party      []string    `json:"party"`
	Winner     shared.Side `json:"winner"`
	Rounds     int         `json:"rounds"`
	Turns      int         `json:"turns"`
	Survivors  []string    `json:"survivors"`
	Log        []string    `json:"log,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// PlayersWon reports whether the party won the battle
func (r *Report) PlayersWon() bool {
	return r.Winner == shared.SidePlayer
}

// Repository archives battle reports
type Repository interface {
	// Create stamps CreatedAt and stores a new report
	Create(ctx context.Context, report *Report) error
	Get(ctx context.Context, id string) (*Report, error)
	// List returns up to limit reports, newest first. A limit of 0 or less returns all.
	List(ctx context.Context, limit int) ([]*Report, error)
	Delete(ctx context.Context, id string) error
}
