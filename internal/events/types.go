package events

import (
	"github.com/KirkDiggler/wavebattle/internal/domain/shared"
)

// EventType represents the type of battle event
type EventType string

// Event is the base interface for all battle events
type Event interface {
	GetType() EventType
	GetRound() int
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType `json:"type"`
	Round     int       `json:"round"`
	Cancelled bool      `json:"-"`
}

func (e *BaseEvent) GetType() EventType { return e.Type }
func (e *BaseEvent) GetRound() int      { return e.Round }
func (e *BaseEvent) IsCancelled() bool  { return e.Cancelled }
func (e *BaseEvent) Cancel()            { e.Cancelled = true }

// TurnEvent records one resolved ability use. It is what the engine returns
// from a processed turn; a nil *TurnEvent means nothing was executed.
type TurnEvent struct {
	BaseEvent
	ActorID string      `json:"actor_id"`
	Actor   string      `json:"actor"`
	Side    shared.Side `json:"side"`
	Ability string      `json:"ability"`
	Targets []string    `json:"targets"`
}

// NewTurnEvent creates a turn event
func NewTurnEvent(round int, actorID, actor string, side shared.Side, ability string, targets []string) *TurnEvent {
	return &TurnEvent{
		BaseEvent: BaseEvent{Type: EventTypeTurnTaken, Round: round},
		ActorID:   actorID,
		Actor:     actor,
		Side:      side,
		Ability:   ability,
		Targets:   targets,
	}
}

// SkipReason explains why a combatant did not act
type SkipReason string

const (
	SkipReasonDefeated  SkipReason = "defeated"
	SkipReasonStunned   SkipReason = "stunned"
	SkipReasonNoTargets SkipReason = "no_targets"
)

// TurnSkippedEvent is emitted when a turn produced no ability use
type TurnSkippedEvent struct {
	BaseEvent
	ActorID string     `json:"actor_id"`
	Actor   string     `json:"actor"`
	Reason  SkipReason `json:"reason"`
}

// RoundStartedEvent is emitted after the turn order for a round is computed
type RoundStartedEvent struct {
	BaseEvent
	TurnOrder []string `json:"turn_order"`
}

// CombatantDefeatedEvent is emitted when a combatant's HP reaches zero
type CombatantDefeatedEvent struct {
	BaseEvent
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Side shared.Side `json:"side"`
}

// BattleEndedEvent is emitted exactly once per battle
type BattleEndedEvent struct {
	BaseEvent
	Winner shared.Side `json:"winner"`
}
