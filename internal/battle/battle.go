package battle

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/looplab/fsm"

	"github.com/KirkDiggler/wavebattle/internal/dice"
	"github.com/KirkDiggler/wavebattle/internal/domain/combatant"
	"github.com/KirkDiggler/wavebattle/internal/domain/shared"
	"github.com/KirkDiggler/wavebattle/internal/events"
)

var _ combatant.Field = (*Battle)(nil)

// Lifecycle states
const (
	StateNotStarted = "not_started"
	StateInProgress = "in_progress"
	StateEnded      = "ended"
)

const (
	eventStart = "start"
	eventEnd   = "end"
)

// Config holds the rosters and collaborators of a battle
type Config struct {
	Players []*combatant.Combatant
	Enemies []*combatant.Combatant

	// Roller is the only source of randomness. Defaults to an entropy-seeded roller.
	Roller dice.Roller

	// Bus receives engine events. Optional.
	Bus *events.Bus

	// Logger receives operational logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// Battle resolves a fight between a player party and an enemy wave.
// It is single-owner: one goroutine drives it and nothing inside locks.
type Battle struct {
	players []*combatant.Combatant
	enemies []*combatant.Combatant

	turnOrder        []*combatant.Combatant
	currentTurnIndex int
	round            int
	turns            int
	log              []string

	roller dice.Roller
	bus    *events.Bus
	logger *slog.Logger
	state  *fsm.FSM
}

// New creates a battle that has not started yet
func New(cfg *Config) *Battle {
	if cfg == nil {
		panic("config is required")
	}

	b := &Battle{
		players: cfg.Players,
		enemies: cfg.Enemies,
		roller:  cfg.Roller,
		bus:     cfg.Bus,
		logger:  cfg.Logger,
	}

	if b.roller == nil {
		b.roller = dice.NewRandomRoller()
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}

	b.state = fsm.NewFSM(
		StateNotStarted,
		fsm.Events{
			{Name: eventStart, Src: []string{StateNotStarted}, Dst: StateInProgress},
			{Name: eventEnd, Src: []string{StateNotStarted, StateInProgress}, Dst: StateEnded},
		},
		fsm.Callbacks{
			"enter_" + StateInProgress: func(_ context.Context, _ *fsm.Event) { b.onStarted() },
			"enter_" + StateEnded:      func(_ context.Context, _ *fsm.Event) { b.onEnded() },
		},
	)

	return b
}

// Start computes the first turn order. Calling it again is a no-op.
func (b *Battle) Start() {
	if !b.state.Can(eventStart) {
		return
	}
	if err := b.state.Event(context.Background(), eventStart); err != nil {
		b.logger.Error("battle failed to start", "error", err)
	}
}

func (b *Battle) onStarted() {
	b.round = 1
	b.currentTurnIndex = 0
	b.CalculateTurnOrder()
	b.appendLog("=== Battle Start ===")
	b.logTurnOrder()
	b.emitRoundStarted()

	b.logger.Debug("battle started",
		"players", len(b.players),
		"enemies", len(b.enemies),
		"turn_order", b.turnOrderNames())
}

// Run drives the battle synchronously to completion
func (b *Battle) Run() {
	b.Start()
	for !b.IsOver() {
		b.ProcessTurn()
		b.advance()
	}
	b.End()
}

// Step advances the battle by exactly one turn slot, starting it if needed.
// It returns nil when no ability was executed, including once the battle is over.
func (b *Battle) Step() *events.TurnEvent {
	b.Start()
	if b.IsOver() {
		b.End()
		return nil
	}

	event := b.ProcessTurn()
	b.advance()

	if b.IsOver() {
		b.End()
	}
	return event
}

// advance moves to the next turn slot, opening a new round on wrap
func (b *Battle) advance() {
	if len(b.turnOrder) == 0 {
		return
	}

	b.currentTurnIndex = (b.currentTurnIndex + 1) % len(b.turnOrder)
	if b.currentTurnIndex != 0 || b.IsOver() {
		return
	}

	b.round++
	b.appendLog(fmt.Sprintf("=== Round %d ===", b.round))
	b.CalculateTurnOrder()
	b.logTurnOrder()
	b.emitRoundStarted()
}

// CalculateTurnOrder orders the living combatants by effective speed,
// fastest first. Ties keep roster order, players before enemies.
func (b *Battle) CalculateTurnOrder() {
	order := make([]*combatant.Combatant, 0, len(b.players)+len(b.enemies))
	order = append(order, b.Living(shared.SidePlayer)...)
	order = append(order, b.Living(shared.SideEnemy)...)

	slices.SortStableFunc(order, func(x, y *combatant.Combatant) int {
		return cmp.Compare(y.Speed(), x.Speed())
	})

	b.turnOrder = order
}

// IsOver reports whether the battle has ended or one side has no one standing
func (b *Battle) IsOver() bool {
	if b.state.Is(StateEnded) {
		return true
	}
	return !(anyAlive(b.players) && anyAlive(b.enemies))
}

// Winner returns the winning side once the battle is over
func (b *Battle) Winner() (shared.Side, bool) {
	if !b.IsOver() {
		return "", false
	}
	if anyAlive(b.players) {
		return shared.SidePlayer, true
	}
	return shared.SideEnemy, true
}

// End finishes the battle and announces the winner. Only the first call has
// any effect.
func (b *Battle) End() {
	if !b.state.Can(eventEnd) {
		return
	}
	if err := b.state.Event(context.Background(), eventEnd); err != nil {
		b.logger.Error("battle failed to end", "error", err)
	}
}

func (b *Battle) onEnded() {
	winner, _ := b.Winner()

	b.appendLog("=== Battle End ===")
	if winner == shared.SidePlayer {
		b.appendLog("Players are victorious!")
	} else {
		b.appendLog("Enemies are victorious!")
	}

	b.emit(&events.BattleEndedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeBattleEnded, Round: b.round},
		Winner:    winner,
	})

	b.logger.Debug("battle ended", "winner", winner, "rounds", b.round, "turns", b.turns)
}

// Living returns the living combatants of side in roster order
func (b *Battle) Living(side shared.Side) []*combatant.Combatant {
	roster := b.enemies
	if side == shared.SidePlayer {
		roster = b.players
	}

	var out []*combatant.Combatant
	for _, c := range roster {
		if c.IsAlive() {
			out = append(out, c)
		}
	}
	return out
}

// Roller returns the battle's random source
func (b *Battle) Roller() dice.Roller {
	return b.roller
}

// State returns the lifecycle state
func (b *Battle) State() string {
	return b.state.Current()
}

// Round returns the current round, starting at 1 once the battle has started
func (b *Battle) Round() int {
	return b.round
}

// Turns returns how many abilities have been executed
func (b *Battle) Turns() int {
	return b.turns
}

// Players returns the player roster
func (b *Battle) Players() []*combatant.Combatant {
	return slices.Clone(b.players)
}

// Enemies returns the enemy roster
func (b *Battle) Enemies() []*combatant.Combatant {
	return slices.Clone(b.enemies)
}

// TurnOrder returns the order for the current round
func (b *Battle) TurnOrder() []*combatant.Combatant {
	return slices.Clone(b.turnOrder)
}

// CurrentCombatant returns whoever holds the current turn slot
func (b *Battle) CurrentCombatant() *combatant.Combatant {
	if b.currentTurnIndex >= len(b.turnOrder) {
		return nil
	}
	return b.turnOrder[b.currentTurnIndex]
}

// Log returns the battle log
func (b *Battle) Log() []string {
	return slices.Clone(b.log)
}

func (b *Battle) appendLog(line string) {
	b.log = append(b.log, line)
}

func (b *Battle) turnOrderNames() []string {
	names := make([]string, len(b.turnOrder))
	for i, c := range b.turnOrder {
		names[i] = c.Name
	}
	return names
}

func (b *Battle) logTurnOrder() {
	b.appendLog("Turn order: " + strings.Join(b.turnOrderNames(), " → "))
}

func (b *Battle) emitRoundStarted() {
	b.emit(&events.RoundStartedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeRoundStarted, Round: b.round},
		TurnOrder: b.turnOrderNames(),
	})
}

func (b *Battle) emit(event events.Event) {
	if b.bus == nil {
		return
	}
	if err := b.bus.Emit(event); err != nil {
		b.logger.Warn("battle event listener failed", "event", event.GetType(), "error", err)
	}
}

func anyAlive(roster []*combatant.Combatant) bool {
	for _, c := range roster {
		if c.IsAlive() {
			return true
		}
	}
	return false
}
