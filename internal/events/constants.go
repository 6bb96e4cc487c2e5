package events

// Event type constants
const (
	EventTypeRoundStarted      EventType = "round_started"
	EventTypeTurnTaken         EventType = "turn_taken"
	EventTypeTurnSkipped       EventType = "turn_skipped"
	EventTypeCombatantDefeated EventType = "combatant_defeated"
	EventTypeBattleEnded       EventType = "battle_ended"
)

// AllEventTypes lists every event the engine publishes
var AllEventTypes = []EventType{
	EventTypeRoundStarted,
	EventTypeTurnTaken,
	EventTypeTurnSkipped,
	EventTypeCombatantDefeated,
	EventTypeBattleEnded,
}

// Priority levels for listener ordering. Lower runs first.
const (
	PriorityRecording    = 100 // Archival, must see every event
	PriorityAnalytics    = 200 // Stats collection
	PriorityPresentation = 300 // Rendering, may cancel for filtering
)
