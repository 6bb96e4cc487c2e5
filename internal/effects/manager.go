package effects

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/wavebattle/internal/domain/shared"
)

// Manager holds the status effects of a single combatant, unique by name.
// It is owned by one combatant inside one battle and is not safe for
// concurrent use.
type Manager struct {
	effects []*StatusEffect
}

// NewManager creates a new effect manager
func NewManager() *Manager {
	return &Manager{}
}

// Add attaches effect. An existing effect with the same name is replaced in
// place and Add returns false; otherwise the effect is appended and Add
// returns true.
func (m *Manager) Add(effect *StatusEffect) bool {
	for i, existing := range m.effects {
		if existing.Name == effect.Name {
			m.effects[i] = effect
			return false
		}
	}

	m.effects = append(m.effects, effect)
	return true
}

// Get finds an active effect by name
func (m *Manager) Get(name string) *StatusEffect {
	for _, effect := range m.effects {
		if effect.Name == name {
			return effect
		}
	}
	return nil
}

// Remove drops an effect by name
func (m *Manager) Remove(name string) {
	for i, effect := range m.effects {
		if effect.Name == name {
			m.effects = append(m.effects[:i], m.effects[i+1:]...)
			return
		}
	}
}

// Active returns the current effects in the order they were added
func (m *Manager) Active() []*StatusEffect {
	out := make([]*StatusEffect, len(m.effects))
	copy(out, m.effects)
	return out
}

// Len returns the number of active effects
func (m *Manager) Len() int {
	return len(m.effects)
}

// TotalModifier sums the fractional modifiers of every effect for stat
func (m *Manager) TotalModifier(stat shared.Stat) float64 {
	total := 0.0
	for _, effect := range m.effects {
		total += effect.Modifier(stat)
	}
	return total
}

// CanAct is false if any active effect prevents acting
func (m *Manager) CanAct() bool {
	for _, effect := range m.effects {
		if !effect.CanAct() {
			return false
		}
	}
	return true
}

// ProcessTurn applies every effect to owner over a snapshot of the current
// list, then prunes the expired ones.
func (m *Manager) ProcessTurn(owner Owner) []string {
	var messages []string

	for _, effect := range m.Active() {
		messages = append(messages, effect.ApplyTurnEffects(owner)...)
		if effect.Expired() {
			m.remove(effect)
			messages = append(messages, fmt.Sprintf("%s is no longer affected by %s", owner.GetName(), effect.Name))
		}
	}

	return messages
}

func (m *Manager) remove(target *StatusEffect) {
	for i, effect := range m.effects {
		if effect == target {
			m.effects = append(m.effects[:i], m.effects[i+1:]...)
			return
		}
	}
}

// Clear removes every effect
func (m *Manager) Clear() {
	m.effects = nil
}

func (m *Manager) String() string {
	if len(m.effects) == 0 {
		return "None"
	}

	parts := make([]string, len(m.effects))
	for i, effect := range m.effects {
		parts[i] = effect.String()
	}
	return strings.Join(parts, ", ")
}
