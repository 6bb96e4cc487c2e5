package effects

import (
	"fmt"

	"github.com/KirkDiggler/wavebattle/internal/domain/shared"
)

// Owner is the combatant a status effect is attached to
type Owner interface {
	GetName() string
	TakeDamage(amount int, damageType shared.DamageType) int
	Heal(amount int) int
}

// StatusEffect is a timed modifier attached to a combatant.
// Abilities hold a template; each application works on a Clone.
type StatusEffect struct {
	Name          string                  `json:"name" yaml:"name"`
	Duration      int                     `json:"duration" yaml:"duration"`
	StatsModifier map[shared.Stat]float64 `json:"stats_modifier,omitempty" yaml:"stats_modifier,omitempty"`
	DotDamage     int                     `json:"dot_damage,omitempty" yaml:"dot_damage,omitempty"`
	DotType       shared.DamageType       `json:"dot_type,omitempty" yaml:"dot_type,omitempty"` // empty means no DOT
	HealPerTurn   int                     `json:"heal_per_turn,omitempty" yaml:"heal_per_turn,omitempty"`
	Stun          bool                    `json:"stun,omitempty" yaml:"stun,omitempty"`
}

// CanAct reports whether the owner may take actions while this effect is active
func (e *StatusEffect) CanAct() bool {
	return !e.Stun
}

// Modifier returns the fractional modifier this effect applies to stat
func (e *StatusEffect) Modifier(stat shared.Stat) float64 {
	return e.StatsModifier[stat]
}

// ApplyTurnEffects runs the per-turn damage and healing against owner and
// consumes one turn of duration. Amounts in messages are what was actually
// dealt or restored.
func (e *StatusEffect) ApplyTurnEffects(owner Owner) []string {
	var messages []string

	if e.DotDamage > 0 && e.DotType != "" {
		dealt := owner.TakeDamage(e.DotDamage, e.DotType)
		messages = append(messages, fmt.Sprintf("%s takes %d %s damage from %s", owner.GetName(), dealt, e.DotType, e.Name))
	}

	if e.HealPerTurn > 0 {
		healed := owner.Heal(e.HealPerTurn)
		messages = append(messages, fmt.Sprintf("%s heals for %d from %s", owner.GetName(), healed, e.Name))
	}

	e.Duration--
	return messages
}

// Expired reports whether the effect has run out
func (e *StatusEffect) Expired() bool {
	return e.Duration <= 0
}

// Clone returns an independent copy
func (e *StatusEffect) Clone() *StatusEffect {
	if e == nil {
		return nil
	}

	clone := *e
	if e.StatsModifier != nil {
		clone.StatsModifier = make(map[shared.Stat]float64, len(e.StatsModifier))
		for k, v := range e.StatsModifier {
			clone.StatsModifier[k] = v
		}
	}
	return &clone
}

func (e *StatusEffect) String() string {
	return fmt.Sprintf("%s (%d turns left)", e.Name, e.Duration)
}
