package combatant

//go:generate mockgen -destination=mock/mock_policy.go -package=mockcombatant -source=policy.go

import (
	"github.com/KirkDiggler/wavebattle/internal/dice"
	"github.com/KirkDiggler/wavebattle/internal/domain/ability"
	"github.com/KirkDiggler/wavebattle/internal/domain/shared"
)

const (
	// DefaultHealThreshold is the HP ratio under which players prefer healing
	DefaultHealThreshold = 0.5

	// DefaultAggression is how often enemies prefer damaging abilities
	DefaultAggression = 0.7
)

// Field is the view of the battle a policy decides against
type Field interface {
	// Living returns the living combatants on side, in roster order
	Living(side shared.Side) []*Combatant

	// SelectTargets resolves the targets of a chosen ability
	SelectTargets(caster *Combatant, a *ability.Ability) []*Combatant

	// Roller is the battle's random source
	Roller() dice.Roller
}

// Policy picks which ability a combatant uses on its turn
type Policy interface {
	ChooseAbility(self *Combatant, field Field) *ability.Ability
}

// PlayerPolicy heals wounded allies first and otherwise attacks
type PlayerPolicy struct {
	HealThreshold float64
}

// NewPlayerPolicy creates the default player policy
func NewPlayerPolicy() *PlayerPolicy {
	return &PlayerPolicy{HealThreshold: DefaultHealThreshold}
}

// ChooseAbility implements Policy
func (p *PlayerPolicy) ChooseAbility(self *Combatant, field Field) *ability.Ability {
	available := self.AvailableAbilities()
	if len(available) == 0 {
		return ability.NewBasicAttack(self.Attack()/2 + 10)
	}

	roller := field.Roller()

	if p.anyAllyWounded(self, field) {
		if healing := filter(available, (*ability.Ability).IsHealing); len(healing) > 0 {
			return dice.Choose(roller, healing)
		}
		return dice.Choose(roller, available)
	}

	if damaging := filter(available, (*ability.Ability).IsDamaging); len(damaging) > 0 {
		return dice.Choose(roller, damaging)
	}
	return dice.Choose(roller, available)
}

func (p *PlayerPolicy) anyAllyWounded(self *Combatant, field Field) bool {
	for _, ally := range field.Living(self.Side) {
		if ally.HPRatio() < p.HealThreshold {
			return true
		}
	}
	return false
}

// EnemyPolicy prefers damage with probability Aggression
type EnemyPolicy struct {
	Aggression float64
}

// NewEnemyPolicy creates an enemy policy, clamping aggression to [0, 1]
func NewEnemyPolicy(aggression float64) *EnemyPolicy {
	return &EnemyPolicy{Aggression: min(max(aggression, 0), 1)}
}

// ChooseAbility implements Policy
func (p *EnemyPolicy) ChooseAbility(self *Combatant, field Field) *ability.Ability {
	available := self.AvailableAbilities()
	if len(available) == 0 {
		return ability.NewBasicAttack(self.Attack()/2 + 5)
	}

	roller := field.Roller()

	if roller.Float64() < p.Aggression {
		if damaging := filter(available, (*ability.Ability).IsDamaging); len(damaging) > 0 {
			return dice.Choose(roller, damaging)
		}
	}
	return dice.Choose(roller, available)
}

func filter(abilities []*ability.Ability, keep func(*ability.Ability) bool) []*ability.Ability {
	var out []*ability.Ability
	for _, a := range abilities {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
