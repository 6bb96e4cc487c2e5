package effects

import (
	"github.com/KirkDiggler/wavebattle/internal/domain/shared"
)

// Builder helps create status effects
type Builder struct {
	effect *StatusEffect
}

// NewBuilder creates a new effect builder
func NewBuilder(name string) *Builder {
	return &Builder{
		effect: &StatusEffect{
			Name:          name,
			Duration:      1,
			StatsModifier: map[shared.Stat]float64{},
		},
	}
}

// WithDuration sets how many of the owner's turns the effect lasts
func (b *Builder) WithDuration(turns int) *Builder {
	b.effect.Duration = turns
	return b
}

// WithModifier adds a fractional stat modifier, e.g. -0.3 for a 30% reduction
func (b *Builder) WithModifier(stat shared.Stat, delta float64) *Builder {
	b.effect.StatsModifier[stat] += delta
	return b
}

// WithDamageOverTime deals amount of damageType at the start of each owner turn
func (b *Builder) WithDamageOverTime(amount int, damageType shared.DamageType) *Builder {
	b.effect.DotDamage = amount
	b.effect.DotType = damageType
	return b
}

// WithHealOverTime restores amount at the start of each owner turn
func (b *Builder) WithHealOverTime(amount int) *Builder {
	b.effect.HealPerTurn = amount
	return b
}

// Stuns prevents the owner from acting while the effect is active
func (b *Builder) Stuns() *Builder {
	b.effect.Stun = true
	return b
}

// Build returns the constructed effect
func (b *Builder) Build() *StatusEffect {
	return b.effect
}

// Common effect builders

// BuildPoison creates the damage-over-time effect applied by Poison Strike
func BuildPoison() *StatusEffect {
	return NewBuilder("Poison").
		WithDuration(3).
		WithDamageOverTime(10, shared.DamageTypeDOT).
		Build()
}

// BuildStun creates a one-turn stun
func BuildStun() *StatusEffect {
	return NewBuilder("Stunned").
		WithDuration(1).
		Stuns().
		Build()
}

// BuildRegeneration creates a heal-over-time effect
func BuildRegeneration(amount, turns int) *StatusEffect {
	return NewBuilder("Regeneration").
		WithDuration(turns).
		WithHealOverTime(amount).
		Build()
}
