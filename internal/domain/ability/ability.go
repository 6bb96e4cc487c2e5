package ability

import (
	"fmt"

	"github.com/KirkDiggler/wavebattle/internal/domain/shared"
	"github.com/KirkDiggler/wavebattle/internal/effects"
)

const (
	// DefaultAOEDamageReduction is the per-target multiplier for area abilities
	DefaultAOEDamageReduction = 0.7

	// DefaultDescription is used when an ability is configured without one
	DefaultDescription = "No description available."

	// BasicAttackName names the fallback attack synthesized when nothing is ready
	BasicAttackName = "Basic Attack"
)

// Config describes an ability template. It is also the catalog file format.
type Config struct {
	Name               string                `yaml:"name"`
	Cooldown           int                   `yaml:"cooldown"`
	Damage             int                   `yaml:"damage"`
	DamageType         shared.DamageType     `yaml:"damage_type"`
	Healing            int                   `yaml:"healing"`
	TargetType         shared.TargetType     `yaml:"target_type"`
	StatusEffect       *effects.StatusEffect `yaml:"status_effect"`
	AOEDamageReduction float64               `yaml:"aoe_damage_reduction"`
	Description        string                `yaml:"description"`
}

// Ability is a usable action owned by exactly one combatant.
// CurrentCooldown is 0 when ready and is only moved by Use and ReduceCooldown.
type Ability struct {
	Name               string
	MaxCooldown        int
	CurrentCooldown    int
	Damage             int
	DamageType         shared.DamageType
	Healing            int
	TargetType         shared.TargetType
	StatusEffect       *effects.StatusEffect // template, cloned per application
	AOEDamageReduction float64
	Description        string
}

// New builds a ready ability from cfg, applying defaults
func New(cfg *Config) *Ability {
	a := &Ability{
		Name:               cfg.Name,
		MaxCooldown:        max(cfg.Cooldown, 0),
		Damage:             cfg.Damage,
		DamageType:         cfg.DamageType,
		Healing:            cfg.Healing,
		TargetType:         cfg.TargetType,
		StatusEffect:       cfg.StatusEffect.Clone(),
		AOEDamageReduction: cfg.AOEDamageReduction,
		Description:        cfg.Description,
	}

	if a.TargetType == "" {
		a.TargetType = shared.TargetTypeSingle
	}
	if a.AOEDamageReduction == 0 {
		a.AOEDamageReduction = DefaultAOEDamageReduction
	}
	if a.Description == "" {
		a.Description = DefaultDescription
	}

	return a
}

// NewBasicAttack synthesizes the single-target physical fallback attack
func NewBasicAttack(damage int) *Ability {
	return New(&Config{
		Name:       BasicAttackName,
		Damage:     damage,
		DamageType: shared.DamageTypePhysical,
		TargetType: shared.TargetTypeSingle,
	})
}

// IsReady reports whether the ability can be used this turn
func (a *Ability) IsReady() bool {
	return a.CurrentCooldown == 0
}

// Use puts the ability on cooldown
func (a *Ability) Use() {
	if a.MaxCooldown > 0 {
		a.CurrentCooldown = a.MaxCooldown
	}
}

// ReduceCooldown advances the cooldown by one owner turn
func (a *Ability) ReduceCooldown() {
	if a.CurrentCooldown > 0 {
		a.CurrentCooldown--
	}
}

// IsDamaging reports whether the ability deals damage
func (a *Ability) IsDamaging() bool {
	return a.Damage > 0
}

// IsHealing reports whether the ability is usable to rescue a wounded ally
func (a *Ability) IsHealing() bool {
	if a.Healing <= 0 {
		return false
	}
	switch a.TargetType {
	case shared.TargetTypeSingle, shared.TargetTypeAllies, shared.TargetTypeAll:
		return true
	}
	return false
}

// Clone returns an independent copy with its own cooldown and effect template
func (a *Ability) Clone() *Ability {
	clone := *a
	clone.StatusEffect = a.StatusEffect.Clone()
	return &clone
}

func (a *Ability) String() string {
	if a.IsReady() {
		return fmt.Sprintf("%s [Ready]", a.Name)
	}
	return fmt.Sprintf("%s [Cooldown: %d]", a.Name, a.CurrentCooldown)
}
