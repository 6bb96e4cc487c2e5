package combatant

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/wavebattle/internal/domain/ability"
	"github.com/KirkDiggler/wavebattle/internal/domain/shared"
	"github.com/KirkDiggler/wavebattle/internal/effects"
)

// Config holds everything needed to build a combatant
type Config struct {
	ID        string
	Name      string
	Side      shared.Side
	Stats     shared.Stats
	Abilities []*ability.Ability // templates, cloned on construction
	Policy    Policy
}

// Combatant is a participant in a battle. It is owned by a single battle
// goroutine and performs no locking.
type Combatant struct {
	ID        string
	Name      string
	Side      shared.Side
	Base      shared.Stats
	CurrentHP int

	abilities []*ability.Ability
	effects   *effects.Manager
	policy    Policy
	alive     bool
}

// New creates a combatant at full HP. It panics without a policy.
func New(cfg *Config) *Combatant {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.Policy == nil {
		panic("policy is required")
	}

	abilities := make([]*ability.Ability, 0, len(cfg.Abilities))
	for _, a := range cfg.Abilities {
		abilities = append(abilities, a.Clone())
	}

	return &Combatant{
		ID:        cfg.ID,
		Name:      cfg.Name,
		Side:      cfg.Side,
		Base:      cfg.Stats,
		CurrentHP: cfg.Stats.MaxHP,
		abilities: abilities,
		effects:   effects.NewManager(),
		policy:    cfg.Policy,
		alive:     cfg.Stats.MaxHP > 0,
	}
}

// NewPlayer creates a player-side combatant driven by the default PlayerPolicy
func NewPlayer(cfg *Config) *Combatant {
	c := *cfg
	c.Side = shared.SidePlayer
	if c.Policy == nil {
		c.Policy = NewPlayerPolicy()
	}
	return New(&c)
}

// NewEnemy creates an enemy-side combatant driven by an EnemyPolicy
func NewEnemy(cfg *Config, aggression float64) *Combatant {
	c := *cfg
	c.Side = shared.SideEnemy
	if c.Policy == nil {
		c.Policy = NewEnemyPolicy(aggression)
	}
	return New(&c)
}

// GetName implements effects.Owner
func (c *Combatant) GetName() string {
	return c.Name
}

// IsAlive reports whether the combatant can still act and be targeted
func (c *Combatant) IsAlive() bool {
	return c.alive
}

// Policy returns the decision policy bound to this combatant
func (c *Combatant) Policy() Policy {
	return c.policy
}

// Effective returns a stat after status effect modifiers
func (c *Combatant) Effective(stat shared.Stat) int {
	modifier := 1.0 + c.effects.TotalModifier(stat)
	return max(int(float64(c.Base.Get(stat))*modifier), 0)
}

func (c *Combatant) Attack() int       { return c.Effective(shared.StatAttack) }
func (c *Combatant) Defense() int      { return c.Effective(shared.StatDefense) }
func (c *Combatant) MagicAttack() int  { return c.Effective(shared.StatMagicAttack) }
func (c *Combatant) MagicDefense() int { return c.Effective(shared.StatMagicDefense) }
func (c *Combatant) Speed() int        { return c.Effective(shared.StatSpeed) }

// MaxHP returns the base maximum HP
func (c *Combatant) MaxHP() int {
	return c.Base.MaxHP
}

// HPRatio returns current HP as a fraction of max HP
func (c *Combatant) HPRatio() float64 {
	if c.Base.MaxHP <= 0 {
		return 0
	}
	return float64(c.CurrentHP) / float64(c.Base.MaxHP)
}

// CanAct is false while any active effect prevents acting
func (c *Combatant) CanAct() bool {
	return c.effects.CanAct()
}

// TakeDamage applies mitigated damage and returns what was dealt.
// A living target always takes at least 1; a dead one takes nothing.
func (c *Combatant) TakeDamage(amount int, damageType shared.DamageType) int {
	if !c.alive {
		return 0
	}

	reduction := 0.0
	switch damageType {
	case shared.DamageTypePhysical:
		def := float64(c.Defense())
		reduction = def / (def + 100)
	case shared.DamageTypeMagical:
		mdef := float64(c.MagicDefense())
		reduction = mdef / (mdef + 100)
	}

	actual := max(int(float64(amount)*(1-reduction)), 1)
	c.CurrentHP -= actual

	if c.CurrentHP <= 0 {
		c.CurrentHP = 0
		c.alive = false
	}

	return actual
}

// Heal restores up to amount HP and returns the HP actually restored
func (c *Combatant) Heal(amount int) int {
	if !c.alive {
		return 0
	}

	before := c.CurrentHP
	c.CurrentHP = min(c.CurrentHP+amount, c.Base.MaxHP)
	return c.CurrentHP - before
}

// AddStatusEffect attaches effect, returning false if it refreshed an
// existing effect of the same name
func (c *Combatant) AddStatusEffect(effect *effects.StatusEffect) bool {
	return c.effects.Add(effect)
}

// StatusEffects returns the active effects in application order
func (c *Combatant) StatusEffects() []*effects.StatusEffect {
	return c.effects.Active()
}

// UpdateStatusEffects runs the start-of-turn effects and prunes expired ones
func (c *Combatant) UpdateStatusEffects() []string {
	return c.effects.ProcessTurn(c)
}

// ClearStatusEffects drops every active effect
func (c *Combatant) ClearStatusEffects() {
	c.effects.Clear()
}

// Abilities returns the owned abilities in declared order
func (c *Combatant) Abilities() []*ability.Ability {
	out := make([]*ability.Ability, len(c.abilities))
	copy(out, c.abilities)
	return out
}

// AvailableAbilities returns the ready abilities in declared order
func (c *Combatant) AvailableAbilities() []*ability.Ability {
	var out []*ability.Ability
	for _, a := range c.abilities {
		if a.IsReady() {
			out = append(out, a)
		}
	}
	return out
}

// ReduceCooldowns advances every ability cooldown by one turn
func (c *Combatant) ReduceCooldowns() {
	for _, a := range c.abilities {
		a.ReduceCooldown()
	}
}

// ResetCooldowns makes every ability ready
func (c *Combatant) ResetCooldowns() {
	for _, a := range c.abilities {
		a.CurrentCooldown = 0
	}
}

// SelectAbility asks the bound policy for an ability and resolves its targets
// through the field's targeting rules
func (c *Combatant) SelectAbility(field Field) (*ability.Ability, []*Combatant) {
	if c.policy == nil {
		panic(fmt.Sprintf("combatant %s has no policy", c.Name))
	}

	chosen := c.policy.ChooseAbility(c, field)
	return chosen, field.SelectTargets(c, chosen)
}

// StatsDisplay returns a multi-line summary of the combatant
func (c *Combatant) StatsDisplay() string {
	names := make([]string, len(c.abilities))
	for i, a := range c.abilities {
		names[i] = a.String()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s):\n", c.Name, c.Side)
	fmt.Fprintf(&sb, "HP: %d/%d\n", c.CurrentHP, c.Base.MaxHP)
	fmt.Fprintf(&sb, "ATK: %d | DEF: %d\n", c.Attack(), c.Defense())
	fmt.Fprintf(&sb, "MAG: %d | MDEF: %d\n", c.MagicAttack(), c.MagicDefense())
	fmt.Fprintf(&sb, "SPD: %d\n", c.Speed())
	fmt.Fprintf(&sb, "Status: %s\n", c.effects)
	fmt.Fprintf(&sb, "Abilities: %s", strings.Join(names, ", "))
	return sb.String()
}

func (c *Combatant) String() string {
	status := "ALIVE"
	if !c.alive {
		status = "DEFEATED"
	}
	return fmt.Sprintf("%s: HP %d/%d [%s]", c.Name, c.CurrentHP, c.Base.MaxHP, status)
}
