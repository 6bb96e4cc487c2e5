package battle

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/wavebattle/internal/domain/ability"
	"github.com/KirkDiggler/wavebattle/internal/domain/combatant"
	"github.com/KirkDiggler/wavebattle/internal/domain/shared"
	"github.com/KirkDiggler/wavebattle/internal/events"
)

// ProcessTurn resolves the turn of whoever holds the current slot. It returns
// nil when nothing was executed: the battle is over, the actor is dead or
// stunned, or the chosen ability had no valid targets.
func (b *Battle) ProcessTurn() *events.TurnEvent {
	if b.IsOver() || b.currentTurnIndex >= len(b.turnOrder) {
		return nil
	}

	actor := b.turnOrder[b.currentTurnIndex]
	if !actor.IsAlive() {
		b.emitSkipped(actor, events.SkipReasonDefeated)
		return nil
	}

	for _, msg := range actor.UpdateStatusEffects() {
		b.appendLog(msg)
	}

	if !actor.IsAlive() {
		b.appendLog(fmt.Sprintf("%s has been defeated!", actor.Name))
		b.emitDefeated(actor)
		b.emitSkipped(actor, events.SkipReasonDefeated)
		return nil
	}

	if !actor.CanAct() {
		b.appendLog(fmt.Sprintf("%s is unable to act!", actor.Name))
		b.emitSkipped(actor, events.SkipReasonStunned)
		return nil
	}

	actor.ReduceCooldowns()

	chosen, targets := actor.SelectAbility(b)
	if !b.ExecuteAbility(actor, chosen, targets) {
		b.emitSkipped(actor, events.SkipReasonNoTargets)
		return nil
	}

	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Name
	}

	event := events.NewTurnEvent(b.round, actor.ID, actor.Name, actor.Side, chosen.Name, names)
	b.emit(event)
	return event
}

// ExecuteAbility applies an ability use. With no targets it only logs and
// leaves the cooldown untouched, returning false.
func (b *Battle) ExecuteAbility(caster *combatant.Combatant, a *ability.Ability, targets []*combatant.Combatant) bool {
	if len(targets) == 0 {
		b.appendLog(fmt.Sprintf("%s uses %s but there are no valid targets!", caster.Name, a.Name))
		return false
	}

	a.Use()
	b.turns++

	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Name
	}
	b.appendLog(fmt.Sprintf("%s uses %s on %s!", caster.Name, a.Name, strings.Join(names, ", ")))

	if a.Damage > 0 {
		b.applyDamage(caster, a, targets)
	}
	if a.Healing > 0 {
		b.applyHealing(caster, a, targets)
	}
	if a.StatusEffect != nil {
		b.applyStatus(a, targets)
	}

	return true
}

func (b *Battle) applyDamage(caster *combatant.Combatant, a *ability.Ability, targets []*combatant.Combatant) {
	aoe := len(targets) > 1 && a.TargetType.IsAreaOfEffect()

	for _, target := range targets {
		amount := a.Damage
		if aoe {
			amount = int(float64(amount) * a.AOEDamageReduction)
		}

		switch a.DamageType {
		case shared.DamageTypePhysical:
			amount += caster.Attack() / 3
		case shared.DamageTypeMagical:
			amount += caster.MagicAttack() / 3
		}

		wasAlive := target.IsAlive()
		dealt := target.TakeDamage(amount, a.DamageType)
		b.appendLog(fmt.Sprintf("%s takes %d %s damage!", target.Name, dealt, a.DamageType))

		if wasAlive && !target.IsAlive() {
			b.appendLog(fmt.Sprintf("%s has been defeated!", target.Name))
			b.emitDefeated(target)
		}
	}
}

func (b *Battle) applyHealing(caster *combatant.Combatant, a *ability.Ability, targets []*combatant.Combatant) {
	amount := a.Healing
	if caster.MagicAttack() > caster.Attack() {
		amount += caster.MagicAttack() / 5
	}

	for _, target := range targets {
		if !target.IsAlive() {
			continue
		}
		healed := target.Heal(amount)
		b.appendLog(fmt.Sprintf("%s is healed for %d HP!", target.Name, healed))
	}
}

func (b *Battle) applyStatus(a *ability.Ability, targets []*combatant.Combatant) {
	for _, target := range targets {
		if !target.IsAlive() {
			continue
		}

		effect := a.StatusEffect.Clone()
		if target.AddStatusEffect(effect) {
			b.appendLog(fmt.Sprintf("%s is affected by %s!", target.Name, effect.Name))
		} else {
			b.appendLog(fmt.Sprintf("%s's %s is refreshed!", target.Name, effect.Name))
		}
	}
}

func (b *Battle) emitSkipped(actor *combatant.Combatant, reason events.SkipReason) {
	b.emit(&events.TurnSkippedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeTurnSkipped, Round: b.round},
		ActorID:   actor.ID,
		Actor:     actor.Name,
		Reason:    reason,
	})
}

func (b *Battle) emitDefeated(c *combatant.Combatant) {
	b.emit(&events.CombatantDefeatedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeCombatantDefeated, Round: b.round},
		ID:        c.ID,
		Name:      c.Name,
		Side:      c.Side,
	})
}
