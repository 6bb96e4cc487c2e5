package battle

import (
	"github.com/KirkDiggler/wavebattle/internal/dice"
	"github.com/KirkDiggler/wavebattle/internal/domain/ability"
	"github.com/KirkDiggler/wavebattle/internal/domain/combatant"
	"github.com/KirkDiggler/wavebattle/internal/domain/shared"
)

// maxRandomTargets caps how many opponents a random-target ability can hit
const maxRandomTargets = 3

// SelectTargets resolves the targets of an ability for caster. Only living
// combatants are ever returned.
func (b *Battle) SelectTargets(caster *combatant.Combatant, a *ability.Ability) []*combatant.Combatant {
	opponents := b.Living(caster.Side.Opposite())
	allies := b.Living(caster.Side)

	switch a.TargetType {
	case shared.TargetTypeSingle:
		if len(opponents) == 0 {
			return nil
		}
		return []*combatant.Combatant{dice.Choose(b.roller, opponents)}

	case shared.TargetTypeAll:
		return opponents

	case shared.TargetTypeSelf:
		if !caster.IsAlive() {
			return nil
		}
		return []*combatant.Combatant{caster}

	case shared.TargetTypeAllies:
		return allies

	case shared.TargetTypeRandom:
		if len(opponents) == 0 {
			return nil
		}
		count := 1 + b.roller.Intn(maxRandomTargets)
		return dice.Sample(b.roller, opponents, count)

	case shared.TargetTypeLowestHPAlly:
		return lowestHP(allies)

	case shared.TargetTypeLowestHPEnemy:
		return lowestHP(opponents)
	}

	return nil
}

// lowestHP returns the first combatant with the lowest HP ratio
func lowestHP(candidates []*combatant.Combatant) []*combatant.Combatant {
	if len(candidates) == 0 {
		return nil
	}

	lowest := candidates[0]
	for _, c := range candidates[1:] {
		if c.HPRatio() < lowest.HPRatio() {
			lowest = c
		}
	}
	return []*combatant.Combatant{lowest}
}
