package testutils

import (
	"github.com/KirkDiggler/wavebattle/internal/domain/ability"
	"github.com/KirkDiggler/wavebattle/internal/domain/combatant"
	"github.com/KirkDiggler/wavebattle/internal/domain/shared"
	"github.com/KirkDiggler/wavebattle/internal/repositories/reports"
)

// CreateTestStats returns middling stats with the given HP and speed
func CreateTestStats(hp, speed int) shared.Stats {
	return shared.Stats{
		MaxHP:        hp,
		Attack:       20,
		Defense:      10,
		MagicAttack:  20,
		MagicDefense: 10,
		Speed:        speed,
	}
}

// CreateTestPlayer creates a player-side combatant with the default policy
func CreateTestPlayer(name string, stats shared.Stats, abilities ...*ability.Ability) *combatant.Combatant {
	return combatant.NewPlayer(&combatant.Config{
		ID:        name,
		Name:      name,
		Stats:     stats,
		Abilities: abilities,
	})
}

// CreateTestEnemy creates an enemy that always prefers damage
func CreateTestEnemy(name string, stats shared.Stats, abilities ...*ability.Ability) *combatant.Combatant {
	return combatant.NewEnemy(&combatant.Config{
		ID:        name,
		Name:      name,
		Stats:     stats,
		Abilities: abilities,
	}, 1.0)
}

// CreateTestReport creates a finished battle report won by the players
func CreateTestReport(id string) *reports.Report {
	return &reports.Report{
		ID:        id,
		Seed:      42,
		Wave:      1,
		Party:     []string{"Warrior", "Mage", "Healer"},
		Winner:    shared.SidePlayer,
		Rounds:    6,
		Turns:     31,
		Survivors: []string{"Warrior"},
		Log:       []string{"=== Battle Start ===", "=== Battle End ===", "Players are victorious!"},
	}
}
