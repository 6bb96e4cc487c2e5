package battle

import (
	"strings"
)

// StateSummary renders the rosters and who acts next
func (b *Battle) StateSummary() string {
	var sb strings.Builder

	sb.WriteString("=== Battle State ===\n")
	sb.WriteString("PLAYERS:\n")
	for _, p := range b.players {
		sb.WriteString(p.String())
		sb.WriteString("\n")
	}

	sb.WriteString("\nENEMIES:\n")
	for _, e := range b.enemies {
		sb.WriteString(e.String())
		sb.WriteString("\n")
	}

	next := "None"
	if c := b.CurrentCombatant(); c != nil {
		next = c.Name
	}
	sb.WriteString("\nNext up: " + next + "\n")
	sb.WriteString("====================")

	return sb.String()
}
