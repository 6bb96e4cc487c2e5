package shared

// TargetType defines how targets are chosen for an ability
type TargetType string

const (
	TargetTypeSingle        TargetType = "single"          // One random opponent
	TargetTypeAll           TargetType = "all"             // Every living opponent
	TargetTypeSelf          TargetType = "self"            // The caster
	TargetTypeAllies        TargetType = "allies"          // Every living ally, caster included
	TargetTypeRandom        TargetType = "random"          // 1-3 random opponents
	TargetTypeLowestHPAlly  TargetType = "lowest_hp_ally"  // Ally with the lowest HP ratio
	TargetTypeLowestHPEnemy TargetType = "lowest_hp_enemy" // Opponent with the lowest HP ratio
)

// IsValid reports whether t is a known target type
func (t TargetType) IsValid() bool {
	switch t {
	case TargetTypeSingle, TargetTypeAll, TargetTypeSelf, TargetTypeAllies,
		TargetTypeRandom, TargetTypeLowestHPAlly, TargetTypeLowestHPEnemy:
		return true
	}
	return false
}

// IsAreaOfEffect reports whether abilities of this target type suffer the AOE
// damage reduction when they hit more than one target.
func (t TargetType) IsAreaOfEffect() bool {
	return t == TargetTypeAll || t == TargetTypeAllies || t == TargetTypeRandom
}
