package shared

// DamageType governs which defense stat, if any, mitigates incoming damage
type DamageType string

const (
	DamageTypePhysical DamageType = "physical"
	DamageTypeMagical  DamageType = "magical"
	DamageTypeHealing  DamageType = "healing"
	DamageTypeDOT      DamageType = "dot"
	DamageTypeTrue     DamageType = "true" // Ignores defenses
)

// IsValid reports whether d is a known damage type
func (d DamageType) IsValid() bool {
	switch d {
	case DamageTypePhysical, DamageTypeMagical, DamageTypeHealing, DamageTypeDOT, DamageTypeTrue:
		return true
	}
	return false
}
