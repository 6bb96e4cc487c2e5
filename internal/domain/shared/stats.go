package shared

// Stat names a combat stat that status effects may modify
type Stat string

const (
	StatAttack       Stat = "attack"
	StatDefense      Stat = "defense"
	StatMagicAttack  Stat = "magic_attack"
	StatMagicDefense Stat = "magic_defense"
	StatSpeed        Stat = "speed"
)

// Stats holds the base (unmodified) stats of a combatant
type Stats struct {
	MaxHP        int `json:"max_hp" yaml:"hp"`
	Attack       int `json:"attack" yaml:"attack"`
	Defense      int `json:"defense" yaml:"defense"`
	MagicAttack  int `json:"magic_attack" yaml:"magic_attack"`
	MagicDefense int `json:"magic_defense" yaml:"magic_defense"`
	Speed        int `json:"speed" yaml:"speed"`
}

// Get returns the base value of a modifiable stat
func (s Stats) Get(stat Stat) int {
	switch stat {
	case StatAttack:
		return s.Attack
	case StatDefense:
		return s.Defense
	case StatMagicAttack:
		return s.MagicAttack
	case StatMagicDefense:
		return s.MagicDefense
	case StatSpeed:
		return s.Speed
	default:
		return 0
	}
}
