package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller is the single source of randomness for a battle.
// Every random decision (ability choice, target choice, target counts, stat
// jitter) is drawn from it, so injecting a seeded roller makes a battle
// reproducible.
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int

	// Float64 returns a uniform value in [0, 1)
	Float64() float64
}
