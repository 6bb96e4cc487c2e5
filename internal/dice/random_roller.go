package dice

import (
	"math/rand/v2"
)

// pcgStream is mixed into the seed to derive the second PCG word
const pcgStream = 0x9e3779b97f4a7c15

// randomRoller implements Roller on top of a PCG source.
// It is not safe for concurrent use; each battle owns its own roller.
type randomRoller struct {
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from the runtime's entropy
func NewRandomRoller() Roller {
	return NewSeededRoller(rand.Uint64())
}

// NewSeededRoller creates a deterministic roller. Two rollers built from the
// same seed produce the same sequence.
func NewSeededRoller(seed uint64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewPCG(seed, seed^pcgStream)),
	}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	return roll(r.rng.IntN, count, sides, bonus)
}

// Intn implements Roller.Intn
func (r *randomRoller) Intn(n int) int {
	return r.rng.IntN(n)
}

// Float64 implements Roller.Float64
func (r *randomRoller) Float64() float64 {
	return r.rng.Float64()
}
