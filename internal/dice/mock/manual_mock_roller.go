package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/wavebattle/internal/dice"
)

// ManualMockRoller implements dice.Roller for testing with predetermined results.
// Integer results feed both Roll (as die faces, 1..sides) and Intn (as indexes,
// 0..n-1) in the order they were queued. Float results feed Float64.
type ManualMockRoller struct {
	mu         sync.Mutex
	rolls      []int
	rollIndex  int
	floats     []float64
	floatIndex int
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls:  []int{},
		floats: []float64{},
	}
}

// SetNextRoll queues one integer result
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the queued integer results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// SetFloats replaces the queued Float64 results
func (m *ManualMockRoller) SetFloats(floats []float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.floats = floats
	m.floatIndex = 0
}

// Reset clears all queued results
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
	m.floats = []float64{}
	m.floatIndex = 0
}

// Remaining returns how many integer results have not been consumed
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

// getNextRoll returns the next predetermined roll
func (m *ManualMockRoller) getNextRoll() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll, nil
}

// Roll implements dice.Roller.Roll
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	if count < 1 {
		return nil, dice.ErrInvalidCount
	}
	if sides < 1 {
		return nil, dice.ErrInvalidSides
	}

	rolls := make([]int, count)
	rawTotal := 0

	for i := 0; i < count; i++ {
		roll, err := m.getNextRoll()
		if err != nil {
			return nil, err
		}
		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("invalid roll %d for d%d", roll, sides)
		}
		rolls[i] = roll
		rawTotal += roll
	}

	return &dice.RollResult{
		Total:    rawTotal + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: rawTotal,
	}, nil
}

// Intn implements dice.Roller.Intn. It panics when the queue is exhausted or
// the queued value is out of range, which always indicates a broken test setup.
func (m *ManualMockRoller) Intn(n int) int {
	roll, err := m.getNextRoll()
	if err != nil {
		panic(err)
	}
	if roll < 0 || roll >= n {
		panic(fmt.Sprintf("invalid Intn result %d for n=%d", roll, n))
	}
	return roll
}

// Float64 implements dice.Roller.Float64
func (m *ManualMockRoller) Float64() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.floatIndex >= len(m.floats) {
		panic(fmt.Sprintf("no more predetermined floats available (used %d of %d)", m.floatIndex, len(m.floats)))
	}

	f := m.floats[m.floatIndex]
	m.floatIndex++
	return f
}
