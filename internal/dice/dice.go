package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidCount    = errors.New("invalid dice count")
	ErrInvalidSides    = errors.New("invalid dice size")
	ErrInvalidNotation = errors.New("invalid dice string")
)

// RollResult holds the outcome of a dice roll
type RollResult struct {
	Total    int   // Sum of all dice plus bonus
	Rolls    []int // Individual die results
	Bonus    int
	Count    int
	Sides    int
	RawTotal int // Sum of dice without bonus
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", "")
	if r.Bonus == 0 {
		return fmt.Sprintf("%dd%d %s = %d", r.Count, r.Sides, compact, r.Total)
	}
	return fmt.Sprintf("%dd%d%+d %s = %d", r.Count, r.Sides, r.Bonus, compact, r.Total)
}

// roll rolls count dice using intn, which must return a value in [0, n)
func roll(intn func(int) int, count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if sides < 1 {
		return nil, ErrInvalidSides
	}

	out := make([]int, count)
	total := 0
	for i := 0; i < count; i++ {
		out[i] = intn(sides) + 1
		total += out[i]
	}

	return &RollResult{
		Total:    total + bonus,
		Rolls:    out,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: total,
	}, nil
}

// ParseNotation parses "NdS", "NdS+B", "NdS-B" or a bare integer constant.
// A bare constant is returned as zero dice with the value as bonus.
func ParseNotation(notation string) (count, sides, bonus int, err error) {
	s := strings.ReplaceAll(strings.TrimSpace(strings.ToLower(notation)), " ", "")
	if s == "" {
		return 0, 0, 0, ErrInvalidNotation
	}

	if !strings.Contains(s, "d") {
		bonus, err = strconv.Atoi(s)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
		}
		return 0, 0, bonus, nil
	}

	dicePart := s
	if i := strings.IndexAny(s, "+-"); i > 0 {
		dicePart = s[:i]
		bonus, err = strconv.Atoi(s[i:])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
		}
	}

	parts := strings.Split(dicePart, "d")
	if len(parts) != 2 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
	}

	count = 1
	if parts[0] != "" {
		count, err = strconv.Atoi(parts[0])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
		}
	}
	sides, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
	}

	return count, sides, bonus, nil
}

// RollString rolls a dice expression such as "1d21-11" with the given roller
func RollString(r Roller, notation string) (*RollResult, error) {
	count, sides, bonus, err := ParseNotation(notation)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return &RollResult{Total: bonus, Bonus: bonus}, nil
	}
	return r.Roll(count, sides, bonus)
}

// Choose returns a uniformly random element of items. items must not be empty.
func Choose[T any](r Roller, items []T) T {
	return items[r.Intn(len(items))]
}

// Sample returns k distinct elements of items chosen uniformly without
// replacement. k is clamped to len(items); items is not modified.
func Sample[T any](r Roller, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return []T{}
	}

	pool := make([]T, len(items))
	copy(pool, items)
	for i := 0; i < k; i++ {
		j := i + r.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
