package dice_test

import (
	"testing"

	"github.com/KirkDiggler/wavebattle/internal/dice"
	mockdice "github.com/KirkDiggler/wavebattle/internal/dice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		count      int
		sides      int
		bonus      int
		wantTotal  int
		wantRolls  []int
		wantErr    bool
	}{
		{
			name:       "single d20 roll",
			setupRolls: []int{15},
			count:      1,
			sides:      20,
			wantTotal:  15,
			wantRolls:  []int{15},
		},
		{
			name:       "2d6+3",
			setupRolls: []int{4, 5},
			count:      2,
			sides:      6,
			bonus:      3,
			wantTotal:  12, // 4+5+3
			wantRolls:  []int{4, 5},
		},
		{
			name:       "jitter below zero",
			setupRolls: []int{1},
			count:      1,
			sides:      21,
			bonus:      -11,
			wantTotal:  -10,
			wantRolls:  []int{1},
		},
		{
			name:       "not enough rolls",
			setupRolls: []int{10},
			count:      2,
			sides:      6,
			wantErr:    true,
		},
		{
			name:       "invalid roll for die size",
			setupRolls: []int{7},
			count:      1,
			sides:      6,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.setupRolls)

			result, err := roller.Roll(tt.count, tt.sides, tt.bonus)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantRolls, result.Rolls)
		})
	}
}

func TestMockRoller_IntnAndFloat64(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{0, 2})
	roller.SetFloats([]float64{0.25})

	assert.Equal(t, 0, roller.Intn(3))
	assert.Equal(t, 2, roller.Intn(3))
	assert.InDelta(t, 0.25, roller.Float64(), 1e-9)

	assert.Panics(t, func() { roller.Intn(3) })
	assert.Panics(t, func() { roller.Float64() })

	roller.Reset()
	roller.SetNextRoll(5)
	assert.Equal(t, 1, roller.Remaining())
	assert.Panics(t, func() { roller.Intn(5) }, "out of range values are rejected")
}

func TestSeededRoller_Deterministic(t *testing.T) {
	a := dice.NewSeededRoller(42)
	b := dice.NewSeededRoller(42)

	for i := 0; i < 50; i++ {
		ra, err := a.Roll(2, 6, 1)
		require.NoError(t, err)
		rb, err := b.Roll(2, 6, 1)
		require.NoError(t, err)
		assert.Equal(t, ra.Rolls, rb.Rolls)
		assert.Equal(t, a.Intn(10), b.Intn(10))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestRandomRoller_Bounds(t *testing.T) {
	r := dice.NewRandomRoller()

	for i := 0; i < 200; i++ {
		result, err := r.Roll(3, 4, 2)
		require.NoError(t, err)
		assert.Len(t, result.Rolls, 3)
		for _, face := range result.Rolls {
			assert.GreaterOrEqual(t, face, 1)
			assert.LessOrEqual(t, face, 4)
		}
		assert.Equal(t, result.RawTotal+2, result.Total)

		f := r.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}

	_, err := r.Roll(0, 6, 0)
	assert.ErrorIs(t, err, dice.ErrInvalidCount)
	_, err = r.Roll(1, 0, 0)
	assert.ErrorIs(t, err, dice.ErrInvalidSides)
}

func TestParseNotation(t *testing.T) {
	tests := []struct {
		notation  string
		wantCount int
		wantSides int
		wantBonus int
		wantErr   bool
	}{
		{notation: "1d20", wantCount: 1, wantSides: 20},
		{notation: "2d6+3", wantCount: 2, wantSides: 6, wantBonus: 3},
		{notation: "1d21-11", wantCount: 1, wantSides: 21, wantBonus: -11},
		{notation: "d8", wantCount: 1, wantSides: 8},
		{notation: " 3D4 + 1 ", wantCount: 3, wantSides: 4, wantBonus: 1},
		{notation: "7", wantBonus: 7},
		{notation: "", wantErr: true},
		{notation: "xd6", wantErr: true},
		{notation: "1d6+x", wantErr: true},
		{notation: "1d6d6", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			count, sides, bonus, err := dice.ParseNotation(tt.notation)
			if tt.wantErr {
				assert.ErrorIs(t, err, dice.ErrInvalidNotation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, tt.wantSides, sides)
			assert.Equal(t, tt.wantBonus, bonus)
		})
	}
}

func TestRollString(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)

	roller.EXPECT().Roll(1, 21, -11).Return(&dice.RollResult{Total: 4, Rolls: []int{15}, Bonus: -11, Count: 1, Sides: 21, RawTotal: 15}, nil)

	result, err := dice.RollString(roller, "1d21-11")
	require.NoError(t, err)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, "1d21-11 [15] = 4", result.String())

	constant, err := dice.RollString(roller, "5")
	require.NoError(t, err)
	assert.Equal(t, 5, constant.Total)
}

func TestChooseAndSample(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	items := []string{"a", "b", "c", "d"}

	roller.SetRolls([]int{2})
	assert.Equal(t, "c", dice.Choose(roller, items))

	// i=0 picks 0+3, i=1 picks 1+0
	roller.SetRolls([]int{3, 0})
	got := dice.Sample(roller, items, 2)
	assert.Equal(t, []string{"d", "b"}, got)
	assert.Equal(t, []string{"a", "b", "c", "d"}, items, "input must not be reordered")

	roller.SetRolls([]int{0, 0, 0, 0})
	assert.Len(t, dice.Sample(roller, items, 10), 4)
	assert.Empty(t, dice.Sample(roller, items, 0))
}
