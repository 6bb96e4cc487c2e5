package runner_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/wavebattle/internal/battle"
	mockdice "github.com/KirkDiggler/wavebattle/internal/dice/mock"
	"github.com/KirkDiggler/wavebattle/internal/domain/ability"
	"github.com/KirkDiggler/wavebattle/internal/domain/combatant"
	"github.com/KirkDiggler/wavebattle/internal/domain/shared"
	"github.com/KirkDiggler/wavebattle/internal/events"
	"github.com/KirkDiggler/wavebattle/internal/runner"
	mockrunner "github.com/KirkDiggler/wavebattle/internal/runner/mock"
	"github.com/KirkDiggler/wavebattle/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRun_DeliversOnlyExecutedTurns(t *testing.T) {
	ctrl := gomock.NewController(t)
	stepper := mockrunner.NewMockStepper(ctrl)

	turn := events.NewTurnEvent(1, "p1", "Hero", shared.SidePlayer, "Smite", []string{"Wolf"})
	gomock.InOrder(
		stepper.EXPECT().IsOver().Return(false),
		stepper.EXPECT().Step().Return(nil),
		stepper.EXPECT().IsOver().Return(false),
		stepper.EXPECT().Step().Return(turn),
		stepper.EXPECT().IsOver().Return(true),
	)

	var got []*events.TurnEvent
	err := runner.Run(context.Background(), stepper, 0, func(e *events.TurnEvent) {
		got = append(got, e)
	})

	require.NoError(t, err)
	assert.Equal(t, []*events.TurnEvent{turn}, got)
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	stepper := mockrunner.NewMockStepper(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	stepper.EXPECT().IsOver().Return(false).AnyTimes()
	stepper.EXPECT().Step().DoAndReturn(func() *events.TurnEvent {
		cancel()
		return nil
	}).Times(1)

	err := runner.Run(ctx, stepper, time.Hour, nil)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_PacesRealBattle(t *testing.T) {
	smite := ability.New(&ability.Config{Name: "Smite", Damage: 20, DamageType: shared.DamageTypeTrue})
	hero := testutils.CreateTestPlayer("Hero", shared.Stats{MaxHP: 100, Speed: 50}, smite)
	wolf := testutils.CreateTestEnemy("Wolf", shared.Stats{MaxHP: 40, Speed: 10})

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{0, 0, 0, 0, 0}) // hero choice+target, wolf target, hero choice+target
	b := battle.New(&battle.Config{
		Players: []*combatant.Combatant{hero},
		Enemies: []*combatant.Combatant{wolf},
		Roller:  roller,
	})

	var turns []*events.TurnEvent
	start := time.Now()
	err := runner.Run(context.Background(), b, 5*time.Millisecond, func(e *events.TurnEvent) {
		turns = append(turns, e)
	})

	require.NoError(t, err)
	assert.True(t, b.IsOver())
	require.Len(t, turns, 3)
	assert.Equal(t, "Smite", turns[2].Ability)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond, "waits between steps")
}
