package effects

import (
	"testing"

	"github.com/KirkDiggler/wavebattle/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOwner records what effects did to it
type fakeOwner struct {
	name   string
	hp     int
	maxHP  int
	damage []shared.DamageType
}

func (f *fakeOwner) GetName() string { return f.name }

func (f *fakeOwner) TakeDamage(amount int, damageType shared.DamageType) int {
	f.damage = append(f.damage, damageType)
	if amount > f.hp {
		amount = f.hp
	}
	f.hp -= amount
	return amount
}

func (f *fakeOwner) Heal(amount int) int {
	before := f.hp
	f.hp = min(f.hp+amount, f.maxHP)
	return f.hp - before
}

func TestStatusEffect_ApplyTurnEffects(t *testing.T) {
	t.Run("deals damage over time and ticks duration", func(t *testing.T) {
		owner := &fakeOwner{name: "Goblin", hp: 50, maxHP: 50}
		poison := BuildPoison()

		messages := poison.ApplyTurnEffects(owner)

		require.Len(t, messages, 1)
		assert.Equal(t, "Goblin takes 10 dot damage from Poison", messages[0])
		assert.Equal(t, 40, owner.hp)
		assert.Equal(t, []shared.DamageType{shared.DamageTypeDOT}, owner.damage)
		assert.Equal(t, 2, poison.Duration)
	})

	t.Run("reports the amount actually healed", func(t *testing.T) {
		owner := &fakeOwner{name: "Healer", hp: 48, maxHP: 50}
		regen := BuildRegeneration(5, 2)

		messages := regen.ApplyTurnEffects(owner)

		require.Len(t, messages, 1)
		assert.Equal(t, "Healer heals for 2 from Regeneration", messages[0])
		assert.Equal(t, 50, owner.hp)
	})

	t.Run("dot without a type does nothing", func(t *testing.T) {
		owner := &fakeOwner{name: "Slime", hp: 20, maxHP: 20}
		effect := &StatusEffect{Name: "Odd", Duration: 1, DotDamage: 5}

		messages := effect.ApplyTurnEffects(owner)

		assert.Empty(t, messages)
		assert.Equal(t, 20, owner.hp)
		assert.True(t, effect.Expired())
	})
}

func TestStatusEffect_Clone(t *testing.T) {
	template := NewBuilder("Weakened").
		WithDuration(2).
		WithModifier(shared.StatAttack, -0.3).
		Build()

	clone := template.Clone()
	clone.Duration = 0
	clone.StatsModifier[shared.StatAttack] = -0.9

	assert.Equal(t, 2, template.Duration)
	assert.InDelta(t, -0.3, template.Modifier(shared.StatAttack), 1e-9)
	assert.Nil(t, (*StatusEffect)(nil).Clone())
	assert.Equal(t, "Weakened (2 turns left)", template.String())
}

func TestManager_Add(t *testing.T) {
	t.Run("adds new effects", func(t *testing.T) {
		manager := NewManager()

		assert.True(t, manager.Add(BuildPoison()))
		assert.True(t, manager.Add(BuildStun()))
		assert.Equal(t, 2, manager.Len())
	})

	t.Run("refreshes an effect with the same name", func(t *testing.T) {
		manager := NewManager()
		first := BuildPoison()
		first.Duration = 1
		require.True(t, manager.Add(first))

		second := BuildPoison()
		assert.False(t, manager.Add(second))

		assert.Equal(t, 1, manager.Len())
		assert.Same(t, second, manager.Get("Poison"))
		assert.Equal(t, 3, manager.Get("Poison").Duration)
	})
}

func TestManager_Modifiers(t *testing.T) {
	manager := NewManager()
	manager.Add(NewBuilder("Weakened").WithModifier(shared.StatAttack, -0.3).Build())
	manager.Add(NewBuilder("Rallied").WithModifier(shared.StatAttack, 0.5).Build())

	assert.InDelta(t, 0.2, manager.TotalModifier(shared.StatAttack), 1e-9)
	assert.Zero(t, manager.TotalModifier(shared.StatSpeed))
	assert.True(t, manager.CanAct())

	manager.Add(BuildStun())
	assert.False(t, manager.CanAct())

	manager.Remove("Stunned")
	assert.True(t, manager.CanAct())
	assert.Nil(t, manager.Get("Stunned"))
}

func TestManager_ProcessTurn(t *testing.T) {
	owner := &fakeOwner{name: "Wolf", hp: 100, maxHP: 100}
	manager := NewManager()
	manager.Add(BuildStun())
	manager.Add(BuildPoison())

	messages := manager.ProcessTurn(owner)

	assert.Equal(t, []string{
		"Wolf is no longer affected by Stunned",
		"Wolf takes 10 dot damage from Poison",
	}, messages)
	assert.Equal(t, 1, manager.Len())
	assert.Equal(t, "Poison (2 turns left)", manager.String())

	manager.ProcessTurn(owner)
	messages = manager.ProcessTurn(owner)
	assert.Equal(t, []string{
		"Wolf takes 10 dot damage from Poison",
		"Wolf is no longer affected by Poison",
	}, messages)
	assert.Equal(t, 70, owner.hp)
	assert.Equal(t, "None", manager.String())

	manager.Add(BuildPoison())
	manager.Clear()
	assert.Zero(t, manager.Len())
}
