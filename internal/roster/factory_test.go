package roster_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/wavebattle/internal/dice"
	mockdice "github.com/KirkDiggler/wavebattle/internal/dice/mock"
	"github.com/KirkDiggler/wavebattle/internal/domain/combatant"
	"github.com/KirkDiggler/wavebattle/internal/domain/shared"
	apperr "github.com/KirkDiggler/wavebattle/internal/errors"
	"github.com/KirkDiggler/wavebattle/internal/roster"
	"github.com/KirkDiggler/wavebattle/internal/uuid"
)

type FactoryTestSuite struct {
	suite.Suite
	catalog *roster.Catalog
	roller  *mockdice.ManualMockRoller
	factory *roster.Factory
}

func (s *FactoryTestSuite) SetupTest() {
	catalog, err := roster.LoadCatalog()
	s.Require().NoError(err)

	s.catalog = catalog
	s.roller = mockdice.NewManualMockRoller()
	s.factory = roster.NewFactory(&roster.FactoryConfig{
		Catalog:     catalog,
		Roller:      s.roller,
		IDGenerator: uuid.NewSequenceGenerator("c"),
	})
}

func (s *FactoryTestSuite) TearDownTest() {
	s.Equal(0, s.roller.Remaining(), "every queued roll should be consumed")
}

func names(cs []*combatant.Combatant) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func abilityNames(c *combatant.Combatant) []string {
	var out []string
	for _, a := range c.Abilities() {
		out = append(out, a.Name)
	}
	return out
}

func (s *FactoryTestSuite) TestPlayerTeam() {
	team := s.factory.PlayerTeam()

	s.Equal([]string{"Warrior", "Mage", "Healer", "Rogue", "Paladin", "Battlemage"}, names(team))
	for _, hero := range team {
		s.Equal(shared.SidePlayer, hero.Side)
		s.Equal(hero.MaxHP(), hero.CurrentHP)
	}
	s.Equal([]string{"Power Slash", "Taunt"}, abilityNames(team[0]))
	s.Equal([]string{"Taunt", "Healing Light"}, abilityNames(team[4]))
	s.Equal("c-1", team[0].ID)
}

func (s *FactoryTestSuite) TestPlayerTeam_FreshAbilities() {
	first := s.factory.PlayerTeam()
	first[1].Abilities()[0].Use()

	second := s.factory.PlayerTeam()
	s.True(second[1].Abilities()[0].IsReady())
}

func (s *FactoryTestSuite) TestSelectParty() {
	party, err := s.factory.SelectParty([]string{"Rogue", " Healer", "Paladin"})
	s.Require().NoError(err)
	s.Equal([]string{"Rogue", "Healer", "Paladin"}, names(party))
}

func (s *FactoryTestSuite) TestSelectParty_Errors() {
	tests := []struct {
		name     string
		party    []string
		notFound bool
	}{
		{name: "too small", party: []string{"Warrior", "Mage"}},
		{name: "too large", party: []string{"Warrior", "Mage", "Healer", "Rogue", "Paladin"}},
		{name: "duplicate", party: []string{"Warrior", "Mage", "Warrior"}},
		{name: "unknown", party: []string{"Warrior", "Mage", "Bard"}, notFound: true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.factory.SelectParty(tt.party)
			s.Require().Error(err)
			if tt.notFound {
				s.True(apperr.IsNotFound(err))
			} else {
				s.True(apperr.IsInvalidArgument(err))
			}
		})
	}
}

func (s *FactoryTestSuite) TestWave_Scripted() {
	// hp, attack, defense, magic defense, speed for each of the three wolves
	s.roller.SetRolls([]int{
		21, 1, 4, 4, 6,
		11, 6, 4, 4, 6,
		11, 6, 4, 4, 6,
	})

	wave, err := s.factory.Wave(1)
	s.Require().NoError(err)

	s.Equal([]string{"Wolf 1", "Wolf 2", "Wolf 3", "Alpha Wolf"}, names(wave))
	s.Equal(shared.Stats{MaxHP: 110, Attack: 20, Defense: 15, MagicAttack: 5, MagicDefense: 10, Speed: 40}, wave[0].Base)
	s.Equal(shared.Stats{MaxHP: 100, Attack: 25, Defense: 15, MagicAttack: 5, MagicDefense: 10, Speed: 40}, wave[1].Base)
	s.Equal(150, wave[3].MaxHP())
	s.Equal([]string{"Bite", "Howl"}, abilityNames(wave[3]))

	for _, enemy := range wave {
		s.Equal(shared.SideEnemy, enemy.Side)
	}
	s.Require().IsType(&combatant.EnemyPolicy{}, wave[3].Policy())
	s.InDelta(0.9, wave[3].Policy().(*combatant.EnemyPolicy).Aggression, 1e-9)
}

func (s *FactoryTestSuite) TestWave_ScriptedBossHasExtraAbility() {
	zero := []int{11, 4, 3, 4, 4, 6}
	var rolls []int
	for i := 0; i < 4; i++ {
		rolls = append(rolls, zero...)
	}
	s.roller.SetRolls(rolls)

	wave, err := s.factory.Wave(2)
	s.Require().NoError(err)

	s.Len(wave, 5)
	s.Equal("Spider Queen", wave[4].Name)
	s.Equal([]string{"Sticky Web", "Poison Strike", "Acid Spray"}, abilityNames(wave[4]))
}

func (s *FactoryTestSuite) TestWave_Generated() {
	// each minion draws its type then six zero-offset jitter rolls
	var rolls []int
	for i := 0; i < 8; i++ {
		rolls = append(rolls, 0, 11, 6, 4, 4, 4, 6)
	}
	s.roller.SetRolls(rolls)

	wave, err := s.factory.Wave(4)
	s.Require().NoError(err)
	s.Require().Len(wave, 9)

	for i, minion := range wave[:8] {
		s.Equal(fmt.Sprintf("Wolf %d", i+1), minion.Name)
		s.Equal(133, minion.MaxHP())
		s.Equal(33, minion.Base.Attack)
		s.Equal([]string{"Bite", "Howl"}, abilityNames(minion))
		s.Require().IsType(&combatant.EnemyPolicy{}, minion.Policy())
		s.InDelta(0.75, minion.Policy().(*combatant.EnemyPolicy).Aggression, 1e-9)
	}

	boss := wave[8]
	s.Equal("Giant Spider Matriarch 4", boss.Name)
	s.Equal(
		[]string{"Bite", "Howl", "Sticky Web", "Poison Strike", "Acid Spray", "Devastating Strike"},
		abilityNames(boss),
	)
	signature := boss.Abilities()[5]
	s.Equal(66, signature.Damage)
	s.Equal(shared.DamageTypeTrue, signature.DamageType)
	s.InDelta(0.8, boss.Policy().(*combatant.EnemyPolicy).Aggression, 1e-9)
}

func (s *FactoryTestSuite) TestWave_InvalidNumber() {
	_, err := s.factory.Wave(0)
	s.Require().Error(err)
	s.True(apperr.IsInvalidArgument(err))
}

func TestFactoryTestSuite(t *testing.T) {
	suite.Run(t, new(FactoryTestSuite))
}

func TestNewFactory_RequiresDependencies(t *testing.T) {
	catalog, err := roster.LoadCatalog()
	require.NoError(t, err)

	assert.PanicsWithValue(t, "catalog is required", func() {
		roster.NewFactory(&roster.FactoryConfig{Roller: dice.NewRandomRoller()})
	})
	assert.PanicsWithValue(t, "roller is required", func() {
		roster.NewFactory(&roster.FactoryConfig{Catalog: catalog})
	})
}

func TestFactory_SeededWavesReproduce(t *testing.T) {
	catalog, err := roster.LoadCatalog()
	require.NoError(t, err)

	build := func() []*combatant.Combatant {
		f := roster.NewFactory(&roster.FactoryConfig{
			Catalog:     catalog,
			Roller:      dice.NewSeededRoller(7),
			IDGenerator: uuid.NewSequenceGenerator("e"),
		})
		wave, err := f.Wave(6)
		require.NoError(t, err)
		return wave
	}

	a, b := build(), build()
	require.Len(t, a, 11)
	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
		assert.Equal(t, a[i].Base, b[i].Base)
		assert.Equal(t, a[i].ID, b[i].ID)
	}
}

func TestFactory_JitterClampsStats(t *testing.T) {
	doc := fmt.Sprintf(validationBase, "",
		"waves:\n  - {number: 1, groups: [{name: Weakling, count: 1, kits: [brawler], stats: {hp: 1, attack: 2}, jitter: {hp: 1d21-11, attack: 1d21-11}}]}")
	catalog, err := roster.ParseCatalog([]byte(doc))
	require.NoError(t, err)

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{1, 1})
	f := roster.NewFactory(&roster.FactoryConfig{Catalog: catalog, Roller: roller})

	wave, err := f.Wave(1)
	require.NoError(t, err)
	require.Len(t, wave, 1)
	assert.Equal(t, 1, wave[0].MaxHP())
	assert.Equal(t, 0, wave[0].Base.Attack)
	assert.True(t, wave[0].IsAlive())
}
