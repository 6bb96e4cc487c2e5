package roster

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/wavebattle/internal/dice"
	"github.com/KirkDiggler/wavebattle/internal/domain/ability"
	"github.com/KirkDiggler/wavebattle/internal/domain/combatant"
	"github.com/KirkDiggler/wavebattle/internal/domain/shared"
	apperr "github.com/KirkDiggler/wavebattle/internal/errors"
	"github.com/KirkDiggler/wavebattle/internal/uuid"
)

const (
	// MinPartySize is the fewest heroes a party may field
	MinPartySize = 3

	// MaxPartySize is the most heroes a party may field
	MaxPartySize = 4
)

// FactoryConfig holds the collaborators of a Factory
type FactoryConfig struct {
	Catalog     *Catalog
	Roller      dice.Roller
	IDGenerator uuid.Generator
}

// Factory builds fresh combatants from a catalog. Stat jitter and generated
// wave composition draw from the roller, so a seeded roller reproduces waves.
type Factory struct {
	catalog *Catalog
	roller  dice.Roller
	ids     uuid.Generator
}

// NewFactory creates a factory
func NewFactory(cfg *FactoryConfig) *Factory {
	if cfg.Catalog == nil {
		panic("catalog is required")
	}
	if cfg.Roller == nil {
		panic("roller is required")
	}

	ids := cfg.IDGenerator
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}

	return &Factory{
		catalog: cfg.Catalog,
		roller:  cfg.Roller,
		ids:     ids,
	}
}

// Catalog returns the catalog the factory builds from
func (f *Factory) Catalog() *Catalog {
	return f.catalog
}

// Roller returns the random source shared with battles built from this factory
func (f *Factory) Roller() dice.Roller {
	return f.roller
}

// PlayerTeam builds every hero in the catalog
func (f *Factory) PlayerTeam() []*combatant.Combatant {
	team := make([]*combatant.Combatant, 0, len(f.catalog.Heroes))
	for _, h := range f.catalog.Heroes {
		team = append(team, f.hero(h))
	}
	return team
}

// SelectParty builds the named heroes in the given order. A party has
// between MinPartySize and MaxPartySize distinct heroes.
func (f *Factory) SelectParty(names []string) ([]*combatant.Combatant, error) {
	if len(names) < MinPartySize || len(names) > MaxPartySize {
		return nil, apperr.InvalidArgumentf("party needs %d to %d heroes, got %d", MinPartySize, MaxPartySize, len(names)).
			WithMeta("party", names)
	}

	seen := make(map[string]bool, len(names))
	party := make([]*combatant.Combatant, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if seen[name] {
			return nil, apperr.InvalidArgumentf("hero %q selected twice", name)
		}
		seen[name] = true

		spec, ok := f.catalog.Hero(name)
		if !ok {
			return nil, apperr.NotFoundf("unknown hero %q", name).
				WithMeta("available", f.catalog.HeroNames())
		}
		party = append(party, f.hero(spec))
	}

	return party, nil
}

func (f *Factory) hero(h HeroSpec) *combatant.Combatant {
	return combatant.NewPlayer(&combatant.Config{
		ID:        f.ids.New(),
		Name:      h.Name,
		Stats:     h.Stats,
		Abilities: f.catalog.abilities(h.Kits, h.Abilities),
	})
}

// Wave builds enemy wave n. Waves up to the last scripted one come from the
// catalog; later waves are generated and grow with n.
func (f *Factory) Wave(n int) ([]*combatant.Combatant, error) {
	if n < 1 {
		return nil, apperr.InvalidArgumentf("wave number must be positive, got %d", n)
	}
	if n <= len(f.catalog.Waves) {
		return f.scriptedWave(f.catalog.Waves[n-1])
	}
	return f.generatedWave(n)
}

func (f *Factory) scriptedWave(w WaveSpec) ([]*combatant.Combatant, error) {
	var enemies []*combatant.Combatant
	for _, g := range w.Groups {
		for i := 0; i < g.Count; i++ {
			name := g.Name
			if g.Count > 1 {
				name = fmt.Sprintf("%s %d", g.Name, i+1)
			}

			stats, err := f.jitter(g.Stats, g.Jitter)
			if err != nil {
				return nil, apperr.Wrapf(err, "wave %d", w.Number)
			}

			enemies = append(enemies, combatant.NewEnemy(&combatant.Config{
				ID:        f.ids.New(),
				Name:      name,
				Stats:     stats,
				Abilities: f.catalog.abilities(g.Kits, g.Abilities),
			}, g.Aggression))
		}
	}
	return enemies, nil
}

func (f *Factory) generatedWave(n int) ([]*combatant.Combatant, error) {
	spec := f.catalog.Endless
	scale := float64(n) / 3
	aggression := spec.BaseAggression + float64(n-3)*spec.AggressionPerWave

	var enemies []*combatant.Combatant
	for i := 0; i < spec.MinionBase+n; i++ {
		minion := dice.Choose(f.roller, spec.Minions)

		stats, err := f.jitter(scaleStats(minion.Stats, scale), spec.Jitter)
		if err != nil {
			return nil, apperr.Wrapf(err, "wave %d", n)
		}

		enemies = append(enemies, combatant.NewEnemy(&combatant.Config{
			ID:        f.ids.New(),
			Name:      fmt.Sprintf("%s %d", minion.Name, i+1),
			Stats:     stats,
			Abilities: f.catalog.abilities([]string{minion.Type}, nil),
		}, aggression))
	}

	bossType := spec.Minions[n%len(spec.Minions)].Type
	var kits []string
	for _, m := range spec.Minions {
		kits = append(kits, m.Type)
	}

	signatureCfg := *spec.Boss.Signature
	signatureCfg.Damage = int(float64(signatureCfg.Damage) * scale)
	abilities := append(f.catalog.abilities(kits, nil), ability.New(&signatureCfg))

	enemies = append(enemies, combatant.NewEnemy(&combatant.Config{
		ID:        f.ids.New(),
		Name:      fmt.Sprintf(spec.Boss.Names[bossType], n),
		Stats:     scaleStats(spec.Boss.Stats, scale),
		Abilities: abilities,
	}, spec.Boss.Aggression))

	return enemies, nil
}

// jitter adds the rolled offsets to base. HP stays at least 1 and other
// stats at least 0.
func (f *Factory) jitter(base shared.Stats, j Jitter) (shared.Stats, error) {
	offsets := make([]int, 0, 6)
	for _, expr := range j.expressions() {
		if expr == "" {
			offsets = append(offsets, 0)
			continue
		}
		result, err := dice.RollString(f.roller, expr)
		if err != nil {
			return shared.Stats{}, err
		}
		offsets = append(offsets, result.Total)
	}

	return shared.Stats{
		MaxHP:        max(base.MaxHP+offsets[0], 1),
		Attack:       max(base.Attack+offsets[1], 0),
		Defense:      max(base.Defense+offsets[2], 0),
		MagicAttack:  max(base.MagicAttack+offsets[3], 0),
		MagicDefense: max(base.MagicDefense+offsets[4], 0),
		Speed:        max(base.Speed+offsets[5], 0),
	}, nil
}

func scaleStats(s shared.Stats, scale float64) shared.Stats {
	mul := func(v int) int { return int(float64(v) * scale) }
	return shared.Stats{
		MaxHP:        max(mul(s.MaxHP), 1),
		Attack:       mul(s.Attack),
		Defense:      mul(s.Defense),
		MagicAttack:  mul(s.MagicAttack),
		MagicDefense: mul(s.MagicDefense),
		Speed:        mul(s.Speed),
	}
}
