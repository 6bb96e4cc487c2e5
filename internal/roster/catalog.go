package roster

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/wavebattle/internal/dice"
	"github.com/KirkDiggler/wavebattle/internal/domain/ability"
	"github.com/KirkDiggler/wavebattle/internal/domain/shared"
	apperr "github.com/KirkDiggler/wavebattle/internal/errors"
)

//go:embed data/*.yaml
var defaultData embed.FS

// Catalog is the static content the factory builds rosters from
type Catalog struct {
	Abilities []*ability.Config   `yaml:"abilities"`
	Kits      map[string][]string `yaml:"kits"`
	Heroes    []HeroSpec          `yaml:"heroes"`
	Waves     []WaveSpec          `yaml:"waves"`
	Endless   EndlessSpec         `yaml:"endless"`

	abilityIndex map[string]*ability.Config
}

// HeroSpec describes a selectable party member
type HeroSpec struct {
	Name      string       `yaml:"name"`
	Stats     shared.Stats `yaml:"stats"`
	Kits      []string     `yaml:"kits"`
	Abilities []string     `yaml:"abilities"`
}

// Jitter holds optional dice expressions added to each base stat
type Jitter struct {
	HP           string `yaml:"hp"`
	Attack       string `yaml:"attack"`
	Defense      string `yaml:"defense"`
	MagicAttack  string `yaml:"magic_attack"`
	MagicDefense string `yaml:"magic_defense"`
	Speed        string `yaml:"speed"`
}

func (j Jitter) expressions() []string {
	return []string{j.HP, j.Attack, j.Defense, j.MagicAttack, j.MagicDefense, j.Speed}
}

// GroupSpec is a set of identical enemies in a scripted wave. Groups with a
// count above one are numbered "<name> 1", "<name> 2", ...
type GroupSpec struct {
	Name       string       `yaml:"name"`
	Count      int          `yaml:"count"`
	Aggression float64      `yaml:"aggression"`
	Kits       []string     `yaml:"kits"`
	Abilities  []string     `yaml:"abilities"`
	Stats      shared.Stats `yaml:"stats"`
	Jitter     Jitter       `yaml:"jitter"`
}

// WaveSpec is a scripted enemy wave
type WaveSpec struct {
	Number int         `yaml:"number"`
	Groups []GroupSpec `yaml:"groups"`
}

// MinionSpec is an enemy type used by generated waves. Type doubles as the
// kit name.
type MinionSpec struct {
	Type  string       `yaml:"type"`
	Name  string       `yaml:"name"`
	Stats shared.Stats `yaml:"stats"`
}

// BossSpec describes the boss that closes every generated wave
type BossSpec struct {
	Aggression float64           `yaml:"aggression"`
	Names      map[string]string `yaml:"names"` // minion type -> name format taking the wave number
	Stats      shared.Stats      `yaml:"stats"`
	Signature  *ability.Config   `yaml:"signature"` // damage scales with the wave
}

// EndlessSpec drives waves past the last scripted one
type EndlessSpec struct {
	MinionBase        int          `yaml:"minion_base"`
	BaseAggression    float64      `yaml:"base_aggression"`
	AggressionPerWave float64      `yaml:"aggression_per_wave"`
	Minions           []MinionSpec `yaml:"minions"`
	Jitter            Jitter       `yaml:"jitter"`
	Boss              BossSpec     `yaml:"boss"`
}

// LoadCatalog returns the built-in catalog
func LoadCatalog() (*Catalog, error) {
	catalog := &Catalog{}
	if err := decodeDefaults(catalog); err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// LoadCatalogFile overlays a YAML file on the built-in catalog. Lists present
// in the file replace the defaults and kits are merged by name. A missing
// file yields the defaults.
func LoadCatalogFile(path string) (*Catalog, error) {
	catalog := &Catalog{}
	if err := decodeDefaults(catalog); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return catalog, catalog.Validate()
		}
		return nil, apperr.Wrapf(err, "reading roster %s", path)
	}

	if err := yaml.Unmarshal(data, catalog); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, fmt.Sprintf("parsing roster %s", path))
	}
	if err := catalog.Validate(); err != nil {
		return nil, apperr.Wrapf(err, "roster %s", path)
	}
	return catalog, nil
}

// ParseCatalog decodes a complete catalog without the built-in defaults
func ParseCatalog(data []byte) (*Catalog, error) {
	catalog := &Catalog{}
	if err := yaml.Unmarshal(data, catalog); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "parsing roster")
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

func decodeDefaults(catalog *Catalog) error {
	files, err := fs.Glob(defaultData, "data/*.yaml")
	if err != nil {
		return apperr.Wrap(err, "listing built-in roster")
	}
	slices.Sort(files)

	for _, name := range files {
		data, err := defaultData.ReadFile(name)
		if err != nil {
			return apperr.Wrapf(err, "reading built-in roster %s", name)
		}
		if err := yaml.Unmarshal(data, catalog); err != nil {
			return apperr.WrapWithCode(err, apperr.CodeInternal, fmt.Sprintf("parsing built-in roster %s", name))
		}
	}
	return nil
}

// Validate checks every cross reference and indexes abilities by name
func (c *Catalog) Validate() error {
	c.abilityIndex = make(map[string]*ability.Config, len(c.Abilities))
	for _, a := range c.Abilities {
		if err := validateAbility(a); err != nil {
			return err
		}
		if _, dup := c.abilityIndex[a.Name]; dup {
			return apperr.InvalidArgumentf("ability %q is defined twice", a.Name)
		}
		c.abilityIndex[a.Name] = a
	}

	for kit, names := range c.Kits {
		for _, name := range names {
			if _, ok := c.abilityIndex[name]; !ok {
				return apperr.NotFoundf("kit %q references unknown ability %q", kit, name)
			}
		}
	}

	if len(c.Heroes) < MinPartySize {
		return apperr.InvalidArgumentf("roster needs at least %d heroes, has %d", MinPartySize, len(c.Heroes))
	}
	heroes := make(map[string]bool, len(c.Heroes))
	for _, h := range c.Heroes {
		if heroes[h.Name] {
			return apperr.InvalidArgumentf("hero %q is defined twice", h.Name)
		}
		heroes[h.Name] = true
		if h.Stats.MaxHP <= 0 {
			return apperr.InvalidArgumentf("hero %q needs positive hp", h.Name)
		}
		if err := c.checkRefs("hero "+h.Name, h.Kits, h.Abilities); err != nil {
			return err
		}
	}

	for i, w := range c.Waves {
		if w.Number != i+1 {
			return apperr.InvalidArgumentf("waves must be numbered from 1 in order, got %d at position %d", w.Number, i+1)
		}
		if len(w.Groups) == 0 {
			return apperr.InvalidArgumentf("wave %d has no enemies", w.Number)
		}
		for _, g := range w.Groups {
			if g.Count < 1 || g.Stats.MaxHP <= 0 {
				return apperr.InvalidArgumentf("wave %d group %q needs a positive count and hp", w.Number, g.Name)
			}
			if err := c.checkRefs(fmt.Sprintf("wave %d group %s", w.Number, g.Name), g.Kits, g.Abilities); err != nil {
				return err
			}
			if err := validateJitter(g.Jitter); err != nil {
				return apperr.Wrapf(err, "wave %d group %q", w.Number, g.Name)
			}
		}
	}

	return c.validateEndless()
}

func (c *Catalog) validateEndless() error {
	e := c.Endless
	if len(e.Minions) == 0 {
		return apperr.InvalidArgument("endless waves need at least one minion type")
	}
	for _, m := range e.Minions {
		if _, ok := c.Kits[m.Type]; !ok {
			return apperr.NotFoundf("endless minion type %q has no kit", m.Type)
		}
		if _, ok := e.Boss.Names[m.Type]; !ok {
			return apperr.NotFoundf("endless minion type %q has no boss name", m.Type)
		}
	}
	if e.Boss.Signature == nil {
		return apperr.InvalidArgument("endless boss needs a signature ability")
	}
	if err := validateAbility(e.Boss.Signature); err != nil {
		return err
	}
	return validateJitter(e.Jitter)
}

func (c *Catalog) checkRefs(owner string, kits, abilities []string) error {
	for _, kit := range kits {
		if _, ok := c.Kits[kit]; !ok {
			return apperr.NotFoundf("%s references unknown kit %q", owner, kit)
		}
	}
	for _, name := range abilities {
		if _, ok := c.abilityIndex[name]; !ok {
			return apperr.NotFoundf("%s references unknown ability %q", owner, name)
		}
	}
	return nil
}

func validateAbility(a *ability.Config) error {
	if a == nil || a.Name == "" {
		return apperr.InvalidArgument("ability needs a name")
	}
	if a.TargetType != "" && !a.TargetType.IsValid() {
		return apperr.InvalidArgumentf("ability %q has unknown target type %q", a.Name, a.TargetType)
	}
	if a.Damage > 0 && !a.DamageType.IsValid() {
		return apperr.InvalidArgumentf("ability %q deals damage with unknown type %q", a.Name, a.DamageType)
	}
	if a.StatusEffect != nil && a.StatusEffect.DotType != "" && !a.StatusEffect.DotType.IsValid() {
		return apperr.InvalidArgumentf("ability %q has unknown dot type %q", a.Name, a.StatusEffect.DotType)
	}
	return nil
}

func validateJitter(j Jitter) error {
	for _, expr := range j.expressions() {
		if expr == "" {
			continue
		}
		if _, _, _, err := dice.ParseNotation(expr); err != nil {
			return apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "bad jitter")
		}
	}
	return nil
}

// Ability returns the template with the given name
func (c *Catalog) Ability(name string) (*ability.Config, bool) {
	a, ok := c.abilityIndex[name]
	return a, ok
}

// HeroNames lists the selectable heroes in catalog order
func (c *Catalog) HeroNames() []string {
	names := make([]string, len(c.Heroes))
	for i, h := range c.Heroes {
		names[i] = h.Name
	}
	return names
}

// Hero finds a hero by name
func (c *Catalog) Hero(name string) (HeroSpec, bool) {
	for _, h := range c.Heroes {
		if h.Name == name {
			return h, true
		}
	}
	return HeroSpec{}, false
}

// abilities resolves kits then explicit names into fresh ability instances
func (c *Catalog) abilities(kits, names []string) []*ability.Ability {
	var out []*ability.Ability
	for _, kit := range kits {
		for _, name := range c.Kits[kit] {
			out = append(out, ability.New(c.abilityIndex[name]))
		}
	}
	for _, name := range names {
		out = append(out, ability.New(c.abilityIndex[name]))
	}
	return out
}
