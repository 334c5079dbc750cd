package layout

import (
	"slices"
	"strings"

	"github.com/matzehuels/lovewall/pkg/errors"
)

// Tier selects Strategy for counts up to and including Max. A Max of zero
// means unbounded and must be the last tier of a preset.
type Tier struct {
	Max      int
	Strategy Strategy
}

// Preset is a named threshold table.
type Preset struct {
	Name  string
	Tiers []Tier
}

// Tiered is the default threshold table.
var Tiered = Preset{
	Name: "tiered",
	Tiers: []Tier{
		{Max: 12, Strategy: StrategyCube},
		{Max: 30, Strategy: StrategyLayers},
		{Max: 60, Strategy: StrategySpiral},
		{Strategy: StrategyGalaxy},
	},
}

// Classic is the coarser ring/sphere table.
var Classic = Preset{
	Name: "classic",
	Tiers: []Tier{
		{Max: 20, Strategy: StrategyRing},
		{Max: 50, Strategy: StrategyDoubleRing},
		{Strategy: StrategySphere},
	},
}

var presets = []Preset{Tiered, Classic}

// PresetNames returns the names of the built-in presets.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// PresetByName looks up a built-in preset. The empty name selects Tiered.
func PresetByName(name string) (Preset, error) {
	if name == "" {
		return Tiered, nil
	}
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, errors.New(errors.ErrCodeInvalidPreset,
		"unknown preset %q (must be one of: %s)", name, strings.Join(PresetNames(), ", "))
}

// StrategyFor returns the strategy the preset uses for count images.
func (p Preset) StrategyFor(count int) Strategy {
	for _, t := range p.Tiers {
		if t.Max == 0 || count <= t.Max {
			return t.Strategy
		}
	}
	return p.Tiers[len(p.Tiers)-1].Strategy
}

// Validate checks that tiers are ascending, use known strategies, and end
// unbounded. A cube tier may not route more than MaxCubeCards cards.
func (p Preset) Validate() error {
	if len(p.Tiers) == 0 {
		return errors.New(errors.ErrCodeInvalidPreset, "preset %q has no tiers", p.Name)
	}
	maxes := make([]int, 0, len(p.Tiers))
	for i, t := range p.Tiers {
		if !t.Strategy.Valid() {
			return errors.New(errors.ErrCodeInvalidPreset, "preset %q: unknown strategy %q", p.Name, t.Strategy)
		}
		last := i == len(p.Tiers)-1
		if t.Max == 0 && !last {
			return errors.New(errors.ErrCodeInvalidPreset, "preset %q: only the last tier may be unbounded", p.Name)
		}
		if t.Max < 0 {
			return errors.New(errors.ErrCodeInvalidPreset, "preset %q: negative tier bound %d", p.Name, t.Max)
		}
		if t.Strategy == StrategyCube && (t.Max == 0 || t.Max > MaxCubeCards) {
			return errors.New(errors.ErrCodeInvalidPreset, "preset %q: cube tier holds at most %d cards", p.Name, MaxCubeCards)
		}
		if t.Max > 0 {
			maxes = append(maxes, t.Max)
		}
	}
	if !slices.IsSorted(maxes) || len(slices.Compact(slices.Clone(maxes))) != len(maxes) {
		return errors.New(errors.ErrCodeInvalidPreset, "preset %q: tier bounds must be strictly ascending", p.Name)
	}
	if p.Tiers[len(p.Tiers)-1].Max != 0 {
		return errors.New(errors.ErrCodeInvalidPreset, "preset %q: last tier must be unbounded", p.Name)
	}
	return nil
}
