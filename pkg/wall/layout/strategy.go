package layout

import (
	"math/rand/v2"
	"time"
)

// Strategy names a geometric arrangement.
type Strategy string

// Strategies available to presets.
const (
	StrategyCube       Strategy = "cube"
	StrategyLayers     Strategy = "layers"
	StrategySpiral     Strategy = "spiral"
	StrategyGalaxy     Strategy = "galaxy"
	StrategyRing       Strategy = "ring"
	StrategyDoubleRing Strategy = "double-ring"
	StrategySphere     Strategy = "sphere"
)

// arrangeFunc places n cards. rng is only consulted by randomized strategies.
type arrangeFunc func(n int, rng *rand.Rand) []Placement

var arrangers = map[Strategy]arrangeFunc{
	StrategyCube:       arrangeCube,
	StrategyLayers:     arrangeLayers,
	StrategySpiral:     arrangeSpiral,
	StrategyGalaxy:     arrangeGalaxy,
	StrategyRing:       arrangeRing,
	StrategyDoubleRing: arrangeDoubleRing,
	StrategySphere:     arrangeSphere,
}

// Per-item entrance delay steps.
const (
	cubeStep    = 100 * time.Millisecond
	layersStep  = 50 * time.Millisecond
	spiralStep  = 50 * time.Millisecond
	galaxyStep  = 20 * time.Millisecond
	classicStep = 50 * time.Millisecond
)

// Randomized reports whether the strategy draws from the seeded generator.
func (s Strategy) Randomized() bool {
	return s == StrategyGalaxy
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	_, ok := arrangers[s]
	return ok
}
