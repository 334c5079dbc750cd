package layout

import (
	"math/rand/v2"
	"time"

	"github.com/matzehuels/lovewall/pkg/errors"
	"github.com/matzehuels/lovewall/pkg/observability"
)

// DefaultSeed seeds the galaxy jitter when no seed is configured.
const DefaultSeed uint64 = 42

// Plan is the result of one layout computation.
type Plan struct {
	Preset     string
	Strategy   Strategy
	Seed       uint64
	Placements []Placement
}

// Len returns the number of placements.
func (p Plan) Len() int { return len(p.Placements) }

// Planner computes placements from an image count.
// A Planner holds no mutable state and is safe for concurrent use.
type Planner struct {
	preset Preset
	seed   uint64
}

// Option configures a Planner.
type Option func(*Planner)

// WithPreset selects the threshold table.
func WithPreset(p Preset) Option { return func(pl *Planner) { pl.preset = p } }

// WithSeed seeds the generator used by randomized strategies.
func WithSeed(seed uint64) Option { return func(pl *Planner) { pl.seed = seed } }

// NewPlanner returns a planner using Tiered and DefaultSeed unless overridden.
func NewPlanner(opts ...Option) *Planner {
	p := &Planner{preset: Tiered, seed: DefaultSeed}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Preset returns the planner's threshold table.
func (p *Planner) Preset() Preset { return p.preset }

// Plan returns exactly count placements. A zero count yields an empty plan
// without invoking any strategy; a negative count or an invalid preset is
// rejected.
func (p *Planner) Plan(count int) (Plan, error) {
	if count < 0 {
		return Plan{}, errors.New(errors.ErrCodeInvalidCount, "image count must be non-negative, got %d", count)
	}
	if err := p.preset.Validate(); err != nil {
		return Plan{}, err
	}
	plan := Plan{Preset: p.preset.Name, Seed: p.seed}
	if count == 0 {
		return plan, nil
	}

	start := time.Now()
	plan.Strategy = p.preset.StrategyFor(count)
	arrange, ok := arrangers[plan.Strategy]
	if !ok {
		return Plan{}, errors.New(errors.ErrCodeInvalidPreset, "preset %q selects unknown strategy %q", p.preset.Name, plan.Strategy)
	}

	rng := rand.New(rand.NewPCG(p.seed, p.seed^0xdeadbeef))
	plan.Placements = arrange(count, rng)

	observability.Wall().OnPlan(plan.Preset, string(plan.Strategy), count, time.Since(start))
	return plan, nil
}
