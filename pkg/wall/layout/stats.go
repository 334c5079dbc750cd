package layout

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes how a plan spreads its cards.
type Stats struct {
	Count       int
	MeanRadius  float64 // mean distance from the vertical axis
	MaxRadius   float64
	HeightSpan  float64 // max(y) - min(y)
	MinSpacing  float64 // smallest nearest-neighbour distance
	MeanSpacing float64 // mean nearest-neighbour distance
	SpacingCV   float64 // coefficient of variation of nearest-neighbour distance
}

// ComputeStats measures the spread of placements. It is O(n²) in the number
// of placements, which is fine for walls of a few hundred cards.
func ComputeStats(placements []Placement) Stats {
	n := len(placements)
	s := Stats{Count: n}
	if n == 0 {
		return s
	}

	radii := make([]float64, n)
	heights := make([]float64, n)
	for i, p := range placements {
		radii[i] = math.Hypot(p.Position[0], p.Position[2])
		heights[i] = p.Position[1]
	}
	s.MeanRadius = stat.Mean(radii, nil)
	s.MaxRadius = floats.Max(radii)
	s.HeightSpan = floats.Max(heights) - floats.Min(heights)

	if n < 2 {
		return s
	}

	nearest := make([]float64, n)
	for i, a := range placements {
		best := math.Inf(1)
		for j, b := range placements {
			if i == j {
				continue
			}
			best = min(best, a.Position.Sub(b.Position).Len())
		}
		nearest[i] = best
	}
	s.MinSpacing = floats.Min(nearest)
	mean, std := stat.MeanStdDev(nearest, nil)
	s.MeanSpacing = mean
	if mean > 0 {
		s.SpacingCV = std / mean
	}
	return s
}
