package layout

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestComputeStatsEmpty(t *testing.T) {
	s := ComputeStats(nil)
	if s.Count != 0 || s.MeanRadius != 0 || s.MinSpacing != 0 {
		t.Errorf("ComputeStats(nil) = %+v, want zero stats", s)
	}
}

func TestComputeStatsRing(t *testing.T) {
	plan, _ := NewPlanner(WithPreset(Classic)).Plan(4)
	s := ComputeStats(plan.Placements)

	if s.Count != 4 {
		t.Errorf("Count = %d, want 4", s.Count)
	}
	if math.Abs(s.MeanRadius-ringRadius) > 1e-9 {
		t.Errorf("MeanRadius = %v, want %v", s.MeanRadius, ringRadius)
	}
	if s.HeightSpan != 0 {
		t.Errorf("HeightSpan = %v, want 0", s.HeightSpan)
	}
	// Four cards on a circle are a square with side r·√2.
	want := ringRadius * math.Sqrt2
	if math.Abs(s.MinSpacing-want) > 1e-9 || math.Abs(s.MeanSpacing-want) > 1e-9 {
		t.Errorf("spacing = %v/%v, want %v", s.MinSpacing, s.MeanSpacing, want)
	}
	if s.SpacingCV > 1e-9 {
		t.Errorf("SpacingCV = %v, want 0 for an even ring", s.SpacingCV)
	}
}

func TestComputeStatsSingle(t *testing.T) {
	s := ComputeStats([]Placement{{Position: mgl64.Vec3{3, 5, 4}}})
	if s.MeanRadius != 5 || s.MaxRadius != 5 {
		t.Errorf("radius = %v/%v, want 5", s.MeanRadius, s.MaxRadius)
	}
	if s.MinSpacing != 0 {
		t.Errorf("MinSpacing = %v, want 0 for a single card", s.MinSpacing)
	}
}
