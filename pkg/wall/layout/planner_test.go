package layout

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/matzehuels/lovewall/pkg/errors"
)

func TestPlanLength(t *testing.T) {
	for _, preset := range []Preset{Tiered, Classic} {
		p := NewPlanner(WithPreset(preset))
		for count := 1; count <= 150; count++ {
			plan, err := p.Plan(count)
			if err != nil {
				t.Fatalf("%s: Plan(%d) error: %v", preset.Name, count, err)
			}
			if plan.Len() != count {
				t.Fatalf("%s: Plan(%d) returned %d placements", preset.Name, count, plan.Len())
			}
			for i, pl := range plan.Placements {
				if pl.Index != i {
					t.Fatalf("%s: Plan(%d)[%d].Index = %d", preset.Name, count, i, pl.Index)
				}
			}
		}
	}
}

func TestPlanZeroAndNegative(t *testing.T) {
	p := NewPlanner()

	plan, err := p.Plan(0)
	if err != nil {
		t.Fatalf("Plan(0) error: %v", err)
	}
	if plan.Len() != 0 || plan.Strategy != "" {
		t.Errorf("Plan(0) = %d placements, strategy %q; want empty plan with no strategy", plan.Len(), plan.Strategy)
	}

	_, err = p.Plan(-1)
	if !errors.Is(err, errors.ErrCodeInvalidCount) {
		t.Errorf("Plan(-1) error = %v, want %s", err, errors.ErrCodeInvalidCount)
	}
}

func TestCubeFaces(t *testing.T) {
	p := NewPlanner()
	for count := 1; count <= 12; count++ {
		plan, err := p.Plan(count)
		if err != nil {
			t.Fatal(err)
		}
		if plan.Strategy != StrategyCube {
			t.Fatalf("Plan(%d).Strategy = %s, want cube", count, plan.Strategy)
		}
		seen := map[[3]float64]bool{}
		for _, pl := range plan.Placements {
			onFace := 0
			for _, c := range pl.Position {
				if math.Abs(c) == CubeSize {
					onFace++
				}
			}
			if onFace != 1 {
				t.Errorf("Plan(%d)[%d] at %v lies on %d face planes, want exactly 1", count, pl.Index, pl.Position, onFace)
			}
			key := [3]float64(pl.Position)
			if seen[key] {
				t.Errorf("Plan(%d)[%d] duplicates position %v", count, pl.Index, pl.Position)
			}
			seen[key] = true
		}
	}
}

func TestCubePerFaceCap(t *testing.T) {
	plan, err := NewPlanner().Plan(12)
	if err != nil {
		t.Fatal(err)
	}
	perFace := map[[3]int]int{}
	for _, pl := range plan.Placements {
		n := pl.Normal()
		perFace[[3]int{int(math.Round(n[0])), int(math.Round(n[1])), int(math.Round(n[2]))}]++
	}
	if len(perFace) != 6 {
		t.Errorf("12 cards use %d faces, want 6", len(perFace))
	}
	for face, n := range perFace {
		if n != 2 {
			t.Errorf("face %v holds %d cards, want 2", face, n)
		}
	}
}

func TestStrategyBoundaries(t *testing.T) {
	tests := []struct {
		preset Preset
		count  int
		want   Strategy
	}{
		{Tiered, 1, StrategyCube},
		{Tiered, 12, StrategyCube},
		{Tiered, 13, StrategyLayers},
		{Tiered, 30, StrategyLayers},
		{Tiered, 31, StrategySpiral},
		{Tiered, 60, StrategySpiral},
		{Tiered, 61, StrategyGalaxy},
		{Tiered, 1000, StrategyGalaxy},
		{Classic, 20, StrategyRing},
		{Classic, 21, StrategyDoubleRing},
		{Classic, 50, StrategyDoubleRing},
		{Classic, 51, StrategySphere},
	}

	for _, tt := range tests {
		t.Run(tt.preset.Name+"/"+string(tt.want), func(t *testing.T) {
			plan, err := NewPlanner(WithPreset(tt.preset)).Plan(tt.count)
			if err != nil {
				t.Fatal(err)
			}
			if plan.Strategy != tt.want {
				t.Errorf("Plan(%d).Strategy = %s, want %s", tt.count, plan.Strategy, tt.want)
			}
		})
	}
}

func TestPlanDeterministic(t *testing.T) {
	for _, preset := range []Preset{Tiered, Classic} {
		for _, count := range []int{5, 12, 13, 30, 31, 60, 61, 100} {
			a, _ := NewPlanner(WithPreset(preset)).Plan(count)
			b, _ := NewPlanner(WithPreset(preset)).Plan(count)
			if !reflect.DeepEqual(a, b) {
				t.Errorf("%s: Plan(%d) is not deterministic", preset.Name, count)
			}
		}
	}
}

func TestGalaxySeed(t *testing.T) {
	a, _ := NewPlanner(WithSeed(1)).Plan(80)
	b, _ := NewPlanner(WithSeed(1)).Plan(80)
	c, _ := NewPlanner(WithSeed(2)).Plan(80)

	if !reflect.DeepEqual(a.Placements, b.Placements) {
		t.Error("same seed should give identical galaxy plans")
	}
	if reflect.DeepEqual(a.Placements, c.Placements) {
		t.Error("different seeds should jitter the galaxy differently")
	}
	if a.Seed != 1 || c.Seed != 2 {
		t.Errorf("plan seeds = %d, %d; want 1, 2", a.Seed, c.Seed)
	}
}

func TestGalaxyJitterBounds(t *testing.T) {
	plan, _ := NewPlanner().Plan(100)
	for _, pl := range plan.Placements {
		if math.Abs(pl.Position[1]) > galaxyJitter/2+galaxyWave {
			t.Errorf("[%d] height %v exceeds jitter band", pl.Index, pl.Position[1])
		}
		if math.Abs(pl.Rotation.X) > galaxyPitchJitter/2 {
			t.Errorf("[%d] pitch %v exceeds bound", pl.Index, pl.Rotation.X)
		}
		if math.Abs(pl.Rotation.Z) > galaxyRollJitter/2 {
			t.Errorf("[%d] roll %v exceeds bound", pl.Index, pl.Rotation.Z)
		}
	}
}

func TestPlacementsFaceOutward(t *testing.T) {
	for _, preset := range []Preset{Tiered, Classic} {
		for _, count := range []int{1, 6, 12, 13, 24, 30, 31, 45, 60, 61, 100} {
			plan, _ := NewPlanner(WithPreset(preset)).Plan(count)
			for _, pl := range plan.Placements {
				if d := pl.Normal().Dot(pl.Position); d <= 0 {
					t.Errorf("%s/%s: Plan(%d)[%d] faces inward (normal·position = %v)",
						preset.Name, plan.Strategy, count, pl.Index, d)
				}
			}
		}
	}
}

func TestStaggerMonotonicAndCapped(t *testing.T) {
	for _, preset := range []Preset{Tiered, Classic} {
		for _, count := range []int{12, 30, 60, 100, 500} {
			plan, _ := NewPlanner(WithPreset(preset)).Plan(count)
			var prev time.Duration
			for _, pl := range plan.Placements {
				if pl.Delay < prev {
					t.Errorf("%s: Plan(%d)[%d] delay %v < previous %v", preset.Name, count, pl.Index, pl.Delay, prev)
				}
				if pl.Delay > MaxStagger {
					t.Errorf("%s: Plan(%d)[%d] delay %v exceeds cap", preset.Name, count, pl.Index, pl.Delay)
				}
				prev = pl.Delay
			}
		}
	}
}

func TestLayersGeometry(t *testing.T) {
	plan, _ := NewPlanner().Plan(15)

	// 15 cards over two rings: 8 on the inner ring, 7 on the outer ring.
	for _, pl := range plan.Placements {
		radius := math.Hypot(pl.Position[0], pl.Position[2])
		want := layerBaseRadius
		if pl.Index >= 8 {
			want += layerRadiusStep
		}
		if math.Abs(radius-want) > 1e-9 {
			t.Errorf("[%d] radius = %v, want %v", pl.Index, radius, want)
		}
	}
	if y := plan.Placements[0].Position[1]; y != -60 {
		t.Errorf("inner ring height = %v, want -60", y)
	}
	if y := plan.Placements[8].Position[1]; y != 0 {
		t.Errorf("outer ring height = %v, want 0", y)
	}
	if x := plan.Placements[8].Rotation.X; math.Abs(x-math.Sin(0.5)*15) > 1e-9 {
		t.Errorf("outer ring tilt = %v, want sin(0.5)*15", x)
	}
}

func TestSphereOnSurface(t *testing.T) {
	plan, _ := NewPlanner(WithPreset(Classic)).Plan(80)
	for _, pl := range plan.Placements {
		if r := pl.Position.Len(); math.Abs(r-sphereRadius) > 1e-6 {
			t.Errorf("[%d] distance from center = %v, want %v", pl.Index, r, sphereRadius)
		}
	}
}

func TestPlannerUnknownStrategy(t *testing.T) {
	bad := Preset{Name: "bad", Tiers: []Tier{{Strategy: "tesseract"}}}
	_, err := NewPlanner(WithPreset(bad)).Plan(3)
	if !errors.Is(err, errors.ErrCodeInvalidPreset) {
		t.Errorf("Plan() error = %v, want %s", err, errors.ErrCodeInvalidPreset)
	}
}

func TestPlannerRejectsOversizedCube(t *testing.T) {
	big := Preset{Name: "big", Tiers: []Tier{
		{Max: 40, Strategy: StrategyCube},
		{Strategy: StrategyGalaxy},
	}}
	_, err := NewPlanner(WithPreset(big)).Plan(30)
	if !errors.Is(err, errors.ErrCodeInvalidPreset) {
		t.Errorf("Plan() error = %v, want %s", err, errors.ErrCodeInvalidPreset)
	}
}

func TestCubeAtCapacityNoOverlap(t *testing.T) {
	full := Preset{Name: "full", Tiers: []Tier{
		{Max: MaxCubeCards, Strategy: StrategyCube},
		{Strategy: StrategyGalaxy},
	}}
	plan, err := NewPlanner(WithPreset(full)).Plan(MaxCubeCards)
	if err != nil {
		t.Fatal(err)
	}
	seen := map[[3]int]bool{}
	for _, pl := range plan.Placements {
		key := [3]int{int(math.Round(pl.Position[0])), int(math.Round(pl.Position[1])), int(math.Round(pl.Position[2]))}
		if seen[key] {
			t.Errorf("[%d] shares position %v with another card", pl.Index, key)
		}
		seen[key] = true
	}
}
