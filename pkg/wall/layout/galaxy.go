package layout

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	galaxyArms        = 4
	galaxyTwist       = 0.3
	galaxyBaseRadius  = 100.0
	galaxyRadiusStep  = 15.0
	galaxyJitter      = 100.0
	galaxyWave        = 50.0
	galaxyPitchJitter = 20.0
	galaxyRollJitter  = 10.0
)

// arrangeGalaxy deals cards round-robin onto four arms. Each arm twists and
// widens with distance; height and tilt are jittered from rng.
func arrangeGalaxy(n int, rng *rand.Rand) []Placement {
	out := make([]Placement, n)
	for i := range n {
		arm := i % galaxyArms
		pos := float64(i / galaxyArms)

		angle := float64(arm)*2*math.Pi/galaxyArms + pos*galaxyTwist
		radius := galaxyBaseRadius + pos*galaxyRadiusStep
		y := (rng.Float64()-0.5)*galaxyJitter + math.Sin(pos*0.5)*galaxyWave

		out[i] = Placement{
			Index:    i,
			Position: mgl64.Vec3{math.Sin(angle) * radius, y, math.Cos(angle) * radius},
			Rotation: Rotation{
				X: (rng.Float64() - 0.5) * galaxyPitchJitter,
				Y: deg(angle),
				Z: (rng.Float64() - 0.5) * galaxyRollJitter,
			},
			Delay: stagger(i, galaxyStep),
		}
	}
	return out
}
