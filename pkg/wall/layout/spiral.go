package layout

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	spiralTurns     = 3
	spiralMaxRadius = 250.0
	spiralTaper     = 100.0
	spiralHeight    = 400.0
	spiralPitch     = 10.0
	spiralRoll      = 5.0
)

// arrangeSpiral winds cards over three turns from top to bottom. The radius
// narrows at both ends by |cos(tπ)|.
func arrangeSpiral(n int, _ *rand.Rand) []Placement {
	out := make([]Placement, n)
	for i := range n {
		t := float64(i) / float64(n)
		angle := t * spiralTurns * 2 * math.Pi
		radius := spiralMaxRadius - spiralTaper*math.Abs(math.Cos(t*math.Pi))
		out[i] = Placement{
			Index: i,
			Position: mgl64.Vec3{
				math.Sin(angle) * radius,
				(t - 0.5) * spiralHeight,
				math.Cos(angle) * radius,
			},
			Rotation: Rotation{
				X: math.Sin(t*2*math.Pi) * spiralPitch,
				Y: deg(angle),
				Z: math.Cos(t*3*math.Pi) * spiralRoll,
			},
			Delay: stagger(i, spiralStep),
		}
	}
	return out
}
