package layout

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	layerCapacity   = 12
	layerBaseRadius = 120.0
	layerRadiusStep = 80.0
	layerHeightStep = 60.0
	layerPhaseStep  = 0.5
	layerMaxTilt    = 15.0
)

// arrangeLayers splits cards into ⌈n/12⌉ concentric rings. Outer rings sit
// further out and are phase-shifted so cards do not line up radially.
func arrangeLayers(n int, _ *rand.Rand) []Placement {
	layers := (n + layerCapacity - 1) / layerCapacity
	perLayer := (n + layers - 1) / layers

	out := make([]Placement, n)
	for i := range n {
		layer := i / perLayer
		j := i % perLayer
		inLayer := min(perLayer, n-layer*perLayer)

		l := float64(layer)
		angle := 2*math.Pi*float64(j)/float64(inLayer) + l*layerPhaseStep
		radius := layerBaseRadius + l*layerRadiusStep
		out[i] = Placement{
			Index: i,
			Position: mgl64.Vec3{
				math.Sin(angle) * radius,
				(l - float64(layers)/2) * layerHeightStep,
				math.Cos(angle) * radius,
			},
			Rotation: Rotation{
				X: math.Sin(l*layerPhaseStep) * layerMaxTilt,
				Y: deg(angle),
			},
			Delay: stagger(i, layersStep),
		}
	}
	return out
}
