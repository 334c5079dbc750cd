package layout

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	ringRadius       = 300.0
	doubleRingRadius = 280.0
	doubleRingStep   = 120.0
	doubleRingHeight = 90.0
	sphereRadius     = 400.0
)

// goldenAngle is π(3 − √5), the angular step of a Fibonacci sphere.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// arrangeRing spaces all cards evenly on one circle.
func arrangeRing(n int, _ *rand.Rand) []Placement {
	out := make([]Placement, n)
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		out[i] = ringPlacement(i, angle, ringRadius, 0)
	}
	return out
}

// arrangeDoubleRing splits cards over two stacked circles; the lower ring is
// wider and offset by half a slot.
func arrangeDoubleRing(n int, _ *rand.Rand) []Placement {
	half := (n + 1) / 2
	out := make([]Placement, n)
	for i := range n {
		layer := i / half
		j := i % half
		inLayer := min(half, n-layer*half)

		angle := 2 * math.Pi * float64(j) / float64(inLayer)
		if layer == 1 {
			angle += math.Pi / float64(inLayer)
		}
		radius := doubleRingRadius + float64(layer)*doubleRingStep
		y := -doubleRingHeight + float64(layer)*2*doubleRingHeight
		out[i] = ringPlacement(i, angle, radius, y)
	}
	return out
}

func ringPlacement(i int, angle, radius, y float64) Placement {
	return Placement{
		Index:    i,
		Position: mgl64.Vec3{math.Sin(angle) * radius, y, math.Cos(angle) * radius},
		Rotation: Rotation{Y: deg(angle)},
		Delay:    stagger(i, classicStep),
	}
}

// arrangeSphere distributes cards over a sphere with the golden-angle
// spiral: y = 1 − 2i/(n−1), r = √(1−y²), θ = i·goldenAngle.
func arrangeSphere(n int, _ *rand.Rand) []Placement {
	out := make([]Placement, n)
	for i := range n {
		y := 0.0
		if n > 1 {
			y = 1 - float64(i)/float64(n-1)*2
		}
		r := math.Sqrt(max(0, 1-y*y))
		theta := float64(i) * goldenAngle

		pos := mgl64.Vec3{math.Cos(theta) * r, y, math.Sin(theta) * r}.Mul(sphereRadius)
		out[i] = Placement{
			Index:    i,
			Position: pos,
			Rotation: Rotation{
				X: deg(-math.Asin(y)),
				Y: deg(math.Atan2(pos[0], pos[2])),
			},
			Delay: stagger(i, classicStep),
		}
	}
	return out
}
