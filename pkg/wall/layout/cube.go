package layout

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// CubeSize is the distance of every cube face from the center.
	CubeSize = 200.0

	// cubeCell is the spacing between cards in a face's 2x2 sub-grid.
	cubeCell = 110.0

	// maxPerFace is the size of the sub-grid.
	maxPerFace = 4

	// MaxCubeCards is the most cards the cube holds without overlap.
	MaxCubeCards = 6 * maxPerFace
)

// cubeFace maps in-face offsets (u, v) to a world position and gives the
// rotation that turns the card outward.
type cubeFace struct {
	place    func(u, v float64) mgl64.Vec3
	rotation Rotation
}

// cubeFaces lists front, right, back, left, top and bottom in fill order.
var cubeFaces = [6]cubeFace{
	{func(u, v float64) mgl64.Vec3 { return mgl64.Vec3{u, v, CubeSize} }, Rotation{}},
	{func(u, v float64) mgl64.Vec3 { return mgl64.Vec3{CubeSize, v, -u} }, Rotation{Y: 90}},
	{func(u, v float64) mgl64.Vec3 { return mgl64.Vec3{-u, v, -CubeSize} }, Rotation{Y: 180}},
	{func(u, v float64) mgl64.Vec3 { return mgl64.Vec3{-CubeSize, v, u} }, Rotation{Y: -90}},
	{func(u, v float64) mgl64.Vec3 { return mgl64.Vec3{u, -CubeSize, v} }, Rotation{X: 90}},
	{func(u, v float64) mgl64.Vec3 { return mgl64.Vec3{u, CubeSize, -v} }, Rotation{X: -90}},
}

// arrangeCube fills the six faces in order, ⌈n/6⌉ cards per face (at most 4).
func arrangeCube(n int, _ *rand.Rand) []Placement {
	perFace := min((n+5)/6, maxPerFace)
	cols := min(perFace, 2)
	rows := (perFace + 1) / 2

	out := make([]Placement, n)
	for i := range n {
		face := cubeFaces[(i/perFace)%len(cubeFaces)]
		slot := i % perFace
		u := (float64(slot%2) - float64(cols-1)/2) * cubeCell
		v := (float64(slot/2) - float64(rows-1)/2) * cubeCell
		out[i] = Placement{
			Index:    i,
			Position: face.place(u, v),
			Rotation: face.rotation,
			Delay:    stagger(i, cubeStep),
		}
	}
	return out
}
