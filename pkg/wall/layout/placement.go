package layout

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotation is an orientation in degrees around each axis.
type Rotation struct {
	X, Y, Z float64
}

// Placement is the static transform of one card on the wall.
type Placement struct {
	Index    int
	Position mgl64.Vec3
	Rotation Rotation
	Delay    time.Duration
}

// Matrix returns the placement as a 4x4 column-major affine transform,
// T · Ry · Rx · Rz.
func (p Placement) Matrix() mgl64.Mat4 {
	return mgl64.Translate3D(p.Position[0], p.Position[1], p.Position[2]).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(p.Rotation.Y))).
		Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(p.Rotation.X))).
		Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(p.Rotation.Z)))
}

// Normal returns the unit vector the card's front face points along.
func (p Placement) Normal() mgl64.Vec3 {
	r := mgl64.Rotate3DY(mgl64.DegToRad(p.Rotation.Y)).
		Mul3(mgl64.Rotate3DX(mgl64.DegToRad(p.Rotation.X))).
		Mul3(mgl64.Rotate3DZ(mgl64.DegToRad(p.Rotation.Z)))
	return r.Mul3x1(mgl64.Vec3{0, 0, 1})
}

// CSS returns the placement as a CSS transform value.
func (p Placement) CSS() string {
	return fmt.Sprintf("translate3d(%spx, %spx, %spx) rotateY(%sdeg) rotateX(%sdeg) rotateZ(%sdeg)",
		num(p.Position[0]), num(p.Position[1]), num(p.Position[2]),
		num(p.Rotation.Y), num(p.Rotation.X), num(p.Rotation.Z))
}

// CSSMatrix returns the placement as a CSS matrix3d() value.
func (p Placement) CSSMatrix() string {
	m := p.Matrix()
	s := "matrix3d("
	for i, v := range m {
		if i > 0 {
			s += ", "
		}
		s += num(v)
	}
	return s + ")"
}

// num formats v with at most three decimals and no negative zero.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func deg(rad float64) float64 { return rad * 180 / math.Pi }
