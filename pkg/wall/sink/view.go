package sink

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/lovewall/pkg/wall/orbit"
)

// ViewMatrix returns the rotation applied to the whole collection for the
// given orbit angles, Rx(pitch) · Ry(yaw), matching the container transform
// rotateX(x) rotateY(y) of the browser renderer.
func ViewMatrix(a orbit.Angles) mgl64.Mat4 {
	return mgl64.HomogRotate3DX(mgl64.DegToRad(a.X)).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(a.Y)))
}
