package axis

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// depthFlatten squashes the legend's depth axis so it renders as a flat
// screen overlay instead of a perspective-projected object.
const depthFlatten = 0.001

// Alignment builds the local-to-screen matrix that places a unit axis triad
// at anchor, scaled to size screen units and rotated to match a turntable
// camera at the given azimuth/elevation (degrees).
//
// Composition order matters: the seismic axis flip has to happen before any
// rotation, and the translation to the anchor has to come last. Seismic data
// uses a z-down convention, so that mode flips the vertical and depth axes
// relative to the renderer's z-up convention.
func Alignment(azimuth, elevation, size float64, anchor cp.Vector, seismic bool) mgl64.Mat4 {
	m := mgl64.Ident4()
	if seismic {
		m = mgl64.Scale3D(1, -1, -1).Mul4(m)
	}
	// Constant correction so the triad's rest pose faces the default camera.
	m = mgl64.HomogRotate3DX(mgl64.DegToRad(90)).Mul4(m)
	m = mgl64.HomogRotate3DY(mgl64.DegToRad(azimuth)).Mul4(m)
	m = mgl64.HomogRotate3DX(mgl64.DegToRad(elevation)).Mul4(m)
	m = mgl64.Scale3D(size, size, depthFlatten).Mul4(m)
	m = mgl64.Translate3D(anchor.X, anchor.Y, 0).Mul4(m)
	return m
}
