// Package camera provides the viewport's turntable camera: orientation is
// parameterized purely by azimuth and elevation around a fixed pivot, which
// is the model the axis legend's alignment math assumes.
package camera

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	orbitSpeed   = 0.4 // degrees per pixel of drag
	minElevation = -90
	maxElevation = 90
	minDistance  = 1
	maxDistance  = 100
	zoomStep     = 1.1
)

// Turntable is an orbit camera. Azimuth and elevation are in degrees.
type Turntable struct {
	azimuth   float64
	elevation float64
	distance  float64

	orbiting     bool
	lastX, lastY int
}

func New(azimuth, elevation float64) *Turntable {
	t := &Turntable{distance: 10}
	t.SetOrientation(azimuth, elevation)
	return t
}

func (t *Turntable) Azimuth() float64   { return t.azimuth }
func (t *Turntable) Elevation() float64 { return t.elevation }
func (t *Turntable) Distance() float64  { return t.distance }

// SetOrientation sets both angles, wrapping azimuth into (-180, 180] and
// clamping elevation to the poles.
func (t *Turntable) SetOrientation(azimuth, elevation float64) {
	t.azimuth = wrapAngle(azimuth)
	t.elevation = clamp(elevation, minElevation, maxElevation)
}

// Orbit rotates the camera by a pointer delta in pixels. Horizontal drag
// orbits, vertical drag tilts.
func (t *Turntable) Orbit(dx, dy int) {
	t.SetOrientation(
		t.azimuth+float64(dx)*orbitSpeed,
		t.elevation-float64(dy)*orbitSpeed,
	)
}

// Zoom scales the orbit distance by wheel ticks; positive ticks zoom in.
func (t *Turntable) Zoom(ticks float64) {
	d := t.distance
	for ; ticks >= 1; ticks-- {
		d /= zoomStep
	}
	for ; ticks <= -1; ticks++ {
		d *= zoomStep
	}
	t.distance = clamp(d, minDistance, maxDistance)
}

// Update reads ebiten's mouse state and applies right-button orbit and
// wheel zoom. Reports whether the orientation changed this frame.
func (t *Turntable) Update() bool {
	mx, my := ebiten.CursorPosition()
	changed := false

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if !t.orbiting {
			t.orbiting = true
			t.lastX, t.lastY = mx, my
		}
		dx := mx - t.lastX
		dy := my - t.lastY
		if dx != 0 || dy != 0 {
			t.Orbit(dx, dy)
			changed = true
		}
		t.lastX, t.lastY = mx, my
	} else {
		t.orbiting = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		t.Zoom(wy)
	}
	return changed
}

func wrapAngle(deg float64) float64 {
	for deg > 180 {
		deg -= 360
	}
	for deg <= -180 {
		deg += 360
	}
	return deg
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
