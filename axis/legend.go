// Package axis implements the interactive XYZ axis legend overlay: a small
// triad that tracks the viewport camera's rotation and can be dragged to a
// new screen position while holding the selection modifier.
package axis

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

// Camera is the narrow read-only view of the host camera the legend aligns
// to. Angles are in degrees, turntable model (no roll).
type Camera interface {
	Azimuth() float64
	Elevation() float64
}

const defaultLineWidth = 2

var (
	axisXColor = color.RGBA{R: 255, A: 255}
	axisYColor = color.RGBA{G: 255, A: 255}
	axisZColor = color.RGBA{B: 255, A: 255}
)

// Legend is the axis legend widget. Anchor holds the committed screen
// position of the triad origin (top-left origin coordinates); it is only
// ever updated when a drag commits, never mid-drag.
type Legend struct {
	anchor  cp.Vector
	size    float64
	seismic bool
	visible bool

	cam Camera

	// drag session, valid only while dragging is true
	dragging     bool
	anchorOffset cp.Vector
	pendingDelta cp.Vector

	highlight Highlight
	transform mgl64.Mat4
}

// New creates a legend at the given screen anchor. size is the on-screen
// radius of the triad in pixels.
func New(anchor cp.Vector, size float64, seismic bool) *Legend {
	l := &Legend{
		anchor:    anchor,
		size:      size,
		seismic:   seismic,
		visible:   true,
		transform: mgl64.Ident4(),
	}
	l.highlight = Highlight{Center: anchor, Radius: size}
	return l
}

// Attach connects the legend to a camera and performs the initial alignment.
func (l *Legend) Attach(cam Camera) {
	l.cam = cam
	l.Realign()
}

// Realign recomputes the local-to-screen transform from the current camera
// orientation. It is a no-op while the legend is not attached to a camera;
// the widget may legitimately exist before attachment.
func (l *Legend) Realign() {
	if l == nil || l.cam == nil {
		return
	}
	l.transform = Alignment(l.cam.Azimuth(), l.cam.Elevation(), l.size, l.anchor, l.seismic)
}

// Anchor returns the committed screen position of the triad origin.
func (l *Legend) Anchor() cp.Vector { return l.anchor }

// Size returns the on-screen radius of the triad.
func (l *Legend) Size() float64 { return l.size }

// SetSize changes the triad's on-screen radius.
func (l *Legend) SetSize(size float64) {
	if size <= 0 {
		return
	}
	l.size = size
	l.highlight.Radius = size
	l.Realign()
}

// SeismicCoords reports whether the z-down seismic convention is active.
func (l *Legend) SeismicCoords() bool { return l.seismic }

// SetSeismicCoords switches between the z-down seismic convention and the
// renderer's native z-up convention.
func (l *Legend) SetSeismicCoords(seismic bool) {
	l.seismic = seismic
	l.Realign()
}

// Visible reports whether the legend is drawn.
func (l *Legend) Visible() bool { return l.visible }

// SetVisible toggles drawing of the legend.
func (l *Legend) SetVisible(visible bool) { l.visible = visible }

// Transform returns the current local-to-screen matrix.
func (l *Legend) Transform() mgl64.Mat4 { return l.transform }

// Dragging reports whether a drag session is live.
func (l *Legend) Dragging() bool { return l.dragging }

// Draw renders the triad using the current alignment transform. Nothing is
// drawn while the legend is hidden or unattached.
func (l *Legend) Draw(screen *ebiten.Image) {
	if l == nil || !l.visible || l.cam == nil {
		return
	}

	origin := l.transform.Mul4x1(mgl64.Vec4{0, 0, 0, 1})
	ends := []struct {
		tip mgl64.Vec4
		col color.RGBA
	}{
		{mgl64.Vec4{1, 0, 0, 1}, axisXColor},
		{mgl64.Vec4{0, 1, 0, 1}, axisYColor},
		{mgl64.Vec4{0, 0, 1, 1}, axisZColor},
	}
	for _, e := range ends {
		tip := l.transform.Mul4x1(e.tip)
		vector.StrokeLine(screen,
			float32(origin.X()), float32(origin.Y()),
			float32(tip.X()), float32(tip.Y()),
			defaultLineWidth, e.col, true)
	}
}

// DrawHighlight renders the circular selection highlight. The highlight is
// shown while the selection modifier is held or a drag is live; it follows
// the pointer during a drag to preview where the legend will land.
func (l *Legend) DrawHighlight(screen *ebiten.Image, selectionMode bool) {
	if l == nil || !l.visible {
		return
	}
	if !selectionMode && !l.dragging {
		return
	}
	l.highlight.Draw(screen)
}
