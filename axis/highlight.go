package axis

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

// Highlight is the circular drag-feedback marker. It sits translucent on the
// committed anchor while idle and follows the pointer opaquely during a
// drag, previewing the legend's landing spot.
type Highlight struct {
	Center cp.Vector
	Radius float64
	Opaque bool
}

func (h Highlight) Color() color.RGBA {
	if h.Opaque {
		return color.RGBA{R: 255, G: 255, B: 0, A: 255}
	}
	return color.RGBA{R: 255, G: 255, B: 0, A: 128}
}

func (h Highlight) Draw(screen *ebiten.Image) {
	cx := float32(h.Center.X)
	cy := float32(h.Center.Y)
	r := float32(h.Radius)
	fill := h.Color()
	fill.A /= 4
	vector.FillCircle(screen, cx, cy, r, fill, true)
	vector.StrokeCircle(screen, cx, cy, r, defaultLineWidth, h.Color(), true)
}
