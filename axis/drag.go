package axis

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/nicorag/seismic-canvas/input"
)

// Drag state machine. The legend is either idle (no session) or dragging.
// While dragging, only the highlight follows the pointer; the committed
// anchor moves once, on EndDrag. Pointer events that arrive in the wrong
// state are ignored rather than treated as errors.

// OnPointerMove keeps the legend aligned while the viewport camera is being
// orbited with a held primary button.
func (l *Legend) OnPointerMove(ev input.PointerEvent) {
	if l == nil {
		return
	}
	if ev.Button == ebiten.MouseButtonLeft && ev.Dragging {
		l.Realign()
	}
}

// BeginDrag starts a drag session if the press qualifies: selection mode has
// to be active, the button has to be the primary one, and the press has to
// land inside the highlight circle around the committed anchor. Selection
// mode is checked here and only here; pressing the modifier mid-drag of a
// non-qualifying press does not start a session retroactively.
//
// The captured anchor offset is the fixed vector from the press point to the
// anchor; it keeps the legend from snapping its origin to the pointer.
func (l *Legend) BeginDrag(ev input.PointerEvent) bool {
	if l == nil || l.dragging {
		return false
	}
	if !ev.SelectionMode || ev.Button != ebiten.MouseButtonLeft {
		return false
	}
	if ev.Pos.Distance(l.anchor) > l.size {
		return false
	}

	l.dragging = true
	l.anchorOffset = ev.Pos.Sub(l.anchor)
	l.pendingDelta = cp.Vector{}
	l.highlight.Center = l.anchor
	l.highlight.Opaque = true
	return true
}

// ContinueDrag updates the live highlight position from a pointer move. The
// committed anchor is deliberately left untouched until EndDrag.
func (l *Legend) ContinueDrag(ev input.PointerEvent) {
	if l == nil || !l.dragging || !ev.Dragging {
		return
	}
	live := ev.Pos.Sub(l.anchorOffset)
	l.highlight.Center = live
	l.pendingDelta = live.Sub(l.anchor)
}

// EndDrag commits the drag: the anchor moves to wherever the highlight was
// last previewed and the legend realigns there. A release with no session is
// a no-op.
func (l *Legend) EndDrag() {
	if l == nil || !l.dragging {
		return
	}
	// pendingDelta tracks highlight center minus anchor, so this lands the
	// anchor exactly where the highlight was last previewed.
	l.anchor = l.anchor.Add(l.pendingDelta)
	l.Realign()
	l.clearSession()
}

// CancelDrag abandons the drag without moving the anchor. This is the path
// taken when the selection modifier is released before the button.
func (l *Legend) CancelDrag() {
	if l == nil || !l.dragging {
		return
	}
	l.clearSession()
}

func (l *Legend) clearSession() {
	l.dragging = false
	l.anchorOffset = cp.Vector{}
	l.pendingDelta = cp.Vector{}
	l.highlight.Center = l.anchor
	l.highlight.Opaque = false
}
