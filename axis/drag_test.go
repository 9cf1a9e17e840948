package axis

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/nicorag/seismic-canvas/input"
)

type stubCamera struct {
	azimuth   float64
	elevation float64
}

func (c stubCamera) Azimuth() float64   { return c.azimuth }
func (c stubCamera) Elevation() float64 { return c.elevation }

func press(x, y float64) input.PointerEvent {
	return input.PointerEvent{
		Pos:           cp.Vector{X: x, Y: y},
		Button:        ebiten.MouseButtonLeft,
		SelectionMode: true,
	}
}

func move(x, y float64) input.PointerEvent {
	return input.PointerEvent{
		Pos:           cp.Vector{X: x, Y: y},
		Button:        ebiten.MouseButtonLeft,
		Dragging:      true,
		SelectionMode: true,
	}
}

func TestDragSequenceCommits(t *testing.T) {
	l := New(cp.Vector{X: 60, Y: 60}, 80, true)
	l.Attach(stubCamera{azimuth: 30, elevation: 30})

	if !l.BeginDrag(press(10, 10)) {
		t.Fatal("press inside the highlight should start a drag")
	}
	if l.anchorOffset != (cp.Vector{X: -50, Y: -50}) {
		t.Fatalf("anchor offset = %v, want (-50,-50)", l.anchorOffset)
	}

	l.ContinueDrag(move(40, 40))
	if l.highlight.Center != (cp.Vector{X: 90, Y: 90}) {
		t.Fatalf("highlight center = %v, want (90,90)", l.highlight.Center)
	}
	if l.Anchor() != (cp.Vector{X: 60, Y: 60}) {
		t.Fatalf("anchor moved mid-drag: %v", l.Anchor())
	}
	if !l.highlight.Opaque {
		t.Fatal("highlight should be opaque while dragging")
	}

	l.EndDrag()
	if l.Anchor() != (cp.Vector{X: 90, Y: 90}) {
		t.Fatalf("anchor = %v after commit, want (90,90)", l.Anchor())
	}
	if l.Dragging() {
		t.Fatal("session should be cleared after commit")
	}
	if l.highlight.Opaque {
		t.Fatal("highlight should revert to translucent after commit")
	}
	if l.highlight.Center != l.Anchor() {
		t.Fatalf("highlight should sit on the new anchor, got %v", l.highlight.Center)
	}

	// The transform must have been recomputed at the new anchor.
	origin := l.Transform().Mul4x1(mgl64.Vec4{0, 0, 0, 1})
	if origin.X() != 90 || origin.Y() != 90 {
		t.Fatalf("origin maps to (%v,%v) after commit, want (90,90)", origin.X(), origin.Y())
	}

	// A late move is a silent no-op.
	l.ContinueDrag(move(200, 200))
	if l.Anchor() != (cp.Vector{X: 90, Y: 90}) || l.highlight.Center != (cp.Vector{X: 90, Y: 90}) {
		t.Fatal("pointer move after commit should be ignored")
	}
}

func TestDragMovesAnchorByPointerDelta(t *testing.T) {
	l := New(cp.Vector{X: 100, Y: 60}, 50, false)

	if !l.BeginDrag(press(100, 50)) {
		t.Fatal("drag should start")
	}
	l.ContinueDrag(move(130, 80))
	l.EndDrag()

	if l.Anchor() != (cp.Vector{X: 130, Y: 90}) {
		t.Fatalf("anchor = %v, want the original shifted by (30,30)", l.Anchor())
	}
}

func TestDragCancelLeavesAnchorUnchanged(t *testing.T) {
	l := New(cp.Vector{X: 60, Y: 60}, 50, true)

	if !l.BeginDrag(press(70, 70)) {
		t.Fatal("drag should start")
	}
	l.ContinueDrag(move(200, 150))
	l.CancelDrag()

	if l.Anchor() != (cp.Vector{X: 60, Y: 60}) {
		t.Fatalf("anchor = %v after cancel, want (60,60)", l.Anchor())
	}
	if l.Dragging() {
		t.Fatal("session should be cleared after cancel")
	}
	if l.highlight.Opaque {
		t.Fatal("highlight should revert to translucent after cancel")
	}
	if l.highlight.Center != (cp.Vector{X: 60, Y: 60}) {
		t.Fatalf("highlight should return to the anchor, got %v", l.highlight.Center)
	}
}

func TestBeginDragRejections(t *testing.T) {
	tests := []struct {
		name string
		ev   input.PointerEvent
	}{
		{
			name: "outside_highlight_radius",
			ev:   press(200, 200),
		},
		{
			name: "selection_mode_inactive",
			ev: input.PointerEvent{
				Pos:    cp.Vector{X: 60, Y: 60},
				Button: ebiten.MouseButtonLeft,
			},
		},
		{
			name: "secondary_button",
			ev: input.PointerEvent{
				Pos:           cp.Vector{X: 60, Y: 60},
				Button:        ebiten.MouseButtonRight,
				SelectionMode: true,
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := New(cp.Vector{X: 60, Y: 60}, 50, true)
			if l.BeginDrag(tc.ev) {
				t.Fatal("drag should not start")
			}
			if l.Dragging() {
				t.Fatal("no session should exist")
			}
			// A follow-up move must not produce feedback either.
			l.ContinueDrag(move(300, 300))
			if l.highlight.Center != (cp.Vector{X: 60, Y: 60}) {
				t.Fatalf("highlight moved without a session: %v", l.highlight.Center)
			}
		})
	}
}

func TestIdleEventsAreNoOps(t *testing.T) {
	l := New(cp.Vector{X: 60, Y: 60}, 50, true)

	l.ContinueDrag(move(10, 10))
	l.EndDrag()
	l.CancelDrag()
	l.OnPointerMove(move(10, 10))

	if l.Anchor() != (cp.Vector{X: 60, Y: 60}) {
		t.Fatalf("anchor = %v, want (60,60)", l.Anchor())
	}
	if l.Dragging() {
		t.Fatal("no session should exist")
	}
}

func TestRealignWithoutCameraIsNoOp(t *testing.T) {
	l := New(cp.Vector{X: 60, Y: 60}, 50, true)
	before := l.Transform()
	l.Realign()
	if l.Transform() != before {
		t.Fatal("realign without a camera should leave the transform alone")
	}
}

func TestSecondPressDuringDragIsIgnored(t *testing.T) {
	l := New(cp.Vector{X: 60, Y: 60}, 50, true)

	if !l.BeginDrag(press(70, 70)) {
		t.Fatal("drag should start")
	}
	offset := l.anchorOffset
	if l.BeginDrag(press(65, 65)) {
		t.Fatal("a second press must not restart the session")
	}
	if l.anchorOffset != offset {
		t.Fatal("anchor offset must stay fixed for the whole session")
	}
}
