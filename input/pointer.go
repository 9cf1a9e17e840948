// Package input decodes raw ebiten mouse and modifier state into discrete
// pointer events with press/release edges, the way the legend's drag
// controller wants to consume them.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// Kind discriminates decoded pointer events.
type Kind int

const (
	KindDown Kind = iota
	KindMove
	KindUp
	// KindModeExit fires when the selection modifier is released while the
	// primary button is still held. It is the cancel path for a live drag.
	KindModeExit
)

// PointerEvent is one decoded pointer event.
type PointerEvent struct {
	Pos    cp.Vector
	Button ebiten.MouseButton
	// Dragging is true on moves while the primary button has been held
	// since its press.
	Dragging bool
	// SelectionMode mirrors the host-tracked modifier (Ctrl held).
	SelectionMode bool
}

// Event pairs a decoded pointer event with its kind.
type Event struct {
	Kind    Kind
	Pointer PointerEvent
}

// Sample is one frame's worth of raw pointer state.
type Sample struct {
	X, Y          float64
	Primary       bool
	Secondary     bool
	SelectionMode bool
}

// Tracker turns per-frame samples into ordered pointer events. Events for
// one press are always emitted in down, move*, up order. Only the primary
// button drives the dragging flag; secondary presses are reported with
// their own button identifier so consumers can gate on it.
type Tracker struct {
	prevPrimary   bool
	prevSecondary bool
	prevSelection bool
	held          bool
	lastX, lastY  float64
	started       bool
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Poll captures the current ebiten mouse and modifier state.
func Poll() Sample {
	mx, my := ebiten.CursorPosition()
	return Sample{
		X:             float64(mx),
		Y:             float64(my),
		Primary:       ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Secondary:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		SelectionMode: ebiten.IsKeyPressed(ebiten.KeyControl),
	}
}

// Feed consumes one sample and returns the decoded events, oldest first.
func (t *Tracker) Feed(s Sample) []Event {
	var events []Event
	pos := cp.Vector{X: s.X, Y: s.Y}

	// Modifier released while the button is (or was, this frame) still
	// down: cancel before anything else so a same-frame button release
	// cannot commit a dead drag.
	if t.prevSelection && !s.SelectionMode && (s.Primary || t.prevPrimary) {
		events = append(events, Event{Kind: KindModeExit, Pointer: PointerEvent{
			Pos:    pos,
			Button: ebiten.MouseButtonLeft,
		}})
	}

	if s.Primary && !t.prevPrimary {
		t.held = true
		events = append(events, Event{Kind: KindDown, Pointer: PointerEvent{
			Pos:           pos,
			Button:        ebiten.MouseButtonLeft,
			SelectionMode: s.SelectionMode,
		}})
	}
	if s.Secondary && !t.prevSecondary {
		events = append(events, Event{Kind: KindDown, Pointer: PointerEvent{
			Pos:           pos,
			Button:        ebiten.MouseButtonRight,
			SelectionMode: s.SelectionMode,
		}})
	}

	if t.started && (s.X != t.lastX || s.Y != t.lastY) {
		button := ebiten.MouseButtonLeft
		if !s.Primary && s.Secondary {
			button = ebiten.MouseButtonRight
		}
		events = append(events, Event{Kind: KindMove, Pointer: PointerEvent{
			Pos:           pos,
			Button:        button,
			Dragging:      s.Primary && t.held,
			SelectionMode: s.SelectionMode,
		}})
	}

	if !s.Primary && t.prevPrimary {
		t.held = false
		events = append(events, Event{Kind: KindUp, Pointer: PointerEvent{
			Pos:           pos,
			Button:        ebiten.MouseButtonLeft,
			SelectionMode: s.SelectionMode,
		}})
	}
	if !s.Secondary && t.prevSecondary {
		events = append(events, Event{Kind: KindUp, Pointer: PointerEvent{
			Pos:           pos,
			Button:        ebiten.MouseButtonRight,
			SelectionMode: s.SelectionMode,
		}})
	}

	t.prevPrimary = s.Primary
	t.prevSecondary = s.Secondary
	t.prevSelection = s.SelectionMode
	t.lastX, t.lastY = s.X, s.Y
	t.started = true
	return events
}
