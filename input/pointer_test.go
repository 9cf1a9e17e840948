package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func kinds(events []Event) []Kind {
	out := make([]Kind, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Kind)
	}
	return out
}

func equalKinds(a, b []Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTrackerPressMoveRelease(t *testing.T) {
	tr := NewTracker()

	steps := []struct {
		sample Sample
		want   []Kind
	}{
		{Sample{X: 10, Y: 10}, nil},
		{Sample{X: 10, Y: 10, Primary: true, SelectionMode: true}, []Kind{KindDown}},
		{Sample{X: 20, Y: 15, Primary: true, SelectionMode: true}, []Kind{KindMove}},
		{Sample{X: 30, Y: 25, Primary: true, SelectionMode: true}, []Kind{KindMove}},
		{Sample{X: 30, Y: 25, SelectionMode: true}, []Kind{KindUp}},
		{Sample{X: 35, Y: 25, SelectionMode: true}, []Kind{KindMove}},
	}
	for i, step := range steps {
		events := tr.Feed(step.sample)
		if !equalKinds(kinds(events), step.want) {
			t.Fatalf("step %d: got %v, want %v", i, kinds(events), step.want)
		}
	}
}

func TestTrackerMoveDraggingFlag(t *testing.T) {
	tr := NewTracker()

	tr.Feed(Sample{X: 10, Y: 10})
	tr.Feed(Sample{X: 10, Y: 10, Primary: true})

	events := tr.Feed(Sample{X: 40, Y: 40, Primary: true})
	if len(events) != 1 || events[0].Kind != KindMove || !events[0].Pointer.Dragging {
		t.Fatalf("move while held should carry the dragging flag, got %+v", events)
	}

	tr.Feed(Sample{X: 40, Y: 40})
	events = tr.Feed(Sample{X: 50, Y: 40})
	if len(events) != 1 || events[0].Kind != KindMove || events[0].Pointer.Dragging {
		t.Fatalf("move after release should not be a drag, got %+v", events)
	}
}

func TestTrackerModifierReleaseCancelsBeforeRelease(t *testing.T) {
	tr := NewTracker()

	tr.Feed(Sample{X: 10, Y: 10, SelectionMode: true})
	tr.Feed(Sample{X: 10, Y: 10, Primary: true, SelectionMode: true})
	tr.Feed(Sample{X: 30, Y: 30, Primary: true, SelectionMode: true})

	// Modifier drops while the button is still held.
	events := tr.Feed(Sample{X: 30, Y: 30, Primary: true})
	if !equalKinds(kinds(events), []Kind{KindModeExit}) {
		t.Fatalf("got %v, want mode exit", kinds(events))
	}

	// Same-frame modifier drop and button release: the cancel must be
	// emitted before the release so the release cannot commit.
	tr2 := NewTracker()
	tr2.Feed(Sample{X: 10, Y: 10, SelectionMode: true})
	tr2.Feed(Sample{X: 10, Y: 10, Primary: true, SelectionMode: true})
	events = tr2.Feed(Sample{X: 10, Y: 10})
	if !equalKinds(kinds(events), []Kind{KindModeExit, KindUp}) {
		t.Fatalf("got %v, want mode exit then up", kinds(events))
	}
}

func TestTrackerSecondaryButton(t *testing.T) {
	tr := NewTracker()
	tr.Feed(Sample{X: 10, Y: 10})

	events := tr.Feed(Sample{X: 10, Y: 10, Secondary: true})
	if len(events) != 1 || events[0].Kind != KindDown || events[0].Pointer.Button != ebiten.MouseButtonRight {
		t.Fatalf("secondary press should report the right button, got %+v", events)
	}

	events = tr.Feed(Sample{X: 30, Y: 30, Secondary: true})
	if len(events) != 1 || events[0].Kind != KindMove || events[0].Pointer.Button != ebiten.MouseButtonRight {
		t.Fatalf("move with only the right button held should report it, got %+v", events)
	}
	if events[0].Pointer.Dragging {
		t.Fatal("dragging is a primary-button state")
	}

	events = tr.Feed(Sample{X: 30, Y: 30})
	if len(events) != 1 || events[0].Kind != KindUp || events[0].Pointer.Button != ebiten.MouseButtonRight {
		t.Fatalf("secondary release should report the right button, got %+v", events)
	}
}

func TestTrackerModifierReleaseWithoutButtonIsQuiet(t *testing.T) {
	tr := NewTracker()
	tr.Feed(Sample{X: 10, Y: 10, SelectionMode: true})
	events := tr.Feed(Sample{X: 10, Y: 10})
	if len(events) != 0 {
		t.Fatalf("modifier release with no button held should emit nothing, got %v", kinds(events))
	}
}
