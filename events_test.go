package plume

import (
	"testing"

	"github.com/akmonengine/plume/shape"
)

// eventCapture collects every delivered event per type.
type eventCapture struct {
	enters []Event
	stays  []Event
	exits  []Event
}

func newEventCapture(e *Events) *eventCapture {
	c := &eventCapture{}
	e.Subscribe(COLLISION_ENTER, func(event Event) { c.enters = append(c.enters, event) })
	e.Subscribe(COLLISION_STAY, func(event Event) { c.stays = append(c.stays, event) })
	e.Subscribe(COLLISION_EXIT, func(event Event) { c.exits = append(c.exits, event) })
	return c
}

func (c *eventCapture) reset() {
	c.enters, c.stays, c.exits = nil, nil, nil
}

// samePair reports whether the event carries exactly the two shapes, in
// either order.
func samePair(event Event, x, y shape.Shape) bool {
	var a, b shape.Shape
	switch e := event.(type) {
	case CollisionEnterEvent:
		a, b = e.A, e.B
	case CollisionStayEvent:
		a, b = e.A, e.B
	case CollisionExitEvent:
		a, b = e.A, e.B
	}
	return (a == x && b == y) || (a == y && b == x)
}

// ========== Transitions ==========

func TestEventsEnterStayExit(t *testing.T) {
	e := NewEvents()
	capture := newEventCapture(&e)

	a := shape.NewCircle(0, 0, 10)
	b := shape.NewCircle(6, 0, 10)

	// Première frame en contact
	e.Record(a, b)
	e.Flush()
	if len(capture.enters) != 1 || len(capture.stays) != 0 || len(capture.exits) != 0 {
		t.Fatalf("frame 1: enters=%d stays=%d exits=%d", len(capture.enters), len(capture.stays), len(capture.exits))
	}
	if !samePair(capture.enters[0], a, b) {
		t.Errorf("enter event carries the wrong pair: %+v", capture.enters[0])
	}

	// Toujours en contact
	capture.reset()
	e.Record(a, b)
	e.Flush()
	if len(capture.enters) != 0 || len(capture.stays) != 1 || len(capture.exits) != 0 {
		t.Fatalf("frame 2: enters=%d stays=%d exits=%d", len(capture.enters), len(capture.stays), len(capture.exits))
	}

	// Contact rompu
	capture.reset()
	e.Flush()
	if len(capture.enters) != 0 || len(capture.stays) != 0 || len(capture.exits) != 1 {
		t.Fatalf("frame 3: enters=%d stays=%d exits=%d", len(capture.enters), len(capture.stays), len(capture.exits))
	}
	if !samePair(capture.exits[0], a, b) {
		t.Errorf("exit event carries the wrong pair: %+v", capture.exits[0])
	}

	// Plus rien à signaler
	capture.reset()
	e.Flush()
	if len(capture.enters)+len(capture.stays)+len(capture.exits) != 0 {
		t.Error("frame 4 delivered events for a forgotten pair")
	}
}

func TestEventsPairOrderNormalized(t *testing.T) {
	e := NewEvents()
	capture := newEventCapture(&e)

	a := shape.NewCircle(0, 0, 10)
	b := shape.NewCircle(6, 0, 10)

	e.Record(a, b)
	e.Flush()

	capture.reset()
	// Même paire, opérandes inversés: c'est un Stay, pas un Exit+Enter
	e.Record(b, a)
	e.Flush()

	if len(capture.stays) != 1 {
		t.Errorf("stays = %d, want 1", len(capture.stays))
	}
	if len(capture.enters) != 0 || len(capture.exits) != 0 {
		t.Errorf("reversed operands produced enters=%d exits=%d", len(capture.enters), len(capture.exits))
	}
}

func TestEventsTracksPairsIndependently(t *testing.T) {
	e := NewEvents()
	capture := newEventCapture(&e)

	a := shape.NewCircle(0, 0, 10)
	b := shape.NewCircle(6, 0, 10)
	c := shape.NewCircle(3, 3, 10)

	e.Record(a, b)
	e.Record(a, c)
	e.Flush()
	if len(capture.enters) != 2 {
		t.Fatalf("enters = %d, want 2", len(capture.enters))
	}

	capture.reset()
	e.Record(a, b)
	e.Flush()
	if len(capture.stays) != 1 || len(capture.exits) != 1 {
		t.Errorf("stays=%d exits=%d, want 1 and 1", len(capture.stays), len(capture.exits))
	}
	if !samePair(capture.exits[0], a, c) {
		t.Errorf("exit event carries the wrong pair: %+v", capture.exits[0])
	}
}

// ========== Check ==========

func TestEventsCheck(t *testing.T) {
	e := NewEvents()
	capture := newEventCapture(&e)

	a := shape.NewCircle(0, 0, 10)
	b := shape.NewCircle(6, 0, 10)
	far := shape.NewCircle(40, 0, 10)

	collision, err := e.Check(a, b, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !collision.Hit {
		t.Fatal("expected a hit")
	}

	if collision, err := e.Check(a, far, Options{}); err != nil || collision.Hit {
		t.Fatalf("far pair: hit=%v err=%v", collision.Hit, err)
	}

	e.Flush()
	if len(capture.enters) != 1 {
		t.Errorf("enters = %d, want 1", len(capture.enters))
	}
	if !samePair(capture.enters[0], a, b) {
		t.Errorf("enter event carries the wrong pair: %+v", capture.enters[0])
	}
}

func TestEventsCheckError(t *testing.T) {
	e := NewEvents()
	capture := newEventCapture(&e)

	c := shape.NewCircle(0, 0, 10)

	if _, err := e.Check(offGridShape{}, c, Options{}); err == nil {
		t.Fatal("expected an error")
	}

	e.Flush()
	if len(capture.enters) != 0 {
		t.Error("a failed check recorded a pair")
	}
}

// ========== Listeners ==========

func TestEventsMultipleListeners(t *testing.T) {
	e := NewEvents()

	var first, second int
	e.Subscribe(COLLISION_ENTER, func(Event) { first++ })
	e.Subscribe(COLLISION_ENTER, func(Event) { second++ })

	a := shape.NewCircle(0, 0, 10)
	b := shape.NewCircle(6, 0, 10)
	e.Record(a, b)
	e.Flush()

	if first != 1 || second != 1 {
		t.Errorf("listeners ran %d and %d times, want 1 and 1", first, second)
	}
}

func TestEventsForget(t *testing.T) {
	e := NewEvents()
	capture := newEventCapture(&e)

	a := shape.NewCircle(0, 0, 10)
	b := shape.NewCircle(6, 0, 10)

	e.Record(a, b)
	e.Flush()

	capture.reset()
	e.Forget(a)
	e.Flush()

	if len(capture.exits) != 0 {
		t.Errorf("a forgotten shape still fired %d exit events", len(capture.exits))
	}
}

func TestEventTypes(t *testing.T) {
	if got := (CollisionEnterEvent{}).Type(); got != COLLISION_ENTER {
		t.Errorf("enter type = %d", got)
	}
	if got := (CollisionStayEvent{}).Type(); got != COLLISION_STAY {
		t.Errorf("stay type = %d", got)
	}
	if got := (CollisionExitEvent{}).Type(); got != COLLISION_EXIT {
		t.Errorf("exit type = %d", got)
	}
}
