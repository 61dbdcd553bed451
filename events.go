package plume

import (
	"reflect"

	"github.com/akmonengine/plume/shape"
)

const (
	COLLISION_ENTER EventType = iota
	COLLISION_STAY
	COLLISION_EXIT
)

type pairKey struct {
	a shape.Shape
	b shape.Shape
}

// makePairKey creates a normalized pair key with consistent ordering
func makePairKey(a, b shape.Shape) pairKey {
	if reflect.ValueOf(b).Pointer() < reflect.ValueOf(a).Pointer() {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

type CollisionEnterEvent struct {
	A shape.Shape
	B shape.Shape
}

func (e CollisionEnterEvent) Type() EventType { return COLLISION_ENTER }

type CollisionStayEvent struct {
	A shape.Shape
	B shape.Shape
}

func (e CollisionStayEvent) Type() EventType { return COLLISION_STAY }

type CollisionExitEvent struct {
	A shape.Shape
	B shape.Shape
}

func (e CollisionExitEvent) Type() EventType { return COLLISION_EXIT }

// EventListener - callback for events
type EventListener func(event Event)

// Events tracks which pairs collided on each frame and notifies listeners
// of enter, stay and exit transitions. The collision routines themselves
// keep no state; the host records pairs during the frame, directly or
// through Check, then calls Flush once per frame.
type Events struct {
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Collision tracking for Enter/Stay/Exit detection
	previousActivePairs map[pairKey]bool
	currentActivePairs  map[pairKey]bool
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]Event, 0, 256),
		previousActivePairs: make(map[pairKey]bool),
		currentActivePairs:  make(map[pairKey]bool),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// Check runs Collide on the pair and records it when it hit.
func (e *Events) Check(a, b shape.Shape, opts Options) (Collision, error) {
	collision, err := Collide(a, b, opts, nil)
	if err != nil {
		return collision, err
	}
	if collision.Hit {
		e.Record(a, b)
	}
	return collision, nil
}

// Record marks the pair as colliding for the current frame.
func (e *Events) Record(a, b shape.Shape) {
	e.currentActivePairs[makePairKey(a, b)] = true
}

// Forget drops all tracking of the shape, so removing it from the host
// scene does not fire a late exit event.
func (e *Events) Forget(s shape.Shape) {
	for pair := range e.previousActivePairs {
		if pair.a == s || pair.b == s {
			delete(e.previousActivePairs, pair)
		}
	}
	for pair := range e.currentActivePairs {
		if pair.a == s || pair.b == s {
			delete(e.currentActivePairs, pair)
		}
	}
}

// processCollisionEvents compares current and previous pairs to detect
// Enter/Stay/Exit
func (e *Events) processCollisionEvents() {
	for pair := range e.currentActivePairs {
		if e.previousActivePairs[pair] {
			// Pair was active before and still is, Stay
			e.buffer = append(e.buffer, CollisionStayEvent{A: pair.a, B: pair.b})
		} else {
			// New pair, Enter
			e.buffer = append(e.buffer, CollisionEnterEvent{A: pair.a, B: pair.b})
		}
	}

	for pair := range e.previousActivePairs {
		if !e.currentActivePairs[pair] {
			// Pair no longer active, Exit
			e.buffer = append(e.buffer, CollisionExitEvent{A: pair.a, B: pair.b})
		}
	}

	// Swap for next frame and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
}

// Flush detects the frame transitions then delivers the buffered events.
func (e *Events) Flush() {
	e.processCollisionEvents()

	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
