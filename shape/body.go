package shape

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Frame selects which coordinate frame a routine reads positions from.
type Frame int

const (
	// FrameLocal reads the object-relative anchors (Position).
	FrameLocal Frame = iota

	// FrameGlobal reads the world/stage anchors (GlobalPosition),
	// maintained by the host's display tree.
	FrameGlobal
)

// Body holds the kinematic state shared by rectangles and circles.
//
// Position and GlobalPosition are top-left anchors in the two frames.
// Resolution routines mutate Position and Velocity only; GlobalPosition is
// host-owned input and is never written here.
type Body struct {
	Position       mgl64.Vec2
	GlobalPosition mgl64.Vec2
	Velocity       mgl64.Vec2
	Mass           float64
}

// Anchor returns the top-left anchor in the chosen frame.
func (b *Body) Anchor(frame Frame) mgl64.Vec2 {
	if frame == FrameGlobal {
		return b.GlobalPosition
	}
	return b.Position
}

// GetMass returns the body's mass, treating values below 1 (including the
// zero value) as 1.
func (b *Body) GetMass() float64 {
	if b.Mass < 1 {
		return 1
	}
	return b.Mass
}
