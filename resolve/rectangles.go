package resolve

import (
	"math"

	"github.com/akmonengine/plume/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// Side identifies which side of the moving rectangle touched the other one.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Rectangles separates two overlapping rectangles by moving r1 out along
// the axis carrying the smaller overlap. With bounce, r1's velocity
// component on that axis is inverted. Returns the side of r1 that touched
// r2, or SideNone when the rectangles do not overlap.
func Rectangles(r1, r2 *shape.Rectangle, bounce bool, frame shape.Frame) Side {
	return boxes(&r1.Body, r1.HalfWidth(), r1.HalfHeight(), &r2.Body, r2.HalfWidth(), r2.HalfHeight(), bounce, frame)
}

// boxes is the minimum-translation separation over explicit half-extents,
// shared with CircleRectangle so a circle's bounding square can play the
// moving role. Only b1 moves, and only its local Position.
func boxes(b1 *shape.Body, hw1, hh1 float64, b2 *shape.Body, hw2, hh2 float64, bounce bool, frame shape.Frame) Side {
	a1, a2 := b1.Anchor(frame), b2.Anchor(frame)

	vx := (a1.X() + hw1) - (a2.X() + hw2)
	vy := (a1.Y() + hh1) - (a2.Y() + hh2)
	combinedHalfWidths := hw1 + hw2
	combinedHalfHeights := hh1 + hh2

	if math.Abs(vx) >= combinedHalfWidths || math.Abs(vy) >= combinedHalfHeights {
		return SideNone
	}

	overlapX := combinedHalfWidths - math.Abs(vx)
	overlapY := combinedHalfHeights - math.Abs(vy)

	var side Side
	if overlapX >= overlapY {
		// L'axe vertical porte le plus petit recouvrement
		if vy > 0 {
			side = SideTop
			b1.Position = mgl64.Vec2{b1.Position.X(), b1.Position.Y() + overlapY}
		} else {
			side = SideBottom
			b1.Position = mgl64.Vec2{b1.Position.X(), b1.Position.Y() - overlapY}
		}
		if bounce {
			b1.Velocity = mgl64.Vec2{b1.Velocity.X(), -b1.Velocity.Y()}
		}
	} else {
		if vx > 0 {
			side = SideLeft
			b1.Position = mgl64.Vec2{b1.Position.X() + overlapX, b1.Position.Y()}
		} else {
			side = SideRight
			b1.Position = mgl64.Vec2{b1.Position.X() - overlapX, b1.Position.Y()}
		}
		if bounce {
			b1.Velocity = mgl64.Vec2{-b1.Velocity.X(), b1.Velocity.Y()}
		}
	}

	return side
}
