// Package resolve separates overlapping shapes and computes post-collision
// velocities.
//
// Positional corrections follow the minimum-translation heuristic: the
// smallest displacement that eliminates the overlap, per-axis for
// rectangles and along the center-to-center normal for circles. Velocity
// responses build on a single reflection primitive (BounceOffSurface) and,
// for two moving circles, on the classic one-dimensional elastic exchange
// along the collision normal.
//
// Every routine mutates the local Position and the Velocity of the shapes
// it moves, synchronously and in place; global anchors are read-only input.
package resolve

import (
	"math"

	"github.com/akmonengine/plume/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// ContactPadding is the extra separation added when resolving circle
// overlap, so the pair does not land back in contact on the next frame.
const ContactPadding = 0.3

// Rebound carries the combined bounce vector computed for each circle by
// MovingCircles, before the per-body mass division.
type Rebound struct {
	A mgl64.Vec2
	B mgl64.Vec2
}

// Circles separates two overlapping circles by moving c1 back along the
// center-to-center direction by the padded overlap; c2 stays. With bounce,
// c1's velocity is reflected off the contact tangent. Reports whether the
// circles overlapped; coincident centers report false.
func Circles(c1, c2 *shape.Circle, bounce bool, frame shape.Frame) bool {
	v := c2.Center(frame).Sub(c1.Center(frame))
	magnitude := v.Len()

	if magnitude >= c1.Radius()+c2.Radius() || magnitude == 0 {
		return false
	}

	overlap := c1.Radius() + c2.Radius() - magnitude + ContactPadding
	direction := v.Mul(1 / magnitude)

	c1.Position = c1.Position.Sub(direction.Mul(overlap))

	if bounce {
		BounceOffSurface(&c1.Body, leftNormal(v))
	}

	return true
}

// MovingCircles resolves two circles that may both be moving. The padded
// overlap is split in half between them, the push direction decided per
// axis from the local anchors. The circles then exchange the velocity
// components carried along the collision normal and keep their own
// tangential components, each combined vector divided by that circle's
// mass. The pre-division vectors are returned for inspection. Coincident
// centers report no collision.
func MovingCircles(c1, c2 *shape.Circle, frame shape.Frame) (Rebound, bool) {
	v := c2.Center(frame).Sub(c1.Center(frame))
	magnitude := v.Len()

	if magnitude >= c1.Radius()+c2.Radius() || magnitude == 0 {
		return Rebound{}, false
	}

	overlap := c1.Radius() + c2.Radius() - magnitude + ContactPadding
	normal := v.Mul(1 / magnitude)

	// Répartir la séparation entre les deux cercles, signe décidé par axe
	halfX := math.Abs(normal.X() * overlap / 2)
	halfY := math.Abs(normal.Y() * overlap / 2)
	xSide, ySide := -1.0, -1.0
	if c1.Position.X() > c2.Position.X() {
		xSide = 1
	}
	if c1.Position.Y() > c2.Position.Y() {
		ySide = 1
	}
	c1.Position = c1.Position.Add(mgl64.Vec2{halfX * xSide, halfY * ySide})
	c2.Position = c2.Position.Add(mgl64.Vec2{halfX * -xSide, halfY * -ySide})

	tangent := leftNormal(v).Mul(1 / magnitude)

	normal1 := normal.Mul(c1.Velocity.Dot(normal))
	tangent1 := tangent.Mul(c1.Velocity.Dot(tangent))
	normal2 := normal.Mul(c2.Velocity.Dot(normal))
	tangent2 := tangent.Mul(c2.Velocity.Dot(tangent))

	// Echange élastique des composantes normales
	rebound := Rebound{
		A: normal2.Add(tangent1),
		B: normal1.Add(tangent2),
	}

	c1.Velocity = rebound.A.Mul(1 / c1.GetMass())
	c2.Velocity = rebound.B.Mul(1 / c2.GetMass())

	return rebound, true
}

// CircleGroup resolves every unordered pair of the group with
// MovingCircles, pairs visited in ascending index order, each exactly once,
// with no early exit. Pair order affects the outcome when more than two
// bodies overlap at once; that approximation is accepted.
func CircleGroup(circles []*shape.Circle, frame shape.Frame) {
	for i := 0; i < len(circles); i++ {
		for j := i + 1; j < len(circles); j++ {
			MovingCircles(circles[i], circles[j], frame)
		}
	}
}
