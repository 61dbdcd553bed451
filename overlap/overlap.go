// Package overlap provides the narrow-phase hit tests between points,
// circles and axis-aligned rectangles.
//
// All tests are stateless and strict: touching exactly on a boundary does
// not count as overlapping. Pairwise tests read positions in the frame the
// caller selects, which must be the same frame for both operands.
package overlap

import (
	"math"

	"github.com/akmonengine/plume/shape"
)

// PointInRectangle reports whether the point lies strictly inside the
// rectangle's local-frame bounds, edges excluded.
func PointInRectangle(p *shape.Point, r *shape.Rectangle) bool {
	anchor := r.Position
	return p.Position.X() > anchor.X() && p.Position.X() < anchor.X()+r.Width &&
		p.Position.Y() > anchor.Y() && p.Position.Y() < anchor.Y()+r.Height
}

// PointInCircle reports whether the point lies strictly inside the circle,
// local frame.
func PointInCircle(p *shape.Point, c *shape.Circle) bool {
	return p.Position.Sub(c.Center(shape.FrameLocal)).Len() < c.Radius()
}

// Circles reports whether the center distance is strictly below the
// combined radii.
func Circles(c1, c2 *shape.Circle, frame shape.Frame) bool {
	distance := c2.Center(frame).Sub(c1.Center(frame)).Len()
	return distance < c1.Radius()+c2.Radius()
}

// Rectangles reports whether the two rectangles overlap on both axes.
func Rectangles(r1, r2 *shape.Rectangle, frame shape.Frame) bool {
	return boxes(&r1.Body, r1.HalfWidth(), r1.HalfHeight(), &r2.Body, r2.HalfWidth(), r2.HalfHeight(), frame)
}

// CircleRectangle tests a circle against a rectangle. Edge-middle regions
// reduce to a rectangle test with the circle's bounding square, corner
// regions to a circle test against the promoted corner point. Returns the
// region on hit, RegionNone otherwise.
func CircleRectangle(c *shape.Circle, r *shape.Rectangle, frame shape.Frame) Region {
	region := RegionOf(c, r, frame)

	var hit bool
	if corner, ok := region.Corner(r, frame); ok {
		hit = Circles(c, shape.PointCircle(corner), frame)
	} else {
		hit = boxes(&c.Body, c.Radius(), c.Radius(), &r.Body, r.HalfWidth(), r.HalfHeight(), frame)
	}

	if !hit {
		return RegionNone
	}
	return region
}

// boxes runs the per-axis half-extent test over explicit extents, so a
// circle's bounding square can play the rectangle role.
func boxes(b1 *shape.Body, hw1, hh1 float64, b2 *shape.Body, hw2, hh2 float64, frame shape.Frame) bool {
	a1, a2 := b1.Anchor(frame), b2.Anchor(frame)

	vx := (a1.X() + hw1) - (a2.X() + hw2)
	vy := (a1.Y() + hh1) - (a2.Y() + hh2)

	return math.Abs(vx) < hw1+hw2 && math.Abs(vy) < hh1+hh2
}
