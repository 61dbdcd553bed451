// Package shape defines the collision shapes handled by plume.
//
// A shape's kind is decided once at construction: Rectangle, Circle or
// Point. Rectangles and circles are anchored at the top-left corner of
// their bounds, the way sprite hosts usually lay them out, and carry their
// anchors in two frames (see Frame).
package shape

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Shape is implemented by Rectangle, Circle and Point.
type Shape interface {
	// Center returns the geometric center in the chosen frame.
	Center(frame Frame) mgl64.Vec2
}

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	Body
	Width  float64
	Height float64
}

// NewRectangle creates a rectangle anchored at (x, y) in both frames.
func NewRectangle(x, y, width, height float64) *Rectangle {
	return &Rectangle{
		Body:   Body{Position: mgl64.Vec2{x, y}, GlobalPosition: mgl64.Vec2{x, y}, Mass: 1},
		Width:  width,
		Height: height,
	}
}

// HalfWidth returns half the width as a magnitude, so hosts that flip
// sprites by negating a dimension still collide correctly.
func (r *Rectangle) HalfWidth() float64 {
	return math.Abs(r.Width) / 2
}

func (r *Rectangle) HalfHeight() float64 {
	return math.Abs(r.Height) / 2
}

func (r *Rectangle) Center(frame Frame) mgl64.Vec2 {
	anchor := r.Anchor(frame)
	return mgl64.Vec2{anchor.X() + r.HalfWidth(), anchor.Y() + r.HalfHeight()}
}

// Circle is a circle anchored at the top-left corner of its bounding square.
type Circle struct {
	Body
	Diameter float64
}

// NewCircle creates a circle anchored at (x, y) in both frames.
func NewCircle(x, y, diameter float64) *Circle {
	return &Circle{
		Body:     Body{Position: mgl64.Vec2{x, y}, GlobalPosition: mgl64.Vec2{x, y}, Mass: 1},
		Diameter: diameter,
	}
}

func (c *Circle) Radius() float64 {
	return math.Abs(c.Diameter) / 2
}

func (c *Circle) Center(frame Frame) mgl64.Vec2 {
	anchor := c.Anchor(frame)
	radius := c.Radius()
	return mgl64.Vec2{anchor.X() + radius, anchor.Y() + radius}
}

// Point is a bare position, identical in either frame.
type Point struct {
	Position mgl64.Vec2
}

func NewPoint(x, y float64) *Point {
	return &Point{Position: mgl64.Vec2{x, y}}
}

func (p *Point) Center(Frame) mgl64.Vec2 {
	return p.Position
}

// Circle promotes the point to a diameter-1 circle so circle routines can
// treat it uniformly.
func (p *Point) Circle() *Circle {
	return PointCircle(p.Position)
}

// PointCircle returns a diameter-1 circle whose center sits exactly on at,
// in both frames. Corner-region dispatch uses it to test a circle against a
// rectangle corner.
func PointCircle(at mgl64.Vec2) *Circle {
	anchor := at.Sub(mgl64.Vec2{0.5, 0.5})
	return &Circle{
		Body:     Body{Position: anchor, GlobalPosition: anchor, Mass: 1},
		Diameter: 1,
	}
}
