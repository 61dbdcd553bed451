// Package plume is a narrow-phase 2D collision detection and resolution
// library for frame-based games.
//
// The host owns the frame loop and the shapes; plume tests pairs on demand
// and, when asked to react, separates the shapes and adjusts their
// velocities in place. Collide is the polymorphic entry point; the overlap
// and resolve subpackages expose every specific test and resolution
// directly.
package plume

import (
	"fmt"

	"github.com/akmonengine/plume/overlap"
	"github.com/akmonengine/plume/resolve"
	"github.com/akmonengine/plume/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// Options configures a Collide call. The zero value tests in the local
// frame without reacting.
type Options struct {
	// UseGlobalCoordinates reads positions from the world/stage anchors
	// instead of the object-local ones.
	UseGlobalCoordinates bool
	// React separates overlapping shapes instead of only detecting.
	React bool
	// Bounce also reflects velocity off the contact surface when reacting.
	Bounce bool
}

func (o Options) frame() shape.Frame {
	if o.UseGlobalCoordinates {
		return shape.FrameGlobal
	}
	return shape.FrameLocal
}

// Collision describes the outcome of one collision test or resolution.
// Side is set by rectangle pairs, Region by circle-rectangle pairs and
// Rebound by moving-circle resolution. Member is the group member that
// produced the result when Collide iterates a group.
type Collision struct {
	Hit     bool
	Side    resolve.Side
	Region  overlap.Region
	Rebound resolve.Rebound
	Member  shape.Shape
}

// Collide tests or resolves a pair of operands. Operands are single shapes
// (*shape.Rectangle, *shape.Circle, *shape.Point) or one []shape.Shape
// group paired with a single shape; the single shape takes the moving role
// whichever argument position it held, and the group is iterated in
// reverse index order with onHit firing once per colliding member, Member
// set. For a single pair onHit fires once on hit. onHit may be nil.
//
// A point operand always runs the pure point test, whatever Options.React
// says. Two circles that both carry a nonzero velocity resolve dynamically
// (momentum exchange) whenever React is set, regardless of Options.Bounce.
//
// Operands that match no recognized kind, two groups, or a point paired
// with a point yield an error.
func Collide(a, b any, opts Options, onHit func(Collision)) (Collision, error) {
	groupA, aIsGroup := a.([]shape.Shape)
	groupB, bIsGroup := b.([]shape.Shape)

	switch {
	case aIsGroup && bIsGroup:
		return Collision{}, invalidPair(a, b)
	case aIsGroup:
		single, ok := b.(shape.Shape)
		if !ok {
			return Collision{}, invalidPair(a, b)
		}
		return collideGroup(single, groupA, opts, onHit)
	case bIsGroup:
		single, ok := a.(shape.Shape)
		if !ok {
			return Collision{}, invalidPair(a, b)
		}
		return collideGroup(single, groupB, opts, onHit)
	}

	shapeA, okA := a.(shape.Shape)
	shapeB, okB := b.(shape.Shape)
	if !okA || !okB {
		return Collision{}, invalidPair(a, b)
	}

	collision, err := collidePair(shapeA, shapeB, opts)
	if err != nil {
		return Collision{}, err
	}
	if collision.Hit && onHit != nil {
		onHit(collision)
	}
	return collision, nil
}

// collideGroup tests the single shape against every group member, last
// index first.
func collideGroup(single shape.Shape, group []shape.Shape, opts Options, onHit func(Collision)) (Collision, error) {
	var anyHit bool
	for i := len(group) - 1; i >= 0; i-- {
		member := group[i]
		collision, err := collidePair(single, member, opts)
		if err != nil {
			return Collision{}, err
		}
		if !collision.Hit {
			continue
		}
		anyHit = true
		collision.Member = member
		if onHit != nil {
			onHit(collision)
		}
	}
	return Collision{Hit: anyHit}, nil
}

// collidePair dispatches over the shape-pair variant.
func collidePair(a, b shape.Shape, opts Options) (Collision, error) {
	switch first := a.(type) {
	case *shape.Circle:
		switch second := b.(type) {
		case *shape.Circle:
			return collideCircles(first, second, opts), nil
		case *shape.Rectangle:
			return collideCircleRectangle(first, second, opts), nil
		case *shape.Point:
			return Collision{Hit: overlap.PointInCircle(second, first)}, nil
		}
	case *shape.Rectangle:
		switch second := b.(type) {
		case *shape.Circle:
			// Le cercle prend toujours le rôle mobile
			return collideCircleRectangle(second, first, opts), nil
		case *shape.Rectangle:
			return collideRectangles(first, second, opts), nil
		case *shape.Point:
			return Collision{Hit: overlap.PointInRectangle(second, first)}, nil
		}
	case *shape.Point:
		switch second := b.(type) {
		case *shape.Circle:
			return Collision{Hit: overlap.PointInCircle(first, second)}, nil
		case *shape.Rectangle:
			return Collision{Hit: overlap.PointInRectangle(first, second)}, nil
		}
	}
	return Collision{}, invalidPair(a, b)
}

func collideCircles(c1, c2 *shape.Circle, opts Options) Collision {
	frame := opts.frame()

	if !opts.React {
		return Collision{Hit: overlap.Circles(c1, c2, frame)}
	}
	if c1.Velocity != (mgl64.Vec2{}) && c2.Velocity != (mgl64.Vec2{}) {
		// Deux corps déjà en mouvement échangent leur quantité de mouvement
		rebound, hit := resolve.MovingCircles(c1, c2, frame)
		return Collision{Hit: hit, Rebound: rebound}
	}
	return Collision{Hit: resolve.Circles(c1, c2, opts.Bounce, frame)}
}

func collideRectangles(r1, r2 *shape.Rectangle, opts Options) Collision {
	frame := opts.frame()

	if !opts.React {
		return Collision{Hit: overlap.Rectangles(r1, r2, frame)}
	}
	side := resolve.Rectangles(r1, r2, opts.Bounce, frame)
	return Collision{Hit: side != resolve.SideNone, Side: side}
}

func collideCircleRectangle(c *shape.Circle, r *shape.Rectangle, opts Options) Collision {
	frame := opts.frame()

	var region overlap.Region
	if opts.React {
		region = resolve.CircleRectangle(c, r, opts.Bounce, frame)
	} else {
		region = overlap.CircleRectangle(c, r, frame)
	}
	return Collision{Hit: region != overlap.RegionNone, Region: region}
}

func invalidPair(a, b any) error {
	return fmt.Errorf("plume: cannot run a collision test between %T and %T", a, b)
}
