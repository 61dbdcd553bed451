package resolve

import (
	"github.com/akmonengine/plume/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// BounceOffSurface reflects the body's velocity off a surface described by
// its tangent direction: the component along the surface's left-hand normal
// is negated, the tangential component kept, and the recombined vector
// divided by the body's mass. A zero-length surface leaves the velocity
// untouched.
func BounceOffSurface(b *shape.Body, surface mgl64.Vec2) {
	magnitude := surface.Len()
	if magnitude == 0 {
		return
	}

	tangent := surface.Mul(1 / magnitude)
	normal := leftNormal(surface).Mul(1 / magnitude)

	kept := tangent.Mul(b.Velocity.Dot(tangent))
	reflected := normal.Mul(-b.Velocity.Dot(normal))

	b.Velocity = kept.Add(reflected).Mul(1 / b.GetMass())
}

// leftNormal rotates v a quarter turn in screen coordinates (y down).
func leftNormal(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{v.Y(), -v.X()}
}
