package overlap

import (
	"github.com/akmonengine/plume/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// Region identifies where a circle sits relative to a rectangle's
// perimeter.
type Region int

const (
	RegionNone Region = iota
	RegionTopLeft
	RegionTopMiddle
	RegionTopRight
	RegionLeftMiddle
	RegionRightMiddle
	RegionBottomLeft
	RegionBottomMiddle
	RegionBottomRight
)

func (r Region) String() string {
	switch r {
	case RegionTopLeft:
		return "topLeft"
	case RegionTopMiddle:
		return "topMiddle"
	case RegionTopRight:
		return "topRight"
	case RegionLeftMiddle:
		return "leftMiddle"
	case RegionRightMiddle:
		return "rightMiddle"
	case RegionBottomLeft:
		return "bottomLeft"
	case RegionBottomMiddle:
		return "bottomMiddle"
	case RegionBottomRight:
		return "bottomRight"
	}
	return "none"
}

// RegionOf classifies the circle's center relative to the rectangle. The
// corner bands are widened by one unit on each side so ambiguous
// near-corner contacts classify as edge contacts and resolve flat, which
// slides more naturally under subsequent frames. The classification is
// total: a center inside the rectangle falls into the middle band.
func RegionOf(c *shape.Circle, r *shape.Rectangle, frame shape.Frame) Region {
	center := c.Center(frame)
	rectCenter := r.Center(frame)
	halfWidth, halfHeight := r.HalfWidth(), r.HalfHeight()

	switch {
	case center.Y() < rectCenter.Y()-halfHeight:
		// Au-dessus du bord supérieur
		switch {
		case center.X() < rectCenter.X()-1-halfWidth:
			return RegionTopLeft
		case center.X() > rectCenter.X()+1+halfWidth:
			return RegionTopRight
		default:
			return RegionTopMiddle
		}
	case center.Y() > rectCenter.Y()+halfHeight:
		// Sous le bord inférieur
		switch {
		case center.X() < rectCenter.X()-1-halfWidth:
			return RegionBottomLeft
		case center.X() > rectCenter.X()+1+halfWidth:
			return RegionBottomRight
		default:
			return RegionBottomMiddle
		}
	default:
		if center.X() < rectCenter.X()-halfWidth {
			return RegionLeftMiddle
		}
		return RegionRightMiddle
	}
}

// Corner returns the rectangle corner the region names, in the chosen
// frame. ok is false for the edge-middle regions and RegionNone.
func (reg Region) Corner(r *shape.Rectangle, frame shape.Frame) (mgl64.Vec2, bool) {
	center := r.Center(frame)
	halfWidth, halfHeight := r.HalfWidth(), r.HalfHeight()

	switch reg {
	case RegionTopLeft:
		return mgl64.Vec2{center.X() - halfWidth, center.Y() - halfHeight}, true
	case RegionTopRight:
		return mgl64.Vec2{center.X() + halfWidth, center.Y() - halfHeight}, true
	case RegionBottomLeft:
		return mgl64.Vec2{center.X() - halfWidth, center.Y() + halfHeight}, true
	case RegionBottomRight:
		return mgl64.Vec2{center.X() + halfWidth, center.Y() + halfHeight}, true
	}
	return mgl64.Vec2{}, false
}
