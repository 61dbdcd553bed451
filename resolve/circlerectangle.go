package resolve

import (
	"github.com/akmonengine/plume/overlap"
	"github.com/akmonengine/plume/shape"
)

// CircleRectangle resolves a circle against a rectangle. The region of the
// circle's center picks the response: edge-middle regions run the rectangle
// separation with the circle's bounding square in the moving role, corner
// regions run the circle separation against the promoted corner point.
// Only the circle moves. Returns the region on hit, RegionNone otherwise.
func CircleRectangle(c *shape.Circle, r *shape.Rectangle, bounce bool, frame shape.Frame) overlap.Region {
	region := overlap.RegionOf(c, r, frame)

	var hit bool
	if corner, ok := region.Corner(r, frame); ok {
		hit = Circles(c, shape.PointCircle(corner), bounce, frame)
	} else {
		hit = boxes(&c.Body, c.Radius(), c.Radius(), &r.Body, r.HalfWidth(), r.HalfHeight(), bounce, frame) != SideNone
	}

	if !hit {
		return overlap.RegionNone
	}
	return region
}
