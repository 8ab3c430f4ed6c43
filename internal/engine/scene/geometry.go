package scene

import (
	"sort"

	"github.com/Faultbox/lemniscate-torus/pkg/lemniscate"
	"github.com/Faultbox/lemniscate-torus/pkg/math"
)

// polylineVertices flattens points to xyz float32 triples.
func polylineVertices(points []lemniscate.Point) []float32 {
	out := make([]float32, 0, len(points)*3)
	for _, p := range points {
		v := p.Vec3()
		out = append(out, v.X, v.Y, v.Z)
	}
	return out
}

// centroid returns the mean of flattened xyz positions.
func centroid(positions []float32) math.Vec3 {
	n := len(positions) / 3
	if n == 0 {
		return math.Vec3{}
	}
	var c math.Vec3
	for i := 0; i < n; i++ {
		c.X += positions[i*3]
		c.Y += positions[i*3+1]
		c.Z += positions[i*3+2]
	}
	return c.Scale(1 / float32(n))
}

// drawOrder returns visible objects with opaque ones first in creation
// order, then transparent ones from farthest to nearest eye.
func drawOrder(objects map[Handle]*object, eye math.Vec3) []*object {
	var opaque, transparent []*object
	for _, o := range objects {
		if !o.visible || o.count == 0 {
			continue
		}
		if o.material.Transparent() {
			transparent = append(transparent, o)
		} else {
			opaque = append(opaque, o)
		}
	}

	sort.Slice(opaque, func(i, j int) bool { return opaque[i].handle < opaque[j].handle })
	sort.SliceStable(transparent, func(i, j int) bool {
		di := transparent[i].worldCenter().Distance(eye)
		dj := transparent[j].worldCenter().Distance(eye)
		if di != dj {
			return di > dj
		}
		return transparent[i].handle < transparent[j].handle
	})
	return append(opaque, transparent...)
}
