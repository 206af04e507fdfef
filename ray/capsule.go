package ray

import (
	"math"

	"github.com/katalvlaran/bvh3/xform"
)

// IntersectCapsule tests r against the swept-sphere capsule of the given
// radius along segment [start,end]. It solves the ray-vs-infinite-cylinder
// quadratic for the capsule's axis, accepts roots whose projection falls
// within the segment, and also tests the two end-cap spheres, returning the
// smallest non-negative hit distance among all candidates.
//
// A capsule whose axis length is below Epsilon degenerates to a single
// sphere test at start, per spec.md §4.4.
// Complexity: O(1).
func (r Ray) IntersectCapsule(start, end xform.Vec3, radius float64) (float64, bool) {
	axis := end.Sub(start)
	axisLen := axis.Length()
	if axisLen < Epsilon {
		return r.IntersectSphere(start, radius)
	}
	axisDir := axis.Scale(1 / axisLen)

	oc := r.Origin.Sub(start)
	dPerp := r.Direction.Sub(axisDir.Scale(r.Direction.Dot(axisDir)))
	ocPerp := oc.Sub(axisDir.Scale(oc.Dot(axisDir)))

	a := dPerp.Dot(dPerp)
	b := 2 * dPerp.Dot(ocPerp)
	c := ocPerp.Dot(ocPerp) - radius*radius

	best := Miss
	found := false
	consider := func(t float64) {
		if t < 0 {
			return
		}
		if !found || t < best {
			best, found = t, true
		}
	}

	if a > 1e-12 {
		disc := b*b - 4*a*c
		if disc >= 0 {
			sq := math.Sqrt(disc)
			for _, t := range [2]float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
				if t < 0 {
					continue
				}
				proj := r.GetPoint(t).Sub(start).Dot(axisDir)
				if proj >= 0 && proj <= axisLen {
					consider(t)
				}
			}
		}
	}

	if t, ok := r.IntersectSphere(start, radius); ok {
		consider(t)
	}
	if t, ok := r.IntersectSphere(end, radius); ok {
		consider(t)
	}

	return best, found
}
