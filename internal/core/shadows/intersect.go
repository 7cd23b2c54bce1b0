package shadows

import "math"

// DefaultTolerance widens the segment parameter range so rays aimed
// exactly at an endpoint still register despite rounding.
const DefaultTolerance = 1e-5

// Intersect finds where ray r crosses segment s.
//
// With the ray as p1->p2 and the segment as p3->p4, t is the parameter
// along the ray and u the parameter along the segment. A hit needs t > 0
// and u within [-tol, 1+tol]. Parallel pairs (den == 0), degenerate
// segments and non-finite parameters are misses.
func Intersect(r Ray, s Segment, tol float64) (Point, float64, bool) {
	if s.Degenerate() {
		return Point{}, 0, false
	}

	x1, y1 := r.Start.X, r.Start.Y
	x2, y2 := r.End.X, r.End.Y
	x3, y3 := s.A.X, s.A.Y
	x4, y4 := s.B.X, s.B.Y

	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if den == 0 {
		return Point{}, 0, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / den
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / den

	// NaN fails every comparison below, so only Inf needs an explicit check.
	if math.IsInf(t, 0) || math.IsInf(u, 0) {
		return Point{}, 0, false
	}
	if !(t > 0) || !(u >= -tol && u <= 1+tol) {
		return Point{}, 0, false
	}

	return Point{X: x1 + t*(x2-x1), Y: y1 + t*(y2-y1)}, t, true
}

// Resolve truncates r at the nearest obstacle it hits. Among equal t the
// first segment in iteration order wins. It reports false when nothing is
// hit.
func Resolve(r Ray, segs []Segment, tol float64) (ResolvedRay, bool) {
	best := ResolvedRay{Start: r.Start}
	found := false

	for _, seg := range segs {
		hit, t, ok := Intersect(r, seg, tol)
		if !ok {
			continue
		}
		if !found || t < best.T {
			best.Hit = hit
			best.T = t
			found = true
		}
	}

	return best, found
}

// ResolveAll resolves every ray and keeps only those that hit something,
// in ray order.
func ResolveAll(rays []Ray, segs []Segment, tol float64) []ResolvedRay {
	return AppendResolved(make([]ResolvedRay, 0, len(rays)), rays, segs, tol)
}

// AppendResolved is ResolveAll appending into dst
func AppendResolved(dst []ResolvedRay, rays []Ray, segs []Segment, tol float64) []ResolvedRay {
	for _, r := range rays {
		if res, ok := Resolve(r, segs, tol); ok {
			dst = append(dst, res)
		}
	}
	return dst
}

// Hits extracts the hit points of resolved rays
func Hits(resolved []ResolvedRay) []Point {
	pts := make([]Point, len(resolved))
	for i, r := range resolved {
		pts[i] = r.Hit
	}
	return pts
}
