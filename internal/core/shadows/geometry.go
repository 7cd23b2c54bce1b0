package shadows

import "math"

// AngleBetween returns the angle of the vector from a to b in (-π, π].
// Ray generation and the angular sort of hit points both use it, so the
// two stay consistent.
func AngleBetween(a, b Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// PointInPolygon tests if a point is inside a polygon using ray casting algorithm
func PointInPolygon(point Point, polygon []Point) bool {
	inside := false
	j := len(polygon) - 1

	for i := 0; i < len(polygon); i++ {
		xi, yi := polygon[i].X, polygon[i].Y
		xj, yj := polygon[j].X, polygon[j].Y

		if ((yi > point.Y) != (yj > point.Y)) &&
			(point.X < (xj-xi)*(point.Y-yi)/(yj-yi)+xi) {
			inside = !inside
		}
		j = i
	}

	return inside
}

// PointInTriangle reports whether p lies inside or on the edge of t
func PointInTriangle(p Point, t Triangle) bool {
	d1 := cross(p, t.A, t.B)
	d2 := cross(p, t.B, t.Source)
	d3 := cross(p, t.Source, t.A)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// PointInFan reports whether p is covered by any triangle of the fan
func PointInFan(p Point, tris []Triangle) bool {
	for _, t := range tris {
		if PointInTriangle(p, t) {
			return true
		}
	}
	return false
}

func cross(p, a, b Point) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}
