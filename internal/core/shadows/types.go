package shadows

import "math"

// Point represents a 2D point in world space
type Point struct {
	X, Y float64
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the delta from q to p
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p multiplied by s
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// IsFinite reports whether both coordinates are finite numbers
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// FromAngle returns the unit vector pointing at angle (radians)
func FromAngle(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{cos, sin}
}

// Segment represents an opaque wall between two world-space points
type Segment struct {
	A, B Point
}

// Degenerate reports whether the segment has zero length
func (s Segment) Degenerate() bool {
	return s.A == s.B
}

// Ray is a probe cast from Start toward End. Only the direction matters
// for intersection; End is a point somewhere along it.
type Ray struct {
	Start, End Point
}

// NewRay creates a ray from start toward end
func NewRay(start, end Point) Ray {
	return Ray{Start: start, End: end}
}

// Direction returns End - Start
func (r Ray) Direction() Point {
	return r.End.Sub(r.Start)
}

// Translate moves both ends of the ray by delta
func (r Ray) Translate(delta Point) Ray {
	return Ray{Start: r.Start.Add(delta), End: r.End.Add(delta)}
}

// TranslateTo moves the ray so it starts at p, keeping its direction
func (r Ray) TranslateTo(p Point) Ray {
	return r.Translate(p.Sub(r.Start))
}

// Scale stretches the ray's length by s around its start
func (r Ray) Scale(s float64) Ray {
	return Ray{Start: r.Start, End: r.Start.Add(r.Direction().Scale(s))}
}

// ResolvedRay is a probe ray truncated at its nearest obstacle hit.
// T is the hit's parameter along the original ray direction.
type ResolvedRay struct {
	Start Point
	Hit   Point
	T     float64
}

// Triangle is one slice of the visibility fan; Source is the shared vertex
type Triangle struct {
	A, B   Point
	Source Point
}

// Area returns the unsigned area of the triangle
func (t Triangle) Area() float64 {
	cross := (t.B.X-t.A.X)*(t.Source.Y-t.A.Y) - (t.B.Y-t.A.Y)*(t.Source.X-t.A.X)
	return math.Abs(cross) / 2
}
