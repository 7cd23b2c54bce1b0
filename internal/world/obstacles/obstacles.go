// Package obstacles holds the opaque wall segments that block light.
// Each obstacle is a pair of offsets from an anchor; moving the anchor
// translates both endpoints together.
package obstacles

import (
	"errors"
	"fmt"
	"math"

	"chosenoffset.com/lightcast/internal/core/shadows"
)

var (
	// ErrDegenerate is returned for obstacles whose endpoints coincide
	ErrDegenerate = errors.New("degenerate obstacle")
	// ErrEmpty is returned when a set would contain no obstacles
	ErrEmpty = errors.New("no obstacles")
)

// Obstacle is one opaque wall anchored to a world position
type Obstacle struct {
	Anchor      shadows.Point
	StartOffset shadows.Point
	EndOffset   shadows.Point
}

// Segment returns the obstacle in world space
func (o Obstacle) Segment() shadows.Segment {
	return shadows.Segment{
		A: o.Anchor.Add(o.StartOffset),
		B: o.Anchor.Add(o.EndOffset),
	}
}

// Set is the collection of obstacles in a scene. Obstacles are read in
// insertion order, which is also the tie-break order for equal hits.
type Set struct {
	obstacles []Obstacle
}

// New validates the obstacles and builds a set from them
func New(list []Obstacle) (*Set, error) {
	if len(list) == 0 {
		return nil, ErrEmpty
	}
	for i, o := range list {
		if o.StartOffset == o.EndOffset {
			return nil, fmt.Errorf("obstacle %d: %w", i, ErrDegenerate)
		}
		if !o.Segment().A.IsFinite() || !o.Segment().B.IsFinite() {
			return nil, fmt.Errorf("obstacle %d: non-finite coordinates", i)
		}
	}

	owned := make([]Obstacle, len(list))
	copy(owned, list)
	return &Set{obstacles: owned}, nil
}

// FromSegments builds a set of obstacles anchored at the origin
func FromSegments(segs []shadows.Segment) (*Set, error) {
	list := make([]Obstacle, len(segs))
	for i, s := range segs {
		list[i] = Obstacle{StartOffset: s.A, EndOffset: s.B}
	}
	return New(list)
}

// Len returns the number of obstacles
func (s *Set) Len() int {
	return len(s.obstacles)
}

// At returns the i-th obstacle
func (s *Set) At(i int) Obstacle {
	return s.obstacles[i]
}

// Segments returns a world-space snapshot of every obstacle. The snapshot
// is not affected by later anchor moves.
func (s *Set) Segments() []shadows.Segment {
	return s.AppendSegments(make([]shadows.Segment, 0, len(s.obstacles)))
}

// AppendSegments appends the world-space snapshot to dst
func (s *Set) AppendSegments(dst []shadows.Segment) []shadows.Segment {
	for _, o := range s.obstacles {
		dst = append(dst, o.Segment())
	}
	return dst
}

// Translate moves obstacle i by delta
func (s *Set) Translate(i int, delta shadows.Point) error {
	if i < 0 || i >= len(s.obstacles) {
		return fmt.Errorf("obstacle index %d out of range [0, %d)", i, len(s.obstacles))
	}
	s.obstacles[i].Anchor = s.obstacles[i].Anchor.Add(delta)
	return nil
}

// SetAnchor places obstacle i's anchor at p
func (s *Set) SetAnchor(i int, p shadows.Point) error {
	if i < 0 || i >= len(s.obstacles) {
		return fmt.Errorf("obstacle index %d out of range [0, %d)", i, len(s.obstacles))
	}
	s.obstacles[i].Anchor = p
	return nil
}

// Bounds returns the corners of the axis-aligned box around all obstacles
func (s *Set) Bounds() (lo, hi shadows.Point) {
	lo = shadows.Point{X: math.Inf(1), Y: math.Inf(1)}
	hi = shadows.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, o := range s.obstacles {
		seg := o.Segment()
		for _, p := range [2]shadows.Point{seg.A, seg.B} {
			lo.X = math.Min(lo.X, p.X)
			lo.Y = math.Min(lo.Y, p.Y)
			hi.X = math.Max(hi.X, p.X)
			hi.Y = math.Max(hi.Y, p.Y)
		}
	}
	return lo, hi
}

// Encloses reports whether p lies strictly inside the obstacles' bounds.
// It does not check that the outer walls are closed.
func (s *Set) Encloses(p shadows.Point) bool {
	lo, hi := s.Bounds()
	return p.X > lo.X && p.X < hi.X && p.Y > lo.Y && p.Y < hi.Y
}

// Clamp pulls p inside the bounds by margin
func (s *Set) Clamp(p shadows.Point, margin float64) shadows.Point {
	lo, hi := s.Bounds()
	p.X = math.Max(lo.X+margin, math.Min(hi.X-margin, p.X))
	p.Y = math.Max(lo.Y+margin, math.Min(hi.Y-margin, p.Y))
	return p
}
