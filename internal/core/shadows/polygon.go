package shadows

import (
	"cmp"
	"slices"
)

// SortByAngle orders pts in place by their angle around source, ascending.
// cmp.Compare gives a total order even for NaN, so a bad point lands first
// instead of corrupting the sort. Equal angles keep their input order.
func SortByAngle(source Point, pts []Point) {
	slices.SortStableFunc(pts, func(a, b Point) int {
		return cmp.Compare(AngleBetween(source, a), AngleBetween(source, b))
	})
}

// BuildFan turns unordered hit points into a closed triangle fan around
// source that tiles the visibility polygon. The input slice is not
// modified. Consecutive identical points produce no triangle.
func BuildFan(source Point, hits []Point) []Triangle {
	if len(hits) == 0 {
		return nil
	}

	ring := make([]Point, len(hits), len(hits)+1)
	copy(ring, hits)
	SortByAngle(source, ring)
	ring = append(ring, ring[0])

	tris := make([]Triangle, 0, len(hits))
	for i := 0; i+1 < len(ring); i++ {
		a, b := ring[i], ring[i+1]
		if a == b {
			continue
		}
		tris = append(tris, Triangle{A: a, B: b, Source: source})
	}
	return tris
}

// Outline returns the fan's outer vertices in angular order, closed
func Outline(tris []Triangle) []Point {
	if len(tris) == 0 {
		return nil
	}
	pts := make([]Point, 0, len(tris)+1)
	for _, t := range tris {
		pts = append(pts, t.A)
	}
	return append(pts, tris[len(tris)-1].B)
}

// FanArea sums the area of every triangle in the fan
func FanArea(tris []Triangle) float64 {
	var total float64
	for _, t := range tris {
		total += t.Area()
	}
	return total
}
