// Package term renders the light fan in a terminal with tcell.
package term

import (
	"math"

	"chosenoffset.com/lightcast/internal/core/shadows"
	"chosenoffset.com/lightcast/internal/frame"
	"chosenoffset.com/lightcast/internal/render/camera"
)

// CellKind is what a terminal cell shows
type CellKind uint8

const (
	CellDark CellKind = iota
	CellLit
	CellWall
	CellHit
	CellSource
)

// Grid is a rasterized frame, indexed [row][col]
type Grid [][]CellKind

// NewCamera returns a camera over a terminal of cols x rows cells. Cells
// are about twice as tall as wide, so each row spans two camera pixels.
func NewCamera(minWidth, minHeight float64, cols, rows int) *camera.Camera {
	return camera.New(minWidth, minHeight, cols, rows*2)
}

// CellCentre returns the world position at the centre of a cell
func CellCentre(cam *camera.Camera, col, row int) (shadows.Point, bool) {
	return cam.ScreenToWorld(float64(col)+0.5, float64(2*row)+1)
}

// CellAt returns the cell containing a world point, or false when it is
// off screen.
func CellAt(cam *camera.Camera, p shadows.Point, cols, rows int) (col, row int, ok bool) {
	x, y := cam.WorldToScreen(p)
	col = int(math.Floor(float64(x)))
	row = int(math.Floor(float64(y) / 2))
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return 0, 0, false
	}
	return col, row, true
}

// Rasterize samples the frame at every cell centre. Walls, hit markers
// and the source are stamped over the lit/dark background in that order.
func Rasterize(f *frame.Frame, segs []shadows.Segment, cam *camera.Camera, cols, rows int, markers bool) Grid {
	if cols <= 0 || rows <= 0 {
		return Grid{}
	}
	grid := make(Grid, rows)
	for row := range grid {
		grid[row] = make([]CellKind, cols)
		for col := range grid[row] {
			p, ok := CellCentre(cam, col, row)
			if ok && shadows.PointInFan(p, f.Triangles) {
				grid[row][col] = CellLit
			}
		}
	}

	// Half a cell per step so no cell along a wall is skipped
	step := cam.Scale() / 2
	for _, seg := range segs {
		length := shadows.Distance(seg.A, seg.B)
		n := int(math.Ceil(length/step)) + 1
		for i := 0; i <= n; i++ {
			p := seg.A.Add(seg.B.Sub(seg.A).Scale(float64(i) / float64(n)))
			if col, row, ok := CellAt(cam, p, cols, rows); ok {
				grid[row][col] = CellWall
			}
		}
	}

	if markers {
		for _, hit := range f.Hits {
			if col, row, ok := CellAt(cam, hit, cols, rows); ok {
				grid[row][col] = CellHit
			}
		}
	}

	if col, row, ok := CellAt(cam, f.Source, cols, rows); ok {
		grid[row][col] = CellSource
	}
	return grid
}

// Count returns how many cells are of the given kind
func (g Grid) Count(kind CellKind) int {
	n := 0
	for _, row := range g {
		for _, k := range row {
			if k == kind {
				n++
			}
		}
	}
	return n
}
