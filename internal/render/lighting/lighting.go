// Package lighting turns a visibility fan into GPU-ready triangle batches.
package lighting

import (
	"image/color"

	"chosenoffset.com/lightcast/internal/core/shadows"
	"chosenoffset.com/lightcast/internal/render"
)

// MaxBatchTriangles keeps every vertex index of a batch within uint16
const MaxBatchTriangles = 65535 / 3

// Projector maps world points to screen pixels
type Projector interface {
	WorldToScreen(p shadows.Point) (x, y float32)
}

// Batch is one DrawTriangles call worth of geometry
type Batch struct {
	Vertices []render.Vertex
	Indices  []uint16
}

// FanBatches converts the fan to flat-coloured vertices, split into
// batches small enough for 16-bit indices.
func FanBatches(tris []shadows.Triangle, proj Projector, clr color.Color) []Batch {
	if len(tris) == 0 {
		return nil
	}

	r, g, b, a := premultiplied(clr)
	var batches []Batch
	for start := 0; start < len(tris); start += MaxBatchTriangles {
		end := min(start+MaxBatchTriangles, len(tris))
		chunk := tris[start:end]

		batch := Batch{
			Vertices: make([]render.Vertex, 0, 3*len(chunk)),
			Indices:  make([]uint16, 0, 3*len(chunk)),
		}
		for _, tri := range chunk {
			for _, p := range [3]shadows.Point{tri.A, tri.B, tri.Source} {
				x, y := proj.WorldToScreen(p)
				batch.Indices = append(batch.Indices, uint16(len(batch.Vertices)))
				batch.Vertices = append(batch.Vertices, render.Vertex{
					DstX:   x,
					DstY:   y,
					ColorR: r,
					ColorG: g,
					ColorB: b,
					ColorA: a,
				})
			}
		}
		batches = append(batches, batch)
	}
	return batches
}

// DrawFan paints the fan onto dst. src must be a 1x1 white image.
func DrawFan(dst, src render.Image, tris []shadows.Triangle, proj Projector, clr color.Color) {
	for _, batch := range FanBatches(tris, proj, clr) {
		dst.DrawTriangles(batch.Vertices, batch.Indices, src, &render.DrawTrianglesOptions{AntiAlias: false})
	}
}

// premultiplied returns clr as premultiplied [0, 1] components, the form
// vertex colours are blended in.
func premultiplied(clr color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := clr.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}
