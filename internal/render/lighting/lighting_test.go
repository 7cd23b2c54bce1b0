package lighting

import (
	"image"
	"image/color"
	"math"
	"testing"

	"chosenoffset.com/lightcast/internal/core/shadows"
	"chosenoffset.com/lightcast/internal/render"
)

type flipY struct{}

func (flipY) WorldToScreen(p shadows.Point) (float32, float32) {
	return float32(p.X), float32(-p.Y)
}

type recordingImage struct {
	calls    int
	vertices int
}

func (i *recordingImage) Bounds() image.Rectangle { return image.Rect(0, 0, 1, 1) }
func (i *recordingImage) Size() (int, int) { return 1, 1 }
func (i *recordingImage) Fill(clr color.Color) {}
func (i *recordingImage) Clear() {}
func (i *recordingImage) Dispose() {}
func (i *recordingImage) DrawTriangles(vertices []render.Vertex, indices []uint16, img render.Image, opts *render.DrawTrianglesOptions) {
	i.calls++
	i.vertices += len(vertices)
}

func TestFanBatches(t *testing.T) {
	tris := []shadows.Triangle{
		{A: shadows.Point{X: 1, Y: 1}, B: shadows.Point{X: -1, Y: 1}, Source: shadows.Point{}},
		{A: shadows.Point{X: -1, Y: 1}, B: shadows.Point{X: 0, Y: -2}, Source: shadows.Point{}},
	}

	batches := FanBatches(tris, flipY{}, color.NRGBA{0xff, 0xb3, 0x27, 0xff})
	if len(batches) != 1 {
		t.Fatalf("Expected 1 batch, got %d", len(batches))
	}

	b := batches[0]
	if len(b.Vertices) != 6 || len(b.Indices) != 6 {
		t.Fatalf("Expected 6 vertices and indices, got %d and %d", len(b.Vertices), len(b.Indices))
	}
	for i, idx := range b.Indices {
		if int(idx) != i {
			t.Errorf("Expected index %d, got %d", i, idx)
		}
	}

	first := b.Vertices[0]
	if first.DstX != 1 || first.DstY != -1 {
		t.Errorf("Expected projected vertex (1, -1), got (%v, %v)", first.DstX, first.DstY)
	}
	if src := b.Vertices[2]; src.DstX != 0 || src.DstY != 0 {
		t.Errorf("Expected third vertex at the source, got (%v, %v)", src.DstX, src.DstY)
	}
	if first.ColorR != 1 || first.ColorA != 1 {
		t.Errorf("Expected opaque red channel 1, got r=%v a=%v", first.ColorR, first.ColorA)
	}
	if math.Abs(float64(first.ColorG)-float64(0xb3)/255) > 1e-6 {
		t.Errorf("Expected green %v, got %v", float64(0xb3)/255, first.ColorG)
	}
}

func TestFanBatchesSplit(t *testing.T) {
	tris := make([]shadows.Triangle, MaxBatchTriangles+1)
	batches := FanBatches(tris, flipY{}, color.White)

	if len(batches) != 2 {
		t.Fatalf("Expected 2 batches, got %d", len(batches))
	}
	if got := len(batches[1].Vertices); got != 3 {
		t.Errorf("Expected 3 vertices in the overflow batch, got %d", got)
	}
	last := batches[0].Indices[len(batches[0].Indices)-1]
	if int(last) != 3*MaxBatchTriangles-1 {
		t.Errorf("Expected last index %d, got %d", 3*MaxBatchTriangles-1, last)
	}
}

func TestDrawFan(t *testing.T) {
	dst := &recordingImage{}
	src := &recordingImage{}

	DrawFan(dst, src, nil, flipY{}, color.White)
	if dst.calls != 0 {
		t.Errorf("Expected no draw calls for an empty fan, got %d", dst.calls)
	}

	DrawFan(dst, src, make([]shadows.Triangle, 4), flipY{}, color.White)
	if dst.calls != 1 || dst.vertices != 12 {
		t.Errorf("Expected 1 call with 12 vertices, got %d calls and %d vertices", dst.calls, dst.vertices)
	}
}
