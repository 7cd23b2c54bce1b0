package game

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"chosenoffset.com/lightcast/internal/config"
	"chosenoffset.com/lightcast/internal/core/shadows"
	"chosenoffset.com/lightcast/internal/render"
	"chosenoffset.com/lightcast/internal/world/obstacles"
)

type fakeInput struct {
	x, y    int
	pressed map[render.Key]bool
}

func (f *fakeInput) IsKeyJustPressed(key render.Key) bool { return f.pressed[key] }
func (f *fakeInput) GetCursorPosition() (int, int) { return f.x, f.y }

type fakeImage struct {
	triangles int
	filled    color.Color
}

func (i *fakeImage) Bounds() image.Rectangle { return image.Rect(0, 0, 1, 1) }
func (i *fakeImage) Size() (int, int) { return 1, 1 }
func (i *fakeImage) Fill(clr color.Color) { i.filled = clr }
func (i *fakeImage) Clear() {}
func (i *fakeImage) Dispose() {}
func (i *fakeImage) DrawTriangles(vertices []render.Vertex, indices []uint16, img render.Image, opts *render.DrawTrianglesOptions) {
	i.triangles += len(indices) / 3
}

type fakeRenderer struct {
	lines   int
	circles int
	text    string
}

func (r *fakeRenderer) NewImage(width, height int) render.Image { return &fakeImage{} }
func (r *fakeRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.circles++
}
func (r *fakeRenderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	r.circles++
}
func (r *fakeRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	r.lines++
}
func (r *fakeRenderer) DrawText(dst render.Image, text string, x, y int) { r.text = text }

func newTestGame(t *testing.T) (*Game, *fakeInput, *fakeRenderer) {
	t.Helper()
	level, err := obstacles.Builtin(obstacles.DefaultLevel)
	if err != nil {
		t.Fatalf("Failed to load level: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Window.Width, cfg.Window.Height = 1600, 1000

	input := &fakeInput{x: -1, y: -1, pressed: map[render.Key]bool{}}
	rend := &fakeRenderer{}
	return New(cfg, level, rend, input), input, rend
}

func TestUpdateFollowsCursor(t *testing.T) {
	g, input, _ := newTestGame(t)

	// Window centre is the world origin at scale 1
	input.x, input.y = 800+300, 500-200
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	want := shadows.Point{X: 300, Y: 200}
	if got := g.Driver.Source(); got != want {
		t.Errorf("Expected source %v, got %v", want, got)
	}
	if f := g.Driver.Current(); f.Source != want || len(f.Triangles) == 0 {
		t.Errorf("Expected a lit frame at %v, got source %v with %d triangles", want, f.Source, len(f.Triangles))
	}
}

func TestUpdateKeepsSourceWithoutCursor(t *testing.T) {
	g, input, _ := newTestGame(t)
	spawn := g.Driver.Source()

	input.x, input.y = -50, 20
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got := g.Driver.Source(); got != spawn {
		t.Errorf("Expected source to stay at %v, got %v", spawn, got)
	}
	if g.Driver.Current().Seq != 1 {
		t.Error("Expected a frame to be computed anyway")
	}
}

func TestUpdateKeys(t *testing.T) {
	g, input, _ := newTestGame(t)

	input.pressed[render.KeyH] = true
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if !g.ShowMarkers {
		t.Error("Expected H to enable markers")
	}

	input.pressed = map[render.Key]bool{render.KeyEscape: true}
	if err := g.Update(); !errors.Is(err, render.ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
}

func TestNextLevel(t *testing.T) {
	g, input, _ := newTestGame(t)
	g.Levels = []string{"default", "pillars"}

	input.pressed[render.KeyTab] = true
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if g.LevelName != "pillars" || g.LevelIndex != 1 {
		t.Errorf("Expected level 'pillars' at index 1, got '%s' at %d", g.LevelName, g.LevelIndex)
	}
	if got := len(g.Driver.Current().Rays); got != 6*g.Driver.Obstacles().Len() {
		t.Errorf("Expected rays for the new level, got %d", got)
	}

	g.Levels = []string{"default", "missing"}
	g.LevelIndex = 0
	g.nextLevel()
	if g.LevelIndex != 0 {
		t.Errorf("Expected failed load to keep level 0, got %d", g.LevelIndex)
	}
}

func TestDraw(t *testing.T) {
	g, input, rend := newTestGame(t)
	input.x, input.y = 800, 250
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}

	screen := &fakeImage{}
	g.Draw(screen)

	f := g.Driver.Current()
	if screen.triangles != len(f.Triangles) {
		t.Errorf("Expected %d triangles drawn, got %d", len(f.Triangles), screen.triangles)
	}
	if rend.lines != 16 {
		t.Errorf("Expected 16 obstacle lines, got %d", rend.lines)
	}
	if rend.circles != 0 {
		t.Errorf("Expected no markers by default, got %d", rend.circles)
	}
	if screen.filled != g.Config.Clear() {
		t.Errorf("Expected background %v, got %v", g.Config.Clear(), screen.filled)
	}
	if rend.text == "" {
		t.Error("Expected HUD text")
	}

	g.ShowMarkers = true
	g.Draw(screen)
	if rend.circles != len(f.Hits) {
		t.Errorf("Expected %d markers, got %d", len(f.Hits), rend.circles)
	}
}

func TestLayoutResizesCamera(t *testing.T) {
	g, _, _ := newTestGame(t)

	w, h := g.Layout(800, 500)
	if w != 800 || h != 500 {
		t.Errorf("Expected 800x500, got %dx%d", w, h)
	}
	if g.Camera.Scale() != 2 {
		t.Errorf("Expected scale 2, got %v", g.Camera.Scale())
	}
}
