package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/lightcast/internal/render"
	"chosenoffset.com/lightcast/internal/render/lighting"
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	if g.WhiteImg == nil {
		g.WhiteImg = g.Renderer.NewImage(1, 1)
		g.WhiteImg.Fill(color.White)
	}

	f := g.Driver.Current()

	// Step 1: Background
	screen.Fill(g.Config.Clear())

	// Step 2: Light fan from the last complete frame
	lighting.DrawFan(screen, g.WhiteImg, f.Triangles, g.Camera, g.Config.Fill())

	// Step 3: Obstacles on top so walls stay visible at the shadow edges
	g.drawObstacles(screen)

	// Step 4: Optional hit markers
	if g.ShowMarkers {
		g.drawMarkers(screen)
	}

	g.drawHUD(screen)
}

func (g *Game) drawObstacles(screen render.Image) {
	clr := g.Config.Obstacle()
	width := float32(g.Config.Display.LineWidth)

	for _, seg := range g.Driver.Obstacles().Segments() {
		x0, y0 := g.Camera.WorldToScreen(seg.A)
		x1, y1 := g.Camera.WorldToScreen(seg.B)
		g.Renderer.StrokeLine(screen, x0, y0, x1, y1, width, clr)
	}
}

func (g *Game) drawMarkers(screen render.Image) {
	clr := g.Config.Marker()
	radius := g.Camera.WorldLength(g.Config.Display.MarkerRadius)

	for _, hit := range g.Driver.Current().Hits {
		x, y := g.Camera.WorldToScreen(hit)
		g.Renderer.StrokeCircle(screen, x, y, radius, 1, clr)
	}
}

func (g *Game) drawHUD(screen render.Image) {
	f := g.Driver.Current()
	hud := fmt.Sprintf("%s  source (%.0f, %.0f)  rays %d  hits %d  triangles %d",
		g.LevelName, f.Source.X, f.Source.Y, len(f.Rays), len(f.Hits), len(f.Triangles))
	g.Renderer.DrawText(screen, hud, 8, 8)
}
