package game

import (
	"log"

	"chosenoffset.com/lightcast/internal/config"
	"chosenoffset.com/lightcast/internal/frame"
	"chosenoffset.com/lightcast/internal/render"
	"chosenoffset.com/lightcast/internal/render/camera"
	"chosenoffset.com/lightcast/internal/world/obstacles"
)

// Game holds all game state and logic.
type Game struct {
	Config   *config.Config
	Driver   *frame.Driver
	Camera   *camera.Camera
	Renderer render.Renderer
	InputMgr render.InputManager
	WhiteImg render.Image

	// Levels cycled with Tab, as refs accepted by obstacles.Load
	Levels     []string
	LevelIndex int
	LevelName  string

	// Debug
	ShowMarkers bool
	FrameCount  int
}

// New creates a game lighting the given level
func New(cfg *config.Config, level *obstacles.Level, rend render.Renderer, input render.InputManager) *Game {
	driver := frame.NewDriver(level.Obstacles, cfg)
	driver.MoveSource(level.Spawn)

	return &Game{
		Config:      cfg,
		Driver:      driver,
		Camera:      camera.New(cfg.Window.MinWidth, cfg.Window.MinHeight, cfg.Window.Width, cfg.Window.Height),
		Renderer:    rend,
		InputMgr:    input,
		LevelName:   level.Name,
		ShowMarkers: cfg.Display.DebugMarkers,
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyH) {
		g.ShowMarkers = !g.ShowMarkers
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyTab) {
		g.nextLevel()
	}

	// Without a cursor inside the window the light stays where it was
	cx, cy := g.InputMgr.GetCursorPosition()
	if p, ok := g.Camera.ScreenToWorld(float64(cx), float64(cy)); ok {
		g.Driver.MoveSource(p)
	}

	g.Driver.Step()
	g.FrameCount++
	return nil
}

// nextLevel loads the next level in the rotation. A level that fails to
// load is logged and the current one kept.
func (g *Game) nextLevel() {
	if len(g.Levels) == 0 {
		return
	}

	next := (g.LevelIndex + 1) % len(g.Levels)
	level, err := obstacles.Load(g.Levels[next])
	if err != nil {
		log.Printf("Failed to load level %s: %v", g.Levels[next], err)
		return
	}

	g.LevelIndex = next
	g.LevelName = level.Name
	g.Driver.SetObstacles(level.Obstacles)
	g.Driver.MoveSource(level.Spawn)
	log.Printf("Switched to level %s (%d obstacles)", level.Name, level.Obstacles.Len())
}

// Layout keeps the logical screen at window size so the camera decides
// the world scale.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h := g.Camera.Viewport(); w != outsideWidth || h != outsideHeight {
		g.Camera.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
