package term

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/lightcast/internal/config"
	"chosenoffset.com/lightcast/internal/core/shadows"
	"chosenoffset.com/lightcast/internal/frame"
	"chosenoffset.com/lightcast/internal/render/camera"
	"chosenoffset.com/lightcast/internal/world/obstacles"
)

const tickInterval = 33 * time.Millisecond // ~30 FPS

// App drives the light simulation in a terminal
type App struct {
	screen tcell.Screen
	cfg    *config.Config
	driver *frame.Driver
	cam    *camera.Camera
	styles map[CellKind]tcell.Style

	cols, rows int

	// Levels cycled with Tab, as refs accepted by obstacles.Load
	Levels     []string
	levelIndex int
	levelName  string

	markers bool
	dirty   bool
}

// NewApp creates an app on an initialised screen
func NewApp(screen tcell.Screen, cfg *config.Config, level *obstacles.Level) *App {
	driver := frame.NewDriver(level.Obstacles, cfg)
	driver.MoveSource(level.Spawn)

	a := &App{
		screen:    screen,
		cfg:       cfg,
		driver:    driver,
		styles:    cellStyles(cfg),
		levelName: level.Name,
		markers:   cfg.Display.DebugMarkers,
		dirty:     true,
	}
	a.resize()
	return a
}

func cellStyles(cfg *config.Config) map[CellKind]tcell.Style {
	bg := func(c color.NRGBA) tcell.Style {
		return tcell.StyleDefault.Background(rgb(c))
	}
	return map[CellKind]tcell.Style{
		CellDark:   bg(cfg.Clear()),
		CellLit:    bg(cfg.Fill()),
		CellWall:   tcell.StyleDefault.Foreground(rgb(cfg.Obstacle())),
		CellHit:    bg(cfg.Fill()).Foreground(rgb(cfg.Marker())),
		CellSource: bg(cfg.Fill()).Foreground(tcell.ColorBlack).Bold(true),
	}
}

func rgb(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var cellRunes = map[CellKind]rune{
	CellDark:   ' ',
	CellLit:    ' ',
	CellWall:   '█',
	CellHit:    '•',
	CellSource: '@',
}

// Driver returns the frame driver
func (a *App) Driver() *frame.Driver {
	return a.driver
}

func (a *App) resize() {
	w, h := a.screen.Size()
	// Bottom row is the status line
	a.cols, a.rows = w, max(h-1, 0)
	a.cam = NewCamera(a.cfg.Window.MinWidth, a.cfg.Window.MinHeight, a.cols, a.rows)
	a.dirty = true
}

// moveSource nudges the source by whole cells, keeping it inside the walls
func (a *App) moveSource(dc, dr int) {
	delta := shadows.Point{
		X: float64(dc) * a.cam.Scale(),
		Y: -float64(dr) * 2 * a.cam.Scale(),
	}
	p := a.driver.Obstacles().Clamp(a.driver.Source().Add(delta), 1)
	a.driver.MoveSource(p)
	a.dirty = true
}

func (a *App) nextLevel() {
	if len(a.Levels) == 0 {
		return
	}

	next := (a.levelIndex + 1) % len(a.Levels)
	level, err := obstacles.Load(a.Levels[next])
	if err != nil {
		log.Printf("Failed to load level %s: %v", a.Levels[next], err)
		return
	}

	a.levelIndex = next
	a.levelName = level.Name
	a.driver.SetObstacles(level.Obstacles)
	a.driver.MoveSource(level.Spawn)
	a.dirty = true
}

// HandleEvent applies one input event. It returns false when the user
// asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			a.moveSource(0, -1)
		case tcell.KeyDown:
			a.moveSource(0, 1)
		case tcell.KeyLeft:
			a.moveSource(-1, 0)
		case tcell.KeyRight:
			a.moveSource(1, 0)
		case tcell.KeyTab:
			a.nextLevel()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'k':
				a.moveSource(0, -1)
			case 'j':
				a.moveSource(0, 1)
			case 'h':
				a.moveSource(-1, 0)
			case 'l':
				a.moveSource(1, 0)
			case 'm':
				a.markers = !a.markers
				a.dirty = true
			}
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	}

	return true
}

// Tick computes a frame and redraws when anything changed
func (a *App) Tick() {
	if !a.dirty {
		return
	}
	a.driver.Step()
	a.Draw()
	a.dirty = false
}

// Draw paints the current frame and status line
func (a *App) Draw() {
	f := a.driver.Current()
	grid := Rasterize(f, a.driver.Obstacles().Segments(), a.cam, a.cols, a.rows, a.markers)

	for row, cells := range grid {
		for col, kind := range cells {
			a.screen.SetContent(col, row, cellRunes[kind], nil, a.styles[kind])
		}
	}

	status := fmt.Sprintf(" %s  (%.0f, %.0f)  rays %d  hits %d  triangles %d  [arrows/hjkl move, tab level, m markers, q quit]",
		a.levelName, f.Source.X, f.Source.Y, len(f.Rays), len(f.Hits), len(f.Triangles))
	col := 0
	for _, r := range status {
		if col >= a.cols {
			break
		}
		a.screen.SetContent(col, a.rows, r, nil, tcell.StyleDefault.Reverse(true))
		col++
	}
	for ; col < a.cols; col++ {
		a.screen.SetContent(col, a.rows, ' ', nil, tcell.StyleDefault.Reverse(true))
	}

	a.screen.Show()
}

// Run polls input on a goroutine and ticks until the user quits
func (a *App) Run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.HandleEvent(ev) {
				return
			}

		case <-ticker.C:
			a.Tick()
		}
	}
}
