package main

import (
	"flag"
	"log"

	"chosenoffset.com/lightcast/internal/config"
	"chosenoffset.com/lightcast/internal/game"
	ebitenrender "chosenoffset.com/lightcast/internal/render/ebiten"
	"chosenoffset.com/lightcast/internal/world/obstacles"
)

func main() {
	// Command-line flags
	configPath := flag.String("config", "lightcast.json", "Config file (defaults are used if missing)")
	levelRef := flag.String("level", obstacles.DefaultLevel, "Level file or builtin level name")
	levelDir := flag.String("levels", "", "Directory of level files to cycle with Tab")
	debug := flag.Bool("debug", false, "Draw a marker at every ray hit")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *debug {
		cfg.Display.DebugMarkers = true
	}

	log.Printf("Loading level: %s", *levelRef)
	level, err := obstacles.Load(*levelRef)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	log.Printf("Loaded level %s with %d obstacles", level.Name, level.Obstacles.Len())

	levels := []string{*levelRef}
	if *levelDir != "" {
		found, err := obstacles.ScanLevels(*levelDir)
		if err != nil {
			log.Fatalf("Failed to scan levels: %v", err)
		}
		levels = append(levels, found...)
	} else {
		for _, name := range obstacles.BuiltinNames() {
			if name != *levelRef {
				levels = append(levels, name)
			}
		}
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g := game.New(cfg, level, renderer, inputMgr)
	g.Levels = levels

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	log.Println("Starting game...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
