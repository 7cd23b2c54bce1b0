package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/lightcast/internal/config"
	"chosenoffset.com/lightcast/internal/term"
	"chosenoffset.com/lightcast/internal/world/obstacles"
)

func main() {
	configPath := flag.String("config", "lightcast.json", "Config file (defaults are used if missing)")
	levelRef := flag.String("level", obstacles.DefaultLevel, "Level file or builtin level name")
	logPath := flag.String("log", "", "Write logs to this file instead of discarding them")
	flag.Parse()

	// The terminal is the display, so logs go to a file or nowhere
	log.SetOutput(io.Discard)
	if *logPath != "" {
		logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	level, err := obstacles.Load(*levelRef)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load level: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	app := term.NewApp(screen, cfg, level)
	app.Levels = append([]string{*levelRef}, otherBuiltins(*levelRef)...)

	log.Printf("Starting terminal view on level %s", level.Name)
	app.Run()
}

func otherBuiltins(current string) []string {
	var names []string
	for _, name := range obstacles.BuiltinNames() {
		if name != current {
			names = append(names, name)
		}
	}
	return names
}
