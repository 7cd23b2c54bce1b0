// Command lightcast-probe computes a single frame headlessly and reports
// what the light source sees.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/ttacon/chalk"

	"chosenoffset.com/lightcast/internal/config"
	"chosenoffset.com/lightcast/internal/core/shadows"
	"chosenoffset.com/lightcast/internal/frame"
	"chosenoffset.com/lightcast/internal/world/obstacles"
)

type options struct {
	configPath string
	levelRef   string
	strategy   string
	x, y       float64
	useSpawn   bool
	dump       bool
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("lightcast-probe", flag.ContinueOnError)
	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "lightcast.json", "Config file (defaults are used if missing)")
	fs.StringVar(&opts.levelRef, "level", obstacles.DefaultLevel, "Level file or builtin level name")
	fs.StringVar(&opts.strategy, "strategy", "", "Override ray strategy (endpoint, uniform, combined)")
	fs.Float64Var(&opts.x, "x", 0, "Source x in world units")
	fs.Float64Var(&opts.y, "y", 0, "Source y in world units")
	fs.BoolVar(&opts.dump, "dump", false, "Dump the whole frame")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.useSpawn = true
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "x" || f.Name == "y" {
			opts.useSpawn = false
		}
	})
	return opts, nil
}

func run(opts *options, out io.Writer) (*frame.Frame, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.strategy != "" {
		cfg.Rays.Strategy = config.RayStrategy(opts.strategy)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	level, err := obstacles.Load(opts.levelRef)
	if err != nil {
		return nil, err
	}

	source := level.Spawn
	if !opts.useSpawn {
		source = shadows.Point{X: opts.x, Y: opts.y}
	}
	if !level.Obstacles.Encloses(source) {
		log.Print(chalk.Yellow.Color(fmt.Sprintf("Source %v is outside the level bounds; some rays may escape", source)))
	}

	begin := time.Now()
	f := frame.Compute(source, level.Obstacles.Segments(), cfg.Rays)
	elapsed := time.Since(begin)

	fmt.Fprintf(out, "level      %s (%d obstacles)\n", level.Name, level.Obstacles.Len())
	fmt.Fprintf(out, "source     (%g, %g)\n", source.X, source.Y)
	fmt.Fprintf(out, "rays       %d (%s)\n", len(f.Rays), cfg.Rays.Strategy)
	fmt.Fprintf(out, "hits       %d\n", len(f.Hits))
	fmt.Fprintf(out, "triangles  %d\n", len(f.Triangles))
	fmt.Fprintf(out, "lit area   %.2f\n", f.LitArea())
	fmt.Fprintf(out, "took       %.3fms\n", float64(elapsed.Nanoseconds())/1e6)

	if f.Unresolved > 0 {
		log.Print(chalk.Red.Color(fmt.Sprintf("%d rays hit nothing", f.Unresolved)))
	} else {
		log.Print(chalk.Green.Color("All rays resolved"))
	}

	if opts.dump {
		spew.Fdump(out, f)
	}
	return f, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if _, err := run(opts, os.Stdout); err != nil {
		log.Fatalf("Probe failed: %v", err)
	}
}
