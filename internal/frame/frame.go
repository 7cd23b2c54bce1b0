// Package frame runs the per-frame light pipeline: generate probe rays
// from the source, resolve each against the obstacles, and build the
// triangle fan of the lit region.
package frame

import (
	"chosenoffset.com/lightcast/internal/config"
	"chosenoffset.com/lightcast/internal/core/shadows"
	"chosenoffset.com/lightcast/internal/world/obstacles"
)

// RaySource is the light source and the probe rays it cast last frame
type RaySource struct {
	Position shadows.Point
	Rays     []shadows.Ray
}

// Frame is the complete output of one pipeline run. A frame is never
// modified after it is published.
type Frame struct {
	Seq        uint64
	Source     shadows.Point
	Rays       []shadows.Ray
	Resolved   []shadows.ResolvedRay
	Hits       []shadows.Point
	Triangles  []shadows.Triangle
	Unresolved int // Rays that hit nothing
}

// LitArea returns the area of the visibility polygon
func (f *Frame) LitArea() float64 {
	return shadows.FanArea(f.Triangles)
}

// GenerateRays casts the probe rays selected by cfg
func GenerateRays(source shadows.Point, segs []shadows.Segment, cfg config.RayConfig) []shadows.Ray {
	var rays []shadows.Ray
	switch cfg.Strategy {
	case config.StrategyUniform:
		rays = shadows.UniformFan(source, cfg.UniformRays, cfg.FarLength)
	case config.StrategyCombined:
		rays = shadows.EndpointFan(source, segs, cfg.AngleOffset)
		rays = shadows.AppendUniformFan(rays, source, cfg.UniformRays, cfg.FarLength)
	default:
		rays = shadows.EndpointFan(source, segs, cfg.AngleOffset)
	}
	return rays
}

// Compute runs the whole pipeline for one source position and obstacle
// snapshot. It keeps no state, so identical inputs give identical frames.
func Compute(source shadows.Point, segs []shadows.Segment, cfg config.RayConfig) *Frame {
	rays := GenerateRays(source, segs, cfg)
	resolved := shadows.ResolveAll(rays, segs, cfg.Tolerance)
	hits := shadows.Hits(resolved)

	return &Frame{
		Source:     source,
		Rays:       rays,
		Resolved:   resolved,
		Hits:       hits,
		Triangles:  shadows.BuildFan(source, hits),
		Unresolved: len(rays) - len(resolved),
	}
}

// Driver owns the ray source and publishes one frame per Step
type Driver struct {
	obstacles *obstacles.Set
	cfg       config.RayConfig
	source    RaySource
	current   *Frame
	seq       uint64
}

// NewDriver creates a driver over the given obstacles
func NewDriver(set *obstacles.Set, cfg *config.Config) *Driver {
	return &Driver{
		obstacles: set,
		cfg:       cfg.Rays,
		current:   &Frame{},
	}
}

// MoveSource sets the source position used by the next Step. Non-finite
// positions are ignored.
func (d *Driver) MoveSource(p shadows.Point) {
	if !p.IsFinite() {
		return
	}
	d.source.Position = p
}

// Source returns the current source position
func (d *Driver) Source() shadows.Point {
	return d.source.Position
}

// RaySource returns the source and the rays of the last step
func (d *Driver) RaySource() RaySource {
	return d.source
}

// Obstacles returns the obstacle set the driver reads
func (d *Driver) Obstacles() *obstacles.Set {
	return d.obstacles
}

// SetObstacles swaps the obstacle set from the next Step on
func (d *Driver) SetObstacles(set *obstacles.Set) {
	d.obstacles = set
}

// Step snapshots the source and obstacles, computes a new frame and
// publishes it. Until it returns, Current keeps returning the previous
// frame.
func (d *Driver) Step() *Frame {
	source := d.source.Position
	segs := d.obstacles.Segments()

	f := Compute(source, segs, d.cfg)
	d.seq++
	f.Seq = d.seq

	d.source.Rays = f.Rays
	d.current = f
	return f
}

// Current returns the last published frame
func (d *Driver) Current() *Frame {
	return d.current
}
