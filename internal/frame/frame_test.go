package frame

import (
	"math"
	"reflect"
	"testing"

	"chosenoffset.com/lightcast/internal/config"
	"chosenoffset.com/lightcast/internal/core/shadows"
	"chosenoffset.com/lightcast/internal/world/obstacles"
)

func loadDefault(t *testing.T) *obstacles.Level {
	t.Helper()
	level, err := obstacles.Builtin(obstacles.DefaultLevel)
	if err != nil {
		t.Fatalf("Failed to load default level: %v", err)
	}
	return level
}

func TestEverySourceInsideIsEnclosed(t *testing.T) {
	level := loadDefault(t)
	segs := level.Obstacles.Segments()
	cfg := config.DefaultConfig().Rays

	// Offsets of 25 keep every source off the walls, which all sit on
	// multiples of 100.
	for x := -775.0; x <= 775; x += 50 {
		for y := -475.0; y <= 475; y += 50 {
			source := shadows.Point{X: x, Y: y}
			f := Compute(source, segs, cfg)

			if f.Unresolved != 0 {
				t.Errorf("Source %v: expected every ray to hit, %d unresolved", source, f.Unresolved)
			}
			if len(f.Rays) != 6*len(segs) {
				t.Errorf("Source %v: expected %d rays, got %d", source, 6*len(segs), len(f.Rays))
			}
			if len(f.Triangles) == 0 {
				t.Errorf("Source %v: expected a lit region", source)
			}
		}
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	level := loadDefault(t)
	segs := level.Obstacles.Segments()
	cfg := config.DefaultConfig().Rays
	source := shadows.Point{X: 237, Y: -112}

	first := Compute(source, segs, cfg)
	second := Compute(source, segs, cfg)

	if !reflect.DeepEqual(first.Triangles, second.Triangles) {
		t.Error("Expected identical triangles for identical inputs")
	}
	if !reflect.DeepEqual(first.Hits, second.Hits) {
		t.Error("Expected identical hits for identical inputs")
	}
}

func TestCentreSquareIsFullyLit(t *testing.T) {
	level := loadDefault(t)
	f := Compute(shadows.Point{}, level.Obstacles.Segments(), config.DefaultConfig().Rays)

	if area := f.LitArea(); math.Abs(area-200*200) > 1e-3 {
		t.Errorf("Expected lit area 40000 inside the centre square, got %v", area)
	}
}

func TestShadowBehindCentreSquare(t *testing.T) {
	level := loadDefault(t)
	f := Compute(level.Spawn, level.Obstacles.Segments(), config.DefaultConfig().Rays)

	if shadows.PointInFan(shadows.Point{X: 0, Y: -300}, f.Triangles) {
		t.Error("Expected (0, -300) to be shadowed by the centre square")
	}
	if !shadows.PointInFan(shadows.Point{X: 0, Y: 450}, f.Triangles) {
		t.Error("Expected (0, 450) to be lit")
	}
}

func TestRayStrategies(t *testing.T) {
	level := loadDefault(t)
	segs := level.Obstacles.Segments()
	source := level.Spawn

	tests := []struct {
		strategy config.RayStrategy
		want     int
	}{
		{config.StrategyEndpoint, 6 * 16},
		{config.StrategyUniform, 18},
		{config.StrategyCombined, 6*16 + 18},
	}

	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			cfg := config.DefaultConfig().Rays
			cfg.Strategy = tt.strategy

			f := Compute(source, segs, cfg)
			if len(f.Rays) != tt.want {
				t.Errorf("Expected %d rays, got %d", tt.want, len(f.Rays))
			}
			if f.Unresolved != 0 {
				t.Errorf("Expected every ray to resolve, %d did not", f.Unresolved)
			}
		})
	}
}

func TestUnresolvedRaysExcluded(t *testing.T) {
	segs := []shadows.Segment{{A: shadows.Point{X: 10, Y: -1}, B: shadows.Point{X: 10, Y: 1}}}
	f := Compute(shadows.Point{}, segs, config.DefaultConfig().Rays)

	// Corner rays and the inner offset rays hit; the outer offset rays
	// graze past the wall into empty space.
	if f.Unresolved != 2 {
		t.Errorf("Expected 2 unresolved rays, got %d", f.Unresolved)
	}
	if len(f.Hits) != len(f.Rays)-f.Unresolved {
		t.Errorf("Expected %d hits, got %d", len(f.Rays)-f.Unresolved, len(f.Hits))
	}
	for _, hit := range f.Hits {
		if math.Abs(hit.X-10) > 1e-6 {
			t.Errorf("Expected every hit on the wall at x=10, got %v", hit)
		}
	}
}

func TestDriverPublishesWholeFrames(t *testing.T) {
	level := loadDefault(t)
	d := NewDriver(level.Obstacles, config.DefaultConfig())

	if got := d.Current(); got == nil || len(got.Triangles) != 0 {
		t.Fatalf("Expected an empty initial frame, got %v", got)
	}

	d.MoveSource(level.Spawn)
	first := d.Step()
	kept := append([]shadows.Triangle(nil), first.Triangles...)

	if first.Seq != 1 {
		t.Errorf("Expected seq 1, got %d", first.Seq)
	}
	if d.Current() != first {
		t.Error("Expected Current to return the published frame")
	}
	if len(d.RaySource().Rays) != len(first.Rays) {
		t.Errorf("Expected ray source to hold %d rays, got %d", len(first.Rays), len(d.RaySource().Rays))
	}

	d.MoveSource(shadows.Point{X: -600, Y: 300})
	if err := level.Obstacles.Translate(12, shadows.Point{X: 50, Y: 0}); err != nil {
		t.Fatal(err)
	}
	if d.Current() != first {
		t.Error("Expected previous frame to stay current until the next step")
	}

	second := d.Step()
	if second.Seq != 2 {
		t.Errorf("Expected seq 2, got %d", second.Seq)
	}
	if second.Source != (shadows.Point{X: -600, Y: 300}) {
		t.Errorf("Expected source (-600, 300), got %v", second.Source)
	}
	if !reflect.DeepEqual(first.Triangles, kept) {
		t.Error("Expected earlier frame to be left untouched")
	}
}

func TestDriverStepIsRepeatable(t *testing.T) {
	level := loadDefault(t)
	d := NewDriver(level.Obstacles, config.DefaultConfig())
	d.MoveSource(shadows.Point{X: 510, Y: 60})

	a := d.Step()
	b := d.Step()
	if !reflect.DeepEqual(a.Triangles, b.Triangles) {
		t.Error("Expected repeated steps without input changes to match")
	}
}

func TestDriverIgnoresBadSource(t *testing.T) {
	level := loadDefault(t)
	d := NewDriver(level.Obstacles, config.DefaultConfig())
	d.MoveSource(level.Spawn)

	d.MoveSource(shadows.Point{X: math.NaN(), Y: 0})
	d.MoveSource(shadows.Point{X: 0, Y: math.Inf(1)})
	if d.Source() != level.Spawn {
		t.Errorf("Expected source to stay at %v, got %v", level.Spawn, d.Source())
	}
}

func TestDriverSwapsObstacles(t *testing.T) {
	level := loadDefault(t)
	pillars, err := obstacles.Builtin("pillars")
	if err != nil {
		t.Fatal(err)
	}

	d := NewDriver(level.Obstacles, config.DefaultConfig())
	d.SetObstacles(pillars.Obstacles)
	d.MoveSource(pillars.Spawn)

	f := d.Step()
	if len(f.Rays) != 6*pillars.Obstacles.Len() {
		t.Errorf("Expected %d rays, got %d", 6*pillars.Obstacles.Len(), len(f.Rays))
	}
	if d.Obstacles() != pillars.Obstacles {
		t.Error("Expected driver to use the new obstacle set")
	}
}
