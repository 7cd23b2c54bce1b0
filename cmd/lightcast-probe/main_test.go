package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"chosenoffset.com/lightcast/internal/core/shadows"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-level", "pillars"})
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}
	if !opts.useSpawn {
		t.Error("Expected spawn to be used without -x/-y")
	}

	opts, err = parseFlags([]string{"-x", "12.5", "-dump"})
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}
	if opts.useSpawn || opts.x != 12.5 || !opts.dump {
		t.Errorf("Expected explicit source 12.5 with dump, got %+v", opts)
	}
}

func TestRun(t *testing.T) {
	opts := &options{
		configPath: filepath.Join(t.TempDir(), "missing.json"),
		levelRef:   "default",
		x:          0,
		y:          0,
		dump:       true,
	}

	var out bytes.Buffer
	f, err := run(opts, &out)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if f.Source != (shadows.Point{}) {
		t.Errorf("Expected source at origin, got %v", f.Source)
	}
	if len(f.Rays) != 96 {
		t.Errorf("Expected 96 rays, got %d", len(f.Rays))
	}
	for _, want := range []string{"rays       96 (endpoint)", "lit area   40000.00", "Triangles"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}

func TestRunRejectsBadStrategy(t *testing.T) {
	opts := &options{
		configPath: filepath.Join(t.TempDir(), "missing.json"),
		levelRef:   "default",
		strategy:   "spiral",
		useSpawn:   true,
	}
	if _, err := run(opts, &bytes.Buffer{}); err == nil {
		t.Error("Expected error for unknown strategy")
	}
}
