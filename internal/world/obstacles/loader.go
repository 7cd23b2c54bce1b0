package obstacles

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"chosenoffset.com/lightcast/internal/core/shadows"
)

//go:embed levels/*.json
var builtinLevels embed.FS

// DefaultLevel is the name of the level used when none is given
const DefaultLevel = "default"

type vec [2]float64

func (v vec) point() shadows.Point {
	return shadows.Point{X: v[0], Y: v[1]}
}

// GroupData is a set of segments sharing one anchor
type GroupData struct {
	Anchor   vec      `json:"anchor"`
	Segments [][2]vec `json:"segments"` // Offsets from the anchor
}

// LevelData is the JSON layout of a level file
type LevelData struct {
	Name   string      `json:"name"`
	Spawn  vec         `json:"spawn"` // Initial light source position
	Groups []GroupData `json:"groups"`
}

// Level is a loaded level ready for simulation
type Level struct {
	Name      string
	Spawn     shadows.Point
	Obstacles *Set
}

// Parse decodes a level from JSON
func Parse(data []byte) (*Level, error) {
	var levelData LevelData
	if err := json.Unmarshal(data, &levelData); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}

	var list []Obstacle
	for _, group := range levelData.Groups {
		for _, seg := range group.Segments {
			list = append(list, Obstacle{
				Anchor:      group.Anchor.point(),
				StartOffset: seg[0].point(),
				EndOffset:   seg[1].point(),
			})
		}
	}

	set, err := New(list)
	if err != nil {
		return nil, fmt.Errorf("invalid level %q: %w", levelData.Name, err)
	}

	return &Level{
		Name:      levelData.Name,
		Spawn:     levelData.Spawn.point(),
		Obstacles: set,
	}, nil
}

// LoadFile loads a level from a JSON file on disk
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}
	level, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if level.Name == "" {
		level.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return level, nil
}

// Builtin loads one of the levels compiled into the binary
func Builtin(name string) (*Level, error) {
	data, err := builtinLevels.ReadFile("levels/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("unknown builtin level %q", name)
	}
	return Parse(data)
}

// Load resolves ref as a file path if one exists, otherwise as a builtin
// level name. An empty ref loads the default level.
func Load(ref string) (*Level, error) {
	if ref == "" {
		return Builtin(DefaultLevel)
	}
	if _, err := os.Stat(ref); err == nil {
		return LoadFile(ref)
	}
	return Builtin(ref)
}

// BuiltinNames lists the levels compiled into the binary
func BuiltinNames() []string {
	entries, err := builtinLevels.ReadDir("levels")
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

// ScanLevels returns the level files found in dir, sorted by name
func ScanLevels(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read level directory: %w", err)
	}

	var levels []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			levels = append(levels, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(levels)
	return levels, nil
}
