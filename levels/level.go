// Package levels loads the JSON tile maps shipped with the game.
package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/platformer/tilemap"
	"golang.org/x/image/colornames"
)

//go:embed *.json
var LevelsFS embed.FS

var (
	ErrUnknownEntity = errors.New("levels: unknown entity type")
	ErrNoSpawn       = errors.New("levels: level has no spawn entity")
)

const (
	EntitySpawn = "spawn"
	EntityCoin  = "coin"
)

// Level is a tile map stored as JSON.
type Level struct {
	Name     string `json:"name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	CellSize int    `json:"cell_size"`
	OriginX  int    `json:"origin_x,omitempty"`
	OriginY  int    `json:"origin_y,omitempty"`
	// Layers is a list of flat, row-major arrays of length Width*Height.
	// Layer 0 is drawn first. Non-zero values are blocks.
	Layers [][]int `json:"layers"`
	// LayerMeta marks which layers collide and how they are drawn. Layers
	// without an entry collide.
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

type LayerMeta struct {
	Physics bool   `json:"physics"`
	Color   string `json:"color,omitempty"`
}

type Entity struct {
	Type  string         `json:"type"`
	X     int            `json:"x"`
	Y     int            `json:"y"`
	Props map[string]any `json:"props,omitempty"`
}

// Load reads a level by name, with or without the .json extension. A copy
// under ./levels on disk takes precedence over the embedded one.
func Load(name string) (*Level, error) {
	file := fileName(name)
	data, err := os.ReadFile(filepath.Join("levels", file))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, file)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", file, err)
	}
	return Parse(data)
}

// Parse decodes and validates a level.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	if err := lvl.validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// List returns the names of the embedded levels, sorted.
func List() ([]string, error) {
	files, err := fs.Glob(LevelsFS, "*.json")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, strings.TrimSuffix(f, ".json"))
	}
	sort.Strings(names)
	return names, nil
}

func fileName(name string) string {
	name = filepath.ToSlash(name)
	name = strings.TrimPrefix(name, "levels/")
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return name
}

func (l *Level) validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("levels: %s: %w: %dx%d", l.Name, tilemap.ErrInvalidSize, l.Width, l.Height)
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("levels: %s: layer %d: %w: got %d, want %d", l.Name, i, tilemap.ErrCellCount, len(layer), l.Width*l.Height)
		}
	}
	for _, e := range l.Entities {
		switch e.Type {
		case EntitySpawn, EntityCoin:
		default:
			return fmt.Errorf("%w %q in %s", ErrUnknownEntity, e.Type, l.Name)
		}
	}
	return nil
}

// Physics reports whether layer i collides.
func (l *Level) Physics(i int) bool {
	if i < 0 || i >= len(l.Layers) {
		return false
	}
	if i >= len(l.LayerMeta) {
		return true
	}
	return l.LayerMeta[i].Physics
}

// Grid flattens every physics layer into one collision grid.
func (l *Level) Grid() (*tilemap.Grid, error) {
	cells := make([]int, l.Width*l.Height)
	for i, layer := range l.Layers {
		if !l.Physics(i) {
			continue
		}
		for j, v := range layer {
			if v != 0 {
				cells[j] = 1
			}
		}
	}
	g, err := tilemap.New(l.Width, l.Height, l.CellSize, cells, tilemap.WithOrigin(l.OriginX, l.OriginY))
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", l.Name, err)
	}
	return g, nil
}

// Spawn returns the position of the first spawn entity.
func (l *Level) Spawn() (x, y float64, err error) {
	for _, e := range l.Entities {
		if e.Type == EntitySpawn {
			return float64(e.X), float64(e.Y), nil
		}
	}
	return 0, 0, fmt.Errorf("%w: %s", ErrNoSpawn, l.Name)
}

// Coins returns the pickup rects of every coin entity. Size comes from the
// w and h props, defaulting to a quarter cell.
func (l *Level) Coins() []tilemap.Rect {
	var coins []tilemap.Rect
	def := max(l.CellSize/4, 1)
	for _, e := range l.Entities {
		if e.Type != EntityCoin {
			continue
		}
		coins = append(coins, tilemap.Rect{
			X: e.X,
			Y: e.Y,
			W: e.propInt("w", def),
			H: e.propInt("h", def),
		})
	}
	return coins
}

func (e Entity) propInt(key string, def int) int {
	switch v := e.Props[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// LayerColor parses the "#rrggbb" color of layer i, falling back to gray.
func (l *Level) LayerColor(i int) color.RGBA {
	if i < 0 || i >= len(l.LayerMeta) {
		return colornames.Gray
	}
	return parseHexColor(l.LayerMeta[i].Color, colornames.Gray)
}

func parseHexColor(s string, def color.RGBA) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return def
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return def
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
