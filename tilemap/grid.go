// Package tilemap holds the static tile grid a kinematic body collides with.
//
// A Grid is built once from a row-major integer array at level load and is
// read-only afterwards. Every query is total: coordinates outside the grid
// report Empty instead of failing.
package tilemap

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/milk9111/platformer/common"
)

// Kind classifies a single cell.
type Kind int8

const (
	Empty Kind = iota
	Block
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Block:
		return "block"
	default:
		return fmt.Sprintf("kind(%d)", int8(k))
	}
}

var (
	ErrInvalidSize = errors.New("tilemap: invalid grid size")
	ErrCellCount   = errors.New("tilemap: cell count does not match grid size")
)

// Grid maps integer cell coordinates to a Kind.
type Grid struct {
	originX, originY int
	cellSize         int
	width, height    int
	cells            []Kind

	// shift is log2(cellSize), or -1 when cellSize is not a power of two.
	shift int
}

// Option configures a Grid at construction.
type Option func(*Grid)

// WithOrigin places cell [0,0] at world pixel (x, y).
func WithOrigin(x, y int) Option {
	return func(g *Grid) {
		g.originX = x
		g.originY = y
	}
}

// New builds a grid from a row-major cell array where 0 is empty and any other
// value is solid.
func New(width, height, cellSize int, cells []int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 || cellSize <= 0 {
		return nil, fmt.Errorf("%w: %dx%d cells of %dpx", ErrInvalidSize, width, height, cellSize)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrCellCount, len(cells), width*height)
	}

	g := &Grid{
		cellSize: cellSize,
		shift:    -1,
		width:    width,
		height:   height,
		cells:    make([]Kind, len(cells)),
	}
	if cellSize&(cellSize-1) == 0 {
		g.shift = bits.TrailingZeros(uint(cellSize))
	}
	for _, opt := range opts {
		opt(g)
	}
	for i, v := range cells {
		if v != 0 {
			g.cells[i] = Block
		}
	}
	return g, nil
}

func (g *Grid) Width() int { return g.width }
func (g *Grid) Height() int { return g.height }
func (g *Grid) CellSize() int { return g.cellSize }

// Origin returns the world position of cell [0,0].
func (g *Grid) Origin() (x, y int) {
	return g.originX, g.originY
}

// Bounds returns the world rectangle covered by the grid.
func (g *Grid) Bounds() Rect {
	return Rect{X: g.originX, Y: g.originY, W: g.width * g.cellSize, H: g.height * g.cellSize}
}

// TileAt returns the kind stored at cell (cx, cy), or Empty when the cell is
// outside the grid.
func (g *Grid) TileAt(cx, cy int) Kind {
	if g == nil || cx < 0 || cy < 0 || cx >= g.width || cy >= g.height {
		return Empty
	}
	return g.cells[cy*g.width+cx]
}

// Solid reports whether cell (cx, cy) blocks movement.
func (g *Grid) Solid(cx, cy int) bool {
	return g.TileAt(cx, cy) != Empty
}

// TileAtWorld returns the kind of the cell containing world pixel (x, y).
func (g *Grid) TileAtWorld(x, y int) Kind {
	if g == nil {
		return Empty
	}
	cx, cy := g.CellOf(x, y)
	return g.TileAt(cx, cy)
}

// CellOf converts a world pixel to the cell containing it.
func (g *Grid) CellOf(x, y int) (cx, cy int) {
	return g.toCell(x - g.originX), g.toCell(y - g.originY)
}

func (g *Grid) toCell(d int) int {
	if g.shift >= 0 {
		return d >> g.shift
	}
	return common.FloorDiv(d, g.cellSize)
}

// AlignX returns the world x of the left edge of the cell column containing x.
func (g *Grid) AlignX(x int) int {
	return g.align(x - g.originX) + g.originX
}

// AlignY returns the world y of the top edge of the cell row containing y.
func (g *Grid) AlignY(y int) int {
	return g.align(y - g.originY) + g.originY
}

func (g *Grid) align(d int) int {
	if g.shift >= 0 {
		return d &^ (g.cellSize - 1)
	}
	return common.FloorDiv(d, g.cellSize) * g.cellSize
}

// CellRect returns the world rectangle of cell (cx, cy).
func (g *Grid) CellRect(cx, cy int) Rect {
	return Rect{
		X: g.originX + cx*g.cellSize,
		Y: g.originY + cy*g.cellSize,
		W: g.cellSize,
		H: g.cellSize,
	}
}

// SurfaceYAbove returns the world y of the pixel row directly above the
// surface of the tile containing (x, y). For Block that is one pixel above the
// tile's top edge. Empty cells return y unchanged.
//
// New tile kinds with a non-flat top (slopes) compute their height here from x.
func (g *Grid) SurfaceYAbove(x, y int) int {
	switch g.TileAtWorld(x, y) {
	case Block:
		return g.AlignY(y) - 1
	default:
		return y
	}
}
