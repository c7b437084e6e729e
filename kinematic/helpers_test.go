package kinematic

import (
	"testing"

	"github.com/milk9111/platformer/tilemap"
)

const frame = 1.0 / 60

// classicCells is the 20x12 sample level: a solid frame plus floating
// platforms.
func classicCells() []int {
	const w, h = 20, 12
	cells := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				cells[y*w+x] = 1
			}
		}
	}
	platforms := [][2]int{
		{3, 8}, {4, 8}, {5, 8},
		{8, 6}, {9, 6}, {10, 6},
		{13, 7}, {14, 7}, {15, 7},
		{1, 10},
	}
	for _, p := range platforms {
		cells[p[1]*w+p[0]] = 1
	}
	return cells
}

func gridFrom(t *testing.T, w, h, size int, cells []int) *tilemap.Grid {
	t.Helper()
	g, err := tilemap.New(w, h, size, cells)
	if err != nil {
		t.Fatalf("tilemap.New: %v", err)
	}
	return g
}

func classicGrid(t *testing.T) *tilemap.Grid {
	return gridFrom(t, 20, 12, 16, classicCells())
}

// borderGrid is an empty room with a one-cell solid frame.
func borderGrid(t *testing.T, w, h, size int) *tilemap.Grid {
	cells := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				cells[y*w+x] = 1
			}
		}
	}
	return gridFrom(t, w, h, size, cells)
}

// settle runs idle frames until the body rests on a floor.
func settle(t *testing.T, b *Body, g *tilemap.Grid) {
	t.Helper()
	for i := 0; i < 600; i++ {
		b.Update(g, Intent{}, frame)
		if b.State == Grounded && b.Contacts.Grounded && b.Velocity.Y == 0 {
			return
		}
	}
	t.Fatalf("body never came to rest at %v", b.Position)
}
