package tilemap

// Merge covers the solid cells with as few rectangles as a greedy scan finds:
// each unvisited solid cell grows right as far as the run goes, then down while
// every cell of the next row under the run is solid and unvisited.
//
// It walks the whole grid and allocates, so call it once at level load.
func (g *Grid) Merge() []Rect {
	if g == nil {
		return nil
	}
	var out []Rect
	processed := make([]bool, len(g.cells))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			idx := y*g.width + x
			if processed[idx] {
				continue
			}
			if g.cells[idx] == Empty {
				processed[idx] = true
				continue
			}

			w := 1
			for x+w < g.width {
				idx2 := y*g.width + x + w
				if processed[idx2] || g.cells[idx2] == Empty {
					break
				}
				w++
			}

			h := 1
		heightLoop:
			for y+h < g.height {
				for xi := x; xi < x+w; xi++ {
					idx2 := (y+h)*g.width + xi
					if processed[idx2] || g.cells[idx2] == Empty {
						break heightLoop
					}
				}
				h++
			}

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*g.width+xx] = true
				}
			}
			r := g.CellRect(x, y)
			r.W *= w
			r.H *= h
			out = append(out, r)
		}
	}
	return out
}
