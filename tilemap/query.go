package tilemap

import "iter"

// Candidates yields the world rects of solid cells overlapping area, row by row
// from the top-left. Nothing is allocated per query.
func (g *Grid) Candidates(area Rect) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		x0, y0, x1, y1, ok := g.span(area)
		if !ok {
			return
		}
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				if g.cells[cy*g.width+cx] == Empty {
					continue
				}
				if !yield(g.CellRect(cx, cy)) {
					return
				}
			}
		}
	}
}

// CandidatesReverse yields the same rects as Candidates in the opposite order,
// starting from the bottom-right cell.
func (g *Grid) CandidatesReverse(area Rect) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		x0, y0, x1, y1, ok := g.span(area)
		if !ok {
			return
		}
		for cy := y1; cy >= y0; cy-- {
			for cx := x1; cx >= x0; cx-- {
				if g.cells[cy*g.width+cx] == Empty {
					continue
				}
				if !yield(g.CellRect(cx, cy)) {
					return
				}
			}
		}
	}
}

// span returns the inclusive cell range overlapped by area, clipped to the grid.
func (g *Grid) span(area Rect) (x0, y0, x1, y1 int, ok bool) {
	if g == nil || area.Empty() {
		return 0, 0, 0, 0, false
	}
	x0, y0 = g.CellOf(area.X, area.Y)
	x1, y1 = g.CellOf(area.Right()-1, area.Bottom()-1)
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, g.width-1)
	y1 = min(y1, g.height-1)
	if x0 > x1 || y0 > y1 {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1, y1, true
}
