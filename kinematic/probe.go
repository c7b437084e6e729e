package kinematic

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/tilemap"
)

// groundCheck probes the pixel row just below the body.
//
// The probe sweep samples only the center and both bottom corners, so a body
// can stand over a gap narrower than half its width and still be grounded for
// a frame longer than a full-width scan would report.
func (b *Body) groundCheck(g *tilemap.Grid) bool {
	if g == nil {
		return false
	}
	box := b.Box()
	y := box.Bottom()
	if b.opts.Sweep == SweepBox {
		for range g.Candidates(tilemap.Rect{X: box.X, Y: y, W: box.W, H: 1}) {
			return true
		}
		return false
	}
	for _, x := range [3]int{box.X + box.W/2, box.X, box.Right() - 1} {
		if g.TileAtWorld(x, y) == tilemap.Empty {
			continue
		}
		if y >= g.SurfaceYAbove(x, y) {
			return true
		}
	}
	return false
}

// sweepHorizontal moves the leading vertical edge by dx pixels. Its top,
// middle and bottom pixels are tested in every cell column the edge crosses,
// nearest first. On a hit the body is snapped flush against the tile and the
// returned delta is zero.
func (b *Body) sweepHorizontal(g *tilemap.Grid, dx int) int {
	if dx == 0 || g == nil {
		return dx
	}
	box := b.Box()
	dir := common.Sign(dx)
	edge := box.X
	if dir > 0 {
		edge = box.Right() - 1
	}

	bottom := box.Bottom() - 1
	var rows [3]int
	for i, y := range [3]int{box.Y, bottom - box.H/2, bottom} {
		_, rows[i] = g.CellOf(0, y)
	}

	from, _ := g.CellOf(edge+dir, 0)
	to, _ := g.CellOf(edge+dx, 0)
	col, ok := firstSolid(from, to, dir, g.Width(), func(c int) bool {
		return g.Solid(c, rows[0]) || g.Solid(c, rows[1]) || g.Solid(c, rows[2])
	})
	if !ok {
		return dx
	}

	cell := g.CellRect(col, 0)
	target := cell.X - 1
	if dir < 0 {
		target = cell.Right()
	}
	b.moveBox(target-edge, 0)
	b.Velocity.X = 0
	b.Remainder.X = 0
	b.Contacts.HitWall = true
	b.Contacts.WallSide = dir
	return 0
}

// sweepVertical moves the leading horizontal edge by dy pixels, testing its
// left, center and right pixels. It sees the horizontal position only as
// corrected by a wall hit, not the free horizontal move of this frame.
func (b *Body) sweepVertical(g *tilemap.Grid, dy int) int {
	if dy == 0 || g == nil {
		return dy
	}
	box := b.Box()
	dir := common.Sign(dy)
	edge := box.Y
	if dir > 0 {
		edge = box.Bottom() - 1
	}

	var cols [3]int
	for i, x := range [3]int{box.X + box.W/2, box.X, box.Right() - 1} {
		cols[i], _ = g.CellOf(x, 0)
	}

	_, from := g.CellOf(0, edge+dir)
	_, to := g.CellOf(0, edge+dy)
	row, ok := firstSolid(from, to, dir, g.Height(), func(r int) bool {
		return g.Solid(cols[0], r) || g.Solid(cols[1], r) || g.Solid(cols[2], r)
	})
	if !ok {
		return dy
	}

	cell := g.CellRect(0, row)
	target := cell.Y - 1
	if dir < 0 {
		target = cell.Bottom()
	}
	b.moveBox(0, target-edge)
	b.Velocity.Y = 0
	b.Remainder.Y = 0
	if dir > 0 {
		b.Contacts.HitFloor = true
	} else {
		b.Contacts.HitCeiling = true
	}
	return 0
}

// firstSolid walks cell indexes from..to in direction dir and returns the
// first one for which solid is true. Indexes outside [0, n) are empty and are
// skipped without being visited.
func firstSolid(from, to, dir, n int, solid func(int) bool) (int, bool) {
	if dir > 0 {
		from, to = max(from, 0), min(to, n-1)
		for c := from; c <= to; c++ {
			if solid(c) {
				return c, true
			}
		}
		return 0, false
	}
	from, to = min(from, n-1), max(to, 0)
	for c := from; c >= to; c-- {
		if solid(c) {
			return c, true
		}
	}
	return 0, false
}
