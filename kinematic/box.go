package kinematic

import "github.com/milk9111/platformer/tilemap"

// sweepBox resolves the whole frame's movement against every solid tile under
// the box grown by (dx, dy). For each tile the horizontal delta is clipped
// first, with the body at its current height, then the vertical delta with
// the clipped horizontal delta applied. Tiles are visited top-down when
// falling and bottom-up otherwise so the nearest floor or ceiling clips first.
func (b *Body) sweepBox(g *tilemap.Grid, dx, dy int) (int, int) {
	if g == nil || (dx == 0 && dy == 0) {
		return dx, dy
	}
	box := b.Box()
	area := box.Expand(dx, dy)
	tiles := g.CandidatesReverse(area)
	if dy > 0 {
		tiles = g.Candidates(area)
	}

	wallSide, floorHit, ceilingHit := 0, false, false
	for t := range tiles {
		if box.Translate(dx, 0).Intersects(t) {
			switch {
			case dx > 0:
				dx = t.X - box.Right()
				wallSide = 1
			case dx < 0:
				dx = t.Right() - box.X
				wallSide = -1
			}
		}
		if box.Translate(dx, dy).Intersects(t) {
			switch {
			case dy > 0:
				dy = t.Y - box.Bottom()
				floorHit = true
			case dy < 0:
				dy = t.Bottom() - box.Y
				ceilingHit = true
			}
		}
	}

	if wallSide != 0 {
		b.Velocity.X = 0
		b.Remainder.X = 0
		b.Contacts.HitWall = true
		b.Contacts.WallSide = wallSide
	}
	if floorHit || ceilingHit {
		b.Velocity.Y = 0
		b.Remainder.Y = 0
		b.Contacts.HitFloor = floorHit
		b.Contacts.HitCeiling = ceilingHit
	}
	return dx, dy
}
