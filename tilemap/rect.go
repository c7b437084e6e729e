package tilemap

// Rect is an axis-aligned rectangle in world pixels. Right and Bottom are
// exclusive.
type Rect struct {
	X, Y int
	W, H int
}

func (r Rect) Right() int {
	return r.X + r.W
}

func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rect covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether r and other share at least one pixel. Rects that
// only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		other.X < r.Right() &&
		r.Y < other.Bottom() &&
		other.Y < r.Bottom()
}

// Contains reports whether the pixel (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Expand grows r along the direction of (dx, dy) so it covers both the
// original rect and the rect moved by that delta.
func (r Rect) Expand(dx, dy int) Rect {
	if dx < 0 {
		r.X += dx
		r.W -= dx
	} else {
		r.W += dx
	}
	if dy < 0 {
		r.Y += dy
		r.H -= dy
	} else {
		r.H += dy
	}
	return r
}
