package kinematic

import (
	"math"

	"github.com/milk9111/platformer/common"
)

// maxStep bounds a single frame's pixel movement so absurd velocities or
// frame times cannot overflow the integer math of the sweeps.
const maxStep = 1 << 20

// Step splits a movement in pixels into a whole-pixel part, truncated toward
// zero, and the fractional remainder carried into the next frame. The
// remainder keeps the sign of raw and its magnitude is always below one.
func Step(raw float64) (pixels int, remainder float64) {
	if math.IsNaN(raw) {
		return 0, 0
	}
	raw = common.Clamp(raw, -maxStep, maxStep)
	whole := math.Trunc(raw)
	return int(whole), raw - whole
}

// accumulate turns this frame's velocity plus the carried remainders into
// whole-pixel deltas.
func (b *Body) accumulate(dt float64) (dx, dy int) {
	raw := b.Velocity.Mult(dt).Add(b.Remainder)
	dx, b.Remainder.X = Step(raw.X)
	dy, b.Remainder.Y = Step(raw.Y)
	return dx, dy
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// fraction keeps the remainder invariant |r| < 1 for remainders set by callers.
func fraction(v float64) float64 {
	v = finite(v)
	return v - math.Trunc(v)
}
