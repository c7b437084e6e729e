// Package kinematic moves an axis-aligned body through a tilemap.Grid.
//
// A Body keeps its position on whole pixels and carries the fractional part of
// each frame's movement in a remainder, so slow speeds still produce movement
// over several frames. Each Update resolves horizontal movement first, then
// vertical, and reports which sides touched a solid tile.
package kinematic

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/tilemap"
)

// Intent is the input sampled for one frame.
type Intent struct {
	// MoveX and MoveY are in [-1, 1]; negative is left/up.
	MoveX float64
	MoveY float64
	// JumpHeld is true while the jump button is down.
	JumpHeld bool
	// JumpPressed is true only on the frame the button went down.
	JumpPressed bool
}

// Contacts are the collision results of one frame.
type Contacts struct {
	// Grounded is the result of the ground probe at the start of the frame,
	// cleared when the body launches a jump.
	Grounded   bool `yaml:"grounded"`
	HitFloor   bool `yaml:"hit_floor"`
	HitCeiling bool `yaml:"hit_ceiling"`
	HitWall    bool `yaml:"hit_wall"`
	// WallSide is -1 for a wall on the left, 1 on the right, 0 for none.
	WallSide int `yaml:"wall_side"`
}

// Body is a rectangle moved by velocity against a tile grid. The caller owns
// it and calls Update once per frame.
type Body struct {
	// Position is the anchor point in world pixels. It holds whole numbers
	// after every Update.
	Position cp.Vector
	// Velocity is in pixels per second.
	Velocity cp.Vector
	// Remainder is the sub-pixel movement carried to the next frame.
	Remainder cp.Vector
	Width     int
	Height    int

	State    State
	Contacts Contacts

	prev     Contacts
	tuning   Tuning
	opts     Options
	latch    bool
	latchAge float64
	coyote   float64
}

// New creates a body at rest with its anchor at (x, y).
func New(x, y float64, w, h int, t Tuning, o Options) *Body {
	b := &Body{
		Width:  w,
		Height: h,
		State:  Airborne,
		tuning: t,
		opts:   o,
	}
	b.Reset(x, y)
	return b
}

// Reset teleports the body and clears its motion, latched input and contacts.
func (b *Body) Reset(x, y float64) {
	b.Position = cp.Vector{X: math.Floor(finite(x)), Y: math.Floor(finite(y))}
	b.Velocity = cp.Vector{}
	b.Remainder = cp.Vector{}
	b.State = Airborne
	b.Contacts = Contacts{}
	b.prev = Contacts{}
	b.latch = false
	b.latchAge = 0
	b.coyote = 0
}

func (b *Body) Tuning() Tuning {
	return b.tuning
}

// SetTuning replaces the movement constants without touching motion state.
func (b *Body) SetTuning(t Tuning) {
	b.tuning = t
}

func (b *Body) Options() Options {
	return b.opts
}

// SetOptions changes the resolver configuration. Switching the anchor keeps
// the box where it is.
func (b *Body) SetOptions(o Options) {
	box := b.Box()
	b.opts = o
	moved := b.Box()
	b.moveBox(box.X-moved.X, box.Y-moved.Y)
}

// size returns the body dimensions, treating degenerate sizes as one pixel.
func (b *Body) size() (w, h int) {
	return max(b.Width, 1), max(b.Height, 1)
}

// Box returns the pixels covered by the body. Right and Bottom are exclusive.
func (b *Body) Box() tilemap.Rect {
	w, h := b.size()
	x, y := int(b.Position.X), int(b.Position.Y)
	if b.opts.Anchor == AnchorTopLeft {
		return tilemap.Rect{X: x, Y: y, W: w, H: h}
	}
	return tilemap.Rect{X: x - w/2, Y: y - h + 1, W: w, H: h}
}

// moveBox shifts the anchor so the box moves by (dx, dy).
func (b *Body) moveBox(dx, dy int) {
	b.Position = b.Position.Add(cp.Vector{X: float64(dx), Y: float64(dy)})
}

// Landed reports whether the body touched a floor this frame after not
// touching one last frame.
func (b *Body) Landed() bool {
	return b.Contacts.HitFloor && !b.prev.HitFloor
}

// LeftGround reports whether the body was grounded last frame and is not now,
// by jumping or walking off a ledge.
func (b *Body) LeftGround() bool {
	return b.prev.Grounded && !b.Contacts.Grounded
}

// Bumped reports whether the body hit a ceiling this frame after not
// touching one last frame.
func (b *Body) Bumped() bool {
	return b.Contacts.HitCeiling && !b.prev.HitCeiling
}

// Update advances the body by one frame of dt seconds against g and returns
// the frame's contacts. A nil grid is open space. A non-positive or
// non-finite dt only refreshes the ground probe.
func (b *Body) Update(g *tilemap.Grid, in Intent, dt float64) Contacts {
	b.prev = b.Contacts
	b.Contacts = Contacts{}
	b.sanitize()

	b.Contacts.Grounded = b.groundCheck(g)
	if !(dt > 0) || math.IsInf(dt, 0) {
		return b.Contacts
	}

	b.moveCalc(in, dt)
	if b.opts.TopDown {
		b.driveVertical(in, dt)
	} else {
		b.gravityCalc(in, dt)
	}
	dx, dy := b.accumulate(dt)
	if !b.opts.TopDown && b.Contacts.Grounded && dy >= 0 && b.Velocity.Y >= 0 {
		dy = b.rest()
	}

	if b.opts.Sweep == SweepBox {
		dx, dy = b.sweepBox(g, dx, dy)
	} else {
		dx = b.sweepHorizontal(g, dx)
		dy = b.sweepVertical(g, dy)
	}
	b.moveBox(dx, dy)

	if !b.opts.Unbounded && g != nil {
		b.clamp(g.Bounds())
	}
	return b.Contacts
}

// sanitize restores the invariants if a caller wrote to the exported fields.
func (b *Body) sanitize() {
	b.Position.X = math.Floor(finite(b.Position.X))
	b.Position.Y = math.Floor(finite(b.Position.Y))
	b.Velocity.X = finite(b.Velocity.X)
	b.Velocity.Y = finite(b.Velocity.Y)
	b.Remainder.X = fraction(b.Remainder.X)
	b.Remainder.Y = fraction(b.Remainder.Y)
}

// clamp keeps the box inside bounds. Prefers the top-left edge when the body
// is larger than the bounds.
func (b *Body) clamp(bounds tilemap.Rect) {
	box := b.Box()
	dx, dy := 0, 0
	if box.Right() > bounds.Right() {
		dx = bounds.Right() - box.Right()
	}
	if box.X+dx < bounds.X {
		dx = bounds.X - box.X
	}
	if box.Bottom() > bounds.Bottom() {
		dy = bounds.Bottom() - box.Bottom()
	}
	if box.Y+dy < bounds.Y {
		dy = bounds.Y - box.Y
	}
	b.moveBox(dx, dy)
}
