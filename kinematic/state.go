package kinematic

import "fmt"

// State is the vertical movement state of a body.
type State uint8

const (
	// Grounded: resting on a floor, vertical speed pinned by floor contact.
	Grounded State = iota
	// Jumping: rising from a jump with the button still held.
	Jumping
	// Airborne: falling, or rising after the jump button was released.
	Airborne
)

func (s State) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Jumping:
		return "jumping"
	case Airborne:
		return "airborne"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// land moves Jumping or Airborne to Grounded.
func (b *Body) land() {
	b.State = Grounded
}

// jump launches the body and consumes the buffered press.
func (b *Body) jump() {
	b.Velocity.Y = b.tuning.JumpImpulse
	b.State = Jumping
	b.Contacts.Grounded = false
	b.latch = false
	b.coyote = 0
}

// release ends a held jump early, clipping the rise to the release velocity.
func (b *Body) release() {
	if rel := b.tuning.ReleaseVelocity(); b.Velocity.Y < rel {
		b.Velocity.Y = rel
	}
	b.State = Airborne
}

// apex ends a held jump once the body stops rising.
func (b *Body) apex() {
	b.State = Airborne
}

// rest pins a grounded body to its floor.
func (b *Body) rest() int {
	b.Velocity.Y = 0
	b.Remainder.Y = 0
	b.Contacts.HitFloor = true
	return 0
}

// fall starts falling after the floor disappeared from under a grounded body.
func (b *Body) fall() {
	b.State = Airborne
	b.coyote = b.tuning.CoyoteTime
}
