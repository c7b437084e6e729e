package kinematic

import (
	"math"

	"github.com/milk9111/platformer/common"
)

// moveCalc accelerates toward the input-driven target speed, or decelerates
// to rest when there is no horizontal intent.
func (b *Body) moveCalc(in Intent, dt float64) {
	b.Velocity.X = b.drive(b.Velocity.X, in.MoveX, dt)
}

// driveVertical replaces gravity and jumping with the horizontal model on
// the vertical axis for top-down movement.
func (b *Body) driveVertical(in Intent, dt float64) {
	b.Velocity.Y = b.drive(b.Velocity.Y, in.MoveY, dt)
}

func (b *Body) drive(v, axis, dt float64) float64 {
	t := b.tuning
	dir := common.Clamp(finite(axis), -1, 1)
	if math.Abs(dir) > t.DeadZone {
		v = common.MoveToward(v, dir*t.MaxSpeed, t.Acceleration*dt)
		return common.Clamp(v, -t.MaxSpeed, t.MaxSpeed)
	}
	return common.MoveToward(v, 0, t.Deceleration*dt)
}

// updateLatch records jump presses. A press stays latched while the button is
// held, or for JumpBuffer seconds when a buffer window is configured.
func (b *Body) updateLatch(in Intent, dt float64) {
	if in.JumpPressed {
		b.latch = true
		b.latchAge = 0
		return
	}
	if !b.latch {
		return
	}
	b.latchAge += dt
	if b.tuning.JumpBuffer > 0 {
		if b.latchAge > b.tuning.JumpBuffer {
			b.latch = false
		}
		return
	}
	if !in.JumpHeld {
		b.latch = false
	}
}

// gravityCalc runs the state transitions for this frame, then applies gravity
// and the terminal velocity clamp.
func (b *Body) gravityCalc(in Intent, dt float64) {
	b.updateLatch(in, dt)

	if b.Contacts.Grounded {
		if b.State != Grounded {
			b.land()
		}
		b.coyote = b.tuning.CoyoteTime
		if b.latch {
			b.jump()
		}
	} else {
		switch b.State {
		case Jumping:
			if !in.JumpHeld {
				b.release()
			} else if b.Velocity.Y >= 0 {
				b.apex()
			}
		case Grounded:
			b.fall()
		}
		if b.State == Airborne && b.latch && b.coyote > 0 {
			b.jump()
		}
		b.coyote = max(0, b.coyote-dt)
	}

	b.Velocity.Y += b.tuning.Gravity * dt
	if limit := b.tuning.TerminalVelocity(); b.Velocity.Y > limit {
		b.Velocity.Y = limit
	}
}
