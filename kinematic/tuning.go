package kinematic

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidTuning = errors.New("kinematic: invalid tuning")

// Tuning holds the movement constants of a body. Speeds are in pixels per
// second, accelerations in pixels per second squared, times in seconds.
type Tuning struct {
	MaxSpeed     float64 `yaml:"max_speed"`
	Acceleration float64 `yaml:"acceleration"`
	Deceleration float64 `yaml:"deceleration"`
	Gravity      float64 `yaml:"gravity"`
	// JumpImpulse is the launch velocity; negative is up. Its magnitude is also
	// the terminal falling speed.
	JumpImpulse float64 `yaml:"jump_impulse"`
	// ReleaseFactor scales JumpImpulse into the upward speed kept when the
	// jump button is let go early.
	ReleaseFactor float64 `yaml:"release_factor"`
	DeadZone      float64 `yaml:"dead_zone"`
	// JumpBuffer keeps a jump press alive for this long after the press. Zero
	// keeps it alive for as long as the button stays held.
	JumpBuffer float64 `yaml:"jump_buffer"`
	// CoyoteTime allows a jump this long after walking off a ledge. Zero
	// disables it.
	CoyoteTime float64 `yaml:"coyote_time"`
}

// ClassicTuning returns the constants of the 16px sample platformer,
// converted from per-frame values at 60 FPS.
func ClassicTuning() Tuning {
	return Tuning{
		MaxSpeed:      1.5625 * 60,
		Acceleration:  0.118164 * 60 * 60,
		Deceleration:  0.113281 * 60 * 60,
		Gravity:       0.363281 * 60 * 60,
		JumpImpulse:   -6.5625 * 60,
		ReleaseFactor: 0.2,
	}
}

// ReleaseVelocity is the vertical speed a rising jump is clipped to when the
// button is released.
func (t Tuning) ReleaseVelocity() float64 {
	return t.JumpImpulse * t.ReleaseFactor
}

// TerminalVelocity is the largest downward speed a body reaches.
func (t Tuning) TerminalVelocity() float64 {
	return math.Abs(t.JumpImpulse)
}

func (t Tuning) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"max_speed", t.MaxSpeed},
		{"acceleration", t.Acceleration},
		{"deceleration", t.Deceleration},
		{"gravity", t.Gravity},
		{"jump_impulse", t.JumpImpulse},
		{"release_factor", t.ReleaseFactor},
		{"dead_zone", t.DeadZone},
		{"jump_buffer", t.JumpBuffer},
		{"coyote_time", t.CoyoteTime},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidTuning, f.name)
		}
		if f.name != "jump_impulse" && f.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %g", ErrInvalidTuning, f.name, f.v)
		}
	}
	if t.JumpImpulse >= 0 {
		return fmt.Errorf("%w: jump_impulse must be negative (up), got %g", ErrInvalidTuning, t.JumpImpulse)
	}
	if t.ReleaseFactor > 1 {
		return fmt.Errorf("%w: release_factor must be at most 1, got %g", ErrInvalidTuning, t.ReleaseFactor)
	}
	return nil
}
