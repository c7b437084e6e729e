// Package input samples keyboard and gamepad state into a per-frame Intent.
package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/kinematic"
)

const stickDeadzone = 0.2

// Frame is one frame of sampled input: the body intent plus the game-level
// commands.
type Frame struct {
	Intent  kinematic.Intent
	Restart bool
	// ToggleMode switches between platformer and top-down movement.
	ToggleMode bool
	Quit       bool
}

// Poll reads the keyboard and the first gamepad. Call it once per Update.
func Poll() Frame {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)

	f := Frame{
		Intent: kinematic.Intent{
			JumpHeld:    ebiten.IsKeyPressed(ebiten.KeySpace),
			JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		},
		Restart:    inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		ToggleMode: inpututil.IsKeyJustPressed(ebiten.KeyTab),
		Quit:       inpututil.IsKeyJustPressed(ebiten.KeyF12) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}

	var stickX, stickY float64
	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		stickX = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		stickY = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)

		f.Intent.JumpHeld = f.Intent.JumpHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		f.Intent.JumpPressed = f.Intent.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		f.Restart = f.Restart || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		f.ToggleMode = f.ToggleMode || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterLeft)
	}

	f.Intent.MoveX = Axis(left, right, stickX)
	f.Intent.MoveY = Axis(up, down, stickY)
	return f
}

// Axis combines a pair of digital keys with an analog stick value. The stick
// wins once it leaves the deadzone.
func Axis(neg, pos bool, stick float64) float64 {
	if math.Abs(stick) > stickDeadzone {
		return max(-1, min(1, stick))
	}
	v := 0.0
	if neg {
		v--
	}
	if pos {
		v++
	}
	return v
}
