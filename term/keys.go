package term

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/platformer/kinematic"
)

// Terminals report key presses and auto-repeats but never releases, so a key
// counts as held for a while after each event. The first window covers the
// delay before auto-repeat starts.
const (
	firstHold  = 350 * time.Millisecond
	repeatHold = 120 * time.Millisecond
)

type control uint8

const (
	ctrlLeft control = iota
	ctrlRight
	ctrlUp
	ctrlDown
	ctrlJump
	ctrlCount
)

type holdKeys struct {
	until   [ctrlCount]time.Time
	jumping bool
}

// controlFor maps a key event to a movement control.
func controlFor(ev *tcell.EventKey) (control, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ctrlLeft, true
	case tcell.KeyRight:
		return ctrlRight, true
	case tcell.KeyUp:
		return ctrlUp, true
	case tcell.KeyDown:
		return ctrlDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return ctrlLeft, true
		case 'd', 'D':
			return ctrlRight, true
		case 'w', 'W':
			return ctrlUp, true
		case 's', 'S':
			return ctrlDown, true
		case ' ':
			return ctrlJump, true
		}
	}
	return 0, false
}

// press records an event for c at now.
func (k *holdKeys) press(c control, now time.Time) {
	hold := repeatHold
	if !k.held(c, now) {
		hold = firstHold
	}
	k.until[c] = now.Add(hold)
	// left and right are exclusive so a direction change is immediate
	switch c {
	case ctrlLeft:
		k.until[ctrlRight] = time.Time{}
	case ctrlRight:
		k.until[ctrlLeft] = time.Time{}
	}
}

func (k *holdKeys) held(c control, now time.Time) bool {
	return now.Before(k.until[c])
}

// intent samples the held controls. JumpPressed is reported once per hold.
func (k *holdKeys) intent(now time.Time) kinematic.Intent {
	axis := func(neg, pos control) float64 {
		v := 0.0
		if k.held(neg, now) {
			v--
		}
		if k.held(pos, now) {
			v++
		}
		return v
	}
	jump := k.held(ctrlJump, now)
	in := kinematic.Intent{
		MoveX:       axis(ctrlLeft, ctrlRight),
		MoveY:       axis(ctrlUp, ctrlDown),
		JumpHeld:    jump,
		JumpPressed: jump && !k.jumping,
	}
	k.jumping = jump
	return in
}

func (k *holdKeys) reset() {
	*k = holdKeys{}
}
