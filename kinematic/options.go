package kinematic

import "fmt"

// Anchor selects which point of the body Position refers to.
type Anchor uint8

const (
	// AnchorBottomCenter puts Position on the bottom pixel row, at the
	// horizontal center of the body.
	AnchorBottomCenter Anchor = iota
	// AnchorTopLeft puts Position on the top-left pixel.
	AnchorTopLeft
)

func (a Anchor) String() string {
	switch a {
	case AnchorBottomCenter:
		return "bottom-center"
	case AnchorTopLeft:
		return "top-left"
	default:
		return fmt.Sprintf("anchor(%d)", uint8(a))
	}
}

func (a *Anchor) UnmarshalText(text []byte) error {
	switch string(text) {
	case "bottom-center", "":
		*a = AnchorBottomCenter
	case "top-left":
		*a = AnchorTopLeft
	default:
		return fmt.Errorf("kinematic: unknown anchor %q", text)
	}
	return nil
}

func (a Anchor) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Sweep selects how a frame's movement is tested against the grid.
type Sweep uint8

const (
	// SweepProbe tests three points on the leading edge, one axis at a time.
	SweepProbe Sweep = iota
	// SweepBox grows the body box by the frame's movement, gathers the solid
	// tiles under it and clips the movement against each one.
	SweepBox
)

func (s Sweep) String() string {
	switch s {
	case SweepProbe:
		return "probe"
	case SweepBox:
		return "box"
	default:
		return fmt.Sprintf("sweep(%d)", uint8(s))
	}
}

func (s *Sweep) UnmarshalText(text []byte) error {
	switch string(text) {
	case "probe", "":
		*s = SweepProbe
	case "box":
		*s = SweepBox
	default:
		return fmt.Errorf("kinematic: unknown sweep %q", text)
	}
	return nil
}

func (s Sweep) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Options configures the resolver. The zero value is the 16px sample's setup:
// bottom-center anchor, probe sweep, clamped to the grid bounds.
type Options struct {
	Anchor Anchor `yaml:"anchor"`
	Sweep  Sweep  `yaml:"sweep"`
	// Unbounded disables keeping the body inside the grid bounds.
	Unbounded bool `yaml:"unbounded"`
	// TopDown drives the vertical axis from MoveY like the horizontal one,
	// without gravity or jumping.
	TopDown bool `yaml:"top_down"`
}
