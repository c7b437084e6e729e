package kinematic

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func boxTuning() Tuning {
	return Tuning{
		MaxSpeed:      360,
		Acceleration:  2160,
		Deceleration:  2160,
		Gravity:       1800,
		JumpImpulse:   -600,
		ReleaseFactor: 0.2,
	}
}

var boxOptions = Options{Anchor: AnchorTopLeft, Sweep: SweepBox}

func TestBoxSweepLanding(t *testing.T) {
	g := borderGrid(t, 20, 12, 32)
	b := New(64, 256, 32, 32, boxTuning(), boxOptions)

	for i := 0; i < 200; i++ {
		c := b.Update(g, Intent{}, frame)
		if !c.HitFloor {
			continue
		}
		if !b.Landed() {
			t.Fatalf("expected Landed on the first floor contact")
		}
		if got := b.Box().Bottom(); got != 352 {
			t.Fatalf("bottom at %d, want 352", got)
		}
		if b.Position != (cp.Vector{X: 64, Y: 320}) {
			t.Fatalf("expected top-left anchor at (64,320), got %v", b.Position)
		}
		c = b.Update(g, Intent{}, frame)
		if !c.Grounded || b.State != Grounded {
			t.Fatalf("expected grounded after landing, got %+v", c)
		}
		return
	}
	t.Fatalf("never landed, at %v", b.Position)
}

func TestBoxSweepWalls(t *testing.T) {
	cases := []struct {
		name  string
		dir   float64
		wantX float64
		side  int
	}{
		{"left", -1, 32, -1},
		{"right", 1, 576, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := borderGrid(t, 20, 12, 32)
			b := New(300, 320, 32, 32, boxTuning(), boxOptions)
			settle(t, b, g)

			for i := 0; i < 200; i++ {
				contacts := b.Update(g, Intent{MoveX: c.dir}, frame)
				if !contacts.HitWall {
					continue
				}
				if b.Position.X != c.wantX {
					t.Fatalf("stopped at x=%v, want %v", b.Position.X, c.wantX)
				}
				if contacts.WallSide != c.side {
					t.Fatalf("expected wall side %d, got %d", c.side, contacts.WallSide)
				}
				if b.Velocity.X != 0 {
					t.Fatalf("expected horizontal velocity 0, got %v", b.Velocity.X)
				}
				return
			}
			t.Fatalf("never hit the wall, at %v", b.Position)
		})
	}
}

func TestBoxSweepCeiling(t *testing.T) {
	g := borderGrid(t, 20, 12, 32)
	tun := boxTuning()
	tun.JumpImpulse = -2000
	b := New(64, 320, 32, 32, tun, boxOptions)
	settle(t, b, g)

	b.Update(g, Intent{JumpPressed: true, JumpHeld: true}, frame)
	for i := 0; i < 60; i++ {
		c := b.Update(g, Intent{JumpHeld: true}, frame)
		if !c.HitCeiling {
			continue
		}
		if got := b.Box().Y; got != 32 {
			t.Fatalf("top at %d, want flush with the ceiling at 32", got)
		}
		if b.Velocity.Y != 0 {
			t.Fatalf("expected vertical velocity 0, got %v", b.Velocity.Y)
		}
		return
	}
	t.Fatalf("never reached the ceiling, at %v", b.Position)
}

func TestBoxSweepFallingAlongWall(t *testing.T) {
	g := borderGrid(t, 20, 12, 32)
	b := New(560, 200, 32, 32, boxTuning(), boxOptions)
	b.Velocity.X = 360

	for i := 0; i < 100; i++ {
		c := b.Update(g, Intent{MoveX: 1}, frame)
		if c.HitFloor {
			break
		}
	}
	if b.Position != (cp.Vector{X: 576, Y: 320}) {
		t.Fatalf("expected to slide down into the corner at (576,320), got %v", b.Position)
	}
}

// The probe sweep insets its side probes by one pixel, so a body falling flush
// against a wall neither touches the wall nor lands on it.
func TestProbeFallingAlongWall(t *testing.T) {
	g := borderGrid(t, 20, 12, 16)
	// box spans x 296..303, flush with the right wall at 304
	b := New(300, 60, 8, 16, ClassicTuning(), Options{})

	for i := 0; i < 200; i++ {
		c := b.Update(g, Intent{}, frame)
		if c.HitWall || c.HitCeiling {
			t.Fatalf("frame %d: unexpected contact %+v at %v", i, c, b.Position)
		}
		if !c.HitFloor {
			continue
		}
		if b.Position != (cp.Vector{X: 300, Y: 175}) {
			t.Fatalf("expected to land in the corner at (300,175), got %v", b.Position)
		}
		return
	}
	t.Fatalf("never landed, at %v", b.Position)
}

// A body wider than two cells standing over a single block misses it with
// all three probe points, while the box ground check sees it.
func TestProbeGroundApproximation(t *testing.T) {
	const w, h = 20, 12
	cells := make([]int, w*h)
	cells[8*w+9] = 1 // spans x 144..159, top at y=128
	g := gridFrom(t, w, h, 16, cells)

	cases := []struct {
		name string
		opts Options
		want bool
	}{
		{"probe", Options{}, false},
		{"box", Options{Sweep: SweepBox}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			// box spans x 123..162; center probe at 143, corners at 123 and 162
			b := New(143, 127, 40, 16, ClassicTuning(), c.opts)
			contacts := b.Update(g, Intent{}, 0)
			if contacts.Grounded != c.want {
				t.Fatalf("expected grounded=%v, got %v", c.want, contacts.Grounded)
			}
		})
	}
}

func TestTopDown(t *testing.T) {
	g := borderGrid(t, 20, 12, 32)
	opts := boxOptions
	opts.TopDown = true
	b := New(300, 200, 32, 32, boxTuning(), opts)

	for i := 0; i < 120; i++ {
		b.Update(g, Intent{}, frame)
	}
	if b.Position != (cp.Vector{X: 300, Y: 200}) {
		t.Fatalf("top-down body without input must not fall, got %v", b.Position)
	}

	var ceiling bool
	for i := 0; i < 120 && !ceiling; i++ {
		ceiling = b.Update(g, Intent{MoveY: -1}, frame).HitCeiling
	}
	if !ceiling || b.Box().Y != 32 {
		t.Fatalf("expected to stop under the top wall at y=32, got %v", b.Position)
	}
	if b.State == Jumping {
		t.Fatalf("top-down movement must not jump")
	}
}

func TestSetOptionsKeepsBox(t *testing.T) {
	b := New(160, 175, 8, 16, ClassicTuning(), Options{})
	before := b.Box()
	b.SetOptions(Options{Anchor: AnchorTopLeft, Sweep: SweepBox})
	if b.Box() != before {
		t.Fatalf("box moved from %v to %v", before, b.Box())
	}
	if b.Position != (cp.Vector{X: 156, Y: 160}) {
		t.Fatalf("expected the top-left anchor at (156,160), got %v", b.Position)
	}
}
