package input

import "testing"

func TestAxis(t *testing.T) {
	cases := []struct {
		name  string
		neg   bool
		pos   bool
		stick float64
		want  float64
	}{
		{"idle", false, false, 0, 0},
		{"left_key", true, false, 0, -1},
		{"right_key", false, true, 0, 1},
		{"both_keys_cancel", true, true, 0, 0},
		{"stick_in_deadzone", false, true, 0.15, 1},
		{"stick_overrides_keys", true, false, 0.5, 0.5},
		{"stick_clamped", false, false, -1.2, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Axis(c.neg, c.pos, c.stick); got != c.want {
				t.Fatalf("Axis(%v, %v, %v) = %v, want %v", c.neg, c.pos, c.stick, got, c.want)
			}
		})
	}
}
