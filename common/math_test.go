package common

import "testing"

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{0, 16, 0},
		{15, 16, 0},
		{16, 16, 1},
		{-1, 16, -1},
		{-16, 16, -1},
		{-17, 16, -2},
		{47, 10, 4},
		{-47, 10, -5},
	}
	for _, c := range cases {
		if got := FloorDiv(c.a, c.b); got != c.want {
			t.Fatalf("FloorDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestClampAndSign(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := Clamp(-2.5, -1.0, 1.0); got != -1.0 {
		t.Fatalf("expected -1, got %v", got)
	}
	if Sign(-0.3) != -1 || Sign(0.0) != 0 || Sign(7) != 1 {
		t.Fatalf("unexpected sign results")
	}
}

func TestMoveToward(t *testing.T) {
	cases := []struct {
		name            string
		v, target, step float64
		want            float64
	}{
		{"snap_when_close", 0.5, 0, 1, 0},
		{"down", 10, 0, 3, 7},
		{"up", -10, 0, 3, -7},
		{"exact", 3, 0, 3, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := MoveToward(c.v, c.target, c.step); got != c.want {
				t.Fatalf("MoveToward(%v, %v, %v) = %v, want %v", c.v, c.target, c.step, got, c.want)
			}
		})
	}
}
