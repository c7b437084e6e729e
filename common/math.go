package common

// Number is any numeric type the helpers below accept.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Clamp restricts v to [lo, hi].
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign[T Number](v T) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// FloorDiv divides rounding toward negative infinity. b must be positive.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// MoveToward moves v toward target by at most step.
func MoveToward(v, target, step float64) float64 {
	if Abs(target-v) <= step {
		return target
	}
	if v < target {
		return v + step
	}
	return v - step
}
