package engine

import "golang.org/x/exp/constraints"

// Max returns the larger of x or y.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// EvenDepth rounds d up to the nearest depth Search accepts.
func EvenDepth(d int) int {
	d = Max(d, 2)
	return d + d%2
}
