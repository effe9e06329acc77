package mathx

import "golang.org/x/exp/constraints"

// Between reports lo <= v && v <= hi (order-insensitive).
func Between[T constraints.Integer](v, lo, hi T) bool {
	if hi < lo {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// CeilDiv returns ceil(a/b) for unsigned integers; b == 0 yields 0.
func CeilDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// SplitIndex splits n into a block index and an offset within blocks of width w.
func SplitIndex[T constraints.Unsigned](n, w T) (block, offset T) {
	if w == 0 {
		return 0, n
	}
	return n / w, n % w
}
