package keypad

import (
	"log"
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Digits returns the individual digits of the string.
func Digits(line string) []int {
	var in []int
	for _, c := range line {
		in = append(in, Digit(c))
	}
	return in
}

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		log.Fatalf("not a digit: %q", r)
	}
	return int(r - '0')
}

func absDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// addSat returns a+b for non-negative a and b, clamped to math.MaxInt.
func addSat(a, b int) int {
	if s, ok := checkedAdd(a, b); ok {
		return s
	}
	return math.MaxInt
}

// checkedAdd reports whether a+b fits in a non-negative int.
func checkedAdd(a, b int) (int, bool) {
	s, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 || s > math.MaxInt {
		return 0, false
	}
	return int(s), true
}

// checkedMul reports whether a*b fits in a non-negative int.
func checkedMul(a, b int) (int, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}
