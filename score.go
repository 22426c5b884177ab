package keypad

import (
	"errors"
	"fmt"
	"math"
	"regexp"
)

// ErrInvalidCode is returned for codes that are not digits followed by A.
var ErrInvalidCode = errors.New("invalid code")

var codeRx = regexp.MustCompile(`^[0-9]+A$`)

// Code is a door code such as "029A".
type Code struct {
	Raw   string
	Value int // numeric part, "029A" -> 29
}

func (c Code) String() string { return c.Raw }

// ParseCode validates s and extracts its numeric value.
func ParseCode(s string) (Code, error) {
	if !codeRx.MatchString(s) {
		return Code{}, fmt.Errorf("%w %q: want digits followed by %q", ErrInvalidCode, s, Activate)
	}
	digits := s[:len(s)-1]
	if len(digits) > 18 {
		return Code{}, fmt.Errorf("%w %q: numeric part overflows", ErrInvalidCode, s)
	}
	v := Fold(Digits(digits), func(acc, d int) int { return acc*10 + d }, 0)
	return Code{Raw: s, Value: v}, nil
}

// LevelsForRobots returns the indirection depth for a chain of n robots
// operating directional pads between the human and the robot at the door.
// The human's own pad adds the last level.
func LevelsForRobots(n int) int {
	return n + 1
}

// Presses returns the minimum number of human presses that type c on the
// numeric pad through levels of indirection. The numeric pad's pointer
// starts on Activate. It returns ErrOverflow if the count does not fit in
// an int.
func (o *Oracle) Presses(c Code, levels int) (int, error) {
	var total int
	prev := Activate
	for _, b := range c.Raw {
		v := o.cost(prev, b, levels, NumericKind)
		t, ok := checkedAdd(total, v)
		if v == math.MaxInt || !ok {
			return 0, fmt.Errorf("presses for %v at %d levels: %w", c, levels, ErrOverflow)
		}
		total = t
		prev = b
	}
	return total, nil
}

// Complexity returns the presses for code s multiplied by its numeric value.
func (o *Oracle) Complexity(s string, levels int) (int, error) {
	c, err := ParseCode(s)
	if err != nil {
		return 0, err
	}
	if levels < 0 {
		return 0, fmt.Errorf("negative levels %d", levels)
	}
	n, err := o.Presses(c, levels)
	if err != nil {
		return 0, err
	}
	v, ok := checkedMul(n, c.Value)
	if !ok {
		return 0, fmt.Errorf("complexity of %v: %d * %d: %w", c, n, c.Value, ErrOverflow)
	}
	return v, nil
}

// Score returns the sum of the complexities of codes. It stops at the first
// invalid code.
func (o *Oracle) Score(codes []string, levels int) (int, error) {
	var total int
	for i, s := range codes {
		v, err := o.Complexity(s, levels)
		if err != nil {
			return 0, fmt.Errorf("code %d: %w", i, err)
		}
		if total, err = sumComplexity(total, v); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// ScoreParallel is like Score but evaluates codes concurrently. The oracle's
// cache must be safe for concurrent use, such as a SharedCache.
func (o *Oracle) ScoreParallel(codes []string, levels int) (int, error) {
	type result struct {
		v   int
		err error
	}
	rs := Parallel(codes, func(s string) result {
		v, err := o.Complexity(s, levels)
		return result{v, err}
	})
	var total int
	for i, r := range rs {
		if r.err != nil {
			return 0, fmt.Errorf("code %d: %w", i, r.err)
		}
		var err error
		if total, err = sumComplexity(total, r.v); err != nil {
			return 0, err
		}
	}
	return total, nil
}

func sumComplexity(total, v int) (int, error) {
	s, ok := checkedAdd(total, v)
	if !ok {
		return 0, fmt.Errorf("score: %d + %d: %w", total, v, ErrOverflow)
	}
	return s, nil
}

// Score is a convenience wrapper that scores codes with a fresh cache.
func Score(codes []string, levels int) (int, error) {
	return NewOracle(nil).Score(codes, levels)
}
