package keypad

import (
	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a row-major 2-D grid indexed by Pt{X: col, Y: row}.
type Grid[T any] [][]T

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if len(g) == 0 || p.X < 0 || p.Y < 0 || p.Y >= len(g) || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// Hash returns a deep hash of the grid contents.
func (g Grid[T]) Hash() deephash.Sum {
	return deephash.Hash(&g)
}

// Direction is one of the four moves a directional pad can issue.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every Direction in declaration order.
var Directions = [...]Direction{Up, Right, Down, Left}

// Delta returns the unit step for d. Y grows downward.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad direction")
}

// Button returns the directional pad button that issues d.
func (d Direction) Button() rune {
	return rune(d.String()[0])
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Add returns p translated by d.
func (p Pt2[T]) Add(d Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + d.X, p.Y + d.Y}
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// mdist returns the manhattan distance between a and b.
func (a Pt2[T]) mdist(b Pt2[T]) T {
	return absDiff(a.X, b.X) + absDiff(a.Y, b.Y)
}
