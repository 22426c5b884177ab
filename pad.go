package keypad

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

// ErrUnknownButton is returned when a button is not part of a pad's alphabet.
var ErrUnknownButton = errors.New("unknown button")

// Activate is the button that presses whatever a pad's pointer is on.
const Activate = 'A'

// gap marks a grid cell with no button.
const gap = ' '

// PadKind identifies which of the two pad layouts applies.
type PadKind uint8

const (
	NumericKind PadKind = iota
	DirectionalKind
)

func (k PadKind) String() string {
	switch k {
	case NumericKind:
		return "numeric"
	case DirectionalKind:
		return "directional"
	}
	return fmt.Sprintf("PadKind(%d)", uint8(k))
}

// Pad returns the layout for k.
func (k PadKind) Pad() *Pad {
	switch k {
	case NumericKind:
		return NumericPad
	case DirectionalKind:
		return DirectionalPad
	}
	panic(fmt.Sprintf("bad pad kind %d", k))
}

// ParsePadKind parses "numeric" or "directional".
func ParsePadKind(s string) (PadKind, error) {
	switch strings.ToLower(s) {
	case "numeric", "num":
		return NumericKind, nil
	case "directional", "dir":
		return DirectionalKind, nil
	}
	return 0, fmt.Errorf("unknown pad kind %q", s)
}

// Pad is an immutable keypad layout.
type Pad struct {
	kind PadKind
	grid Grid[rune]
	pos  map[rune]Pt
}

var (
	// NumericPad is the door keypad:
	//
	//	789
	//	456
	//	123
	//	 0A
	NumericPad = mustParsePad(NumericKind, "789\n456\n123\n 0A")

	// DirectionalPad is the keypad every robot controller is steered with:
	//
	//	 ^A
	//	<v>
	DirectionalPad = mustParsePad(DirectionalKind, " ^A\n<v>")
)

func mustParsePad(kind PadKind, layout string) *Pad {
	return MustGet(parsePad(kind, layout))
}

// parsePad builds a Pad from rows separated by newlines, with spaces for
// gaps. Buttons must be unique and connected.
func parsePad(kind PadKind, layout string) (*Pad, error) {
	rows := strings.Split(layout, "\n")
	width := 0
	for _, r := range rows {
		width = max(width, len([]rune(r)))
	}
	p := &Pad{
		kind: kind,
		grid: MakeGrid[rune](width, len(rows)),
		pos:  make(map[rune]Pt),
	}
	var g Graph[Pt]
	for y, row := range rows {
		for x := range p.grid[y] {
			p.grid[y][x] = gap
		}
		for x, c := range []rune(row) {
			p.grid[y][x] = c
			if c == gap {
				continue
			}
			if _, dup := p.pos[c]; dup {
				return nil, fmt.Errorf("%v pad: duplicate button %q", kind, c)
			}
			pt := Pt{x, y}
			p.pos[c] = pt
			g.AddNode(pt)
		}
	}
	if _, ok := p.pos[Activate]; !ok {
		return nil, fmt.Errorf("%v pad: no %q button", kind, Activate)
	}
	for pt := range g.Nodes {
		pt.ForImmediateNeighbors(func(n Pt) bool {
			if p.IsButton(n) {
				g.AddEdge(pt, n, 1)
			}
			return true
		})
	}
	if !g.Connected() {
		return nil, fmt.Errorf("%v pad: buttons are not connected", kind)
	}
	return p, nil
}

// Kind reports which layout p is.
func (p *Pad) Kind() PadKind { return p.kind }

// Locate returns the position of button b on p.
func (p *Pad) Locate(b rune) (Pt, error) {
	pt, ok := p.pos[b]
	if !ok {
		return Pt{}, fmt.Errorf("%w %q on %v pad", ErrUnknownButton, b, p.kind)
	}
	return pt, nil
}

// IsButton reports whether pt is a real button on p. It is false outside the
// grid and on gaps.
func (p *Pad) IsButton(pt Pt) bool {
	c, ok := p.grid.AtOk(pt)
	return ok && c != gap
}

// Buttons returns the pad's alphabet in sorted order.
func (p *Pad) Buttons() []rune {
	bs := maps.Keys(p.pos)
	slices.Sort(bs)
	return bs
}

// String renders the layout as parsed.
func (p *Pad) String() string {
	var sb strings.Builder
	for y, row := range p.grid {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.TrimRight(string(row), string(gap)))
	}
	return sb.String()
}

// Hash returns a deep hash of the layout.
func (p *Pad) Hash() deephash.Sum { return p.grid.Hash() }

// Fingerprint returns a hash of both pad layouts. Costs computed under one
// fingerprint are only valid for layouts with the same fingerprint.
func Fingerprint() string {
	l := [...]string{NumericPad.Hash().String(), DirectionalPad.Hash().String()}
	return deephash.Hash(&l).String()
}
