package keypad

// searchState is a node in a level search: where the controller points on
// the pad being operated, and the last button pressed on the directional pad
// steering it.
type searchState struct {
	pos  Pt
	last rune
	done bool // to has been pressed
}

// levelSearch returns the cheapest way for a controller pointing at from on
// pad to move to button to and press it. press(a, b) is the cost of having
// the upstream directional pad press b right after it pressed a.
//
// The upstream pointer starts each search parked on Activate, and every
// press on pad ends with it back on Activate. Costs saturate at math.MaxInt.
func levelSearch(pad *Pad, from, to rune, press func(a, b rune) int) int {
	start := MustGet(pad.Locate(from))
	goal := MustGet(pad.Locate(to))

	best := map[searchState]int{}
	q := MinQueue[searchState]()
	push := func(s searchState, cost int) {
		if c, ok := best[s]; ok && c <= cost {
			return
		}
		best[s] = cost
		q.Push(&PQI[searchState]{V: s, P: cost})
	}
	push(searchState{pos: start, last: Activate}, 0)

	finalized := map[searchState]bool{}
	for q.Len() > 0 {
		it := q.Pop()
		s, cost := it.V, it.P
		if s.done {
			return cost
		}
		if finalized[s] {
			continue
		}
		finalized[s] = true

		for _, d := range Directions {
			next := s.pos.Add(d.Delta())
			if !pad.IsButton(next) {
				continue
			}
			b := d.Button()
			push(searchState{pos: next, last: b}, addSat(cost, press(s.last, b)))
		}
		if s.pos == goal {
			push(searchState{pos: s.pos, last: Activate, done: true}, addSat(cost, press(s.last, Activate)))
		}
	}
	// Pads are connected, so the goal is always reachable.
	panic("unreachable")
}
