package keypad

import (
	"errors"
	"fmt"
	"math"

	"tailscale.com/types/logger"
)

// ErrOverflow is returned when a press count does not fit in an int.
var ErrOverflow = errors.New("press count overflows int")

// Observer is notified of oracle cache activity.
type Observer interface {
	// CacheHit is called when q was answered from the cache.
	CacheHit(q Query)
	// CacheFill is called after q was computed by a level search.
	CacheFill(q Query, cost int)
}

// Oracle computes the minimum number of presses the human at the end of a
// controller chain makes to move a pad's pointer between two buttons and
// press the second one.
//
// An Oracle is safe for concurrent use if its Cache is.
type Oracle struct {
	cache Cache

	// Logf, if non-nil, receives a line for every cache fill.
	Logf logger.Logf
	// Observer, if non-nil, is told about cache hits and fills.
	Observer Observer
}

// NewOracle returns an Oracle memoizing into c. If c is nil a new MapCache
// is used.
func NewOracle(c Cache) *Oracle {
	if c == nil {
		c = NewMapCache()
	}
	return &Oracle{cache: c}
}

// Cache returns the oracle's cache.
func (o *Oracle) Cache() Cache { return o.cache }

// Cost returns the number of presses needed so that, through levels of
// indirection, the pad of the given kind moves from button from to button
// to and to is pressed. Level 0 means the human presses the pad directly.
func (o *Oracle) Cost(from, to rune, levels int, kind PadKind) (int, error) {
	if levels < 0 {
		return 0, fmt.Errorf("negative levels %d", levels)
	}
	pad := kind.Pad()
	if _, err := pad.Locate(from); err != nil {
		return 0, err
	}
	if _, err := pad.Locate(to); err != nil {
		return 0, err
	}
	v := o.cost(from, to, levels, kind)
	if v == math.MaxInt {
		return 0, fmt.Errorf("%c to %c on %v pad at %d levels: %w", from, to, kind, levels, ErrOverflow)
	}
	return v, nil
}

// cost is Cost without argument checks. Buttons reaching it are always on
// the pad, so an unknown button panics. Results too large for an int are
// clamped to math.MaxInt.
func (o *Oracle) cost(from, to rune, levels int, kind PadKind) int {
	if levels == 0 || from == to {
		return 1
	}
	q := Query{From: from, To: to, Levels: levels, Pad: kind}
	v, hit := o.cache.Lookup(q, func() int {
		v := levelSearch(kind.Pad(), from, to, func(a, b rune) int {
			return o.cost(a, b, levels-1, DirectionalKind)
		})
		if o.Logf != nil {
			o.Logf("keypad: %v = %d", q, v)
		}
		if o.Observer != nil {
			o.Observer.CacheFill(q, v)
		}
		return v
	})
	if hit && o.Observer != nil {
		o.Observer.CacheHit(q)
	}
	return v
}
