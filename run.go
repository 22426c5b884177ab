package keypad

import (
	"fmt"
	"io"
	"time"
)

// CheckSample scores s for each of its wants, writing one line per want to
// w. It reports whether every score matched.
func CheckSample(w io.Writer, o *Oracle, s Sample) (ok bool, err error) {
	ok = true
	for _, want := range s.Wants {
		t0 := time.Now()
		got, err := o.Score(s.Codes, LevelsForRobots(want.Robots))
		if err != nil {
			return false, fmt.Errorf("sample %s: %w", s.Name, err)
		}
		d := time.Since(t0).Round(time.Microsecond)
		if got != want.Score {
			ok = false
			fmt.Fprintf(w, "%s robots=%d: %v ❌; want %v\n", s.Name, want.Robots, got, want.Score)
			continue
		}
		fmt.Fprintf(w, "%s robots=%d: %v ✅ (%v)\n", s.Name, want.Robots, got, d)
	}
	return ok, nil
}
