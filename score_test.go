package keypad

import (
	"errors"
	"strings"
	"testing"
)

var exampleCodes = []string{"029A", "980A", "179A", "456A", "379A"}

func TestParseCode(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"029A", 29},
		{"980A", 980},
		{"000A", 0},
		{"7A", 7},
	}
	for _, tt := range tests {
		c, err := ParseCode(tt.in)
		if err != nil {
			t.Fatalf("ParseCode(%q): %v", tt.in, err)
		}
		if c.Value != tt.want || c.String() != tt.in {
			t.Errorf("ParseCode(%q) = %+v, want value %d", tt.in, c, tt.want)
		}
	}
}

func TestParseCodeInvalid(t *testing.T) {
	for _, in := range []string{"29", "02X9A", "", "A", "029AA", "029a", " 029A", "1234567890123456789A"} {
		if _, err := ParseCode(in); !errors.Is(err, ErrInvalidCode) {
			t.Errorf("ParseCode(%q) err = %v, want ErrInvalidCode", in, err)
		}
	}
}

func TestPresses(t *testing.T) {
	o := NewOracle(nil)
	tests := []struct {
		robots int
		want   int
	}{
		{0, 12},
		{1, 28},
		{2, 68},
	}
	c := MustGet(ParseCode("029A"))
	for _, tt := range tests {
		if got := MustGet(o.Presses(c, LevelsForRobots(tt.robots))); got != tt.want {
			t.Errorf("Presses(029A, robots=%d) = %d, want %d", tt.robots, got, tt.want)
		}
	}
	if got := MustGet(o.Presses(c, 0)); got != 4 {
		t.Errorf("Presses(029A, levels=0) = %d, want 4", got)
	}
}

func TestComplexity(t *testing.T) {
	o := NewOracle(nil)
	tests := []struct {
		code string
		want int
	}{
		{"029A", 68 * 29},
		{"980A", 60 * 980},
		{"179A", 68 * 179},
		{"456A", 64 * 456},
		{"379A", 64 * 379},
	}
	for _, tt := range tests {
		got, err := o.Complexity(tt.code, LevelsForRobots(2))
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Complexity(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		robots int
		want   int
	}{
		{2, 126384},
		{25, 154115708116294},
	}
	for _, tt := range tests {
		got, err := Score(exampleCodes, LevelsForRobots(tt.robots))
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Score(robots=%d) = %d, want %d", tt.robots, got, tt.want)
		}
	}
}

func TestScoreInvalid(t *testing.T) {
	for _, codes := range [][]string{
		{"029A", "29"},
		{"02X9A"},
	} {
		_, err := Score(codes, LevelsForRobots(2))
		if !errors.Is(err, ErrInvalidCode) {
			t.Errorf("Score(%q) err = %v, want ErrInvalidCode", codes, err)
		}
	}
	if _, err := Score(exampleCodes, -1); err == nil {
		t.Error("Score with negative levels succeeded")
	}
}

func TestOverflow(t *testing.T) {
	tests := []struct {
		name   string
		codes  []string
		levels int
	}{
		{"robots=45", []string{"029A"}, LevelsForRobots(45)},
		{"robots=80", exampleCodes, LevelsForRobots(80)},
		{"robots=1000", []string{"029A"}, LevelsForRobots(1000)},
		{"18 digits", []string{"999999999999999999A"}, LevelsForRobots(2)},
		{"18 digits direct", []string{"999999999999999999A"}, 0},
		{"sum", []string{"400000000000000000A", "400000000000000000A"}, 0},
	}
	for _, tt := range tests {
		o := NewOracle(nil)
		if got, err := o.Score(tt.codes, tt.levels); !errors.Is(err, ErrOverflow) {
			t.Errorf("%s: Score = %d, %v; want ErrOverflow", tt.name, got, err)
		}
		if got, err := o.ScoreParallel(tt.codes, tt.levels); !errors.Is(err, ErrOverflow) {
			t.Errorf("%s: ScoreParallel = %d, %v; want ErrOverflow", tt.name, got, err)
		}
	}

	o := NewOracle(nil)
	for _, robots := range []int{50, 80} {
		if got, err := o.Cost('A', '0', LevelsForRobots(robots), NumericKind); !errors.Is(err, ErrOverflow) {
			t.Errorf("Cost(A, 0, robots=%d) = %d, %v; want ErrOverflow", robots, got, err)
		}
	}
	if got, err := o.Complexity("999999999999999999A", 1); !errors.Is(err, ErrOverflow) {
		t.Errorf("Complexity(18 digits) = %d, %v; want ErrOverflow", got, err)
	}
}

func TestNoOverflow(t *testing.T) {
	o := NewOracle(nil)
	// 19 direct presses of a 1e17 code stay within range.
	got, err := o.Complexity("100000000000000000A", 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := 19 * 100000000000000000; got != want {
		t.Errorf("Complexity = %d, want %d", got, want)
	}
	for robots := 0; robots < 30; robots++ {
		v, err := o.Cost('A', '7', LevelsForRobots(robots), NumericKind)
		if err != nil || v <= 0 {
			t.Errorf("Cost(A, 7, robots=%d) = %d, %v", robots, v, err)
		}
	}
}

func TestScoreEmpty(t *testing.T) {
	if got := MustGet(Score(nil, 3)); got != 0 {
		t.Errorf("Score(nil) = %d, want 0", got)
	}
}

func TestScoreParallel(t *testing.T) {
	o := NewOracle(NewSharedCache())
	var codes []string
	for i := 0; i < 20; i++ {
		codes = append(codes, exampleCodes...)
	}
	got, err := o.ScoreParallel(codes, LevelsForRobots(25))
	if err != nil {
		t.Fatal(err)
	}
	if want := 20 * 154115708116294; got != want {
		t.Errorf("ScoreParallel = %d, want %d", got, want)
	}

	_, err = o.ScoreParallel([]string{"029A", "oops"}, 3)
	if !errors.Is(err, ErrInvalidCode) || !strings.Contains(err.Error(), "code 1") {
		t.Errorf("ScoreParallel err = %v, want ErrInvalidCode for code 1", err)
	}
}

func BenchmarkScoreDeep(b *testing.B) {
	for i := 0; i < b.N; i++ {
		MustGet(Score(exampleCodes, LevelsForRobots(25)))
	}
}

func BenchmarkScoreWarm(b *testing.B) {
	o := NewOracle(nil)
	for i := 0; i < b.N; i++ {
		MustGet(o.Score(exampleCodes, LevelsForRobots(25)))
	}
}
