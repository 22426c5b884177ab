package keypad

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strconv"
	"strings"
)

// ForLines calls onLine for each line read from r, trimmed of surrounding
// whitespace. The y value is the line number, starting with 0.
func ForLines(r io.Reader, onLine func(y int, line string)) error {
	s := bufio.NewScanner(r)
	y := -1
	for s.Scan() {
		y++
		onLine(y, strings.TrimSpace(s.Text()))
	}
	return s.Err()
}

// ReadCodes returns the non-empty lines of r. Codes are not validated.
func ReadCodes(r io.Reader) ([]string, error) {
	var codes []string
	err := ForLines(r, func(_ int, line string) {
		if line != "" {
			codes = append(codes, line)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("reading codes: %w", err)
	}
	return codes, nil
}

// Want is an expected score for a robot count.
type Want struct {
	Robots int
	Score  int
}

// Sample is a batch of codes with known scores.
type Sample struct {
	Name  string
	Wants []Want
	Codes []string
}

var wantRx = regexp.MustCompile(`^robots=(\d+)\s+want=(\d+)$`)

// ParseSample parses a sample: one or more "robots=N want=S" header lines,
// a blank line, then one code per line.
func ParseSample(name, text string) (Sample, error) {
	s := Sample{Name: name}
	header, body, _ := strings.Cut(text, "\n\n")
	var errs []error
	err := ForLines(strings.NewReader(header), func(y int, line string) {
		if line == "" {
			return
		}
		w, err := parseWant(line)
		if err != nil {
			errs = append(errs, fmt.Errorf("sample %s: line %d: %w", name, y+1, err))
			return
		}
		s.Wants = append(s.Wants, w)
	})
	if err != nil {
		return Sample{}, err
	}
	if err := errors.Join(errs...); err != nil {
		return Sample{}, err
	}
	if len(s.Wants) == 0 {
		return Sample{}, fmt.Errorf("sample %s: no want= lines", name)
	}
	if s.Codes, err = ReadCodes(strings.NewReader(body)); err != nil {
		return Sample{}, err
	}
	if len(s.Codes) == 0 {
		return Sample{}, fmt.Errorf("sample %s: no codes", name)
	}
	return s, nil
}

func parseWant(line string) (Want, error) {
	m := wantRx.FindStringSubmatch(line)
	if m == nil {
		return Want{}, fmt.Errorf("bad header %q: want \"robots=N want=S\"", line)
	}
	robots, err := strconv.Atoi(m[1])
	if err != nil {
		return Want{}, err
	}
	score, err := strconv.Atoi(m[2])
	if err != nil {
		return Want{}, err
	}
	return Want{Robots: robots, Score: score}, nil
}

//go:embed samples/*.txt
var sampleFS embed.FS

// Samples returns the built-in samples, sorted by name.
func Samples() []Sample {
	ents := MustGet(sampleFS.ReadDir("samples"))
	var out []Sample
	for _, e := range ents {
		text := MustGet(sampleFS.ReadFile(path.Join("samples", e.Name())))
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		out = append(out, MustGet(ParseSample(name, string(text))))
	}
	return out
}
