// Package trebuchet recovers calibration values: the first and last digit of
// each line read as a two-digit number.
package trebuchet

import (
	"context"
	"strings"
	"time"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/ports"
)

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

type Solver struct{}

func NewSolver() *Solver { return &Solver{} }

func (s *Solver) Day() domain.Day { return domain.DayTrebuchet }

// Solve answers part 1 with ASCII digits only and part 2 with spelled-out digits as well.
func (s *Solver) Solve(ctx context.Context, input string) (domain.Answer, ports.Stats, error) {
	start := time.Now()
	var p1, p2 uint64
	lines := 0
	for _, l := range strings.Split(input, "\n") {
		if ctx.Err() != nil {
			return domain.Answer{}, ports.Stats{}, ctx.Err()
		}
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines++
		p1 += uint64(Calibration(l, false))
		p2 += uint64(Calibration(l, true))
	}
	return domain.Answer{Day: domain.DayTrebuchet, Part1: p1, Part2: &p2},
		ports.Stats{Nodes: lines, Duration: time.Since(start)}, nil
}

// Calibration returns 10*first+last digit of line, or 0 when it has none.
// With spelled set, "one".."nine" count as digits; they may overlap ("eightwo" is 82).
func Calibration(line string, spelled bool) int {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		d, ok := digitAt(line, i, spelled)
		if !ok {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0
	}
	return 10*first + last
}

func digitAt(line string, i int, spelled bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for n, w := range words {
		if strings.HasPrefix(line[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}
