// Package scratchcards scores cards by how many of their numbers are winners.
package scratchcards

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/ports"
)

// ErrMalformedCard indicates a line that is not "Card N: winners | numbers".
var ErrMalformedCard = errors.New("scratchcards: malformed card")

type Solver struct{}

func NewSolver() *Solver { return &Solver{} }

func (s *Solver) Day() domain.Day { return domain.DayScratchcards }

// Solve answers part 1 with the summed card points and part 2 with the
// number of cards held once every win has copied the cards below it.
func (s *Solver) Solve(ctx context.Context, input string) (domain.Answer, ports.Stats, error) {
	start := time.Now()
	var matches []int
	for i, l := range strings.Split(input, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		m, err := Matches(l)
		if err != nil {
			return domain.Answer{}, ports.Stats{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		matches = append(matches, m)
	}
	if err := ctx.Err(); err != nil {
		return domain.Answer{}, ports.Stats{}, err
	}

	var points uint64
	copies := make([]uint64, len(matches))
	for i := range copies {
		copies[i] = 1
	}
	var held uint64
	for i, m := range matches {
		if m > 0 {
			points += 1 << (m - 1)
		}
		// wins never copy past the last card
		for j := i + 1; j <= i+m && j < len(copies); j++ {
			copies[j] += copies[i]
		}
		held += copies[i]
	}
	return domain.Answer{Day: domain.DayScratchcards, Part1: points, Part2: &held},
		ports.Stats{Nodes: len(matches), Duration: time.Since(start)}, nil
}

// Matches returns how many of the card's numbers appear among its winning numbers.
func Matches(line string) (int, error) {
	_, body, ok := strings.Cut(line, ":")
	if !ok {
		return 0, fmt.Errorf("%w: missing ':'", ErrMalformedCard)
	}
	win, mine, ok := strings.Cut(body, "|")
	if !ok {
		return 0, fmt.Errorf("%w: missing '|'", ErrMalformedCard)
	}
	winners, err := numbers(win)
	if err != nil {
		return 0, err
	}
	have, err := numbers(mine)
	if err != nil {
		return 0, err
	}
	set := make(map[int]struct{}, len(winners))
	for _, w := range winners {
		set[w] = struct{}{}
	}
	n := 0
	for _, h := range have {
		if _, ok := set[h]; ok {
			n++
		}
	}
	return n, nil
}

func numbers(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrMalformedCard, f)
		}
		out = append(out, n)
	}
	return out, nil
}
