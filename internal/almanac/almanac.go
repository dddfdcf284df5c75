// Package almanac maps seed numbers through a chain of range tables to locations.
package almanac

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/ports"
)

// ErrMalformedAlmanac indicates input that is not a seed list followed by range tables.
var ErrMalformedAlmanac = errors.New("almanac: malformed input")

// Range maps [Src, Src+Len) onto [Dst, Dst+Len).
type Range struct {
	Dst, Src, Len uint64
}

// Stage is one "x-to-y map" table. Numbers no range covers map to themselves.
type Stage struct {
	Name   string
	Ranges []Range
}

// Map returns the destination of n.
func (st Stage) Map(n uint64) uint64 {
	for _, r := range st.Ranges {
		if n >= r.Src && n-r.Src < r.Len {
			return end(r.Dst, n-r.Src)
		}
	}
	return n
}

// Interval is the half-open [Lo, Hi).
type Interval struct {
	Lo, Hi uint64
}

// MapIntervals maps every number of in, splitting intervals on range boundaries.
func (st Stage) MapIntervals(in []Interval) []Interval {
	var out []Interval
	pending := append([]Interval(nil), in...)
	for len(pending) > 0 {
		iv := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		mapped := false
		for _, r := range st.Ranges {
			lo, hi := max(iv.Lo, r.Src), min(iv.Hi, end(r.Src, r.Len))
			if lo >= hi {
				continue
			}
			out = append(out, Interval{Lo: end(r.Dst, lo-r.Src), Hi: end(r.Dst, hi-r.Src)})
			if iv.Lo < lo {
				pending = append(pending, Interval{Lo: iv.Lo, Hi: lo})
			}
			if hi < iv.Hi {
				pending = append(pending, Interval{Lo: hi, Hi: iv.Hi})
			}
			mapped = true
			break
		}
		if !mapped {
			out = append(out, iv)
		}
	}
	return out
}

// end returns start+n, saturating at math.MaxUint64.
func end(start, n uint64) uint64 {
	if n > math.MaxUint64-start {
		return math.MaxUint64
	}
	return start + n
}

// Almanac is the parsed puzzle input.
type Almanac struct {
	Seeds  []uint64
	Stages []Stage
}

// Location runs seed through every stage.
func (a *Almanac) Location(seed uint64) uint64 {
	n := seed
	for _, st := range a.Stages {
		n = st.Map(n)
	}
	return n
}

// Parse reads "seeds: ..." followed by blocks headed "<name> map:".
func Parse(input string) (*Almanac, error) {
	a := &Almanac{}
	seen := false
	for i, l := range strings.Split(input, "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		switch {
		case !seen:
			rest, ok := strings.CutPrefix(l, "seeds:")
			if !ok {
				return nil, fmt.Errorf("line %d: %w: expected seed list", i+1, ErrMalformedAlmanac)
			}
			seeds, err := fields(rest, -1)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			a.Seeds, seen = seeds, true
		case strings.HasSuffix(l, "map:"):
			a.Stages = append(a.Stages, Stage{Name: strings.TrimSpace(strings.TrimSuffix(l, "map:"))})
		default:
			if len(a.Stages) == 0 {
				return nil, fmt.Errorf("line %d: %w: range before any map header", i+1, ErrMalformedAlmanac)
			}
			v, err := fields(l, 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			st := &a.Stages[len(a.Stages)-1]
			st.Ranges = append(st.Ranges, Range{Dst: v[0], Src: v[1], Len: v[2]})
		}
	}
	if !seen {
		return nil, fmt.Errorf("%w: no seed list", ErrMalformedAlmanac)
	}
	return a, nil
}

// fields parses whitespace separated numbers; want < 0 accepts any count.
func fields(s string, want int) ([]uint64, error) {
	f := strings.Fields(s)
	if want >= 0 && len(f) != want {
		return nil, fmt.Errorf("%w: want %d numbers, got %d", ErrMalformedAlmanac, want, len(f))
	}
	out := make([]uint64, 0, len(f))
	for _, x := range f {
		n, err := strconv.ParseUint(x, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrMalformedAlmanac, x)
		}
		out = append(out, n)
	}
	return out, nil
}

type Solver struct{}

func NewSolver() *Solver { return &Solver{} }

func (s *Solver) Day() domain.Day { return domain.DayAlmanac }

// Solve answers part 1 with the lowest location of the listed seeds and part 2
// with the lowest location when the seeds are read as (start, length) pairs.
func (s *Solver) Solve(ctx context.Context, input string) (domain.Answer, ports.Stats, error) {
	start := time.Now()
	a, err := Parse(input)
	if err != nil {
		return domain.Answer{}, ports.Stats{}, err
	}
	if len(a.Seeds)%2 != 0 {
		return domain.Answer{}, ports.Stats{}, fmt.Errorf("%w: odd number of seeds", ErrMalformedAlmanac)
	}
	if len(a.Seeds) == 0 {
		return domain.Answer{}, ports.Stats{}, fmt.Errorf("%w: empty seed list", ErrMalformedAlmanac)
	}

	p1 := uint64(math.MaxUint64)
	for _, seed := range a.Seeds {
		p1 = min(p1, a.Location(seed))
	}

	ivs := make([]Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		if a.Seeds[i+1] > 0 {
			ivs = append(ivs, Interval{Lo: a.Seeds[i], Hi: end(a.Seeds[i], a.Seeds[i+1])})
		}
	}
	if len(ivs) == 0 {
		return domain.Answer{}, ports.Stats{}, fmt.Errorf("%w: every seed range is empty", ErrMalformedAlmanac)
	}
	nodes := 0
	for _, st := range a.Stages {
		if err := ctx.Err(); err != nil {
			return domain.Answer{}, ports.Stats{}, err
		}
		ivs = st.MapIntervals(ivs)
		nodes += len(ivs)
	}
	p2 := uint64(math.MaxUint64)
	for _, iv := range ivs {
		p2 = min(p2, iv.Lo)
	}
	return domain.Answer{Day: domain.DayAlmanac, Part1: p1, Part2: &p2},
		ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
