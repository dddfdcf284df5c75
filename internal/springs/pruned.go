package springs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/ports"
)

// PrunedCounter places damaged groups left to right, recursing on the rest
// of the row after each legal placement of the first remaining group.
type PrunedCounter struct {
	Logger *zap.Logger
}

func NewPrunedCounter(logger *zap.Logger) *PrunedCounter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PrunedCounter{Logger: logger}
}

// placement holds the per-record lookup tables shared by every recursion level.
// Recursion works on (offset, group index) pairs into the same row.
type placement struct {
	ctx    context.Context
	row    []domain.Spring
	groups []int

	// reserve[g] is the room the groups after g need: their lengths plus one gap each.
	reserve []int
	// operational[i] counts Operational springs in row[:i].
	operational []int
	// lastDamaged is the index of the rightmost Damaged spring, -1 if none.
	lastDamaged int
	// fitsRow is false when the groups and their gaps are longer than the row.
	fitsRow bool

	nodes int
	err   error
}

func newPlacement(ctx context.Context, r domain.Record) *placement {
	p := &placement{
		ctx:         ctx,
		row:         r.Springs,
		groups:      r.Groups,
		reserve:     make([]int, len(r.Groups)),
		operational: make([]int, len(r.Springs)+1),
		lastDamaged: -1,
	}
	p.fitsRow = minLength(r.Groups, len(r.Springs)) <= len(r.Springs)
	if p.fitsRow {
		for g := len(r.Groups) - 2; g >= 0; g-- {
			p.reserve[g] = p.reserve[g+1] + r.Groups[g+1] + 1
		}
	}
	for i, s := range r.Springs {
		p.operational[i+1] = p.operational[i]
		switch s {
		case domain.Operational:
			p.operational[i+1]++
		case domain.Damaged:
			p.lastDamaged = i
		}
	}
	return p
}

// minLength returns the shortest row that holds groups with one gap between
// each, or limit+1 as soon as that exceeds limit, so huge lengths never overflow.
func minLength(groups []int, limit int) int {
	need := 0
	for i, g := range groups {
		if i > 0 {
			need++
		}
		if g > limit-need {
			return limit + 1
		}
		need += g
	}
	return need
}

// Count returns the number of arrangements of r. It only fails when ctx is done.
func (c *PrunedCounter) Count(ctx context.Context, r domain.Record) (uint64, ports.Stats, error) {
	start := time.Now()
	p := newPlacement(ctx, r)

	var n uint64
	switch {
	case len(r.Groups) == 0:
		if p.lastDamaged < 0 {
			n = 1
		}
	case p.fitsRow:
		n = p.count(0, 0)
	}
	st := ports.Stats{Nodes: p.nodes, Duration: time.Since(start)}
	if p.err != nil {
		return 0, st, p.err
	}
	if n == 0 {
		c.Logger.Debug("record has no arrangements", zap.Stringer("record", r))
	}
	return n, st, nil
}

// count returns the arrangements of groups[g:] within row[offset:].
func (p *placement) count(offset, g int) uint64 {
	if p.err != nil {
		return 0
	}
	if err := p.ctx.Err(); err != nil {
		p.err = err
		return 0
	}
	size := p.groups[g]
	bound := len(p.row) - p.reserve[g]
	last := g == len(p.groups)-1

	var total uint64
	next := offset
	for {
		start := p.nextCandidate(next)
		if start < 0 {
			return total
		}
		end := start + size
		// every later start ends later still
		if end > bound {
			return total
		}
		p.nodes++
		if p.fits(start, end) {
			switch {
			case last:
				// a damaged spring after the final group would form an extra run
				if p.lastDamaged < end {
					total++
				}
			default:
				// bound leaves reserve[g] >= 2 springs after end, so end+1 is in the row
				total += p.count(end+1, g+1)
			}
		}
		// a damaged spring cannot be skipped by the group starting after it
		if p.row[start] == domain.Damaged {
			return total
		}
		next = start + 1
	}
}

// nextCandidate returns the first index >= from that may be damaged, or -1.
func (p *placement) nextCandidate(from int) int {
	for i := from; i < len(p.row); i++ {
		if p.row[i].MayBeDamaged() {
			return i
		}
	}
	return -1
}

// fits reports whether a damaged group may occupy row[start:end].
func (p *placement) fits(start, end int) bool {
	if p.operational[end]-p.operational[start] != 0 {
		return false
	}
	if start > 0 && !p.row[start-1].MayBeOperational() {
		return false
	}
	if end < len(p.row) && !p.row[end].MayBeOperational() {
		return false
	}
	return true
}
