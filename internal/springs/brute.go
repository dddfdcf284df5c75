package springs

import (
	"context"
	"fmt"
	"time"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/ports"
	"svw.info/advent/internal/validator"
)

// MaxBruteForceUnknowns bounds the 2^n resolutions BruteForceCounter will try.
const MaxBruteForceUnknowns = 24

// BruteForceCounter tries every resolution of the unknown springs and keeps
// those whose damaged runs match the groups.
type BruteForceCounter struct {
	Validator *validator.RunValidator
}

func NewBruteForceCounter() *BruteForceCounter {
	return &BruteForceCounter{Validator: validator.New()}
}

func (c *BruteForceCounter) Count(ctx context.Context, r domain.Record) (uint64, ports.Stats, error) {
	start := time.Now()
	unknown := make([]int, 0, len(r.Springs))
	for i, s := range r.Springs {
		if s == domain.Unknown {
			unknown = append(unknown, i)
		}
	}
	if len(unknown) > MaxBruteForceUnknowns {
		return 0, ports.Stats{}, fmt.Errorf("%w: %d > %d", ErrTooManyUnknowns, len(unknown), MaxBruteForceUnknowns)
	}

	row := make([]domain.Spring, len(r.Springs))
	copy(row, r.Springs)
	var n uint64
	nodes := 0
	for mask := uint64(0); mask < 1<<len(unknown); mask++ {
		if mask&0x3ff == 0 && ctx.Err() != nil {
			return 0, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
		}
		for bit, idx := range unknown {
			if mask&(1<<bit) != 0 {
				row[idx] = domain.Damaged
			} else {
				row[idx] = domain.Operational
			}
		}
		nodes++
		ok, _, err := c.Validator.Validate(ctx, row, r.Groups)
		if err != nil {
			return 0, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if ok {
			n++
		}
	}
	return n, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
