package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/ports"
)

// RecordGenerator creates random condition records that have at least one arrangement.
type RecordGenerator struct {
	MaxLen int
	// UnknownRatio is the share of springs hidden behind '?', in [0,1].
	UnknownRatio float64
}

// NewRecordGenerator returns a generator for rows of 1..maxLen springs.
func NewRecordGenerator(maxLen int, unknownRatio float64) *RecordGenerator {
	if maxLen < 1 {
		maxLen = 1
	}
	return &RecordGenerator{MaxLen: maxLen, UnknownRatio: unknownRatio}
}

// Generate builds n records from seed. The same seed always yields the same records.
func (g *RecordGenerator) Generate(ctx context.Context, seed int64, n int) ([]domain.Record, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	out := make([]domain.Record, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: i, Duration: time.Since(start)}, err
		}
		out = append(out, g.one(rng))
	}
	return out, ports.Stats{Nodes: n, Duration: time.Since(start)}, nil
}

func (g *RecordGenerator) one(rng *rand.Rand) domain.Record {
	size := 1 + rng.Intn(g.MaxLen)
	// 1) a fully resolved row
	row := make([]domain.Spring, size)
	for i := range row {
		if rng.Intn(2) == 0 {
			row[i] = domain.Damaged
		} else {
			row[i] = domain.Operational
		}
	}
	row[rng.Intn(size)] = domain.Damaged

	// 2) its runs become the groups, so the record always has an arrangement
	groups := runs(row)

	// 3) hide some springs
	for i := range row {
		if rng.Float64() < g.UnknownRatio {
			row[i] = domain.Unknown
		}
	}
	return domain.Record{Springs: row, Groups: groups}
}

func runs(row []domain.Spring) []int {
	var out []int
	cur := 0
	for _, s := range row {
		if s == domain.Damaged {
			cur++
			continue
		}
		if cur > 0 {
			out = append(out, cur)
			cur = 0
		}
	}
	if cur > 0 {
		out = append(out, cur)
	}
	return out
}
