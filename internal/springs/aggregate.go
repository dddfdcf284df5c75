package springs

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/ports"
)

var errNoCounter = errors.New("springs: aggregator has no counter")

// Aggregator sums the arrangement counts of a batch of records.
// Records share nothing, so with Workers > 1 they are counted concurrently.
type Aggregator struct {
	Counter ports.Counter
	Workers int
	Logger  *zap.Logger
}

func NewAggregator(c ports.Counter, workers int, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{Counter: c, Workers: workers, Logger: logger}
}

// SumText splits text into lines and sums them.
func (a *Aggregator) SumText(ctx context.Context, text string) (uint64, ports.Stats, error) {
	return a.Sum(ctx, strings.Split(text, "\n"))
}

// Sum parses every line, then counts and totals the records. The first
// malformed line aborts the batch before anything is counted.
func (a *Aggregator) Sum(ctx context.Context, lines []string) (uint64, ports.Stats, error) {
	if a.Counter == nil {
		return 0, ports.Stats{}, errNoCounter
	}
	start := time.Now()
	records, err := ParseRecords(lines)
	if err != nil {
		return 0, ports.Stats{}, err
	}
	counts, nodes, err := a.countAll(ctx, records)
	if err != nil {
		return 0, ports.Stats{}, err
	}
	var total uint64
	for _, n := range counts {
		total += n
	}
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	a.Logger.Info("records counted",
		zap.Int("records", len(records)),
		zap.Uint64("total", total),
		zap.Int("nodes", st.Nodes),
		zap.Duration("dur", st.Duration),
	)
	return total, st, nil
}

func (a *Aggregator) countAll(ctx context.Context, records []domain.Record) ([]uint64, int, error) {
	counts := make([]uint64, len(records))
	nodes := make([]int, len(records))
	if a.Workers <= 1 {
		for i, r := range records {
			n, st, err := a.Counter.Count(ctx, r)
			if err != nil {
				return nil, 0, err
			}
			counts[i], nodes[i] = n, st.Nodes
		}
		return counts, sum(nodes), nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.Workers)
	for i, r := range records {
		g.Go(func() error {
			n, st, err := a.Counter.Count(gctx, r)
			if err != nil {
				return err
			}
			counts[i], nodes[i] = n, st.Nodes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return counts, sum(nodes), nil
}

func sum(xs []int) int {
	t := 0
	for _, x := range xs {
		t += x
	}
	return t
}
