package springs

import (
	"context"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/ports"
)

// Solver answers the hot springs puzzle: the total arrangement count of its input.
type Solver struct {
	Aggregator *Aggregator
}

func NewSolver(a *Aggregator) *Solver { return &Solver{Aggregator: a} }

func (s *Solver) Day() domain.Day { return domain.DaySprings }

func (s *Solver) Solve(ctx context.Context, input string) (domain.Answer, ports.Stats, error) {
	total, st, err := s.Aggregator.SumText(ctx, input)
	if err != nil {
		return domain.Answer{}, st, err
	}
	return domain.Answer{Day: domain.DaySprings, Part1: total}, st, nil
}
