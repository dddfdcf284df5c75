package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/ports"
)

type Service struct {
	Solvers map[domain.Day]ports.Solver
	Counter ports.Counter
	Hinter  ports.Hinter
	Inputs  ports.Inputs
}

func NewService(c ports.Counter, h ports.Hinter, in ports.Inputs, solvers ...ports.Solver) *Service {
	m := make(map[domain.Day]ports.Solver, len(solvers))
	for _, s := range solvers {
		m[s.Day()] = s
	}
	return &Service{Solvers: m, Counter: c, Hinter: h, Inputs: in}
}

var (
	errNotConfigured = errors.New("usecase dependency not configured")
	// ErrUnknownDay is returned for a day without a registered solver.
	ErrUnknownDay = errors.New("usecase: no solver for day")
)

// Days lists the days with a registered solver, ascending.
func (u *Service) Days() []domain.Day {
	out := make([]domain.Day, 0, len(u.Solvers))
	for d := range u.Solvers {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

// Available lists the days that have both a solver and an input, ascending.
func (u *Service) Available(ctx context.Context) ([]domain.Day, error) {
	if u.Inputs == nil {
		return nil, errNotConfigured
	}
	stored, err := u.Inputs.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Day, 0, len(stored))
	for _, d := range stored {
		if _, ok := u.Solvers[d]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

// Solve runs the solver of day d on input.
func (u *Service) Solve(ctx context.Context, d domain.Day, input string) (domain.Answer, ports.Stats, error) {
	s, ok := u.Solvers[d]
	if !ok {
		return domain.Answer{}, ports.Stats{}, fmt.Errorf("%w %d", ErrUnknownDay, int(d))
	}
	return s.Solve(ctx, input)
}

// SolveDay loads the stored input of day d and solves it.
func (u *Service) SolveDay(ctx context.Context, d domain.Day) (domain.Answer, ports.Stats, error) {
	if u.Inputs == nil {
		return domain.Answer{}, ports.Stats{}, errNotConfigured
	}
	if _, ok := u.Solvers[d]; !ok {
		return domain.Answer{}, ports.Stats{}, fmt.Errorf("%w %d", ErrUnknownDay, int(d))
	}
	in, err := u.Inputs.Load(ctx, d)
	if err != nil {
		return domain.Answer{}, ports.Stats{}, err
	}
	return u.Solve(ctx, d, in)
}

func (u *Service) Count(ctx context.Context, r domain.Record) (uint64, ports.Stats, error) {
	if u.Counter == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	return u.Counter.Count(ctx, r)
}

func (u *Service) Hint(ctx context.Context, r domain.Record) ([]domain.Forced, error) {
	if u.Hinter == nil {
		return nil, errNotConfigured
	}
	return u.Hinter.Hint(ctx, r)
}
