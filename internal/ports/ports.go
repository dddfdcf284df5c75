package ports

import (
	"context"
	"time"

	"svw.info/advent/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Counter counts the arrangements of a record's unknown springs.
type Counter interface {
	Count(ctx context.Context, r domain.Record) (uint64, Stats, error)
}

// Solver answers one day of the calendar from its raw input.
type Solver interface {
	Day() domain.Day
	Solve(ctx context.Context, input string) (domain.Answer, Stats, error)
}

// Hinter reports the unknown springs whose condition is forced by the record.
type Hinter interface {
	Hint(ctx context.Context, r domain.Record) ([]domain.Forced, error)
}

// Inputs loads puzzle inputs by day.
type Inputs interface {
	Load(ctx context.Context, d domain.Day) (string, error)
	List(ctx context.Context) ([]domain.Day, error)
}
