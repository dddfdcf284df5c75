package validator

import (
	"context"
	"errors"

	"svw.info/advent/internal/domain"
)

// ErrUnresolved is returned when an arrangement still contains Unknown springs.
var ErrUnresolved = errors.New("validator: arrangement contains unknown springs")

type RunValidator struct{}

func New() *RunValidator { return &RunValidator{} }

// Validate checks that the maximal damaged runs of a fully resolved row equal
// groups in count, order and length. It also returns the runs it found.
func (v *RunValidator) Validate(ctx context.Context, row []domain.Spring, groups []int) (bool, []int, error) {
	runs := make([]int, 0, len(groups))
	cur := 0
	for _, s := range row {
		switch s {
		case domain.Damaged:
			cur++
		case domain.Operational:
			if cur > 0 {
				runs = append(runs, cur)
				cur = 0
			}
		default:
			return false, nil, ErrUnresolved
		}
	}
	if cur > 0 {
		runs = append(runs, cur)
	}
	if len(runs) != len(groups) {
		return false, runs, nil
	}
	for i := range runs {
		if runs[i] != groups[i] {
			return false, runs, nil
		}
	}
	return true, runs, nil
}
