package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/advent/internal/domain"
)

func row(s string) []domain.Spring {
	out := make([]domain.Spring, len(s))
	for i := range s {
		out[i] = domain.Spring(s[i])
	}
	return out
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		row    string
		groups []int
		want   bool
		runs   []int
	}{
		{"exact", "#.#.###", []int{1, 1, 3}, true, []int{1, 1, 3}},
		{"leading and trailing dots", "..##..#.", []int{2, 1}, true, []int{2, 1}},
		{"wrong order", "###.#", []int{1, 3}, false, []int{3, 1}},
		{"extra run", "#.#.#", []int{1, 1}, false, []int{1, 1, 1}},
		{"missing run", "....", []int{1}, false, []int{}},
		{"empty groups all operational", "...", nil, true, []int{}},
		{"merged runs", "##", []int{1, 1}, false, []int{2}},
	}
	v := New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, runs, err := v.Validate(context.Background(), row(tc.row), tc.groups)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
			assert.Equal(t, tc.runs, runs)
		})
	}
}

func TestValidateRejectsUnknown(t *testing.T) {
	_, _, err := New().Validate(context.Background(), row("#?#"), []int{3})
	require.ErrorIs(t, err, ErrUnresolved)
}
