package scratchcards

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func TestMatches(t *testing.T) {
	n, err := Matches("Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestSolve(t *testing.T) {
	ans, st, err := NewSolver().Solve(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, 6, st.Nodes)
	assert.Equal(t, uint64(13), ans.Part1)
	require.NotNil(t, ans.Part2)
	assert.Equal(t, uint64(30), *ans.Part2)
}

func TestMalformedCards(t *testing.T) {
	for _, in := range []string{
		"Card 1 41 48 | 83",
		"Card 1: 41 48 83",
		"Card 1: 41 x | 83",
	} {
		_, err := Matches(in)
		require.ErrorIs(t, err, ErrMalformedCard, in)
	}
	_, _, err := NewSolver().Solve(context.Background(), sample+"Card 7: 1 2\n")
	require.ErrorIs(t, err, ErrMalformedCard)
	require.ErrorContains(t, err, "line 7")
}
