package almanac

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func TestParse(t *testing.T) {
	a, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, []uint64{79, 14, 55, 13}, a.Seeds)
	require.Len(t, a.Stages, 7)
	assert.Equal(t, "seed-to-soil", a.Stages[0].Name)
	assert.Equal(t, Range{Dst: 50, Src: 98, Len: 2}, a.Stages[0].Ranges[0])
}

func TestLocation(t *testing.T) {
	a, err := Parse(sample)
	require.NoError(t, err)
	for seed, want := range map[uint64]uint64{79: 82, 14: 43, 55: 86, 13: 35} {
		assert.Equal(t, want, a.Location(seed), "seed %d", seed)
	}
}

func TestMapIntervalsMatchesPointwise(t *testing.T) {
	a, err := Parse(sample)
	require.NoError(t, err)
	for _, st := range a.Stages {
		in := []Interval{{Lo: 0, Hi: 110}}
		got := map[uint64]int{}
		for _, iv := range st.MapIntervals(in) {
			for n := iv.Lo; n < iv.Hi; n++ {
				got[n]++
			}
		}
		want := map[uint64]int{}
		for n := uint64(0); n < 110; n++ {
			want[st.Map(n)]++
		}
		assert.Equal(t, want, got, st.Name)
	}
}

func TestRangesAtTheTopOfTheNumberLine(t *testing.T) {
	st := Stage{Name: "top", Ranges: []Range{{Dst: 10, Src: math.MaxUint64 - 5, Len: 20}}}
	assert.Equal(t, uint64(10), st.Map(math.MaxUint64-5))
	assert.Equal(t, uint64(14), st.Map(math.MaxUint64-1))
	assert.Equal(t, uint64(7), st.Map(7))
	assert.Equal(t, uint64(math.MaxUint64-6), st.Map(math.MaxUint64-6))

	got := st.MapIntervals([]Interval{{Lo: math.MaxUint64 - 10, Hi: math.MaxUint64}})
	assert.ElementsMatch(t, []Interval{
		{Lo: 10, Hi: 15},
		{Lo: math.MaxUint64 - 10, Hi: math.MaxUint64 - 5},
	}, got)

	ans, _, err := NewSolver().Solve(context.Background(),
		"seeds: 18446744073709551610 100\nonly map:\n0 18446744073709551612 3\n")
	require.NoError(t, err)
	assert.Equal(t, uint64(100), ans.Part1)
	require.NotNil(t, ans.Part2)
	assert.Equal(t, uint64(0), *ans.Part2)
}

func TestSolve(t *testing.T) {
	ans, _, err := NewSolver().Solve(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, uint64(35), ans.Part1)
	require.NotNil(t, ans.Part2)
	assert.Equal(t, uint64(46), *ans.Part2)
}

func TestParseErrors(t *testing.T) {
	for name, in := range map[string]string{
		"no seeds":     "seed-to-soil map:\n1 2 3\n",
		"bad seed":     "seeds: 1 x\n",
		"range first":  "seeds: 1 2\n1 2 3\n",
		"short range":  "seeds: 1 2\na map:\n1 2\n",
		"empty input":  "",
		"not a number": "seeds: 1 2\na map:\n1 2 z\n",
	} {
		_, err := Parse(in)
		require.ErrorIs(t, err, ErrMalformedAlmanac, name)
	}
	for name, in := range map[string]string{
		"odd seeds":         "seeds: 1 2 3\n",
		"empty seed list":   "seeds:\na map:\n1 2 3\n",
		"empty seed ranges": "seeds: 5 0 9 0\na map:\n1 2 3\n",
	} {
		_, _, err := NewSolver().Solve(context.Background(), in)
		require.ErrorIs(t, err, ErrMalformedAlmanac, name)
	}
}
