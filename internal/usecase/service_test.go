package usecase

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/hint"
	"svw.info/advent/internal/infrastructure/storage"
	"svw.info/advent/internal/scratchcards"
	"svw.info/advent/internal/springs"
)

func newService() *Service {
	c := springs.NewPrunedCounter(nil)
	in := storage.NewFS("", fstest.MapFS{
		"day_12.txt": {Data: []byte("???.### 1,1,3\n?###???????? 3,2,1\n")},
	})
	return NewService(c, hint.NewForced(c), in,
		springs.NewSolver(springs.NewAggregator(c, 1, nil)),
		scratchcards.NewSolver(),
	)
}

func TestDays(t *testing.T) {
	assert.Equal(t, []domain.Day{domain.DayScratchcards, domain.DaySprings}, newService().Days())
}

func TestAvailable(t *testing.T) {
	days, err := newService().Available(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Day{domain.DaySprings}, days)

	_, err = (&Service{}).Available(context.Background())
	require.ErrorIs(t, err, errNotConfigured)
}

func TestSolveDay(t *testing.T) {
	ans, _, err := newService().SolveDay(context.Background(), domain.DaySprings)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), ans.Part1)
	assert.Nil(t, ans.Part2)
}

func TestSolveDayErrors(t *testing.T) {
	u := newService()
	_, _, err := u.SolveDay(context.Background(), domain.DayAlmanac)
	require.ErrorIs(t, err, ErrUnknownDay)

	_, _, err = u.SolveDay(context.Background(), domain.DayScratchcards)
	require.ErrorIs(t, err, storage.ErrNoInput)
}

func TestNotConfigured(t *testing.T) {
	u := &Service{}
	ctx := context.Background()
	_, _, err := u.SolveDay(ctx, domain.DaySprings)
	require.ErrorIs(t, err, errNotConfigured)
	_, _, err = u.Count(ctx, domain.Record{})
	require.ErrorIs(t, err, errNotConfigured)
	_, err = u.Hint(ctx, domain.Record{})
	require.ErrorIs(t, err, errNotConfigured)
}

func TestCountAndHint(t *testing.T) {
	u := newService()
	r, err := springs.ParseRecord("??? 2")
	require.NoError(t, err)
	n, _, err := u.Count(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), n)
	hints, err := u.Hint(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, []domain.Forced{{Index: 1, Spring: domain.Damaged}}, hints)
}
