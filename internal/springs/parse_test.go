package springs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"svw.info/advent/internal/domain"
)

func TestParseRecord(t *testing.T) {
	cases := []struct {
		in   string
		want domain.Record
	}{
		{"???.### 1,1,3", domain.Record{
			Springs: []domain.Spring{'?', '?', '?', '.', '#', '#', '#'},
			Groups:  []int{1, 1, 3},
		}},
		{"  #.#\t2, 1 \r", domain.Record{
			Springs: []domain.Spring{'#', '.', '#'},
			Groups:  []int{2, 1},
		}},
		{"? 1", domain.Record{Springs: []domain.Spring{'?'}, Groups: []int{1}}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseRecord(tc.in)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("ParseRecord(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestParseRecordErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "   ", ErrMalformedRecord},
		{"bad symbol", "??x.# 1,1", ErrMalformedRecord},
		{"bad symbol wins over bad lengths", "?a? x", ErrMalformedRecord},
		{"missing lengths", "???.###", ErrMalformedLengths},
		{"zero length", "??? 0", ErrMalformedLengths},
		{"negative length", "??? -1", ErrMalformedLengths},
		{"not a number", "??? 1,a", ErrMalformedLengths},
		{"trailing comma", "??? 1,", ErrMalformedLengths},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRecord(tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseRecordsSkipsBlankLinesAndNamesFailingLine(t *testing.T) {
	recs, err := ParseRecords([]string{"# 1", "", "?? 1", "  "})
	require.NoError(t, err)
	require.Len(t, recs, 2)

	_, err = ParseRecords([]string{"# 1", "", "#?x 1"})
	require.ErrorIs(t, err, ErrMalformedRecord)
	require.ErrorContains(t, err, "line 3")
}
