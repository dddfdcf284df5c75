package springs

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"svw.info/advent/internal/domain"
)

// ParseRecord parses one line of the form "<springs> <n,n,...>".
func ParseRecord(line string) (domain.Record, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return domain.Record{}, fmt.Errorf("%w: empty line", ErrMalformedRecord)
	}
	state, lengths := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		state, lengths = line[:i], strings.TrimSpace(line[i:])
	}

	row := make([]domain.Spring, len(state))
	for i := 0; i < len(state); i++ {
		s := domain.Spring(state[i])
		if !s.Valid() {
			return domain.Record{}, fmt.Errorf("%w: unexpected %q at column %d", ErrMalformedRecord, state[i], i+1)
		}
		row[i] = s
	}

	if lengths == "" {
		return domain.Record{}, fmt.Errorf("%w: missing group list", ErrMalformedLengths)
	}
	parts := strings.Split(lengths, ",")
	groups := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			return domain.Record{}, fmt.Errorf("%w: %q is not a positive integer", ErrMalformedLengths, p)
		}
		groups = append(groups, n)
	}
	return domain.Record{Springs: row, Groups: groups}, nil
}

// ParseRecords parses every non-blank line and stops at the first malformed one.
// Errors carry the 1-based line number.
func ParseRecords(lines []string) ([]domain.Record, error) {
	out := make([]domain.Record, 0, len(lines))
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		r, err := ParseRecord(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, r)
	}
	return out, nil
}
