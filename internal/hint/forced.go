package hint

import (
	"context"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/ports"
)

// Forced reports unknown springs that resolve the same way in every arrangement.
type Forced struct {
	Counter ports.Counter
}

func NewForced(c ports.Counter) *Forced { return &Forced{Counter: c} }

// Hint tries each unknown spring as damaged and compares the count with the
// record's total: all arrangements means forced damaged, none means forced
// operational. A record without arrangements has no hints.
func (h *Forced) Hint(ctx context.Context, r domain.Record) ([]domain.Forced, error) {
	total, _, err := h.Counter.Count(ctx, r)
	if err != nil || total == 0 {
		return nil, err
	}
	row := make([]domain.Spring, len(r.Springs))
	copy(row, r.Springs)

	var out []domain.Forced
	for i, s := range r.Springs {
		if s != domain.Unknown {
			continue
		}
		row[i] = domain.Damaged
		n, _, err := h.Counter.Count(ctx, domain.Record{Springs: row, Groups: r.Groups})
		row[i] = domain.Unknown
		if err != nil {
			return nil, err
		}
		switch n {
		case total:
			out = append(out, domain.Forced{Index: i, Spring: domain.Damaged})
		case 0:
			out = append(out, domain.Forced{Index: i, Spring: domain.Operational})
		}
	}
	return out, nil
}
