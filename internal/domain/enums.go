package domain

// Spring is the recorded condition of a single spring.
type Spring byte

const (
	Operational Spring = '.'
	Damaged     Spring = '#'
	Unknown     Spring = '?'
)

// Valid reports whether s is one of the three recorded conditions.
func (s Spring) Valid() bool {
	switch s {
	case Operational, Damaged, Unknown:
		return true
	}
	return false
}

// MayBeDamaged reports whether s is Damaged or could resolve to Damaged.
func (s Spring) MayBeDamaged() bool { return s == Damaged || s == Unknown }

// MayBeOperational reports whether s is Operational or could resolve to Operational.
func (s Spring) MayBeOperational() bool { return s == Operational || s == Unknown }

// Day identifies a puzzle of the calendar.
type Day int

const (
	DayTrebuchet    Day = 1
	DayScratchcards Day = 4
	DayAlmanac      Day = 5
	DaySprings      Day = 12
)
