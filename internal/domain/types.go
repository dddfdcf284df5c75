package domain

import (
	"strconv"
	"strings"
)

// Record pairs one row of spring conditions with the expected damaged-group lengths.
type Record struct {
	Springs []Spring `json:"springs"`
	Groups  []int    `json:"groups"`
}

// String renders the record in its input form, e.g. "???.### 1,1,3".
func (r Record) String() string {
	var b strings.Builder
	b.Grow(len(r.Springs) + 1 + 3*len(r.Groups))
	for _, s := range r.Springs {
		b.WriteByte(byte(s))
	}
	b.WriteByte(' ')
	for i, g := range r.Groups {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(g))
	}
	return b.String()
}

// Unknowns returns the number of Unknown springs in the record.
func (r Record) Unknowns() int {
	n := 0
	for _, s := range r.Springs {
		if s == Unknown {
			n++
		}
	}
	return n
}

// Forced describes an Unknown spring whose condition is the same in every arrangement.
type Forced struct {
	Index  int    `json:"index"`
	Spring Spring `json:"spring"`
}

// Answer holds the results of a daily puzzle. Part2 is nil when the day has a single part.
type Answer struct {
	Day   Day     `json:"day"`
	Part1 uint64  `json:"part1"`
	Part2 *uint64 `json:"part2,omitempty"`
}
