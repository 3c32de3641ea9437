// Package segment splits raw hand-history text into addressable line
// groups. Poker room exports carry no named section tags; the only
// structural landmarks are the empty groups produced when a delimiter
// immediately follows another one (section markers, blank lines). Room
// grammars navigate relative to those boundary indices.
package segment

import (
	"regexp"
	"strings"
)

// Text is a hand history split into an ordered sequence of groups.
// All accessors are bounds-checked so that per-room offset arithmetic
// fails soft instead of panicking on malformed input.
type Text struct {
	groups     []string
	boundaries []int
}

// Split cuts raw text with the room's delimiter pattern and records the
// positions of empty groups. Leading and trailing whitespace of the raw
// text is insignificant.
func Split(raw string, delim *regexp.Regexp) *Text {
	groups := delim.Split(strings.TrimSpace(raw), -1)
	t := &Text{groups: groups}
	for i, g := range groups {
		if g == "" {
			t.boundaries = append(t.boundaries, i)
		}
	}
	return t
}

// Len returns the number of groups.
func (t *Text) Len() int {
	return len(t.groups)
}

// Group returns the group at index i.
func (t *Text) Group(i int) (string, bool) {
	if i < 0 || i >= len(t.groups) {
		return "", false
	}
	return t.groups[i], true
}

// BoundaryCount returns the number of boundary (empty) groups.
func (t *Text) BoundaryCount() int {
	return len(t.boundaries)
}

// Boundary returns the position of the nth boundary, counted from zero.
func (t *Text) Boundary(n int) (int, bool) {
	if n < 0 || n >= len(t.boundaries) {
		return 0, false
	}
	return t.boundaries[n], true
}

// LastBoundary returns the position of the final boundary.
func (t *Text) LastBoundary() (int, bool) {
	if len(t.boundaries) == 0 {
		return 0, false
	}
	return t.boundaries[len(t.boundaries)-1], true
}

// NextBoundary returns the position of the first boundary at or after from.
func (t *Text) NextBoundary(from int) (int, bool) {
	for _, b := range t.boundaries {
		if b >= from {
			return b, true
		}
	}
	return 0, false
}

// Find returns the position of the first group exactly equal to literal,
// searching from the given index.
func (t *Text) Find(literal string, from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(t.groups); i++ {
		if t.groups[i] == literal {
			return i, true
		}
	}
	return 0, false
}

// Contains reports whether any group equals the literal.
func (t *Text) Contains(literal string) bool {
	_, ok := t.Find(literal, 0)
	return ok
}

// Range returns a copy of the groups in [start, stop), clamped to the
// valid index range. An inverted or out-of-range window yields nil.
func (t *Text) Range(start, stop int) []string {
	if start < 0 {
		start = 0
	}
	if stop > len(t.groups) {
		stop = len(t.groups)
	}
	if start >= stop {
		return nil
	}
	out := make([]string, stop-start)
	copy(out, t.groups[start:stop])
	return out
}

// Tail returns a copy of all groups from start to the end.
func (t *Text) Tail(start int) []string {
	return t.Range(start, len(t.groups))
}
