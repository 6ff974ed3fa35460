// Package sequence holds the fixed-length integer sequence read from input and
// the constant-time accessor for its first element.
package sequence

import (
	apperrors "firstelem/internal/errors"
)

// Sequence is an ordered, index-addressable collection of integers.
type Sequence interface {
	Len() int
	At(i int) int64
}

// Ints is a Sequence backed by a slice. Its length is fixed at allocation.
type Ints []int64

// NewInts allocates a zeroed sequence of length n.
func NewInts(n int) Ints {
	return make(Ints, n)
}

// Len returns the number of elements
func (s Ints) Len() int { return len(s) }

// At returns the element at index i
func (s Ints) At(i int) int64 { return s[i] }

// First returns the element at index 0 of s.
// It reads exactly one element no matter how long s is, and fails with
// EMPTY_ARRAY_ACCESS when s has no elements.
func First(s Sequence) (int64, error) {
	if s.Len() == 0 {
		return 0, apperrors.Newf(apperrors.EmptyArrayAccess, "cannot read index 0 of an empty sequence")
	}
	return s.At(0), nil
}

// FirstElement is First for a plain slice.
func FirstElement(values []int64) (int64, error) {
	return First(Ints(values))
}

// Counting wraps a Sequence and counts element reads.
type Counting struct {
	Sequence
	reads int
}

// NewCounting wraps s
func NewCounting(s Sequence) *Counting {
	return &Counting{Sequence: s}
}

// At reads through to the wrapped sequence and records the access.
func (c *Counting) At(i int) int64 {
	c.reads++
	return c.Sequence.At(i)
}

// Reads returns how many times At has been called.
func (c *Counting) Reads() int { return c.reads }
