package betnumber

import (
	"slices"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// PositionSet is the set of board positions a bet covers. The zero value is
// an empty set.
type PositionSet struct {
	bits *bitset.BitSet
}

// NewPositionSet builds a set from the given positions. Duplicates collapse;
// any position outside [0, MaxPosition] is rejected.
func NewPositionSet(positions ...int) (PositionSet, error) {
	s := PositionSet{bits: bitset.New(MaskBits)}
	for _, p := range positions {
		if err := checkPosition(p); err != nil {
			return PositionSet{}, err
		}
		s.bits.Set(uint(p))
	}
	return s, nil
}

// MustPositionSet is like NewPositionSet but panics on invalid input. Only
// meant for static tables.
func MustPositionSet(positions ...int) PositionSet {
	s, err := NewPositionSet(positions...)
	if err != nil {
		panic(err)
	}
	return s
}

func checkPosition(p int) error {
	if p < 0 || p > MaxPosition {
		return &FieldError{Field: "position", Value: p, Err: ErrInvalidPosition}
	}
	return nil
}

// Contains reports whether p is in the set.
func (s PositionSet) Contains(p int) bool {
	if s.bits == nil || p < 0 {
		return false
	}
	return s.bits.Test(uint(p))
}

// Len returns the number of positions in the set.
func (s PositionSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

func (s PositionSet) IsEmpty() bool {
	return s.Len() == 0
}

// Positions returns the members in ascending order.
func (s PositionSet) Positions() []int {
	if s.bits == nil {
		return nil
	}
	out := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Equal reports whether both sets hold the same positions.
func (s PositionSet) Equal(other PositionSet) bool {
	return slices.Equal(s.Positions(), other.Positions())
}

func (s PositionSet) String() string {
	parts := make([]string, 0, s.Len())
	for _, p := range s.Positions() {
		parts = append(parts, strconv.Itoa(p))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// RequireNonEmpty rejects an empty set. Encode itself accepts one, but no
// real bet covers nothing.
func RequireNonEmpty(s PositionSet) error {
	if s.IsEmpty() {
		return &FieldError{Field: "positions", Err: ErrEmptyPositionSet}
	}
	return nil
}
