package betnumber

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/holiman/uint256"
)

// Encode validates tag and positions and packs them into a bet number. The
// order of positions does not matter and duplicates are harmless. An empty
// position list yields tag << 248.
func Encode(tag int, positions ...int) (Identifier, error) {
	t, err := NewTag(tag)
	if err != nil {
		return Identifier{}, err
	}
	set, err := NewPositionSet(positions...)
	if err != nil {
		return Identifier{}, err
	}
	return EncodeSet(t, set), nil
}

// EncodeSet packs an already validated set.
func EncodeSet(tag Tag, set PositionSet) Identifier {
	var id Identifier
	for _, p := range set.Positions() {
		id.v[p>>6] |= 1 << (p & 63)
	}
	id.v.Or(&id.v, tagBits(tag))
	return id
}

// Decode splits a bet number into its tag and position set.
func Decode(id Identifier) (Tag, PositionSet) {
	mask := id.Mask()
	set := PositionSet{bits: bitset.New(MaskBits)}
	for p := 0; p < MaskBits; p++ {
		if mask[p>>6]&(1<<(p&63)) != 0 {
			set.bits.Set(uint(p))
		}
	}
	return id.Tag(), set
}

// EncodeTotal packs a dice total: the tag in the top byte, the total in the
// byte below it and zeros elsewhere.
func EncodeTotal(tag int, total int) (Identifier, error) {
	t, err := NewTag(tag)
	if err != nil {
		return Identifier{}, err
	}
	if total < 0 || total > MaxTotal {
		return Identifier{}, &FieldError{Field: "total", Value: total, Err: ErrInvalidTotal}
	}

	var id Identifier
	id.v.Lsh(uint256.NewInt(uint64(total)), totalShift)
	id.v.Or(&id.v, tagBits(t))
	return id, nil
}

// DecodeTotal is the inverse of EncodeTotal. It fails if any bit below the
// total byte is set, since such a value was not built by EncodeTotal.
func DecodeTotal(id Identifier) (Tag, int, error) {
	rest := id.Mask()
	total := new(uint256.Int).Rsh(rest, totalShift)
	low := new(uint256.Int).Lsh(total, totalShift)
	if !low.Eq(rest) {
		return 0, 0, fmt.Errorf("%s is not a total bet number: %w", id.Hex(), ErrInvalidIdentifier)
	}
	return id.Tag(), int(total.Uint64()), nil
}

func tagBits(tag Tag) *uint256.Int {
	return new(uint256.Int).Lsh(uint256.NewInt(uint64(tag)), MaskBits)
}
