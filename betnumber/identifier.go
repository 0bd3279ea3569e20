// Package betnumber packs casino bets into the 256-bit "bet number" the game
// contracts take as a parameter.
//
// The top byte of a bet number carries the bet type tag. The lower 248 bits
// are either a position mask (bit p set for every covered position) or, for
// dice totals, the total in the next byte with the remaining 240 bits zero.
package betnumber

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

const (
	TagBits  = 8
	MaskBits = 256 - TagBits

	// MaxPosition is the highest position that stays clear of the tag byte.
	MaxPosition = MaskBits - 1
	MaxTag      = 1<<TagBits - 1
	MaxTotal    = 0xff

	totalShift = MaskBits - 8
)

// Tag identifies a bet category. Its meaning is per game.
type Tag uint8

// NewTag validates that tag fits in a byte.
func NewTag(tag int) (Tag, error) {
	if tag < 0 || tag > MaxTag {
		return 0, &FieldError{Field: "tag", Value: tag, Err: ErrInvalidTag}
	}
	return Tag(tag), nil
}

// Identifier is a bet number. The zero value is 0.
type Identifier struct {
	v uint256.Int
}

// FromUint256 wraps an existing 256-bit value.
func FromUint256(v *uint256.Int) Identifier {
	var id Identifier
	id.v.Set(v)
	return id
}

// ParseIdentifier reads a decimal or 0x-prefixed hexadecimal bet number.
func ParseIdentifier(s string) (Identifier, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Identifier{}, &FieldError{Field: "identifier", Value: `""`, Err: ErrInvalidIdentifier}
	}

	var id Identifier
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		if len(s) == 2 {
			return Identifier{}, &FieldError{Field: "identifier", Value: s, Err: ErrInvalidIdentifier}
		}
		digits := strings.TrimLeft(s[2:], "0")
		if len(digits)%2 == 1 {
			digits = "0" + digits
		}
		b, err := hex.DecodeString(digits)
		if err != nil || len(b) > 32 {
			return Identifier{}, &FieldError{Field: "identifier", Value: s, Err: ErrInvalidIdentifier}
		}
		id.v.SetBytes(b)
		return id, nil
	}

	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Identifier{}, &FieldError{Field: "identifier", Value: s, Err: ErrInvalidIdentifier}
	}
	id.v.Set(v)
	return id, nil
}

// Tag returns the top byte.
func (id Identifier) Tag() Tag {
	return Tag(id.v[3] >> (64 - TagBits))
}

// Mask returns the lower 248 bits.
func (id Identifier) Mask() *uint256.Int {
	m := new(uint256.Int).Set(&id.v)
	m[3] &= 1<<(64-TagBits) - 1
	return m
}

// Dec renders the bet number in base 10, the form the contracts are
// configured with.
func (id Identifier) Dec() string {
	return id.v.Dec()
}

func (id Identifier) String() string {
	return id.Dec()
}

// Hex renders all 32 bytes, tag first.
func (id Identifier) Hex() string {
	b := id.v.Bytes32()
	return hexutil.Encode(b[:])
}

func (id Identifier) Bytes32() [32]byte {
	return id.v.Bytes32()
}

// Big converts to a *big.Int for ABI encoders.
func (id Identifier) Big() *big.Int {
	return id.v.ToBig()
}

func (id Identifier) Uint256() *uint256.Int {
	return new(uint256.Int).Set(&id.v)
}

func (id Identifier) Equal(other Identifier) bool {
	return id.v.Eq(&other.v)
}

func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.Dec()), nil
}

func (id *Identifier) UnmarshalText(text []byte) error {
	parsed, err := ParseIdentifier(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
