// Package randbet draws reproducible random bets and checks that they
// survive encoding, decoding and re-parsing.
package randbet

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/betnumbers/betnumber"
)

const golden = 0x9e3779b97f4a7c15

// Source draws random bets. The same seed always yields the same sequence.
type Source struct {
	r *rand.Rand
}

// New seeds a Source. PCG wants two 64-bit seeds; both are derived from seed.
func New(seed int64) *Source {
	u := uint64(seed)
	return &Source{r: rand.New(rand.NewPCG(splitmix(u), splitmix(u+golden)))}
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Bet returns a tag and up to maxPositions positions anywhere in the mask.
// Positions may repeat.
func (s *Source) Bet(maxPositions int) (int, []int) {
	tag := s.r.IntN(betnumber.MaxTag + 1)
	positions := make([]int, s.r.IntN(maxPositions+1))
	for i := range positions {
		positions[i] = s.r.IntN(betnumber.MaxPosition + 1)
	}
	return tag, positions
}

// Total returns a tag and a dice total that fits the total byte.
func (s *Source) Total() (int, int) {
	return s.r.IntN(betnumber.MaxTag + 1), s.r.IntN(betnumber.MaxTotal + 1)
}

// RoundTrip draws n mask bets and n total bets and checks each one decodes
// back to its input, and that its decimal and hex forms parse to the same
// bet number.
func RoundTrip(src *Source, n int) error {
	for i := 0; i < n; i++ {
		tag, positions := src.Bet(64)
		id, err := betnumber.Encode(tag, positions...)
		if err != nil {
			return err
		}
		gotTag, gotSet := betnumber.Decode(id)
		want := betnumber.MustPositionSet(positions...)
		if int(gotTag) != tag || !gotSet.Equal(want) {
			return fmt.Errorf("sample %d: tag %d positions %s decoded as tag %d positions %s", i, tag, want, gotTag, gotSet)
		}
		if err := reparse(id); err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}

		tag, total := src.Total()
		id, err = betnumber.EncodeTotal(tag, total)
		if err != nil {
			return err
		}
		gotTag, gotTotal, err := betnumber.DecodeTotal(id)
		if err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}
		if int(gotTag) != tag || gotTotal != total {
			return fmt.Errorf("sample %d: tag %d total %d decoded as tag %d total %d", i, tag, total, gotTag, gotTotal)
		}
		if err := reparse(id); err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}
	}
	return nil
}

func reparse(id betnumber.Identifier) error {
	for _, s := range []string{id.Dec(), id.Hex()} {
		parsed, err := betnumber.ParseIdentifier(s)
		if err != nil {
			return err
		}
		if !parsed.Equal(id) {
			return fmt.Errorf("%s parsed as %s", s, parsed)
		}
	}
	return nil
}
