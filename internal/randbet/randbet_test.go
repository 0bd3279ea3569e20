package randbet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/betnumbers/betnumber"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()

	a, b := New(7), New(7)
	for i := 0; i < 20; i++ {
		tagA, posA := a.Bet(10)
		tagB, posB := b.Bet(10)
		require.Equal(t, tagA, tagB)
		require.Equal(t, posA, posB)
	}
}

func TestBetStaysInRange(t *testing.T) {
	t.Parallel()

	src := New(1)
	for i := 0; i < 200; i++ {
		tag, positions := src.Bet(16)
		assert.LessOrEqual(t, tag, betnumber.MaxTag)
		assert.LessOrEqual(t, len(positions), 16)
		for _, p := range positions {
			assert.GreaterOrEqual(t, p, 0)
			assert.LessOrEqual(t, p, betnumber.MaxPosition)
		}

		tag, total := src.Total()
		assert.LessOrEqual(t, tag, betnumber.MaxTag)
		assert.LessOrEqual(t, total, betnumber.MaxTotal)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, seed := range []int64{0, 42, -3} {
		require.NoError(t, RoundTrip(New(seed), 300), "seed %d", seed)
	}
}
