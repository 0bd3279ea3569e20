package tables

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/lox/betnumbers/betnumber"
)

// Verify encodes every row of g, decodes the result and checks it yields the
// row back, and that no two rows share a bet number.
func (g *Game) Verify() (int, error) {
	entries, err := g.EncodeAll()
	if err != nil {
		return 0, err
	}

	seen := make(map[betnumber.Identifier]string, len(entries))
	for _, e := range entries {
		if prev, ok := seen[e.ID]; ok {
			return 0, fmt.Errorf("%s and %s share bet number %s", prev, e.Label(), e.ID)
		}
		seen[e.ID] = e.Label()

		if err := checkRoundTrip(e); err != nil {
			return 0, fmt.Errorf("%s: %w", e.Label(), err)
		}
	}
	return len(entries), nil
}

func checkRoundTrip(e Entry) error {
	switch e.Layout {
	case LayoutTotal:
		tag, total, err := betnumber.DecodeTotal(e.ID)
		if err != nil {
			return err
		}
		if int(tag) != e.Tag || total != e.Row.Total {
			return fmt.Errorf("decoded tag %d total %d, want tag %d total %d", tag, total, e.Tag, e.Row.Total)
		}
	default:
		tag, set := betnumber.Decode(e.ID)
		want := slices.Clone(e.Row.Positions)
		slices.Sort(want)
		want = slices.Compact(want)
		if int(tag) != e.Tag || !slices.Equal(set.Positions(), want) {
			return fmt.Errorf("decoded tag %d positions %v, want tag %d positions %v", tag, set, e.Tag, want)
		}
	}
	return nil
}

// Result is the outcome of verifying one game.
type Result struct {
	Game string
	Rows int
}

// VerifyAll verifies every game concurrently. Results keep the order of games.
func VerifyAll(ctx context.Context, games []*Game) ([]Result, error) {
	results := make([]Result, len(games))

	g, ctx := errgroup.WithContext(ctx)
	for i, game := range games {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows, err := game.Verify()
			if err != nil {
				return err
			}
			results[i] = Result{Game: game.Name, Rows: rows}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
