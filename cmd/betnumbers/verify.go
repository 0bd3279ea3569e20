package main

import (
	"context"
	"fmt"

	"github.com/lox/betnumbers/internal/randbet"
	"github.com/lox/betnumbers/internal/tables"
)

type VerifyCmd struct {
	Samples int   `default:"0" help:"Also round-trip this many random bets"`
	Seed    int64 `default:"1" help:"Seed for --samples"`
}

func (c *VerifyCmd) Run(g *Globals) error {
	games, err := g.games()
	if err != nil {
		return err
	}

	results, err := tables.VerifyAll(context.Background(), games)
	if err != nil {
		return err
	}
	for _, r := range results {
		g.logger().Info("Verified", "game", r.Game, "rows", r.Rows)
		if _, err := fmt.Fprintf(g.stdout(), "%s\t%d rows ok\n", r.Game, r.Rows); err != nil {
			return err
		}
	}

	if c.Samples <= 0 {
		return nil
	}
	if err := randbet.RoundTrip(randbet.New(c.Seed), c.Samples); err != nil {
		return fmt.Errorf("random round trip (seed %d): %w", c.Seed, err)
	}
	g.logger().Info("Verified random bets", "samples", c.Samples, "seed", c.Seed)
	_, err = fmt.Fprintf(g.stdout(), "random\t%d samples ok\n", c.Samples)
	return err
}
