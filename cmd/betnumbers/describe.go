package main

import (
	"github.com/lox/betnumbers/internal/render"
	"github.com/lox/betnumbers/internal/tables"
)

type DescribeCmd struct {
	Game     string `arg:"" optional:"" help:"Only this game"`
	Category string `arg:"" optional:"" help:"Only this category"`
	Format   string `short:"f" default:"decimal" enum:"decimal,hex" help:"Bet number format (decimal|hex)"`
	NoColor  bool   `help:"Disable colors"`
}

func (c *DescribeCmd) Run(g *Globals) error {
	format, err := render.ParseFormat(c.Format)
	if err != nil {
		return err
	}

	games, err := g.games()
	if err != nil {
		return err
	}
	if c.Game != "" {
		game, err := tables.Find(games, c.Game)
		if err != nil {
			return err
		}
		games = []*tables.Game{game}
	}

	var entries []tables.Entry
	for _, game := range games {
		var rows []tables.Entry
		if c.Category != "" {
			rows, err = game.EncodeCategory(c.Category)
		} else {
			rows, err = game.EncodeAll()
		}
		if err != nil {
			return err
		}
		entries = append(entries, rows...)
	}

	return render.Describe(g.stdout(), entries, render.DescribeOptions{
		Format:  format,
		NoColor: c.NoColor,
	})
}
