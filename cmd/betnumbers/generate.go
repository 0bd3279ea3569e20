package main

import (
	"bytes"

	"github.com/lox/betnumbers/betnumber"
	"github.com/lox/betnumbers/internal/render"
	"github.com/lox/betnumbers/internal/tables"
)

type GenerateCmd struct {
	Game     string `arg:"" help:"Game (roulette, sicbo)"`
	Category string `arg:"" optional:"" help:"Bet category; every category of the game when omitted"`
	Format   string `short:"f" default:"decimal" enum:"decimal,hex" help:"Output format (decimal|hex)"`
	Output   string `short:"o" type:"path" help:"Write to this file instead of stdout"`
}

func (c *GenerateCmd) Run(g *Globals) error {
	format, err := render.ParseFormat(c.Format)
	if err != nil {
		return err
	}

	entries, err := c.entries(g)
	if err != nil {
		return err
	}

	ids := make([]betnumber.Identifier, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	g.logger().Debug("Encoded bet numbers", "game", c.Game, "category", c.Category, "rows", len(ids))

	if c.Output == "" {
		return render.Lines(g.stdout(), ids, format)
	}

	var buf bytes.Buffer
	if err := render.Lines(&buf, ids, format); err != nil {
		return err
	}
	if err := render.WriteFile(c.Output, buf.Bytes(), 0o644); err != nil {
		return err
	}
	g.logger().Info("Wrote bet numbers", "path", c.Output, "rows", len(ids))
	return nil
}

func (c *GenerateCmd) entries(g *Globals) ([]tables.Entry, error) {
	games, err := g.games()
	if err != nil {
		return nil, err
	}
	game, err := tables.Find(games, c.Game)
	if err != nil {
		return nil, err
	}
	if c.Category == "" {
		return game.EncodeAll()
	}
	return game.EncodeCategory(c.Category)
}
