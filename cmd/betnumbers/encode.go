package main

import (
	"fmt"

	"github.com/lox/betnumbers/betnumber"
	"github.com/lox/betnumbers/internal/render"
)

type EncodeCmd struct {
	Tag       int    `short:"t" required:"" help:"Bet type tag (0-255)"`
	Positions []int  `arg:"" optional:"" help:"Covered positions (0-247), or one dice total with --total"`
	Total     bool   `help:"Pack a dice total instead of a position mask"`
	Strict    bool   `help:"Reject an empty position list"`
	Format    string `short:"f" default:"decimal" enum:"decimal,hex" help:"Output format (decimal|hex)"`
}

func (c *EncodeCmd) Run(g *Globals) error {
	format, err := render.ParseFormat(c.Format)
	if err != nil {
		return err
	}

	id, err := c.encode()
	if err != nil {
		return err
	}
	g.logger().Debug("Encoded", "tag", c.Tag, "positions", c.Positions, "total", c.Total)

	_, err = fmt.Fprintln(g.stdout(), render.Identifier(id, format))
	return err
}

func (c *EncodeCmd) encode() (betnumber.Identifier, error) {
	if c.Total {
		if len(c.Positions) != 1 {
			return betnumber.Identifier{}, fmt.Errorf("--total takes exactly one value, got %d", len(c.Positions))
		}
		return betnumber.EncodeTotal(c.Tag, c.Positions[0])
	}

	tag, err := betnumber.NewTag(c.Tag)
	if err != nil {
		return betnumber.Identifier{}, err
	}
	set, err := betnumber.NewPositionSet(c.Positions...)
	if err != nil {
		return betnumber.Identifier{}, err
	}
	if c.Strict {
		if err := betnumber.RequireNonEmpty(set); err != nil {
			return betnumber.Identifier{}, err
		}
	}
	return betnumber.EncodeSet(tag, set), nil
}
