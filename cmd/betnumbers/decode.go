package main

import (
	"fmt"
	"strings"

	"github.com/lox/betnumbers/betnumber"
	"github.com/lox/betnumbers/internal/tables"
)

type DecodeCmd struct {
	Identifiers []string `arg:"" help:"Bet numbers, decimal or 0x-prefixed hex"`
}

func (c *DecodeCmd) Run(g *Globals) error {
	games, err := g.games()
	if err != nil {
		return err
	}
	idx, err := tables.NewIndex(games...)
	if err != nil {
		return err
	}

	out := g.stdout()
	for _, s := range c.Identifiers {
		id, err := betnumber.ParseIdentifier(s)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, describeIdentifier(id, idx.Lookup(id))); err != nil {
			return err
		}
	}
	return nil
}

func describeIdentifier(id betnumber.Identifier, known []tables.Entry) string {
	tag, set := betnumber.Decode(id)
	fields := []string{id.Dec(), fmt.Sprintf("tag=%d", tag), "positions=" + set.String()}

	// A mask using only positions 240..247 is also a valid total, so the
	// total is shown only for rows known to use the total layout.
	if usesTotal(known) {
		if _, total, err := betnumber.DecodeTotal(id); err == nil {
			fields = append(fields, fmt.Sprintf("total=%d", total))
		}
	}
	for _, e := range known {
		fields = append(fields, "bet="+e.Label())
	}
	return strings.Join(fields, "\t")
}

func usesTotal(known []tables.Entry) bool {
	for _, e := range known {
		if e.Layout == tables.LayoutTotal {
			return true
		}
	}
	return false
}
