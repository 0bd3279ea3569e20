package main

import (
	"fmt"

	"github.com/lox/betnumbers/internal/calldata"
)

type CalldataCmd struct {
	Game      string `arg:"" optional:"" help:"Start from the known deployment of this game (roulette, sicbo)"`
	BetNumber string `help:"Bet number contract address"`
	Token     string `help:"Token contract address"`
}

func (c *CalldataCmd) Run(g *Globals) error {
	args, err := c.args()
	if err != nil {
		return err
	}

	data, err := calldata.EncodeInitialize(args)
	if err != nil {
		return err
	}
	g.logger().Debug("Encoded initialize", "betNumber", args.BetNumber.Hex(), "token", args.Token.Hex(), "bytes", len(data))

	out := g.stdout()
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, calldata.Hex(data))
	return err
}

func (c *CalldataCmd) args() (calldata.InitArgs, error) {
	var args calldata.InitArgs
	if c.Game != "" {
		d, err := calldata.LookupDeployment(c.Game)
		if err != nil {
			return args, err
		}
		args = d.InitArgs
	} else if c.BetNumber == "" || c.Token == "" {
		return args, fmt.Errorf("either a game or both --bet-number and --token are required")
	}

	if c.BetNumber != "" {
		addr, err := calldata.ParseAddress(c.BetNumber)
		if err != nil {
			return args, fmt.Errorf("bet-number: %w", err)
		}
		args.BetNumber = addr
	}
	if c.Token != "" {
		addr, err := calldata.ParseAddress(c.Token)
		if err != nil {
			return args, fmt.Errorf("token: %w", err)
		}
		args.Token = addr
	}
	return args, nil
}
