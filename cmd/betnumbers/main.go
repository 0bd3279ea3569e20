package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/betnumbers/cmd/betnumbers/shared"
	"github.com/lox/betnumbers/internal/tables"
)

// version is set by ldflags during build
var version = "dev"

// Globals are shared by every command.
type Globals struct {
	LogLevel string `default:"info" enum:"debug,info,warn,error" help:"Log level (debug|info|warn|error)"`
	Tables   string `type:"path" help:"HCL file declaring extra bet categories; a missing file adds none"`

	Stdout io.Writer   `kong:"-"`
	Logger *log.Logger `kong:"-"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Generate GenerateCmd      `cmd:"" help:"Print the bet numbers of a game or category, one per line"`
	Encode   EncodeCmd        `cmd:"" help:"Encode a tag and positions into a bet number"`
	Decode   DecodeCmd        `cmd:"" help:"Split bet numbers into tag and positions"`
	Describe DescribeCmd      `cmd:"" help:"List bet categories with their positions and bet numbers"`
	Calldata CalldataCmd      `cmd:"" help:"ABI-encode the initialize call of a game contract"`
	Verify   VerifyCmd        `cmd:"" help:"Check every table round-trips and has no colliding bet numbers"`
}

func newParser(cli *CLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("betnumbers"),
		kong.Description("Generate casino bet numbers and contract calldata"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logger, err := shared.SetupLogger(os.Stderr, cli.LogLevel)
	ctx.FatalIfErrorf(err)
	cli.Globals.Logger = logger
	cli.Globals.Stdout = os.Stdout

	err = ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

func (g *Globals) stdout() io.Writer {
	if g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

func (g *Globals) logger() *log.Logger {
	if g.Logger == nil {
		return log.New(io.Discard)
	}
	return g.Logger
}

// games returns the built-in games plus anything declared in --tables.
func (g *Globals) games() ([]*tables.Game, error) {
	games := tables.Games()
	if g.Tables == "" {
		return games, nil
	}

	cfg, err := tables.LoadTableConfig(g.Tables)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(games); err != nil {
		return nil, err
	}
	g.logger().Debug("Loaded extra categories", "file", g.Tables, "categories", len(cfg.Categories))
	return games, nil
}
