package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/lox/cardeval/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Eval    EvalCmd          `cmd:"" help:"Classify a five or seven card hand"`
	Compare CompareCmd       `cmd:"" help:"Compare two hands"`
	Census  CensusCmd        `cmd:"" help:"Classify every hand in the deck and count hand types"`
	Odds    OddsCmd          `cmd:"" help:"Estimate showdown equity with Monte Carlo simulation"`
	Deck    DeckCmd          `cmd:"" help:"Print the full deck"`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("cardeval"),
		kong.Description("Bit-mask poker hand evaluator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	cli.out = os.Stdout
	err = ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
