package main

import (
	"fmt"

	"github.com/lox/cardeval/poker"
)

type DeckCmd struct {
	Format string `short:"f" help:"Card format (upper, lower, compact, title, words, symbols); defaults to the config file"`
}

func (c *DeckCmd) Run(g *Globals) error {
	env, err := g.setup()
	if err != nil {
		return err
	}

	format := env.cfg.CardFormat()
	if c.Format != "" {
		format, err = poker.ParseFormat(c.Format)
		if err != nil {
			return err
		}
	}

	deck := poker.FullDeck()
	for suit := range poker.NumSuits {
		row := deck[suit*poker.NumRanks : (suit+1)*poker.NumRanks]
		fmt.Fprintf(env.out, "%s%s\n", labelStyle.Render(poker.Suit(suit).String()), renderCards(format, row))
	}
	return nil
}
