package main

import (
	"fmt"
	"strings"

	"github.com/lox/cardeval/poker"
)

type EvalCmd struct {
	Cards  []string `arg:"" help:"Five or seven cards, e.g. 'AS KS QS JS 10S' or AsKsQsJsTs"`
	Lookup bool     `help:"Use the lookup table evaluator instead of the bitwise one"`
}

func (c *EvalCmd) Run(g *Globals) error {
	env, err := g.setup()
	if err != nil {
		return err
	}

	cards, err := poker.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return fmt.Errorf("parsing cards: %w", err)
	}

	var evaluator poker.Evaluator = poker.BitwiseEvaluator{}
	if c.Lookup {
		env.logger.Debug("Building lookup table")
		evaluator = poker.LookupEvaluator{}
	}

	hand, err := evaluate(evaluator, cards)
	if err != nil {
		return err
	}

	format := env.cfg.CardFormat()
	fmt.Fprintf(env.out, "%s%s\n", labelStyle.Render("hand"), renderCards(format, cards))
	fmt.Fprintf(env.out, "%s%s\n", labelStyle.Render("type"), categoryStyle.Render(hand.Type().String()))
	fmt.Fprintf(env.out, "%s%s\n", labelStyle.Render("primary"), rankNames(hand.PrimaryRanks()))
	fmt.Fprintf(env.out, "%s%s\n", labelStyle.Render("secondary"), rankNames(hand.SecondaryRanks()))
	fmt.Fprintf(env.out, "%s0x%08X\n", labelStyle.Render("value"), uint32(hand))
	return nil
}

type CompareCmd struct {
	HandA string `arg:"" name:"hand-a" help:"First hand, five or seven cards"`
	HandB string `arg:"" name:"hand-b" help:"Second hand, five or seven cards"`
}

func (c *CompareCmd) Run(g *Globals) error {
	env, err := g.setup()
	if err != nil {
		return err
	}

	format := env.cfg.CardFormat()
	var hands [2]poker.PokerHand
	var cards [2][]poker.Card
	for i, text := range []string{c.HandA, c.HandB} {
		cards[i], err = poker.ParseCards(text)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		hands[i], err = evaluate(poker.BitwiseEvaluator{}, cards[i])
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		fmt.Fprintf(env.out, "%s%s  %s\n",
			labelStyle.Render(fmt.Sprintf("hand %d", i+1)),
			renderCards(format, cards[i]),
			categoryStyle.Render(hands[i].String()))
	}

	var verdict string
	switch hands[0].Compare(hands[1]) {
	case 1:
		verdict = winStyle.Render("hand 1 wins")
	case -1:
		verdict = winStyle.Render("hand 2 wins")
	default:
		verdict = tieStyle.Render("split pot")
	}
	fmt.Fprintf(env.out, "\n%s\n", verdict)
	return nil
}

// evaluate picks the five or seven card evaluator by hand size.
func evaluate(e poker.Evaluator, cards []poker.Card) (poker.PokerHand, error) {
	switch len(cards) {
	case 7:
		return e.EvaluateSevenCardHand(cards)
	case 5:
		return e.EvaluateFiveCardHand(cards)
	default:
		return 0, fmt.Errorf("%w: need 5 or 7 cards, got %d", poker.ErrInvalidHandSize, len(cards))
	}
}
