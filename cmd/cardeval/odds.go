package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/coder/quartz"

	"github.com/lox/cardeval/internal/odds"
	"github.com/lox/cardeval/poker"
)

type OddsCmd struct {
	Hands         []string `arg:"" help:"Player hands, e.g. AcKd QhJs" required:"true"`
	Board         string   `short:"b" help:"Community board cards (e.g., 'Td7s8h')"`
	Possibilities bool     `short:"p" help:"Show how often each hand type is made"`
	Iterations    int      `short:"i" help:"Number of Monte Carlo iterations; defaults to the config file"`
	Workers       int      `short:"w" help:"Worker goroutines; defaults to the config file"`
	Seed          *int64   `help:"Random seed for reproducible results"`
}

func (c *OddsCmd) Run(g *Globals) error {
	env, err := g.setup()
	if err != nil {
		return err
	}

	clock := quartz.NewReal()
	req := odds.Request{
		Iterations: env.cfg.Odds.Iterations,
		Workers:    env.cfg.Odds.Workers,
		Logger:     env.logger,
		Clock:      clock,
	}
	if c.Iterations != 0 {
		req.Iterations = c.Iterations
	}
	if c.Workers != 0 {
		req.Workers = c.Workers
	}
	if c.Seed != nil {
		req.Seed = *c.Seed
	} else {
		req.Seed = clock.Now().UnixNano()
	}

	for i, text := range c.Hands {
		hand, err := poker.ParseCards(strings.TrimSpace(text))
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		req.Hands = append(req.Hands, hand)
	}
	if c.Board != "" {
		req.Board, err = poker.ParseCards(c.Board)
		if err != nil {
			return fmt.Errorf("board: %w", err)
		}
	}

	ctx, cancel := signalContext(env.logger)
	defer cancel()

	res, err := odds.Calculate(ctx, req)
	if err != nil {
		return err
	}

	format := env.cfg.CardFormat()
	if len(res.Board) > 0 {
		fmt.Fprintf(env.out, "%s\n%s\n\n", headerStyle.Render("board"), renderCards(format, res.Board))
	}
	fmt.Fprintln(env.out, equityTable(res, format))

	if c.Possibilities {
		fmt.Fprintln(env.out)
		fmt.Fprintln(env.out, possibilitiesTable(res, format))
	}

	fmt.Fprintf(env.out, "\n%d iterations in %s (seed %d)\n", res.Iterations, formatDuration(res.Elapsed), req.Seed)
	return nil
}

func equityTable(res *odds.Result, format poker.Format) *table.Table {
	t := table.New().
		Headers("hand", "win", "tie", "equity", "category").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return winStyle
			case col == 2:
				return tieStyle
			case col == 4:
				return categoryStyle
			}
			return plainStyle
		})

	for i, p := range res.Players {
		t.Row(
			renderCards(format, p.Hand),
			percent(res.WinRate(i)),
			percent(res.TieRate(i)),
			fmt.Sprintf("%s ±%.1f", percent(res.Equity(i)), res.Margin95(i)*100),
			string(p.Category),
		)
	}
	return t
}

func possibilitiesTable(res *odds.Result, format poker.Format) *table.Table {
	headers := []string{"hand"}
	for _, p := range res.Players {
		headers = append(headers, renderCards(format, p.Hand))
	}

	t := table.New().
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return categoryStyle
			}
			return plainStyle
		})

	for i := len(poker.HandTypes) - 1; i >= 0; i-- {
		ht := poker.HandTypes[i]
		if ht == poker.FiveOfAKind {
			continue
		}
		row := []string{ht.String()}
		for _, p := range res.Players {
			row = append(row, percent(float64(p.Made[ht])/float64(res.Iterations)))
		}
		t.Row(row...)
	}
	return t
}

func percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
