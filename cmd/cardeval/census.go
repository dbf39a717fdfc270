package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/coder/quartz"

	"github.com/lox/cardeval/internal/census"
	"github.com/lox/cardeval/internal/fileutil"
	"github.com/lox/cardeval/poker"
)

type CensusCmd struct {
	Cards    int    `help:"Hand size, 5 or 7; defaults to the config file"`
	Workers  int    `short:"w" help:"Worker goroutines; defaults to the config file or one per CPU"`
	Progress bool   `short:"p" help:"Show a progress bar"`
	Verify   bool   `help:"Fail unless the counts match the known distribution"`
	Output   string `short:"o" type:"path" help:"Also write the distribution as JSON to this file"`
}

func (c *CensusCmd) Run(g *Globals) error {
	env, err := g.setup()
	if err != nil {
		return err
	}

	cfg := census.Config{
		Cards:   env.cfg.Census.Cards,
		Workers: env.cfg.Census.Workers,
		Logger:  env.logger,
		Clock:   quartz.NewReal(),
	}
	if c.Cards != 0 {
		cfg.Cards = c.Cards
	}
	if c.Workers != 0 {
		cfg.Workers = c.Workers
	}

	run, err := census.New(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(env.logger)
	defer cancel()

	var dist *census.Distribution
	if c.Progress {
		dist, err = runWithProgress(ctx, run, env.out, g)
	} else {
		dist, err = run.Run(ctx)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(env.out, distributionTable(dist))
	fmt.Fprintf(env.out, "\n%d hands in %s\n", dist.Total, formatDuration(dist.Elapsed))

	if c.Output != "" {
		if err := fileutil.WriteJSONAtomic(c.Output, dist.Report(), 0o644); err != nil {
			return err
		}
		env.logger.Info("Wrote distribution", "file", c.Output)
	}

	if c.Verify {
		if err := dist.Verify(); err != nil {
			fmt.Fprintln(env.out, errorStyle.Render("distribution mismatch"))
			return fmt.Errorf("distribution mismatch: %w", err)
		}
		fmt.Fprintln(env.out, winStyle.Render("distribution verified"))
	}
	return nil
}

func distributionTable(d *census.Distribution) *table.Table {
	t := table.New().
		Headers("hand", "count", "probability").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 0 {
				return categoryStyle
			}
			return plainStyle
		})

	for i := len(poker.HandTypes) - 1; i >= 0; i-- {
		ht := poker.HandTypes[i]
		if ht == poker.FiveOfAKind {
			continue
		}
		t.Row(ht.String(), fmt.Sprintf("%d", d.Count(ht)), fmt.Sprintf("%.6f%%", d.Probability(ht)*100))
	}
	t.Row("Total", fmt.Sprintf("%d", d.Total), "")
	return t
}

type censusTickMsg time.Time

type censusDoneMsg struct{}

// censusModel draws a progress bar while a census runs.
type censusModel struct {
	census *census.Census
	bar    progress.Model
	cancel context.CancelFunc
}

func censusTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return censusTickMsg(t)
	})
}

func (m censusModel) Init() tea.Cmd {
	return censusTick()
}

func (m censusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case censusTickMsg:
		return m, censusTick()
	case censusDoneMsg:
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width-20, 10), 80)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m censusModel) View() string {
	p := m.census.Progress()
	return fmt.Sprintf("%s %d/%d tasks\n", m.bar.ViewAs(p.Fraction()), p.Tasks, p.TotalTasks)
}

// runWithProgress runs the census in the background while a bubbletea
// program renders its progress.
func runWithProgress(ctx context.Context, run *census.Census, out io.Writer, g *Globals) (*census.Distribution, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := censusModel{
		census: run,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithColorProfile(g.colorProfile())),
		cancel: cancel,
	}
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx))

	type result struct {
		dist *census.Distribution
		err  error
	}
	done := make(chan result, 1)
	go func() {
		dist, err := run.Run(ctx)
		done <- result{dist, err}
		program.Send(censusDoneMsg{})
	}()

	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return nil, fmt.Errorf("progress display: %w", err)
	}
	cancel()
	r := <-done
	return r.dist, r.err
}
