// Package census classifies every possible hand of a given size and counts
// how often each hand type occurs.
package census

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/cardeval/poker"
)

// ErrInvalidConfig is wrapped by every configuration error from New.
var ErrInvalidConfig = errors.New("invalid census config")

// batchSize is how many hand masks a worker collects before evaluating them
// together, and how often progress is published.
const batchSize = 4096

// Config controls a census run.
type Config struct {
	// Cards is the hand size, 5 or 7.
	Cards int
	// Workers is the number of goroutines; zero uses runtime.NumCPU.
	Workers int
	Logger  *log.Logger
	Clock   quartz.Clock
	// OnTaskDone, if set, is called from a worker goroutine after each task.
	OnTaskDone func(Progress)
}

// Progress is a snapshot of a running census.
type Progress struct {
	Hands      int64
	TotalHands int64
	Tasks      int
	TotalTasks int
}

// Fraction returns the share of hands classified so far, 0..1.
func (p Progress) Fraction() float64 {
	if p.TotalHands == 0 {
		return 0
	}
	return float64(p.Hands) / float64(p.TotalHands)
}

// Census is a single exhaustive classification run. Progress may be read from
// any goroutine while Run is in progress.
type Census struct {
	cfg        Config
	totalHands int64
	tasks      int

	hands     atomic.Int64
	tasksDone atomic.Int64
	counts    [poker.NumHandTypes]atomic.Int64
}

// New validates cfg and prepares a census.
func New(cfg Config) (*Census, error) {
	if cfg.Cards != 5 && cfg.Cards != 7 {
		return nil, fmt.Errorf("%w: hand size must be 5 or 7, got %d", ErrInvalidConfig, cfg.Cards)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}

	return &Census{
		cfg:        cfg,
		totalHands: int64(poker.Binomial(poker.NumCards, cfg.Cards)),
		// One task per possible lowest card.
		tasks: poker.NumCards - cfg.Cards + 1,
	}, nil
}

// Run classifies every hand in the deck and returns the counts.
func Run(ctx context.Context, cfg Config) (*Distribution, error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return c.Run(ctx)
}

// Progress returns how far the census has got.
func (c *Census) Progress() Progress {
	return Progress{
		Hands:      c.hands.Load(),
		TotalHands: c.totalHands,
		Tasks:      int(c.tasksDone.Load()),
		TotalTasks: c.tasks,
	}
}

// Run classifies every hand. Work is split by the deck index of each hand's
// lowest card: task i covers the hands whose lowest card is card i, so tasks
// never overlap. Cancelling ctx stops the run between batches.
func (c *Census) Run(ctx context.Context) (*Distribution, error) {
	logger := c.cfg.Logger
	start := c.cfg.Clock.Now()
	logger.Info("Starting census", "cards", c.cfg.Cards, "hands", c.totalHands, "workers", c.cfg.Workers)

	tasks := make(chan int)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(tasks)
		for first := range c.tasks {
			select {
			case tasks <- first:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < c.cfg.Workers; w++ {
		g.Go(func() error {
			for first := range tasks {
				if err := c.runTask(ctx, first); err != nil {
					return err
				}
				c.tasksDone.Add(1)
				logger.Debug("Census task complete", "worker", w, "first", poker.CardFromIndex(first))
				if c.cfg.OnTaskDone != nil {
					c.cfg.OnTaskDone(c.Progress())
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	dist := &Distribution{
		Cards:   c.cfg.Cards,
		Elapsed: c.cfg.Clock.Since(start),
	}
	for i := range c.counts {
		dist.Counts[i] = c.counts[i].Load()
		dist.Total += dist.Counts[i]
	}
	logger.Info("Census complete", "hands", dist.Total, "elapsed", dist.Elapsed.Round(time.Millisecond))
	return dist, nil
}

// runTask classifies every hand whose lowest card has deck index first. It
// counts locally and folds into the shared counters once per batch.
func (c *Census) runTask(ctx context.Context, first int) error {
	deck := poker.FullDeck()
	firstCard := poker.NewCardSet(deck[first])
	rest, err := poker.Combinations(deck[first+1:], c.cfg.Cards-1)
	if err != nil {
		return err
	}

	var (
		local  [poker.NumHandTypes]int64
		masks  = make([]uint64, 0, batchSize)
		hands  = make([]poker.PokerHand, batchSize)
		seven  = c.cfg.Cards == 7
		counts = 0
	)

	flush := func() error {
		if !seven {
			for _, h := range poker.EvaluateMasks(masks, hands) {
				local[h.Type()]++
			}
			masks = masks[:0]
		}
		for t, n := range local {
			if n != 0 {
				c.counts[t].Add(n)
				local[t] = 0
			}
		}
		c.hands.Add(int64(counts))
		counts = 0
		return ctx.Err()
	}

	for set := range rest {
		hand := set.Union(firstCard)
		if seven {
			h, err := poker.EvaluateCardSet(hand)
			if err != nil {
				return err
			}
			local[h.Type()]++
		} else {
			masks = append(masks, hand.BitMask())
		}

		if counts++; counts == batchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	return flush()
}
