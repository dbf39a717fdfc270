// Package odds estimates showdown equity for several hole card hands by
// dealing out the rest of the board at random.
package odds

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/cardeval/internal/randutil"
	"github.com/lox/cardeval/internal/statistics"
	"github.com/lox/cardeval/poker"
)

// ErrInvalidRequest is wrapped by every validation error from Calculate.
var ErrInvalidRequest = errors.New("invalid odds request")

const (
	boardSize  = 5
	holeCards  = 2
	maxWorkers = 8
	// checkEvery is how many iterations a worker runs between context checks.
	checkEvery = 1024
)

// Request describes a simulation.
type Request struct {
	Hands      [][]poker.Card
	Board      []poker.Card
	Iterations int
	// Workers is the number of goroutines; zero picks one per CPU, up to 8.
	Workers int
	// Seed makes a run reproducible for a fixed worker count.
	Seed   int64
	Logger *log.Logger
	Clock  quartz.Clock
}

// PlayerResult is the outcome for one hand.
type PlayerResult struct {
	Hand     []poker.Card
	Category poker.HoleCardCategory
	Wins     int
	Ties     int
	// Made counts the final hand type reached on each deal.
	Made [poker.NumHandTypes]int
	// Share scores each deal 1 for a win, 0.5 for a tie and 0 for a loss.
	Share statistics.Statistics
}

// Result is the outcome of a simulation.
type Result struct {
	Players    []PlayerResult
	Board      []poker.Card
	Iterations int
	Elapsed    time.Duration
}

// WinRate returns the share of deals player i won outright.
func (r *Result) WinRate(i int) float64 {
	return float64(r.Players[i].Wins) / float64(r.Iterations)
}

// TieRate returns the share of deals player i split.
func (r *Result) TieRate(i int) float64 {
	return float64(r.Players[i].Ties) / float64(r.Iterations)
}

// Equity returns wins plus half of ties as a share of all deals.
func (r *Result) Equity(i int) float64 {
	p := r.Players[i]
	return (float64(p.Wins) + float64(p.Ties)/2) / float64(r.Iterations)
}

// Margin95 returns the half width of the 95% confidence interval around
// Equity(i).
func (r *Result) Margin95(i int) float64 {
	return r.Players[i].Share.Margin95()
}

// Validate checks hand and board sizes and that no card appears twice.
func (req Request) Validate() error {
	if len(req.Hands) < 2 {
		return fmt.Errorf("%w: need at least 2 hands, got %d", ErrInvalidRequest, len(req.Hands))
	}
	if len(req.Board) > boardSize {
		return fmt.Errorf("%w: board cannot have more than %d cards", ErrInvalidRequest, boardSize)
	}
	if req.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive", ErrInvalidRequest)
	}
	if req.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidRequest)
	}
	if needed := len(req.Hands)*holeCards + boardSize; needed > poker.NumCards {
		return fmt.Errorf("%w: %d hands need %d cards", ErrInvalidRequest, len(req.Hands), needed)
	}

	seen := poker.NewMutableCardSet()
	for _, card := range req.Board {
		if !card.Valid() {
			return fmt.Errorf("%w: board: %w", ErrInvalidRequest, poker.ErrInvalidCard)
		}
		if !seen.Add(card) {
			return fmt.Errorf("%w: duplicate card found: %s", ErrInvalidRequest, card)
		}
	}
	for i, hand := range req.Hands {
		if len(hand) != holeCards {
			return fmt.Errorf("%w: hand %d must contain exactly %d cards, got %d", ErrInvalidRequest, i+1, holeCards, len(hand))
		}
		for _, card := range hand {
			if !card.Valid() {
				return fmt.Errorf("%w: hand %d: %w", ErrInvalidRequest, i+1, poker.ErrInvalidCard)
			}
			if !seen.Add(card) {
				return fmt.Errorf("%w: duplicate card found in hand %d: %s", ErrInvalidRequest, i+1, card)
			}
		}
	}
	return nil
}

// workerResult holds one worker's tallies.
type workerResult struct {
	players []PlayerResult
}

// Calculate runs the simulation. Iterations are split across workers, each
// with its own deck and random source seeded from req.Seed.
func Calculate(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Logger == nil {
		req.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if req.Clock == nil {
		req.Clock = quartz.NewReal()
	}

	workers := req.Workers
	if workers == 0 {
		workers = min(runtime.NumCPU(), maxWorkers)
	}
	workers = min(workers, req.Iterations)

	known := poker.NewCardSet(req.Board...)
	for _, hand := range req.Hands {
		known = known.Union(poker.NewCardSet(hand...))
	}

	start := req.Clock.Now()
	req.Logger.Debug("Starting simulation", "hands", len(req.Hands), "board", len(req.Board),
		"iterations", req.Iterations, "workers", workers)

	perWorker := req.Iterations / workers
	remainder := req.Iterations % workers
	streams := randutil.Streams(req.Seed, workers)

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan workerResult, workers)

	for w := 0; w < workers; w++ {
		deals := perWorker
		if w < remainder {
			deals++
		}
		// Independent RNG per worker avoids contention.
		deck := poker.NewDeckWithout(streams[w], known)

		g.Go(func() error {
			result, err := runWorker(ctx, req, deck, deals)
			if err != nil {
				return err
			}
			select {
			case results <- result:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	res := &Result{
		Players:    make([]PlayerResult, len(req.Hands)),
		Board:      req.Board,
		Iterations: req.Iterations,
	}
	for i, hand := range req.Hands {
		res.Players[i].Hand = hand
		res.Players[i].Category = poker.CategorizeHoleCards(hand[0], hand[1])
	}
	for result := range results {
		for i, p := range result.players {
			res.Players[i].Wins += p.Wins
			res.Players[i].Ties += p.Ties
			for t, n := range p.Made {
				res.Players[i].Made[t] += n
			}
		}
	}
	for i := range res.Players {
		p := &res.Players[i]
		p.Share.AddN(1, p.Wins)
		p.Share.AddN(0.5, p.Ties)
		p.Share.AddN(0, res.Iterations-p.Wins-p.Ties)
	}
	res.Elapsed = req.Clock.Since(start)

	req.Logger.Debug("Simulation complete", "elapsed", res.Elapsed.Round(time.Millisecond))
	return res, nil
}

// runWorker deals deals random board completions and tallies the showdowns.
func runWorker(ctx context.Context, req Request, deck *poker.Deck, deals int) (workerResult, error) {
	result := workerResult{
		players: make([]PlayerResult, len(req.Hands)),
	}

	// Reused per deal: hole cards in 0-1, board in 2-6.
	seven := make([][]poker.Card, len(req.Hands))
	for i, hand := range req.Hands {
		seven[i] = make([]poker.Card, holeCards+boardSize)
		copy(seven[i], hand)
		copy(seven[i][holeCards:], req.Board)
	}
	ranks := make([]poker.PokerHand, len(req.Hands))
	missing := boardSize - len(req.Board)

	for n := range deals {
		if n%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return workerResult{}, err
			}
		}

		deck.Shuffle()
		fill := deck.Deal(missing)

		var best poker.PokerHand
		for i := range seven {
			copy(seven[i][holeCards+len(req.Board):], fill)
			hand, err := poker.EvaluateSevenCardHand(seven[i])
			if err != nil {
				return workerResult{}, err
			}
			ranks[i] = hand
			best = max(best, hand)
			result.players[i].Made[hand.Type()]++
		}

		winners := 0
		for _, r := range ranks {
			if r == best {
				winners++
			}
		}
		for i, r := range ranks {
			switch {
			case r != best:
			case winners == 1:
				result.players[i].Wins++
			default:
				result.players[i].Ties++
			}
		}
	}
	return result, nil
}
