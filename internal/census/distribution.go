package census

import (
	"fmt"
	"time"

	"github.com/lox/cardeval/poker"
)

// Distribution is the result of a census: how many hands of each type exist.
type Distribution struct {
	Cards   int
	Counts  [poker.NumHandTypes]int64
	Total   int64
	Elapsed time.Duration
}

// Count returns the number of hands of type t.
func (d *Distribution) Count(t poker.HandType) int64 {
	if int(t) >= len(d.Counts) {
		return 0
	}
	return d.Counts[t]
}

// Probability returns the share of all hands that are of type t.
func (d *Distribution) Probability(t poker.HandType) float64 {
	if d.Total == 0 {
		return 0
	}
	return float64(d.Count(t)) / float64(d.Total)
}

// Known hand type counts for a standard deck.
var (
	FiveCardCounts = [poker.NumHandTypes]int64{
		poker.HighCard:      1302540,
		poker.Pair:          1098240,
		poker.TwoPair:       123552,
		poker.ThreeOfAKind:  54912,
		poker.Straight:      10200,
		poker.Flush:         5108,
		poker.FullHouse:     3744,
		poker.FourOfAKind:   624,
		poker.StraightFlush: 36,
		poker.RoyalFlush:    4,
	}

	SevenCardCounts = [poker.NumHandTypes]int64{
		poker.HighCard:      23294460,
		poker.Pair:          58627800,
		poker.TwoPair:       31433400,
		poker.ThreeOfAKind:  6461620,
		poker.Straight:      6180020,
		poker.Flush:         4047644,
		poker.FullHouse:     3473184,
		poker.FourOfAKind:   224848,
		poker.StraightFlush: 37260,
		poker.RoyalFlush:    4324,
	}
)

// Verify compares the distribution with the known counts for its hand size.
func (d *Distribution) Verify() error {
	var want [poker.NumHandTypes]int64
	switch d.Cards {
	case 5:
		want = FiveCardCounts
	case 7:
		want = SevenCardCounts
	default:
		return fmt.Errorf("no reference counts for %d card hands", d.Cards)
	}

	for _, t := range poker.HandTypes {
		if d.Counts[t] != want[t] {
			return fmt.Errorf("%s: counted %d, want %d", t, d.Counts[t], want[t])
		}
	}
	return nil
}

// Report is the serialisable form of a Distribution.
type Report struct {
	Cards     int              `json:"cards"`
	Total     int64            `json:"total"`
	ElapsedMS int64            `json:"elapsed_ms"`
	Counts    map[string]int64 `json:"counts"`
}

// Report converts d into its serialisable form. FiveOfAKind is omitted.
func (d *Distribution) Report() Report {
	r := Report{
		Cards:     d.Cards,
		Total:     d.Total,
		ElapsedMS: d.Elapsed.Milliseconds(),
		Counts:    make(map[string]int64, len(poker.HandTypes)),
	}
	for _, t := range poker.HandTypes {
		if t == poker.FiveOfAKind {
			continue
		}
		r.Counts[t.String()] = d.Counts[t]
	}
	return r
}
