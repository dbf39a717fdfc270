package poker

import (
	rand "math/rand/v2"
)

// Deck is a shuffled stack of cards that deals from the top.
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a shuffled 52 card deck. A nil rng uses the global source.
func NewDeck(rng *rand.Rand) *Deck {
	return NewDeckWithout(rng, CardSet{})
}

// NewDeckWithout creates a shuffled deck holding every card not in exclude,
// for dealing around cards that are already known.
func NewDeckWithout(rng *rand.Rand, exclude CardSet) *Deck {
	d := &Deck{
		cards: FullDeckSet().Except(exclude).Cards(),
		rng:   rng,
	}
	d.Shuffle()
	return d
}

// Shuffle returns every card to the deck and shuffles it using Fisher-Yates.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck. It returns nil if fewer than n remain.
// The returned slice aliases the deck and is only valid until the next Shuffle.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || d.next+n > len(d.cards) {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// DealOne deals a single card. ok is false when the deck is empty.
func (d *Deck) DealOne() (card Card, ok bool) {
	if d.next >= len(d.cards) {
		return Card{}, false
	}
	card = d.cards[d.next]
	d.next++
	return card, true
}

// Remaining returns the number of cards left to deal.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
