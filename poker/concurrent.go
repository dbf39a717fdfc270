package poker

import (
	"iter"
	"sync/atomic"
)

// ConcurrentCardSet is a card set that many goroutines may read and change at
// once. Mutations retry a compare-and-swap until they apply cleanly.
//
// The zero value is an empty set ready to use.
type ConcurrentCardSet struct {
	bits atomic.Uint64
}

// NewConcurrentCardSet returns a set holding the given cards.
func NewConcurrentCardSet(cards ...Card) *ConcurrentCardSet {
	c := &ConcurrentCardSet{}
	c.bits.Store(NewCardSet(cards...).bits)
	return c
}

// Snapshot returns the current contents as an immutable CardSet.
func (c *ConcurrentCardSet) Snapshot() CardSet { return CardSet{bits: c.bits.Load()} }

// Len returns the number of cards in the set at the time of the call.
func (c *ConcurrentCardSet) Len() int { return c.Snapshot().Len() }

// Contains reports whether card is in the set at the time of the call.
func (c *ConcurrentCardSet) Contains(card Card) bool { return c.Snapshot().Contains(card) }

// Add adds card and reports whether this call added it.
func (c *ConcurrentCardSet) Add(card Card) bool {
	bit := card.BitIndex()
	return c.update(func(bits uint64) uint64 { return bits | bit })
}

// Remove removes card and reports whether this call removed it.
func (c *ConcurrentCardSet) Remove(card Card) bool {
	bit := card.BitIndex()
	return c.update(func(bits uint64) uint64 { return bits &^ bit })
}

// UnionWith adds every card of other and reports whether the set changed.
func (c *ConcurrentCardSet) UnionWith(other CardSet) bool {
	return c.update(func(bits uint64) uint64 { return bits | other.bits })
}

// IntersectWith keeps only cards also in other and reports whether the set changed.
func (c *ConcurrentCardSet) IntersectWith(other CardSet) bool {
	return c.update(func(bits uint64) uint64 { return bits & other.bits })
}

// ExceptWith removes every card of other and reports whether the set changed.
func (c *ConcurrentCardSet) ExceptWith(other CardSet) bool {
	return c.update(func(bits uint64) uint64 { return bits &^ other.bits })
}

// Clear removes every card and reports whether the set changed.
func (c *ConcurrentCardSet) Clear() bool {
	return c.update(func(uint64) uint64 { return 0 })
}

// All yields the cards of a snapshot taken when iteration starts.
func (c *ConcurrentCardSet) All() iter.Seq[Card] {
	return func(yield func(Card) bool) {
		for card := range c.Snapshot().All() {
			if !yield(card) {
				return
			}
		}
	}
}

func (c *ConcurrentCardSet) update(apply func(uint64) uint64) bool {
	for {
		old := c.bits.Load()
		next := apply(old)
		if next == old {
			return false
		}
		if c.bits.CompareAndSwap(old, next) {
			return true
		}
	}
}
