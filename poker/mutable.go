package poker

import "iter"

// MutableCardSet is a card set that is changed in place. It is not safe for
// concurrent use; see ConcurrentCardSet for that.
//
// Every mutation that changes the contents bumps a version counter. An
// iteration started with All panics with ErrSetModified if the set changes
// before the iteration finishes.
type MutableCardSet struct {
	set     CardSet
	version uint64
}

// NewMutableCardSet returns a set holding the given cards.
func NewMutableCardSet(cards ...Card) *MutableCardSet {
	return &MutableCardSet{set: NewCardSet(cards...)}
}

// Snapshot returns the current contents as an immutable CardSet.
func (m *MutableCardSet) Snapshot() CardSet { return m.set }

// Version returns the number of changes made to the set so far.
func (m *MutableCardSet) Version() uint64 { return m.version }

// Len returns the number of cards in the set.
func (m *MutableCardSet) Len() int { return m.set.Len() }

// Contains reports whether c is in the set.
func (m *MutableCardSet) Contains(c Card) bool { return m.set.Contains(c) }

// Add adds c and reports whether it was absent before.
func (m *MutableCardSet) Add(c Card) bool { return m.replace(m.set.Add(c)) }

// Remove removes c and reports whether it was present.
func (m *MutableCardSet) Remove(c Card) bool { return m.replace(m.set.Remove(c)) }

// UnionWith adds every card of other and reports whether the set changed.
func (m *MutableCardSet) UnionWith(other CardSet) bool { return m.replace(m.set.Union(other)) }

// IntersectWith keeps only cards also in other and reports whether the set changed.
func (m *MutableCardSet) IntersectWith(other CardSet) bool {
	return m.replace(m.set.Intersect(other))
}

// ExceptWith removes every card of other and reports whether the set changed.
func (m *MutableCardSet) ExceptWith(other CardSet) bool { return m.replace(m.set.Except(other)) }

// SymmetricExceptWith toggles every card of other and reports whether the set changed.
func (m *MutableCardSet) SymmetricExceptWith(other CardSet) bool {
	return m.replace(m.set.SymmetricExcept(other))
}

// Clear removes every card and reports whether the set changed.
func (m *MutableCardSet) Clear() bool { return m.replace(CardSet{}) }

func (m *MutableCardSet) replace(next CardSet) bool {
	if next == m.set {
		return false
	}
	m.set = next
	m.version++
	return true
}

// All yields the cards in deck index order. It panics with ErrSetModified if
// the set is changed while the iteration is in progress.
func (m *MutableCardSet) All() iter.Seq[Card] {
	return func(yield func(Card) bool) {
		version := m.version
		for c := range m.set.All() {
			if !yield(c) {
				return
			}
			if m.version != version {
				panic(ErrSetModified)
			}
		}
	}
}
