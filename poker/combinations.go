package poker

import (
	"fmt"
	"iter"
)

// Combinations returns every k card subset of cards as a CardSet. Subsets are
// produced lazily, in lexicographic order of their positions in cards, and the
// sequence can be ranged over any number of times.
//
// It is an error for cards to be empty, to contain the same card twice, or for
// k to fall outside 1..len(cards).
func Combinations(cards []Card, k int) (iter.Seq[CardSet], error) {
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: no cards to choose from", ErrInvalidCombination)
	}
	if k < 1 || k > len(cards) {
		return nil, fmt.Errorf("%w: cannot choose %d of %d cards", ErrInvalidCombination, k, len(cards))
	}
	if NewCardSet(cards...).Len() != len(cards) {
		return nil, ErrDuplicateCard
	}

	source := append([]Card(nil), cards...)
	return func(yield func(CardSet) bool) {
		for positions := range indexCombinations(len(source), k) {
			var set CardSet
			for _, p := range positions {
				set.bits |= source[p].BitIndex()
			}
			if !yield(set) {
				return
			}
		}
	}, nil
}

// Binomial returns the number of ways to choose k items from n.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}

// indexCombinations yields every k element subset of 0..n-1 as ascending
// positions, in lexicographic order. It keeps an explicit stack of chosen
// positions instead of recursing. The yielded slice is reused between
// iterations and must not be retained.
func indexCombinations(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k < 1 || k > n {
			return
		}

		stack := make([]int, 1, k)
		for len(stack) > 0 {
			top := len(stack) - 1

			// The position at depth top can go no higher than n-k+top while
			// leaving room for the deeper positions.
			if stack[top] > n-k+top {
				stack = stack[:top]
				if top > 0 {
					stack[top-1]++
				}
				continue
			}

			if len(stack) < k {
				stack = append(stack, stack[top]+1)
				continue
			}

			if !yield(stack) {
				return
			}
			stack[top]++
		}
	}
}
