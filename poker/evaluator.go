package poker

import (
	"github.com/lox/cardeval/internal/bitops"
)

// Evaluator classifies five and seven card hands.
type Evaluator interface {
	EvaluateFiveCardHand(cards []Card) (PokerHand, error)
	EvaluateSevenCardHand(cards []Card) (PokerHand, error)
}

// BitwiseEvaluator evaluates hands directly from their bit masks. It has no
// state and is safe for concurrent use.
type BitwiseEvaluator struct{}

// EvaluateFiveCardHand implements Evaluator.
func (BitwiseEvaluator) EvaluateFiveCardHand(cards []Card) (PokerHand, error) {
	return EvaluateFiveCardHand(cards)
}

// EvaluateSevenCardHand implements Evaluator.
func (BitwiseEvaluator) EvaluateSevenCardHand(cards []Card) (PokerHand, error) {
	return EvaluateSevenCardHand(cards)
}

const (
	// fiveHighStraight is A-2-3-4-5 with the ace in the high position.
	fiveHighStraight = aceHighRankBit | 0b11110
	// fiveHighStraightPrimary packs the same straight with the ace low.
	fiveHighStraightPrimary = 0b11111
)

// EvaluateFiveCardHand classifies exactly five distinct cards.
func EvaluateFiveCardHand(cards []Card) (PokerHand, error) {
	if len(cards) != 5 {
		return 0, &HandSizeError{Expected: 5, Actual: len(cards)}
	}

	var masks [5]uint64
	if err := foldCards(cards, masks[:]); err != nil {
		return 0, err
	}
	return evaluateAceHigh(masks[0] | masks[1] | masks[2] | masks[3] | masks[4]), nil
}

// EvaluateSevenCardHand returns the best hand that can be made from five of
// exactly seven distinct cards.
func EvaluateSevenCardHand(cards []Card) (PokerHand, error) {
	if len(cards) != 7 {
		return 0, &HandSizeError{Expected: 7, Actual: len(cards)}
	}

	var masks [7]uint64
	if err := foldCards(cards, masks[:]); err != nil {
		return 0, err
	}
	return evaluateSeven(&masks), nil
}

// EvaluateCardSet evaluates a set of five or seven cards.
func EvaluateCardSet(set CardSet) (PokerHand, error) {
	switch n := set.Len(); n {
	case 5:
		return evaluateAceHigh(set.aceHighMask()), nil
	case 7:
		var masks [7]uint64
		i := 0
		for card := range set.All() {
			masks[i] = card.AceHighBitMask()
			i++
		}
		return evaluateSeven(&masks), nil
	default:
		expected := 5
		if n > 5 {
			expected = 7
		}
		return 0, &HandSizeError{Expected: expected, Actual: n}
	}
}

// EvaluateMask classifies a hand mask made by ORing the BitMask of five
// distinct cards.
func EvaluateMask(mask uint64) (PokerHand, error) {
	if n := bitops.PopCount(mask); n != 5 {
		return 0, &HandSizeError{Expected: 5, Actual: n}
	}
	return evaluateAceHigh(bitops.MoveLowAcesHigh(mask)), nil
}

// EvaluateMasks classifies many five card hand masks (see EvaluateMask) and
// writes the results into out. If out is smaller than masks a new slice is
// allocated and returned. Each mask is assumed to hold exactly five cards;
// the result is undefined otherwise.
func EvaluateMasks(masks []uint64, out []PokerHand) []PokerHand {
	if len(out) < len(masks) {
		out = make([]PokerHand, len(masks))
	} else {
		out = out[:len(masks)]
	}

	for i, mask := range masks {
		out[i] = evaluateAceHigh(bitops.MoveLowAcesHigh(mask))
	}
	return out
}

// foldCards writes each card's ace-high mask into masks and rejects invalid
// or repeated cards.
func foldCards(cards []Card, masks []uint64) error {
	var seen uint64
	for i, card := range cards {
		if !card.Valid() {
			return ErrInvalidCard
		}
		seen |= card.BitIndex()
		masks[i] = card.AceHighBitMask()
	}
	if bitops.PopCount(seen) != len(cards) {
		return ErrDuplicateCard
	}
	return nil
}

// evaluateSeven tries all 21 five card subsets and keeps the best.
func evaluateSeven(masks *[7]uint64) PokerHand {
	var best PokerHand
	for _, s := range sevenCardSubsets {
		hand := evaluateAceHigh(masks[s[0]] | masks[s[1]] | masks[s[2]] | masks[s[3]] | masks[s[4]])
		if hand > best {
			best = hand
		}
	}
	return best
}

// sevenCardSubsets holds the positions of every 5-of-7 subset.
var sevenCardSubsets = func() [21][5]uint8 {
	var subsets [21][5]uint8
	i := 0
	for positions := range indexCombinations(7, 5) {
		for j, p := range positions {
			subsets[i][j] = uint8(p)
		}
		i++
	}
	return subsets
}()

// evaluateAceHigh classifies the OR of five AceHighBitMasks.
//
// ORing the four suit lanes together gives one bit per distinct rank, and the
// number of distinct ranks fixes the shape of the hand:
//
//	5  high card, straight, flush, straight flush
//	4  pair (2+1+1+1)
//	3  three of a kind (3+1+1) or two pair (2+2+1)
//	2  four of a kind (4+1) or full house (3+2)
func evaluateAceHigh(mask uint64) PokerHand {
	orReduction := bitops.HorizontalOr16(mask)
	distinct := bitops.PopCount(orReduction)

	// Most common shapes first.
	if distinct == 5 {
		return flushStraightOrHighCard(mask, orReduction)
	}
	if distinct == 4 {
		return pair(mask, orReduction)
	}
	if distinct == 3 {
		return threeOfAKindOrTwoPair(mask, orReduction)
	}
	return fourOfAKindOrFullHouse(mask, orReduction)
}

func fourOfAKindOrFullHouse(mask, orReduction uint64) PokerHand {
	// Only a rank present in all four suits survives the AND.
	if quad := bitops.HorizontalAnd16(mask); quad != 0 {
		return newPokerHand(FourOfAKind, quad, orReduction^quad)
	}

	// The three is the only rank held an odd number of times.
	three := bitops.HorizontalXor16(mask)
	return newPokerHand(FullHouse, three, orReduction^three)
}

func pair(mask, orReduction uint64) PokerHand {
	// The three single cards are odd counts, the pair is even.
	singles := bitops.HorizontalXor16(mask)
	return newPokerHand(Pair, orReduction^singles, singles)
}

func threeOfAKindOrTwoPair(mask, orReduction uint64) PokerHand {
	// Three of a kind: 3+1+1 leaves three odd counts. Two pair: 2+2+1 leaves one.
	xorReduction := bitops.HorizontalXor16(mask)
	if bitops.PopCount(xorReduction) == 3 {
		return threeOfAKind(mask, orReduction)
	}
	return newPokerHand(TwoPair, orReduction^xorReduction, xorReduction)
}

func threeOfAKind(mask, orReduction uint64) PokerHand {
	// Every choice of three suits out of four contains spades and diamonds
	// (lanes 0 and 2) or hearts and clubs (lanes 1 and 3), so ANDing the
	// halves of the mask leaves the three's rank in lane 0 or lane 1. The
	// single cards cannot appear in two lanes.
	halves := mask & (mask >> 32)
	three := (halves | halves>>16) & bitops.Lane0
	return newPokerHand(ThreeOfAKind, three, orReduction^three)
}

func flushStraightOrHighCard(mask, orReduction uint64) PokerHand {
	flush := isSingleSuit(mask)

	// Aces are high in the mask, so A-2-3-4-5 needs its own check. It is the
	// one hand packed with a low ace.
	if orReduction == fiveHighStraight {
		if flush {
			return newPokerHand(StraightFlush, fiveHighStraightPrimary, 0)
		}
		return newPokerHand(Straight, fiveHighStraightPrimary, 0)
	}

	// ANDing the rank mask with itself shifted down one leaves a bit on the
	// lower card of every adjacent pair. Five distinct ranks hold four
	// adjacent pairs only when they form a run.
	runsOfTwo := orReduction & (orReduction >> 1)
	if bitops.PopCount(runsOfTwo) == 4 {
		switch {
		case !flush:
			return newPokerHand(Straight, orReduction, 0)
		case orReduction&aceHighRankBit != 0:
			return newPokerHand(RoyalFlush, orReduction, 0)
		default:
			return newPokerHand(StraightFlush, orReduction, 0)
		}
	}

	if flush {
		return newPokerHand(Flush, orReduction, 0)
	}
	return newPokerHand(HighCard, orReduction, 0)
}

// isSingleSuit reports whether every set bit of mask lies in one lane.
func isSingleSuit(mask uint64) bool {
	return mask&bitops.Lane0 == mask ||
		mask&bitops.Lane1 == mask ||
		mask&bitops.Lane2 == mask ||
		mask&bitops.Lane3 == mask
}
