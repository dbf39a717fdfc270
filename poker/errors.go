package poker

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHandSize is matched by every HandSizeError.
	ErrInvalidHandSize = errors.New("invalid hand size")

	// ErrDuplicateCard is returned when a hand contains the same card twice.
	ErrDuplicateCard = errors.New("duplicate card")

	// ErrInvalidCard is returned for a card whose rank or suit is out of
	// range, and wrapped by the parsers for unreadable card text.
	ErrInvalidCard = errors.New("invalid card")

	// ErrInvalidCombination is returned when a combination size cannot be
	// drawn from the source cards.
	ErrInvalidCombination = errors.New("invalid combination")

	// ErrSetModified is the panic value raised when a MutableCardSet changes
	// while it is being iterated.
	ErrSetModified = errors.New("card set modified during iteration")
)

// HandSizeError reports that an evaluator was given the wrong number of cards.
type HandSizeError struct {
	Expected int
	Actual   int
}

func (e *HandSizeError) Error() string {
	return fmt.Sprintf("hand must have %d cards, got %d", e.Expected, e.Actual)
}

// Is lets errors.Is(err, ErrInvalidHandSize) match.
func (e *HandSizeError) Is(target error) bool {
	return target == ErrInvalidHandSize
}
