package cribbage

import (
	"errors"
	"fmt"
)

// ErrDuplicateCard is an error when the shared card is also one of the hand cards
var ErrDuplicateCard = errors.New("shared card duplicated in hand")

// ErrInvalidHandSize is an error when the hand does not contain exactly four distinct cards
var ErrInvalidHandSize = errors.New("invalid hand size")

// HandSizeError is an error on the number of distinct cards in the hand
type HandSizeError int

func (h HandSizeError) Error() string {
	return fmt.Sprintf("expected %d distinct hand cards, got %d", handSize, int(h))
}

// Is allows errors.Is(err, ErrInvalidHandSize)
func (h HandSizeError) Is(target error) bool {
	return target == ErrInvalidHandSize
}
