package cribbage

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"cribbage-server/pkg/deck"
)

const handSize = 4

// Hand is four hand cards plus the shared face-up card.
// A Hand is immutable and safe for concurrent use.
type Hand struct {
	shared deck.Card
	cards  deck.Cards
}

// NewHand returns a hand from the shared card token and the hand card tokens.
// Duplicate hand tokens are collapsed before the hand size is checked, so a
// repeated token fails with ErrInvalidHandSize.
func NewHand(shared string, cards ...string) (*Hand, error) {
	sharedCard, err := deck.ParseCard(shared)
	if err != nil {
		return nil, err
	}

	parsed := make(deck.Cards, len(cards))
	for i, token := range cards {
		card, err := deck.ParseCard(token)
		if err != nil {
			return nil, err
		}

		parsed[i] = card
	}

	unique := parsed.Unique()
	if unique.Contains(sharedCard) {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, sharedCard)
	}

	if len(unique) != handSize {
		return nil, HandSizeError(len(unique))
	}

	sort.Sort(unique)

	return &Hand{
		shared: sharedCard,
		cards:  unique,
	}, nil
}

// ParseHand returns a hand from a line of tokens separated by spaces or commas.
// The first token is the shared card.
func ParseHand(line string) (*Hand, error) {
	tokens := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	var shared string
	if len(tokens) > 0 {
		shared, tokens = tokens[0], tokens[1:]
	}

	return NewHand(shared, tokens...)
}

// Shared returns the shared face-up card
func (h *Hand) Shared() deck.Card {
	return h.shared
}

// Cards returns the four hand cards in sort order
func (h *Hand) Cards() deck.Cards {
	return h.cards.Clone()
}

// Combined returns the shared card followed by the four hand cards
func (h *Hand) Combined() deck.Cards {
	combined := make(deck.Cards, 0, handSize+1)
	combined = append(combined, h.shared)
	return append(combined, h.cards...)
}

func (h *Hand) String() string {
	return fmt.Sprintf("%s | %s", h.shared, h.cards)
}
