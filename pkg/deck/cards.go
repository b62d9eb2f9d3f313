package deck

import (
	"fmt"
	"strings"
)

// Cards represents a collection of cards
type Cards []Card

func (c Cards) Len() int {
	return len(c)
}

func (c Cards) Less(i, j int) bool {
	return c[i].Less(c[j])
}

func (c Cards) Swap(i, j int) {
	c[i], c[j] = c[j], c[i]
}

// Contains returns true if the collection contains the specified card
func (c Cards) Contains(card Card) bool {
	for _, cc := range c {
		if cc.Equal(card) {
			return true
		}
	}

	return false
}

// Unique returns the distinct cards in the order they first appear
func (c Cards) Unique() Cards {
	unique := make(Cards, 0, len(c))
	for _, card := range c {
		if !unique.Contains(card) {
			unique = append(unique, card)
		}
	}

	return unique
}

// Clone returns a clone of the cards
func (c Cards) Clone() Cards {
	c2 := make(Cards, len(c))
	copy(c2, c)

	return c2
}

// String returns the cards in the format of 2C,3H,4S,...
func (c Cards) String() string {
	s := make([]string, len(c))
	for i, card := range c {
		s[i] = card.String()
	}

	return strings.Join(s, ",")
}

// ParseCards will return a slice of cards from a comma-separated list of tokens
func ParseCards(s string) (Cards, error) {
	if s == "" {
		return Cards{}, nil
	}

	tokens := strings.Split(s, ",")
	cards := make(Cards, len(tokens))
	for i, token := range tokens {
		card, err := ParseCard(strings.TrimSpace(token))
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}

		cards[i] = card
	}

	return cards, nil
}
