package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRank is an error when the rank portion of a card token is not recognized
var ErrInvalidRank = errors.New("invalid rank")

// ErrInvalidSuit is an error when the suit portion of a card token is not recognized
var ErrInvalidSuit = errors.New("invalid suit")

// Suit represents a card suit
type Suit int

// suit constants, in sort order
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suitTokens = [...]string{"C", "D", "H", "S"}

func (s Suit) String() string {
	if s < Clubs || s > Spades {
		return "?"
	}

	return suitTokens[s]
}

// Symbol returns the pip for the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	case Hearts:
		return "♡"
	case Spades:
		return "♠"
	default:
		panic("unknown suit")
	}
}

// Rank represents a card rank. Aces are high.
type Rank int

// rank constants, in sort order
const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankTokens = [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// counting values used when adding cards to fifteen
var pointValues = [...]int{2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10, 1}

func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}

	return rankTokens[r]
}

// PointValue returns the counting value of the rank: 1 for an ace, 10 for a face card
func (r Rank) PointValue() int {
	return pointValues[r]
}

// Card is an individual playing card
// Cards encode as their token in JSON and YAML.
type Card struct {
	Rank Rank
	Suit Suit
}

// ParseCard returns a Card from the token.
// The token must be in the format of <rank><suit> where rank is one of 2-10, J, Q, K, A
// and suit is one of C, D, H, S. Case is ignored.
func ParseCard(token string) (Card, error) {
	token = strings.ToUpper(token)

	var rankToken, suitToken string
	if n := len(token); n > 0 {
		rankToken, suitToken = token[:n-1], token[n-1:]
	}

	rank, ok := lookup(rankTokens[:], rankToken)
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidRank, rankToken)
	}

	suit, ok := lookup(suitTokens[:], suitToken)
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidSuit, suitToken)
	}

	return Card{Rank: Rank(rank), Suit: Suit(suit)}, nil
}

// MustParseCard is like ParseCard but panics if the token cannot be parsed
func MustParseCard(token string) Card {
	card, err := ParseCard(token)
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", token, err))
	}

	return card
}

func lookup(tokens []string, token string) (int, bool) {
	for i, t := range tokens {
		if t == token {
			return i, true
		}
	}

	return 0, false
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Symbol returns the card with a suit pip (i.e., 10♠)
func (c Card) Symbol() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Compare orders cards by rank, then by suit.
// It returns -1 if c sorts before card, 1 if after, and 0 if they are equal.
func (c Card) Compare(card Card) int {
	switch {
	case c.Rank < card.Rank:
		return -1
	case c.Rank > card.Rank:
		return 1
	case c.Suit < card.Suit:
		return -1
	case c.Suit > card.Suit:
		return 1
	}

	return 0
}

// Less returns true if c sorts before card
func (c Card) Less(card Card) bool {
	return c.Compare(card) < 0
}

// PointValue returns the counting value of the card
func (c Card) PointValue() int {
	return c.Rank.PointValue()
}

// MarshalText encodes the card as its token (i.e., 10S)
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a card token
func (c *Card) UnmarshalText(text []byte) error {
	card, err := ParseCard(string(text))
	if err != nil {
		return err
	}

	*c = card
	return nil
}

// MarshalYAML encodes the card as its token
func (c Card) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}
