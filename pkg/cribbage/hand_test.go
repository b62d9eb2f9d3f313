package cribbage

import (
	"testing"

	"cribbage-server/pkg/deck"
	"github.com/stretchr/testify/assert"
)

func hand(t *testing.T, shared string, cards ...string) *Hand {
	t.Helper()

	h, err := NewHand(shared, cards...)
	if err != nil {
		t.Fatalf("could not create hand: %v", err)
	}

	return h
}

func TestNewHand(t *testing.T) {
	a := assert.New(t)

	h, err := NewHand("AS", "3D", "7H", "QS", "3C")
	a.NoError(err)
	a.Equal(deck.MustParseCard("AS"), h.Shared())
	a.True(h.Cards().Contains(deck.MustParseCard("QS")))
	a.Equal("3C,3D,7H,QS", h.Cards().String())
	a.Equal("AS,3C,3D,7H,QS", h.Combined().String())
	a.Equal("AS | 3C,3D,7H,QS", h.String())
}

func TestNewHand_caseInsensitive(t *testing.T) {
	h := hand(t, "as", "3d", "7h", "qs", "3c")
	assert.Equal(t, "AS | 3C,3D,7H,QS", h.String())
}

func TestHand_Cards_isCopy(t *testing.T) {
	h := hand(t, "AS", "3D", "7H", "QS", "3C")
	cards := h.Cards()
	cards[0] = deck.MustParseCard("KH")
	assert.Equal(t, "3C,3D,7H,QS", h.Cards().String())
}

func TestNewHand_errors(t *testing.T) {
	tests := []struct {
		name   string
		shared string
		cards  []string
		err    error
	}{
		{"bad shared rank", "11S", []string{"3D", "7H", "QS", "3C"}, deck.ErrInvalidRank},
		{"bad hand rank", "AS", []string{"3D", "11S", "QS", "3C"}, deck.ErrInvalidRank},
		{"bad shared suit", "5L", []string{"3D", "7H", "QS", "3C"}, deck.ErrInvalidSuit},
		{"bad hand suit", "AS", []string{"3D", "7H", "QS", "5L"}, deck.ErrInvalidSuit},
		{"shared duplicated", "AS", []string{"AS", "7H", "QS", "3C"}, ErrDuplicateCard},
		{"shared duplicated ignoring case", "AS", []string{"3D", "7H", "QS", "as"}, ErrDuplicateCard},
		{"shared duplicated twice", "AS", []string{"AS", "AS", "QS", "3C"}, ErrDuplicateCard},
		{"three cards", "AS", []string{"7H", "QS", "3C"}, ErrInvalidHandSize},
		{"repeated token", "AS", []string{"7H", "7H", "QS", "3C"}, ErrInvalidHandSize},
		{"repeated token ignoring case", "AS", []string{"7H", "7h", "QS", "3C"}, ErrInvalidHandSize},
		{"five cards", "AS", []string{"2H", "7H", "QS", "3C", "4C"}, ErrInvalidHandSize},
		{"no cards", "AS", nil, ErrInvalidHandSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHand(tt.shared, tt.cards...)
			assert.Nil(t, h)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestHandSizeError(t *testing.T) {
	_, err := NewHand("AS", "7H", "7H", "QS", "3C")

	var sizeErr HandSizeError
	assert.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, HandSizeError(3), sizeErr)
	assert.EqualError(t, err, "expected 4 distinct hand cards, got 3")
}

func TestDuplicateCardError(t *testing.T) {
	_, err := NewHand("AS", "AS", "7H", "QS", "3C")
	assert.EqualError(t, err, "shared card duplicated in hand: AS")
}

func TestParseHand(t *testing.T) {
	h, err := ParseHand("3s 4c,7h  JS\t5c\n")
	assert.NoError(t, err)
	assert.Equal(t, "3S | 4C,5C,7H,JS", h.String())

	_, err = ParseHand("")
	assert.ErrorIs(t, err, deck.ErrInvalidRank)

	_, err = ParseHand("3s 4c 7h")
	assert.ErrorIs(t, err, ErrInvalidHandSize)
}
