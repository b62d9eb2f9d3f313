package deck

// Full returns all 52 cards in sort order
func Full() Cards {
	cards := make(Cards, 0, 52)
	for rank := Two; rank <= Ace; rank++ {
		for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return cards
}
