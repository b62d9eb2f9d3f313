package cribbage

import (
	"sort"

	"cribbage-server/pkg/deck"
)

// Pair is two cards of the same rank, lower card first
type Pair [2]deck.Card

// Pairs returns every two-card combination of the same rank, including the shared card
func (h *Hand) Pairs() []Pair {
	pairs := make([]Pair, 0)
	combinations(h.Combined(), 2, func(subset deck.Cards) {
		if subset[0].Rank != subset[1].Rank {
			return
		}

		if subset[1].Less(subset[0]) {
			subset[0], subset[1] = subset[1], subset[0]
		}

		pairs = append(pairs, Pair{subset[0], subset[1]})
	})

	sort.Slice(pairs, func(i, j int) bool {
		if cmp := pairs[i][0].Compare(pairs[j][0]); cmp != 0 {
			return cmp < 0
		}

		return pairs[i][1].Less(pairs[j][1])
	})

	return pairs
}

// Runs returns the runs in the hand.
// Only the longest run length is reported: a five-card run, every four-card
// run, or every three-card run, in that order of preference.
func (h *Hand) Runs() []deck.Cards {
	combined := h.Combined()
	for size := len(combined); size >= 3; size-- {
		runs := make([]deck.Cards, 0)
		combinations(combined, size, func(subset deck.Cards) {
			if isRun(subset) {
				runs = append(runs, sortedCards(subset))
			}
		})

		if len(runs) > 0 {
			sortCardSets(runs)
			return runs
		}
	}

	return []deck.Cards{}
}

// Flush returns the flush cards, if any.
// The four hand cards must share a suit; the shared card only extends a four-card flush to five.
func (h *Hand) Flush() deck.Cards {
	suit := h.cards[0].Suit
	for _, card := range h.cards[1:] {
		if card.Suit != suit {
			return deck.Cards{}
		}
	}

	flush := h.cards.Clone()
	if h.shared.Suit == suit {
		flush = append(flush, h.shared)
	}

	return flush
}

// Nobs returns the jack in hand matching the shared card's suit
func (h *Hand) Nobs() (deck.Card, bool) {
	for _, card := range h.cards {
		if card.Rank == deck.Jack && card.Suit == h.shared.Suit {
			return card, true
		}
	}

	return deck.Card{}, false
}

// Fifteens returns every combination of two to four cards whose point values add to 15.
// All five cards are never counted together.
func (h *Hand) Fifteens() []deck.Cards {
	combined := h.Combined()
	fifteens := make([]deck.Cards, 0)
	for size := 2; size < len(combined); size++ {
		combinations(combined, size, func(subset deck.Cards) {
			if isFifteen(subset) {
				fifteens = append(fifteens, sortedCards(subset))
			}
		})
	}

	return fifteens
}

// Score returns the total points in the hand
func (h *Hand) Score() int {
	return h.Scores().Score
}

// sortCardSets orders same-length card sets lexicographically
func sortCardSets(sets []deck.Cards) {
	sort.Slice(sets, func(i, j int) bool {
		for k := range sets[i] {
			if cmp := sets[i][k].Compare(sets[j][k]); cmp != 0 {
				return cmp < 0
			}
		}

		return false
	})
}
