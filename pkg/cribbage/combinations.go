package cribbage

import (
	"sort"

	"cribbage-server/pkg/deck"
)

// combinations calls fn with every k-card subset of cards, in lexicographic
// index order. The subset passed to fn is freshly allocated.
func combinations(cards deck.Cards, k int, fn func(subset deck.Cards)) {
	n := len(cards)
	if k <= 0 || k > n {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		subset := make(deck.Cards, k)
		for i, j := range idx {
			subset[i] = cards[j]
		}
		fn(subset)

		// find the right-most index that can still move forward
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}

		if i < 0 {
			return
		}

		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// isRun returns true if the cards have strictly consecutive ranks
func isRun(cards deck.Cards) bool {
	if len(cards) == 0 {
		return false
	}

	sorted := sortedCards(cards)
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Rank != sorted[i-1].Rank+1 {
			return false
		}
	}

	return true
}

func isFifteen(cards deck.Cards) bool {
	sum := 0
	for _, card := range cards {
		sum += card.PointValue()
	}

	return sum == 15
}

func sortedCards(cards deck.Cards) deck.Cards {
	sorted := cards.Clone()
	sort.Sort(sorted)
	return sorted
}
