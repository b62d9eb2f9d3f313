package cribbage

import "cribbage-server/pkg/deck"

// Scores is the itemized breakdown of a hand
type Scores struct {
	Pairs    []Pair       `json:"pairs" yaml:"pairs"`
	Runs     []deck.Cards `json:"runs" yaml:"runs"`
	Flush    deck.Cards   `json:"flush" yaml:"flush"`
	Fifteens []deck.Cards `json:"fifteens" yaml:"fifteens"`
	Nobs     *deck.Card   `json:"nobs" yaml:"nobs"`
	Score    int          `json:"score" yaml:"score"`
}

// Scores computes every scoring combination in the hand along with the total
func (h *Hand) Scores() Scores {
	s := Scores{
		Pairs:    h.Pairs(),
		Runs:     h.Runs(),
		Flush:    h.Flush(),
		Fifteens: h.Fifteens(),
	}

	if nobs, ok := h.Nobs(); ok {
		s.Nobs = &nobs
	}

	s.Score = s.points()
	return s
}

func (s Scores) points() int {
	points := 2 * len(s.Pairs)
	for _, run := range s.Runs {
		points += len(run)
	}

	points += len(s.Flush)
	points += 2 * len(s.Fifteens)

	if s.Nobs != nil {
		points++
	}

	return points
}
