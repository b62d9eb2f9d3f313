package mux

import (
	"net/http"

	"cribbage-server/pkg/cribbage"
	"cribbage-server/pkg/deck"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type scoreRequest struct {
	Shared string   `json:"shared"`
	Hand   []string `json:"hand"`
}

type scoreResponse struct {
	ID     string     `json:"id,omitempty"`
	Shared deck.Card  `json:"shared"`
	Hand   deck.Cards `json:"hand"`
	cribbage.Scores
}

func newScoreResponse(id string, hand *cribbage.Hand) scoreResponse {
	return scoreResponse{
		ID:     id,
		Shared: hand.Shared(),
		Hand:   hand.Cards(),
		Scores: hand.Scores(),
	}
}

func (s scoreRequest) hand() (*cribbage.Hand, error) {
	return cribbage.NewHand(s.Shared, s.Hand...)
}

func (m *Mux) postScore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload scoreRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		hand, err := payload.hand()
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		m.writeScore(w, r, hand)
	}
}

// getScore scores a hand from the path, i.e., /score/5h/5c,5d,jh,5s
func (m *Mux) getScore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := gmux.Vars(r)

		cards, err := deck.ParseCards(vars["hand"])
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		tokens := make([]string, len(cards))
		for i, card := range cards {
			tokens[i] = card.String()
		}

		hand, err := cribbage.NewHand(vars["shared"], tokens...)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		m.writeScore(w, r, hand)
	}
}

func (m *Mux) writeScore(w http.ResponseWriter, r *http.Request, hand *cribbage.Hand) {
	resp := newScoreResponse(requestID(r), hand)
	logrus.WithFields(logrus.Fields{
		"requestID": resp.ID,
		"hand":      hand.String(),
		"score":     resp.Score,
	}).Debug("scored hand")

	writeJSON(w, http.StatusOK, resp)
}
