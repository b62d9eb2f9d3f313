package mux

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type healthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	LogLevel string `json:"logLevel"`
	Uptime   int64  `json:"uptime"`
}

func (m *Mux) getHealth() http.HandlerFunc {
	started := time.Now()

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:   "OK",
			Version:  m.version,
			LogLevel: logrus.GetLevel().String(),
			Uptime:   int64(time.Since(started) / time.Second),
		})
	}
}
