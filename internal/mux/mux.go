package mux

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxRequestIDKey ctxKey = iota
)

const requestIDHeader = "X-Request-ID"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
	}

	this.Router.Use(this.requestIDMiddleware)

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/score").Handler(this.postScore())
	r.Methods(http.MethodGet).Path("/score/ws").Handler(this.getScoreWS())
	r.Methods(http.MethodGet).Path("/score/{shared}/{hand}").Handler(this.getScore())

	return this
}

// requestIDMiddleware tags every request with an ID, reusing the caller's if provided
func (m *Mux) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, id)
		newCtx := context.WithValue(r.Context(), ctxRequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(ctxRequestIDKey).(string)
	return id
}
