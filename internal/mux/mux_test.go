package mux

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_requestIDMiddleware(t *testing.T) {
	m := NewMux("")

	var seen string
	m.Router.Path("/test").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestID(r)
		writeJSON(w, 200, "OK")
	})

	ts := httptest.NewServer(m)
	defer ts.Close()

	var str string
	resp := assertGet(t, ts, "/test", &str, 200)
	assert.Equal(t, "OK", str)
	_, err := uuid.Parse(resp.Header.Get(requestIDHeader))
	assert.NoError(t, err)
	assert.Equal(t, seen, resp.Header.Get(requestIDHeader))

	// a valid caller ID is kept
	id := uuid.New().String()
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/test", nil)
	req.Header.Set(requestIDHeader, id)
	resp = assertDo(t, req, &str, 200)
	assert.Equal(t, id, resp.Header.Get(requestIDHeader))
	assert.Equal(t, id, seen)

	// anything else is replaced
	req, _ = http.NewRequest(http.MethodGet, ts.URL+"/test", nil)
	req.Header.Set(requestIDHeader, "not-a-uuid")
	resp = assertDo(t, req, &str, 200)
	assert.NotEqual(t, "not-a-uuid", resp.Header.Get(requestIDHeader))
}

func TestMux_notFound(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	assertGet(t, ts, "/score", nil, 405)
	assertGet(t, ts, "/nope", nil, 404)
}
