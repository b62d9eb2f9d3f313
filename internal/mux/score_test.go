package mux

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testScoreResponse struct {
	ID       string     `json:"id"`
	Shared   string     `json:"shared"`
	Hand     []string   `json:"hand"`
	Pairs    [][]string `json:"pairs"`
	Runs     [][]string `json:"runs"`
	Flush    []string   `json:"flush"`
	Fifteens [][]string `json:"fifteens"`
	Nobs     *string    `json:"nobs"`
	Score    int        `json:"score"`
}

func TestMux_postScore(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	a := assert.New(t)

	var resp testScoreResponse
	httpResp := assertPost(t, ts, "/score", scoreRequest{
		Shared: "5h",
		Hand:   []string{"5c", "5d", "jh", "5s"},
	}, &resp, 200)

	a.Equal(29, resp.Score)
	a.Equal("5H", resp.Shared)
	a.Equal([]string{"5C", "5D", "5S", "JH"}, resp.Hand)
	a.Equal(6, len(resp.Pairs))
	a.Equal(8, len(resp.Fifteens))
	a.Equal(0, len(resp.Runs))
	a.Equal(0, len(resp.Flush))
	if a.NotNil(resp.Nobs) {
		a.Equal("JH", *resp.Nobs)
	}
	a.NotEmpty(resp.ID)
	a.Equal(resp.ID, httpResp.Header.Get(requestIDHeader))
}

func TestMux_postScore_errors(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	tests := []struct {
		name    string
		payload interface{}
		status  int
		message string
	}{
		{"invalid rank", scoreRequest{Shared: "11S", Hand: []string{"4C", "7H", "JS", "5C"}}, 400, `invalid rank: "11"`},
		{"invalid suit", scoreRequest{Shared: "3S", Hand: []string{"4C", "7H", "JS", "5L"}}, 400, `invalid suit: "L"`},
		{"duplicate", scoreRequest{Shared: "3S", Hand: []string{"4C", "7H", "3S", "5C"}}, 400, "shared card duplicated in hand: 3S"},
		{"hand size", scoreRequest{Shared: "3S", Hand: []string{"4C", "7H", "7H", "5C"}}, 400, "expected 4 distinct hand cards, got 3"},
		{"bad json", `{"shared":`, 400, "unexpected EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errObj errorResponse
			assertPost(t, ts, "/score", tt.payload, &errObj, tt.status)
			assert.Equal(t, tt.message, errObj.Message)
			assert.Equal(t, tt.status, errObj.StatusCode)
		})
	}
}

func TestMux_postScore_contentType(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/score", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "text/plain")

	var errObj errorResponse
	assertDo(t, req, &errObj, 415)
	assert.Equal(t, "Unsupported Media Type", errObj.Message)
}

func TestMux_getScore(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var resp testScoreResponse
	assertGet(t, ts, "/score/10d/jd,jh,10c,qc", &resp, 200)
	assert.Equal(t, 17, resp.Score)
	assert.Equal(t, [][]string{{"10C", "10D"}, {"JD", "JH"}}, resp.Pairs)
	assert.Equal(t, [][]string{
		{"10C", "JD", "QC"},
		{"10C", "JH", "QC"},
		{"10D", "JD", "QC"},
		{"10D", "JH", "QC"},
	}, resp.Runs)

	resp = testScoreResponse{}
	assertGet(t, ts, "/score/3S/4C,7H,JH,QC", &resp, 200)
	assert.Equal(t, 0, resp.Score)
	assert.Nil(t, resp.Nobs)

	var errObj errorResponse
	assertGet(t, ts, "/score/3S/4C,7H,JH,1C", &errObj, 400)
	assert.Equal(t, `card 4: invalid rank: "1"`, errObj.Message)

	assertGet(t, ts, "/score/3S/4C,7H,JH", &errObj, 400)
	assert.Equal(t, "expected 4 distinct hand cards, got 3", errObj.Message)
}
