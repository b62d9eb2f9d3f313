package mux

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// getScoreWS streams scores: every request read from the socket is answered with
// a scoreResponse or an errorResponse
func (m *Mux) getScoreWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		// the upgrade response does not include headers already set on w
		conn, err := upgrader.Upgrade(w, r, http.Header{requestIDHeader: []string{requestID(r)}})
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		send := make(chan interface{}, 16)
		writerDone := make(chan bool)
		go func() {
			m.webSocketWriteLoop(conn, send)
			close(writerDone)
		}()

		m.webSocketReadLoop(conn, requestID(r), send, writerDone)
		close(send)
		<-writerDone
		_ = conn.Close()
	}
}

func (m *Mux) webSocketWriteLoop(conn *websocket.Conn, send <-chan interface{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = conn.Close()
				return
			}
		case msg, ok := <-send:
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				logrus.WithError(err).Error("could not write message")
				// unblocks the read loop
				_ = conn.Close()
				return
			}
		}
	}
}

func (m *Mux) webSocketReadLoop(conn *websocket.Conn, id string, send chan<- interface{}, writerDone <-chan bool) {
	for {
		var msg scoreRequest
		var resp interface{}
		if err := conn.ReadJSON(&msg); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				// the connection is still usable
				resp = newErrorResponse(http.StatusBadRequest, err)
			} else {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					logrus.WithError(err).Error("could not read message")
				}

				return
			}
		} else if hand, err := msg.hand(); err != nil {
			resp = newErrorResponse(http.StatusBadRequest, err)
		} else {
			resp = newScoreResponse(id, hand)
		}

		select {
		case send <- resp:
		case <-writerDone:
			return
		}
	}
}
