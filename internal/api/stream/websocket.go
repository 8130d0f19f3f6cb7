package stream

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a frame to the peer
	writeWait = 10 * time.Second

	// A peer that misses pongs for this long is dropped; must exceed pingPeriod
	pongWait = 2 * pingPeriod
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Read-only board feed; any origin may watch
	CheckOrigin: func(*http.Request) bool { return true },
}

// Frame is the JSON text frame sent to websocket watchers
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func newFrame(m Message) Frame {
	data := json.RawMessage(m.Data)
	if !json.Valid(data) {
		data, _ = json.Marshal(m.Data)
	}
	return Frame{Event: m.Event, Data: data}
}

// ServeWS upgrades the request and pushes hub events as JSON frames until either side
// closes. Frames sent by the peer are ignored.
func ServeWS(w http.ResponseWriter, r *http.Request, hub *Hub, initial *Message) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error
		return
	}
	defer func() { _ = conn.Close() }()

	client := NewClient()
	if !hub.Register(client) {
		closeWS(conn, websocket.CloseGoingAway, "board stream closed")
		return
	}
	defer hub.Unregister(client)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	peerGone := make(chan struct{})
	go func() {
		defer close(peerGone)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	write := func(m Message) error {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(newFrame(m))
	}

	if err := write(Message{Event: EventConnected, Data: `{"status":"connected"}`}); err != nil {
		return
	}
	if initial != nil {
		if err := write(*initial); err != nil {
			return
		}
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-client.send:
			if !ok {
				closeWS(conn, websocket.CloseNormalClosure, "stream closed")
				return
			}
			if err := write(message); err != nil {
				return
			}

		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}

		case <-peerGone:
			return
		}
	}
}

func closeWS(conn *websocket.Conn, code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}
