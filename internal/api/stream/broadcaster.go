package stream

import (
	"encoding/json"
	"log/slog"

	"github.com/mcoot/azulboard/internal/api/response"
	"github.com/mcoot/azulboard/internal/model"
)

// Event names sent on a board stream
const (
	EventConnected     = "connected"
	EventBoard         = "board"
	EventBoardUpdated  = "board-updated"
	EventRoundFinished = "round-finished"
	EventGameFinished  = "game-finished"
	EventBoardDeleted  = "board-deleted"
)

// Broadcaster turns board changes into events for anyone watching the board
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "stream-broadcaster")),
	}
}

// BoardUpdated publishes the board after a put or end-game check
func (b *Broadcaster) BoardUpdated(record *model.BoardRecord) {
	hub := b.hubManager.GetHub(record.ID)
	if hub == nil {
		return
	}
	b.send(hub, EventBoardUpdated, response.BoardFromModel(record))
}

// RoundFinished publishes the round score, plus a game-finished event on the last round
func (b *Broadcaster) RoundFinished(record *model.BoardRecord, score *model.RoundScore) {
	hub := b.hubManager.GetHub(record.ID)
	if hub == nil {
		return
	}
	b.send(hub, EventRoundFinished, response.FinishRoundResponse{
		Board: response.BoardFromModel(record),
		Score: response.RoundScoreFromModel(score),
	})
	if score.Result == model.GameFinished {
		b.send(hub, EventGameFinished, map[string]int{"points": int(record.State.Points)})
	}
}

// BoardDeleted tells watchers the board is gone and closes its hub
func (b *Broadcaster) BoardDeleted(id model.BoardID) {
	hub := b.hubManager.GetHub(id)
	if hub == nil {
		return
	}
	b.send(hub, EventBoardDeleted, map[string]string{"id": string(id)})
	b.hubManager.RemoveHub(id)
}

// InitialEvent renders the current board as the first message of a new stream
func InitialEvent(record *model.BoardRecord) *Message {
	data, err := json.Marshal(response.BoardFromModel(record))
	if err != nil {
		return nil
	}
	return &Message{Event: EventBoard, Data: string(data)}
}

func (b *Broadcaster) send(hub *Hub, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		b.logger.Error("stream failed to encode event",
			slog.String("event", event),
			slog.Any("error", err))
		return
	}
	hub.BroadcastEvent(event, string(data))
}
