package handler

import (
	"net/http"

	"github.com/mcoot/azulboard/internal/api/stream"
	"github.com/mcoot/azulboard/internal/services/session"
)

// EventsHandler streams board changes to watchers
type EventsHandler struct {
	sessions session.ControllerInterface
	hubs     *stream.HubManager
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(sessions session.ControllerInterface, hubs *stream.HubManager) *EventsHandler {
	return &EventsHandler{sessions: sessions, hubs: hubs}
}

// SSE handles GET /api/v1/boards/{id}/events
func (h *EventsHandler) SSE(w http.ResponseWriter, r *http.Request) {
	hub, initial, ok := h.watch(w, r)
	if !ok {
		return
	}
	stream.ServeSSE(w, r, hub, initial)
}

// WebSocket handles GET /api/v1/boards/{id}/ws
func (h *EventsHandler) WebSocket(w http.ResponseWriter, r *http.Request) {
	hub, initial, ok := h.watch(w, r)
	if !ok {
		return
	}
	stream.ServeWS(w, r, hub, initial)
}

// watch resolves the board before any upgrade so unknown IDs get a JSON 404
func (h *EventsHandler) watch(w http.ResponseWriter, r *http.Request) (*stream.Hub, *stream.Message, bool) {
	id := boardID(r)
	record, err := h.sessions.GetBoard(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return nil, nil, false
	}
	return h.hubs.GetOrCreateHub(id), stream.InitialEvent(record), true
}
