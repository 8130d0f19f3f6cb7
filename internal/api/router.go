package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/azulboard/internal/api/handler"
	"github.com/mcoot/azulboard/internal/api/middleware"
	"github.com/mcoot/azulboard/internal/api/stream"
	"github.com/mcoot/azulboard/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController session.ControllerInterface
	// HubManager enables the board event streams when set
	HubManager *stream.HubManager
	// StorageType is reported by the health check
	StorageType string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	boardHandler := handler.NewBoardHandler(cfg.SessionController)
	healthHandler := handler.NewHealthHandler(cfg.SessionController, cfg.StorageType)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	boards := api.PathPrefix("/boards").Subrouter()
	boards.HandleFunc("", boardHandler.Create).Methods(http.MethodPost)
	boards.HandleFunc("", boardHandler.List).Methods(http.MethodGet)
	boards.HandleFunc("/{id}", boardHandler.Get).Methods(http.MethodGet)
	boards.HandleFunc("/{id}", boardHandler.Delete).Methods(http.MethodDelete)
	boards.HandleFunc("/{id}/lines/{line:-?[0-9]+}", boardHandler.Put).Methods(http.MethodPost)
	boards.HandleFunc("/{id}/finish-round", boardHandler.FinishRound).Methods(http.MethodPost)
	boards.HandleFunc("/{id}/end-game", boardHandler.EndGame).Methods(http.MethodPost)
	if cfg.HubManager != nil {
		eventsHandler := handler.NewEventsHandler(cfg.SessionController, cfg.HubManager)
		boards.HandleFunc("/{id}/events", eventsHandler.SSE).Methods(http.MethodGet)
		boards.HandleFunc("/{id}/ws", eventsHandler.WebSocket).Methods(http.MethodGet)
	}

	api.HandleFunc("/pattern", boardHandler.Pattern).Methods(http.MethodGet)
	api.HandleFunc("/health", healthHandler.Check).Methods(http.MethodGet)

	return r
}
