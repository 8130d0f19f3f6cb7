package handler

import (
	"net/http"

	"github.com/mcoot/azulboard/internal/api/response"
	"github.com/mcoot/azulboard/internal/services/session"
)

// ServiceName is reported by the health check
const ServiceName = "azulboard"

// HealthHandler reports whether the server can reach its board storage
type HealthHandler struct {
	sessions    session.ControllerInterface
	storageType string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(sessions session.ControllerInterface, storageType string) *HealthHandler {
	return &HealthHandler{sessions: sessions, storageType: storageType}
}

// Check handles GET /api/v1/health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	health := response.Health{
		Status:  "ok",
		Service: ServiceName,
		Storage: h.storageType,
	}

	records, err := h.sessions.ListBoards(r.Context())
	if err != nil {
		health.Status = "unavailable"
		response.JSON(w, http.StatusServiceUnavailable, health)
		return
	}
	health.Boards = len(records)

	response.JSON(w, http.StatusOK, health)
}
