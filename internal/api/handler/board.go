package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/azulboard/internal/api/request"
	"github.com/mcoot/azulboard/internal/api/response"
	"github.com/mcoot/azulboard/internal/model"
	"github.com/mcoot/azulboard/internal/services/session"
)

// BoardHandler handles board session endpoints
type BoardHandler struct {
	sessions session.ControllerInterface
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(sessions session.ControllerInterface) *BoardHandler {
	return &BoardHandler{sessions: sessions}
}

func boardID(r *http.Request) model.BoardID {
	return model.BoardID(mux.Vars(r)["id"])
}

// Create handles POST /api/v1/boards
func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	record, err := h.sessions.CreateBoard(r.Context(), req.Player)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.BoardFromModel(record))
}

// List handles GET /api/v1/boards
func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.sessions.ListBoards(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.BoardList{Boards: make([]response.Board, len(records))}
	for i, record := range records {
		resp.Boards[i] = response.BoardFromModel(record)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/boards/{id}
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.sessions.GetBoard(r.Context(), boardID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BoardFromModel(record))
}

// Delete handles DELETE /api/v1/boards/{id}
func (h *BoardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.DeleteBoard(r.Context(), boardID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Put handles POST /api/v1/boards/{id}/lines/{line}
func (h *BoardHandler) Put(w http.ResponseWriter, r *http.Request) {
	line, err := strconv.Atoi(mux.Vars(r)["line"])
	if err != nil {
		WriteError(w, model.ErrInvalidLine)
		return
	}

	var req request.PutTilesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	tiles, err := model.ParseTiles(req.Tiles)
	if err != nil {
		WriteError(w, err)
		return
	}

	record, err := h.sessions.Put(r.Context(), boardID(r), line, tiles)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BoardFromModel(record))
}

// FinishRound handles POST /api/v1/boards/{id}/finish-round
func (h *BoardHandler) FinishRound(w http.ResponseWriter, r *http.Request) {
	record, score, err := h.sessions.FinishRound(r.Context(), boardID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FinishRoundResponse{
		Board: response.BoardFromModel(record),
		Score: response.RoundScoreFromModel(score),
	})
}

// EndGame handles POST /api/v1/boards/{id}/end-game
func (h *BoardHandler) EndGame(w http.ResponseWriter, r *http.Request) {
	record, err := h.sessions.EndGame(r.Context(), boardID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BoardFromModel(record))
}

// Pattern handles GET /api/v1/pattern
func (h *BoardHandler) Pattern(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.PatternFromModel())
}
