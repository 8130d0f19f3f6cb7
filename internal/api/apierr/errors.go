package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/azulboard/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidLine    = "INVALID_LINE"
	CodeInvalidTile    = "INVALID_TILE"
	CodeNoColoredTile  = "NO_COLORED_TILE"
	CodeMixedTiles     = "MIXED_TILES"
	CodeWrongColor     = "WRONG_COLOR"
	CodeLineFull       = "LINE_FULL"
	CodeColorOnWall    = "COLOR_ON_WALL"
	CodeBoardNotFound  = "BOARD_NOT_FOUND"
	CodeGameFinished   = "GAME_FINISHED"
	CodeInternalError  = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrBoardNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeBoardNotFound, "Board not found"}}
	case errors.Is(err, model.ErrGameFinished):
		return &httpError{http.StatusConflict, APIError{CodeGameFinished, "Game has already finished"}}

	// Tile intake rule violations
	case errors.Is(err, model.ErrInvalidLine):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLine, "Line must be 0 (floor) or 1-5"}}
	case errors.Is(err, model.ErrInvalidTile):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidTile, "Tiles must be letters from BYRLGS"}}
	case errors.Is(err, model.ErrNoColoredTile):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeNoColoredTile, "At least one colored tile is required"}}
	case errors.Is(err, model.ErrMixedTiles):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeMixedTiles, "Tiles must share one color plus at most one starting player marker"}}
	case errors.Is(err, model.ErrWrongColor):
		return &httpError{http.StatusConflict, APIError{CodeWrongColor, "Line already holds another color"}}
	case errors.Is(err, model.ErrLineFull):
		return &httpError{http.StatusConflict, APIError{CodeLineFull, "Line is already full"}}
	case errors.Is(err, model.ErrColorOnWall):
		return &httpError{http.StatusConflict, APIError{CodeColorOnWall, "Color is already on the wall in this row"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
