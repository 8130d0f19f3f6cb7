package model

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every rule violation raised while taking tiles
var ErrValidation = errors.New("validation error")

// Common errors used across the application
var (
	// Tile intake errors
	ErrInvalidLine   = fmt.Errorf("%w: invalid line index", ErrValidation)
	ErrNoColoredTile = fmt.Errorf("%w: batch holds no colored tile", ErrValidation)
	ErrMixedTiles    = fmt.Errorf("%w: batch mixes colors", ErrValidation)
	ErrWrongColor    = fmt.Errorf("%w: line already holds another color", ErrValidation)
	ErrLineFull      = fmt.Errorf("%w: line is already full", ErrValidation)
	ErrColorOnWall   = fmt.Errorf("%w: color already placed in this wall row", ErrValidation)
	ErrInvalidTile   = fmt.Errorf("%w: invalid tile", ErrValidation)

	// Wall errors
	ErrCellOccupied = errors.New("wall cell is already occupied")

	// Board session errors
	ErrBoardNotFound = errors.New("board not found")
	ErrGameFinished  = errors.New("game has already finished")
	ErrInvalidState  = errors.New("invalid board state")
)
