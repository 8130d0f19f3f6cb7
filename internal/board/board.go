// Package board implements a single player's scoring board: pattern lines, wall and floor,
// the round transition and end-of-game scoring.
//
// A Board is owned by one game loop and is not safe for concurrent use.
package board

import (
	"fmt"

	"github.com/mcoot/azulboard/internal/model"
)

// Board is a player's board for one game
type Board struct {
	patternLines [model.PatternLineCount]*PatternLine
	wallLines    [model.WallSize]*WallLine
	floor        *FloorLine

	points             model.Points
	endGame            bool
	finalPointsApplied bool

	gameFinished GameFinished
	finalPoints  FinalPointsCalculation
	usedTiles    UsedTilesGiver
}

// New creates an empty board wired to its collaborators
func New(gameFinished GameFinished, finalPoints FinalPointsCalculation, usedTiles UsedTilesGiver) *Board {
	b := &Board{
		wallLines:    newWallLines(),
		floor:        NewFloorLine(usedTiles),
		gameFinished: gameFinished,
		finalPoints:  finalPoints,
		usedTiles:    usedTiles,
	}
	for i := range b.patternLines {
		b.patternLines[i] = NewPatternLine(i+1, b.wallLines[i], b.floor)
	}
	return b
}

// Put places a drafted batch on a pattern line (1..5) or on the floor (model.FloorLineIndex)
func (b *Board) Put(line int, tiles ...model.Tile) error {
	if line == model.FloorLineIndex {
		batch, err := splitBatch(tiles)
		if err != nil {
			return err
		}
		if batch.marker {
			b.floor.Put(model.StartingPlayer)
		}
		b.floor.Put(batch.colored...)
		return nil
	}
	if line < 1 || line > model.PatternLineCount {
		return fmt.Errorf("%w: %d", model.ErrInvalidLine, line)
	}
	return b.patternLines[line-1].Put(tiles...)
}

// FinishRound moves every full pattern line to the wall, scores the placements,
// applies the floor penalty and checks for the end of the game. Final bonus points are
// added the first time the game is found to be finished.
func (b *Board) FinishRound() (*model.RoundScore, error) {
	score := &model.RoundScore{}

	for _, line := range b.patternLines {
		placement, err := line.finish(b.usedTiles)
		if err != nil {
			return nil, err
		}
		if placement == nil {
			continue
		}
		b.points += placement.Points
		score.Placements = append(score.Placements, *placement)
	}

	score.FloorCount = b.floor.Len()
	score.Penalty = b.floor.Penalty()
	b.points += score.Penalty
	b.floor.clear()

	score.Result = model.Normal
	if b.EndGame() {
		score.Result = model.GameFinished
		if !b.finalPointsApplied {
			score.FinalPoints = b.finalPoints.GetPoints(b.Wall())
			b.points += score.FinalPoints
			b.finalPointsApplied = true
		}
	}

	return score, nil
}

// EndGame asks the game-finished collaborator about the current wall and caches the answer
func (b *Board) EndGame() bool {
	b.endGame = b.gameFinished.GameFinished(b.Wall()) == model.GameFinished
	return b.endGame
}

// IsEndGame returns the verdict cached by the last EndGame call
func (b *Board) IsEndGame() bool {
	return b.endGame
}

// Points returns the running score
func (b *Board) Points() model.Points {
	return b.points
}

// PatternLine returns the pattern line for wall row i (0-based)
func (b *Board) PatternLine(i int) *PatternLine {
	return b.patternLines[i]
}

// WallLine returns wall row i (0-based)
func (b *Board) WallLine(i int) *WallLine {
	return b.wallLines[i]
}

// Floor returns the floor line
func (b *Board) Floor() *FloorLine {
	return b.floor
}

// Wall returns a copy of the wall occupancy
func (b *Board) Wall() model.Wall {
	var w model.Wall
	for row, line := range b.wallLines {
		w[row] = line.tiles
	}
	return w
}

// Snapshot captures the board state
func (b *Board) Snapshot() model.BoardSnapshot {
	snap := model.BoardSnapshot{
		PatternLines:       make([]string, len(b.patternLines)),
		Wall:               make([]string, len(b.wallLines)),
		Floor:              b.floor.State(),
		Points:             b.points,
		EndGame:            b.endGame,
		FinalPointsApplied: b.finalPointsApplied,
	}
	for i, line := range b.patternLines {
		snap.PatternLines[i] = line.State()
	}
	for i, line := range b.wallLines {
		snap.Wall[i] = line.State()
	}
	return snap
}

// Restore rebuilds a board from a snapshot, checking it against the board rules
func Restore(snap model.BoardSnapshot, gameFinished GameFinished, finalPoints FinalPointsCalculation, usedTiles UsedTilesGiver) (*Board, error) {
	b := New(gameFinished, finalPoints, usedTiles)

	if len(snap.Wall) != model.WallSize {
		return nil, fmt.Errorf("%w: wall has %d rows", model.ErrInvalidState, len(snap.Wall))
	}
	for row, s := range snap.Wall {
		if len(s) != model.WallSize {
			return nil, fmt.Errorf("%w: wall row %d has %d cells", model.ErrInvalidState, row, len(s))
		}
		for col := 0; col < model.WallSize; col++ {
			t, err := model.ParseTile(s[col])
			if err != nil {
				return nil, fmt.Errorf("%w: %w", model.ErrInvalidState, err)
			}
			if t != model.NoTile && t != model.RequiredColor(row, col) {
				return nil, fmt.Errorf("%w: %s at row %d column %d", model.ErrInvalidState, t, row, col)
			}
			b.wallLines[row].tiles[col] = t
		}
	}

	if len(snap.PatternLines) != model.PatternLineCount {
		return nil, fmt.Errorf("%w: %d pattern lines", model.ErrInvalidState, len(snap.PatternLines))
	}
	for i, s := range snap.PatternLines {
		if s == "" {
			continue
		}
		tiles, err := model.ParseTiles(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrInvalidState, err)
		}
		line := b.patternLines[i]
		if len(tiles) > line.capacity {
			return nil, fmt.Errorf("%w: pattern line %d over capacity", model.ErrInvalidState, i+1)
		}
		for _, t := range tiles {
			if !t.IsColor() || t != tiles[0] {
				return nil, fmt.Errorf("%w: pattern line %d mixes tiles", model.ErrInvalidState, i+1)
			}
		}
		if line.wall.HasColor(tiles[0]) {
			return nil, fmt.Errorf("%w: pattern line %d color already on wall", model.ErrInvalidState, i+1)
		}
		line.tiles = append(line.tiles, tiles...)
	}

	floor, err := model.ParseTiles(snap.Floor)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidState, err)
	}
	if len(floor) > b.floor.Capacity() {
		return nil, fmt.Errorf("%w: floor over capacity", model.ErrInvalidState)
	}
	markers := 0
	for _, t := range floor {
		if t == model.StartingPlayer {
			markers++
		}
	}
	if markers > 1 {
		return nil, fmt.Errorf("%w: %d starting player markers on floor", model.ErrInvalidState, markers)
	}
	b.floor.tiles = append(b.floor.tiles, floor...)

	b.points = snap.Points
	b.endGame = snap.EndGame
	b.finalPointsApplied = snap.FinalPointsApplied
	return b, nil
}
