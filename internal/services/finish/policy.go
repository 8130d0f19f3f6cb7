// Package finish decides when a game is over.
package finish

import (
	"github.com/mcoot/azulboard/internal/board"
	"github.com/mcoot/azulboard/internal/model"
)

// RowCompletedPolicy ends the game once any wall row is complete
type RowCompletedPolicy struct{}

// New creates the standard end-of-game policy
func New() RowCompletedPolicy {
	return RowCompletedPolicy{}
}

// GameFinished reports GameFinished when the wall has at least one full row
func (RowCompletedPolicy) GameFinished(wall model.Wall) model.FinishRoundResult {
	for row := 0; row < model.WallSize; row++ {
		if wall.RowComplete(row) {
			return model.GameFinished
		}
	}
	return model.Normal
}

var _ board.GameFinished = RowCompletedPolicy{}
