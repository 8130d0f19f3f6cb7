package board

import "github.com/mcoot/azulboard/internal/model"

// UsedTilesGiver receives tiles leaving the board (floor clear, discarded pattern tiles)
type UsedTilesGiver interface {
	Give(tiles ...model.Tile)
}

// GameFinished decides whether a wall has reached the end-of-game condition
type GameFinished interface {
	GameFinished(wall model.Wall) model.FinishRoundResult
}

// FinalPointsCalculation computes end-of-game bonus points for a wall
type FinalPointsCalculation interface {
	GetPoints(wall model.Wall) model.Points
}
