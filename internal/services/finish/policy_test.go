package finish

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/azulboard/internal/model"
)

func TestEmptyWallIsNormal(t *testing.T) {
	assert.Equal(t, model.Normal, New().GameFinished(model.Wall{}))
}

func TestFullColumnIsNormal(t *testing.T) {
	var wall model.Wall
	for row := 0; row < model.WallSize; row++ {
		wall[row][0] = model.RequiredColor(row, 0)
	}
	assert.Equal(t, model.Normal, New().GameFinished(wall))
}

func TestCompleteRowFinishesGame(t *testing.T) {
	var wall model.Wall
	for col := 0; col < model.WallSize; col++ {
		wall[3][col] = model.RequiredColor(3, col)
	}
	assert.Equal(t, model.GameFinished, New().GameFinished(wall))
}
