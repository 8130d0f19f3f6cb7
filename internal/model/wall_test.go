package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredColorShiftsEachRow(t *testing.T) {
	assert.Equal(t, []string{
		"BYRLG",
		"GBYRL",
		"LGBYR",
		"RLGBY",
		"YRLGB",
	}, Pattern())
}

func TestColumnForInvertsRequiredColor(t *testing.T) {
	for row := 0; row < WallSize; row++ {
		for _, color := range Palette {
			col := ColumnFor(row, color)
			assert.Equal(t, color, RequiredColor(row, col), "row=%d color=%s", row, color)
		}
	}
	assert.Equal(t, 2, ColumnFor(0, Red))
}

func TestEachColorOncePerRowAndColumn(t *testing.T) {
	for i := 0; i < WallSize; i++ {
		rowSeen := map[Tile]bool{}
		colSeen := map[Tile]bool{}
		for j := 0; j < WallSize; j++ {
			rowSeen[RequiredColor(i, j)] = true
			colSeen[RequiredColor(j, i)] = true
		}
		assert.Len(t, rowSeen, ColorCount)
		assert.Len(t, colSeen, ColorCount)
	}
}

func TestWallCompletion(t *testing.T) {
	var w Wall
	for col := 0; col < WallSize; col++ {
		w[0][col] = RequiredColor(0, col)
	}
	for row := 0; row < WallSize; row++ {
		w[row][ColumnFor(row, Green)] = Green
	}

	assert.True(t, w.RowComplete(0))
	assert.False(t, w.RowComplete(1))
	assert.False(t, w.ColumnComplete(0))
	assert.True(t, w.ColorComplete(Green))
	assert.False(t, w.ColorComplete(Blue))
	assert.False(t, w.ColorComplete(StartingPlayer))
	assert.Equal(t, "BYRLG", w.Rows()[0])
	assert.Equal(t, "G....", w.Rows()[1])
}

func TestParseTiles(t *testing.T) {
	tiles, err := ParseTiles("sBrylG")
	require.NoError(t, err)
	assert.Equal(t, []Tile{StartingPlayer, Blue, Red, Yellow, Black, Green}, tiles)
	assert.Equal(t, "SBRYLG", FormatTiles(tiles))

	_, err = ParseTiles("BX")
	assert.ErrorIs(t, err, ErrInvalidTile)

	_, err = ParseTiles("B.")
	assert.ErrorIs(t, err, ErrInvalidTile)
}

func TestTileColorIndex(t *testing.T) {
	for i, c := range Palette {
		assert.Equal(t, i, c.ColorIndex())
	}
	assert.Equal(t, -1, StartingPlayer.ColorIndex())
	assert.Equal(t, -1, NoTile.ColorIndex())
	assert.Equal(t, "starting_player", StartingPlayer.String())
}
