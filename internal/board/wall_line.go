package board

import (
	"fmt"

	"github.com/mcoot/azulboard/internal/model"
)

// WallLine is one row of the mosaic, linked to its vertical neighbours for adjacency scoring
type WallLine struct {
	row   int
	tiles [model.WallSize]model.Tile
	up    *WallLine
	down  *WallLine
}

// newWallLines builds the five linked wall rows
func newWallLines() [model.WallSize]*WallLine {
	var lines [model.WallSize]*WallLine
	for row := range lines {
		lines[row] = &WallLine{row: row}
	}
	for row := range lines {
		if row > 0 {
			lines[row].up = lines[row-1]
		}
		if row < model.WallSize-1 {
			lines[row].down = lines[row+1]
		}
	}
	return lines
}

// Row returns the wall row index
func (w *WallLine) Row() int {
	return w.row
}

// TileInColumn returns the tile at col, or NoTile
func (w *WallLine) TileInColumn(col int) model.Tile {
	return w.tiles[col]
}

// Up returns the row above, or nil for the top row
func (w *WallLine) Up() *WallLine {
	return w.up
}

// Down returns the row below, or nil for the bottom row
func (w *WallLine) Down() *WallLine {
	return w.down
}

// HasColor returns true if the color is already placed in this row
func (w *WallLine) HasColor(color model.Tile) bool {
	return w.tiles[model.ColumnFor(w.row, color)] != model.NoTile
}

// Tiles returns a copy of the row
func (w *WallLine) Tiles() []model.Tile {
	out := make([]model.Tile, model.WallSize)
	copy(out, w.tiles[:])
	return out
}

// State returns the row as state letters, '.' for empty cells
func (w *WallLine) State() string {
	return model.FormatTiles(w.tiles[:])
}

// place puts a tile of color in its fixed column and scores it against its neighbours
func (w *WallLine) place(color model.Tile) (*model.Placement, error) {
	col := model.ColumnFor(w.row, color)
	if w.tiles[col] != model.NoTile {
		return nil, fmt.Errorf("%w: row %d column %d", model.ErrCellOccupied, w.row, col)
	}
	w.tiles[col] = color

	return &model.Placement{
		Row:    w.row,
		Col:    col,
		Color:  color,
		Points: w.adjacencyScore(col),
	}, nil
}

// adjacencyScore counts the contiguous horizontal and vertical runs through col
func (w *WallLine) adjacencyScore(col int) model.Points {
	horizontal := 1
	for c := col - 1; c >= 0 && w.tiles[c] != model.NoTile; c-- {
		horizontal++
	}
	for c := col + 1; c < model.WallSize && w.tiles[c] != model.NoTile; c++ {
		horizontal++
	}

	vertical := 1
	for l := w.up; l != nil && l.TileInColumn(col) != model.NoTile; l = l.up {
		vertical++
	}
	for l := w.down; l != nil && l.TileInColumn(col) != model.NoTile; l = l.down {
		vertical++
	}

	switch {
	case horizontal > 1 && vertical > 1:
		return model.Points(horizontal + vertical)
	case horizontal > 1:
		return model.Points(horizontal)
	default:
		return model.Points(vertical)
	}
}
