package model

import "strings"

// WallSize is the number of rows and columns of the wall
const WallSize = ColorCount

// Wall is the occupancy grid of a player's mosaic: Wall[row][col], NoTile means empty
type Wall [WallSize][WallSize]Tile

// RequiredColor returns the color a wall cell must hold.
// Each row is the palette shifted right by the row index.
func RequiredColor(row, col int) Tile {
	return Palette[mod(col-row, ColorCount)]
}

// ColumnFor returns the unique column in row whose required color is color.
// It is the inverse of RequiredColor and also walks the color diagonal used for final scoring.
func ColumnFor(row int, color Tile) int {
	return mod(color.ColorIndex()+row, ColorCount)
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

// Occupied returns true if the cell holds a tile
func (w *Wall) Occupied(row, col int) bool {
	return w[row][col] != NoTile
}

// RowComplete returns true if every cell of the row is filled
func (w *Wall) RowComplete(row int) bool {
	for col := 0; col < WallSize; col++ {
		if !w.Occupied(row, col) {
			return false
		}
	}
	return true
}

// ColumnComplete returns true if every cell of the column is filled
func (w *Wall) ColumnComplete(col int) bool {
	for row := 0; row < WallSize; row++ {
		if !w.Occupied(row, col) {
			return false
		}
	}
	return true
}

// ColorComplete returns true if all five tiles of the color are on the wall
func (w *Wall) ColorComplete(color Tile) bool {
	if !color.IsColor() {
		return false
	}
	for row := 0; row < WallSize; row++ {
		if !w.Occupied(row, ColumnFor(row, color)) {
			return false
		}
	}
	return true
}

// Rows renders the wall as one string of state letters per row
func (w *Wall) Rows() []string {
	rows := make([]string, WallSize)
	for row := range w {
		rows[row] = FormatTiles(w[row][:])
	}
	return rows
}

// Pattern renders the required-color layout, one string per row
func Pattern() []string {
	rows := make([]string, WallSize)
	for row := 0; row < WallSize; row++ {
		var sb strings.Builder
		for col := 0; col < WallSize; col++ {
			sb.WriteByte(RequiredColor(row, col).Letter())
		}
		rows[row] = sb.String()
	}
	return rows
}
