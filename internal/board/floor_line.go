package board

import "github.com/mcoot/azulboard/internal/model"

// FloorLine is the penalty track. It holds at most model.FloorCapacity tiles;
// anything beyond that goes straight to the used-tiles pile without extra penalty.
type FloorLine struct {
	tiles     []model.Tile
	usedTiles UsedTilesGiver
}

// NewFloorLine creates an empty floor line
func NewFloorLine(usedTiles UsedTilesGiver) *FloorLine {
	return &FloorLine{
		tiles:     make([]model.Tile, 0, model.FloorCapacity),
		usedTiles: usedTiles,
	}
}

// Capacity returns the number of penalty slots
func (f *FloorLine) Capacity() int {
	return model.FloorCapacity
}

// Put appends tiles in order, dropping those that do not fit
func (f *FloorLine) Put(tiles ...model.Tile) {
	free := f.Capacity() - len(f.tiles)
	if free >= len(tiles) {
		f.tiles = append(f.tiles, tiles...)
		return
	}
	if free > 0 {
		f.tiles = append(f.tiles, tiles[:free]...)
		tiles = tiles[free:]
	}
	f.usedTiles.Give(tiles...)
}

// Len returns the number of occupied slots
func (f *FloorLine) Len() int {
	return len(f.tiles)
}

// Penalty returns the (non-positive) points the current floor would cost
func (f *FloorLine) Penalty() model.Points {
	return model.FloorPenalty(len(f.tiles))
}

// Tiles returns a copy of the floor contents
func (f *FloorLine) Tiles() []model.Tile {
	out := make([]model.Tile, len(f.tiles))
	copy(out, f.tiles)
	return out
}

// clear empties the floor, handing its tiles to the used-tiles pile
func (f *FloorLine) clear() {
	if len(f.tiles) == 0 {
		return
	}
	f.usedTiles.Give(f.tiles...)
	f.tiles = f.tiles[:0]
}

// State returns one letter per tile on the floor
func (f *FloorLine) State() string {
	return model.FormatTiles(f.tiles)
}
