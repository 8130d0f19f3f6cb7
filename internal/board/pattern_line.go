package board

import "github.com/mcoot/azulboard/internal/model"

// PatternLine is a staging row of one color. Line r (0-based) holds r+1 tiles.
type PatternLine struct {
	capacity int
	tiles    []model.Tile
	wall     *WallLine
	floor    *FloorLine
}

// NewPatternLine creates an empty pattern line feeding the given wall row
func NewPatternLine(capacity int, wall *WallLine, floor *FloorLine) *PatternLine {
	return &PatternLine{
		capacity: capacity,
		tiles:    make([]model.Tile, 0, capacity),
		wall:     wall,
		floor:    floor,
	}
}

// Put takes a drafted batch. Tiles that do not fit and the starting-player marker go to the floor.
// The line is left untouched when an error is returned.
func (p *PatternLine) Put(tiles ...model.Tile) error {
	b, err := splitBatch(tiles)
	if err != nil {
		return err
	}
	if len(p.tiles) > 0 && p.tiles[0] != b.color {
		return model.ErrWrongColor
	}
	if p.IsFull() {
		return model.ErrLineFull
	}
	if p.wall.HasColor(b.color) {
		return model.ErrColorOnWall
	}

	take := min(p.capacity-len(p.tiles), len(b.colored))
	p.tiles = append(p.tiles, b.colored[:take]...)

	var overflow []model.Tile
	if b.marker {
		overflow = append(overflow, model.StartingPlayer)
	}
	overflow = append(overflow, b.colored[take:]...)
	if len(overflow) > 0 {
		p.floor.Put(overflow...)
	}
	return nil
}

// Capacity returns the number of tiles needed to fill the line
func (p *PatternLine) Capacity() int {
	return p.capacity
}

// IsFull returns true if the line holds exactly its capacity
func (p *PatternLine) IsFull() bool {
	return len(p.tiles) == p.capacity
}

// Color returns the line's color, or NoTile if empty
func (p *PatternLine) Color() model.Tile {
	if len(p.tiles) == 0 {
		return model.NoTile
	}
	return p.tiles[0]
}

// Tiles returns a copy of the line contents
func (p *PatternLine) Tiles() []model.Tile {
	out := make([]model.Tile, len(p.tiles))
	copy(out, p.tiles)
	return out
}

// State returns one letter per staged tile
func (p *PatternLine) State() string {
	return model.FormatTiles(p.tiles)
}

// finish moves one tile to the wall when the line is full and discards the rest
func (p *PatternLine) finish(usedTiles UsedTilesGiver) (*model.Placement, error) {
	if !p.IsFull() {
		return nil, nil
	}
	color := p.tiles[0]
	placement, err := p.wall.place(color)
	if err != nil {
		return nil, err
	}
	if len(p.tiles) > 1 {
		usedTiles.Give(p.tiles[1:]...)
	}
	p.tiles = p.tiles[:0]
	return placement, nil
}
