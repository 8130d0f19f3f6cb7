// Package usedtiles collects tiles leaving player boards until they are returned to the bag.
package usedtiles

import (
	"sync"

	"github.com/mcoot/azulboard/internal/board"
	"github.com/mcoot/azulboard/internal/model"
)

// Pile holds discarded colored tiles. The starting-player marker is never kept.
type Pile struct {
	mu    sync.Mutex
	tiles []model.Tile
}

// New creates an empty pile
func New() *Pile {
	return &Pile{}
}

// Give adds discarded tiles
func (p *Pile) Give(tiles ...model.Tile) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, t := range tiles {
		if t.IsColor() {
			p.tiles = append(p.tiles, t)
		}
	}
}

// TakeAll empties the pile and returns its contents
func (p *Pile) TakeAll() []model.Tile {
	p.mu.Lock()
	defer p.mu.Unlock()
	tiles := p.tiles
	p.tiles = nil
	return tiles
}

// Len returns the number of tiles in the pile
func (p *Pile) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.tiles)
}

var _ board.UsedTilesGiver = (*Pile)(nil)
