package board

import "github.com/mcoot/azulboard/internal/model"

// batch is a validated group of tiles taken together from one source
type batch struct {
	color   model.Tile
	colored []model.Tile
	marker  bool
}

// splitBatch checks a drafted group holds one color plus at most one starting-player marker
func splitBatch(tiles []model.Tile) (batch, error) {
	var b batch
	for _, t := range tiles {
		switch {
		case t == model.StartingPlayer:
			if b.marker {
				return batch{}, model.ErrMixedTiles
			}
			b.marker = true
		case t.IsColor():
			if b.color != model.NoTile && b.color != t {
				return batch{}, model.ErrMixedTiles
			}
			b.color = t
			b.colored = append(b.colored, t)
		default:
			return batch{}, model.ErrInvalidTile
		}
	}
	if b.color == model.NoTile {
		return batch{}, model.ErrNoColoredTile
	}
	return b, nil
}
