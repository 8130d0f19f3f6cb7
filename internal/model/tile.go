package model

import (
	"fmt"
	"strings"
)

// Tile identifies a single piece drawn from the factories
type Tile uint8

const (
	NoTile Tile = iota // Empty wall cell
	Blue
	Yellow
	Red
	Black
	Green
	StartingPlayer // First-player marker, floor only
)

// ColorCount is the number of tile colors in the palette
const ColorCount = 5

// Palette lists the colors in wall order: row 0 of the wall reads left to right in this order
var Palette = [ColorCount]Tile{Blue, Yellow, Red, Black, Green}

var tileLetters = map[Tile]byte{
	NoTile:         '.',
	Blue:           'B',
	Yellow:         'Y',
	Red:            'R',
	Black:          'L',
	Green:          'G',
	StartingPlayer: 'S',
}

// IsColor returns true for the five palette colors
func (t Tile) IsColor() bool {
	return t >= Blue && t <= Green
}

// ColorIndex returns the tile's index in Palette, or -1 if it is not a color
func (t Tile) ColorIndex() int {
	if !t.IsColor() {
		return -1
	}
	return int(t - Blue)
}

// Letter returns the single-character state representation of the tile
func (t Tile) Letter() byte {
	if l, ok := tileLetters[t]; ok {
		return l
	}
	return '?'
}

func (t Tile) String() string {
	switch t {
	case NoTile:
		return "none"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	case Black:
		return "black"
	case Green:
		return "green"
	case StartingPlayer:
		return "starting_player"
	default:
		return fmt.Sprintf("tile(%d)", uint8(t))
	}
}

// ParseTile converts a state letter back into a Tile
func ParseTile(letter byte) (Tile, error) {
	upper := strings.ToUpper(string(letter))
	for t, l := range tileLetters {
		if string(l) == upper {
			return t, nil
		}
	}
	return NoTile, fmt.Errorf("%w: %q", ErrInvalidTile, letter)
}

// ParseTiles converts a string of state letters (e.g. "SBB") into tiles.
// The empty-cell letter is rejected.
func ParseTiles(s string) ([]Tile, error) {
	tiles := make([]Tile, 0, len(s))
	for i := 0; i < len(s); i++ {
		t, err := ParseTile(s[i])
		if err != nil {
			return nil, err
		}
		if t == NoTile {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTile, s[i])
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

// FormatTiles renders tiles as their state letters
func FormatTiles(tiles []Tile) string {
	var sb strings.Builder
	sb.Grow(len(tiles))
	for _, t := range tiles {
		sb.WriteByte(t.Letter())
	}
	return sb.String()
}
