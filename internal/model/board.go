package model

import "time"

// BoardID uniquely identifies a stored board session
type BoardID string

// Pattern and floor line layout
const (
	PatternLineCount = WallSize
	FloorLineIndex   = 0 // Board.Put line index that targets the floor
	FloorCapacity    = len(floorPenalties)
)

// points lost for each occupied floor slot, in slot order
var floorPenalties = [...]Points{1, 1, 2, 2, 2, 3, 3}

// FloorPenalty returns the total penalty (as a non-positive value) for n occupied floor slots.
// Slots beyond the table cost nothing.
func FloorPenalty(n int) Points {
	var total Points
	for i := 0; i < n && i < FloorCapacity; i++ {
		total -= floorPenalties[i]
	}
	return total
}

// BoardSnapshot is the serialisable state of a player's board
type BoardSnapshot struct {
	PatternLines       []string // One entry per pattern line, state letters
	Wall               []string // One entry per wall row, '.' for empty
	Floor              string
	Points             Points
	EndGame            bool
	FinalPointsApplied bool
}

// BoardRecord is a stored board session
type BoardRecord struct {
	ID        BoardID
	Player    string
	Round     int // Rounds finished so far
	Discarded int // Colored tiles handed to the used-tiles pile
	State     BoardSnapshot
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFinished returns true once final bonus points have been scored
func (r *BoardRecord) IsFinished() bool {
	return r.State.FinalPointsApplied
}

// RoundScore describes what finishing a round did to a board
type RoundScore struct {
	Placements  []Placement
	FloorCount  int
	Penalty     Points
	FinalPoints Points
	Result      FinishRoundResult
}

// Placement is a single tile moved from a pattern line to the wall
type Placement struct {
	Row    int
	Col    int
	Color  Tile
	Points Points
}
