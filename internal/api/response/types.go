package response

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mcoot/azulboard/internal/model"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// NoContent writes a 204 No Content response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Health reports server status along with the storage backend it runs on
type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Storage string `json:"storage"`
	Boards  int    `json:"boards"`
}

// Board represents a board session in API responses
type Board struct {
	ID           string    `json:"id"`
	Player       string    `json:"player"`
	Round        int       `json:"round"`
	Points       int       `json:"points"`
	PatternLines []string  `json:"pattern_lines"`
	Wall         []string  `json:"wall"`
	Floor        string    `json:"floor"`
	FloorPenalty int       `json:"floor_penalty"`
	EndGame      bool      `json:"end_game"`
	Finished     bool      `json:"finished"`
	Discarded    int       `json:"discarded"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BoardFromModel converts a model.BoardRecord to a response Board
func BoardFromModel(r *model.BoardRecord) Board {
	return Board{
		ID:           string(r.ID),
		Player:       r.Player,
		Round:        r.Round,
		Points:       int(r.State.Points),
		PatternLines: r.State.PatternLines,
		Wall:         r.State.Wall,
		Floor:        r.State.Floor,
		FloorPenalty: int(model.FloorPenalty(len(r.State.Floor))),
		EndGame:      r.State.EndGame,
		Finished:     r.IsFinished(),
		Discarded:    r.Discarded,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// BoardList is the response for listing boards
type BoardList struct {
	Boards []Board `json:"boards"`
}

// Placement is a tile moved to the wall
type Placement struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Color  string `json:"color"`
	Points int    `json:"points"`
}

// RoundScore summarises a finished round
type RoundScore struct {
	Placements  []Placement `json:"placements"`
	FloorCount  int         `json:"floor_count"`
	Penalty     int         `json:"penalty"`
	FinalPoints int         `json:"final_points"`
	Result      string      `json:"result"`
}

// RoundScoreFromModel converts model.RoundScore
func RoundScoreFromModel(s *model.RoundScore) RoundScore {
	placements := make([]Placement, len(s.Placements))
	for i, p := range s.Placements {
		placements[i] = Placement{
			Row:    p.Row,
			Col:    p.Col,
			Color:  p.Color.String(),
			Points: int(p.Points),
		}
	}
	return RoundScore{
		Placements:  placements,
		FloorCount:  s.FloorCount,
		Penalty:     int(s.Penalty),
		FinalPoints: int(s.FinalPoints),
		Result:      string(s.Result),
	}
}

// FinishRoundResponse is the response for finishing a round
type FinishRoundResponse struct {
	Board Board      `json:"board"`
	Score RoundScore `json:"score"`
}

// Pattern describes the fixed wall layout
type Pattern struct {
	Rows   []string          `json:"rows"`
	Legend map[string]string `json:"legend"`
}

// PatternFromModel builds the wall layout response
func PatternFromModel() Pattern {
	legend := make(map[string]string, model.ColorCount+1)
	for _, t := range append(model.Palette[:], model.StartingPlayer) {
		legend[string(t.Letter())] = t.String()
	}
	return Pattern{
		Rows:   model.Pattern(),
		Legend: legend,
	}
}
