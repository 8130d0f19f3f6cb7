package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/azulboard/internal/api/response"
	"github.com/mcoot/azulboard/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Board:
		o.printBoard(v)
	case response.BoardList:
		o.printBoardList(v)
	case response.FinishRoundResponse:
		o.printRoundScore(v.Score)
		_, _ = fmt.Fprintln(o.w)
		o.printBoard(v.Board)
	case response.Pattern:
		o.printPattern(v)
	case response.Health:
		o.printHealth(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printBoard(b response.Board) {
	p := func(format string, args ...any) { _, _ = fmt.Fprintf(o.w, format, args...) }

	p("Board: %s\n", b.ID)
	if b.Player != "" {
		p("Player: %s\n", b.Player)
	}
	p("Round: %d\n", b.Round)
	p("Points: %d\n", b.Points)
	switch {
	case b.Finished:
		p("State: finished\n")
	case b.EndGame:
		p("State: end of game reached\n")
	}

	p("\n   pattern lines   | wall\n")
	for i := 0; i < model.PatternLineCount; i++ {
		line := ""
		if i < len(b.PatternLines) {
			line = b.PatternLines[i]
		}
		wall := ""
		if i < len(b.Wall) {
			wall = b.Wall[i]
		}
		// Pattern lines fill right to left towards the wall
		padded := strings.Repeat(".", i+1-len(line)) + line
		p(" %d %13s | %s\n", i+1, padded, wall)
	}

	p("\nFloor: %s (%d)\n", b.Floor, b.FloorPenalty)
	if b.Discarded > 0 {
		p("Discarded: %d\n", b.Discarded)
	}
}

func (o *Output) printBoardList(l response.BoardList) {
	if len(l.Boards) == 0 {
		_, _ = fmt.Fprintln(o.w, "No boards")
		return
	}
	for _, b := range l.Boards {
		state := "playing"
		if b.Finished {
			state = "finished"
		}
		_, _ = fmt.Fprintf(o.w, "%s\t%s\tround %d\t%d points\t%s\n", b.ID, b.Player, b.Round, b.Points, state)
	}
}

func (o *Output) printRoundScore(s response.RoundScore) {
	p := func(format string, args ...any) { _, _ = fmt.Fprintf(o.w, format, args...) }

	if len(s.Placements) == 0 {
		p("No tiles placed on the wall\n")
	}
	for _, pl := range s.Placements {
		p("Placed %s at row %d col %d: +%d\n", pl.Color, pl.Row+1, pl.Col+1, pl.Points)
	}
	if s.FloorCount > 0 {
		p("Floor: %d tiles, %d\n", s.FloorCount, s.Penalty)
	}
	if s.Result == string(model.GameFinished) {
		p("Game finished! Final bonus: +%d\n", s.FinalPoints)
	}
}

func (o *Output) printPattern(pt response.Pattern) {
	for _, row := range pt.Rows {
		_, _ = fmt.Fprintln(o.w, row)
	}
	_, _ = fmt.Fprintln(o.w)
	for _, t := range append(model.Palette[:], model.StartingPlayer) {
		letter := string(t.Letter())
		_, _ = fmt.Fprintf(o.w, "%s = %s\n", letter, pt.Legend[letter])
	}
}

func (o *Output) printHealth(h response.Health) {
	_, _ = fmt.Fprintf(o.w, "%s: %s (%s storage, %d boards)\n", h.Service, h.Status, h.Storage, h.Boards)
}
