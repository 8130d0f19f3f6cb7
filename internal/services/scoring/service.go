// Package scoring provides the end-of-game bonus calculators.
package scoring

import (
	"github.com/mcoot/azulboard/internal/board"
	"github.com/mcoot/azulboard/internal/model"
)

// Bonus values per completed line or color
const (
	RowBonus    model.Points = 2
	ColumnBonus model.Points = 7
	ColorBonus  model.Points = 10
)

// Calculator computes bonus points from a final wall
type Calculator interface {
	GetPoints(wall model.Wall) model.Points
}

// HorizontalRowCalculation scores every complete row
type HorizontalRowCalculation struct{}

func (HorizontalRowCalculation) GetPoints(wall model.Wall) model.Points {
	var points model.Points
	for row := 0; row < model.WallSize; row++ {
		if wall.RowComplete(row) {
			points += RowBonus
		}
	}
	return points
}

// VerticalColumnCalculation scores every complete column
type VerticalColumnCalculation struct{}

func (VerticalColumnCalculation) GetPoints(wall model.Wall) model.Points {
	var points model.Points
	for col := 0; col < model.WallSize; col++ {
		if wall.ColumnComplete(col) {
			points += ColumnBonus
		}
	}
	return points
}

// ColorCalculation scores every color with all five tiles on the wall
type ColorCalculation struct{}

func (ColorCalculation) GetPoints(wall model.Wall) model.Points {
	var points model.Points
	for _, color := range model.Palette {
		if wall.ColorComplete(color) {
			points += ColorBonus
		}
	}
	return points
}

// Breakdown is the bonus split by category
type Breakdown struct {
	Rows    model.Points
	Columns model.Points
	Colors  model.Points
	Total   model.Points
}

// WallCalculation sums the row, column and color bonuses
type WallCalculation struct {
	horizontal Calculator
	vertical   Calculator
	color      Calculator
}

// NewWallCalculation creates a composite from the three category calculators
func NewWallCalculation(horizontal, vertical, color Calculator) *WallCalculation {
	return &WallCalculation{
		horizontal: horizontal,
		vertical:   vertical,
		color:      color,
	}
}

// New creates the standard composite calculator
func New() *WallCalculation {
	return NewWallCalculation(HorizontalRowCalculation{}, VerticalColumnCalculation{}, ColorCalculation{})
}

func (c *WallCalculation) GetPoints(wall model.Wall) model.Points {
	return c.Breakdown(wall).Total
}

// Breakdown returns the bonus per category
func (c *WallCalculation) Breakdown(wall model.Wall) Breakdown {
	b := Breakdown{
		Rows:    c.horizontal.GetPoints(wall),
		Columns: c.vertical.GetPoints(wall),
		Colors:  c.color.GetPoints(wall),
	}
	b.Total = b.Rows + b.Columns + b.Colors
	return b
}

// FinalPointsCalculation delegates to a configured calculator
type FinalPointsCalculation struct {
	component Calculator
}

// NewFinalPointsCalculation wraps a calculator for use by a board
func NewFinalPointsCalculation(component Calculator) *FinalPointsCalculation {
	return &FinalPointsCalculation{component: component}
}

func (f *FinalPointsCalculation) GetPoints(wall model.Wall) model.Points {
	return f.component.GetPoints(wall)
}

var (
	_ Calculator                   = HorizontalRowCalculation{}
	_ Calculator                   = VerticalColumnCalculation{}
	_ Calculator                   = ColorCalculation{}
	_ Calculator                   = (*WallCalculation)(nil)
	_ board.FinalPointsCalculation = (*FinalPointsCalculation)(nil)
)
