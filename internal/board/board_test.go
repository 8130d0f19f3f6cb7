package board

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/azulboard/internal/model"
)

type fakeGameFinished struct {
	result model.FinishRoundResult
	calls  int
}

func (f *fakeGameFinished) GameFinished(model.Wall) model.FinishRoundResult {
	f.calls++
	return f.result
}

type fakeFinalPoints struct {
	points model.Points
	calls  int
}

func (f *fakeFinalPoints) GetPoints(model.Wall) model.Points {
	f.calls++
	return f.points
}

type fakeUsedTiles struct {
	tiles []model.Tile
}

func (f *fakeUsedTiles) Give(tiles ...model.Tile) {
	f.tiles = append(f.tiles, tiles...)
}

type BoardSuite struct {
	suite.Suite
	gameFinished *fakeGameFinished
	finalPoints  *fakeFinalPoints
	usedTiles    *fakeUsedTiles
	board        *Board
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) SetupTest() {
	s.gameFinished = &fakeGameFinished{result: model.Normal}
	s.finalPoints = &fakeFinalPoints{}
	s.usedTiles = &fakeUsedTiles{}
	s.board = New(s.gameFinished, s.finalPoints, s.usedTiles)
}

func repeat(t model.Tile, n int) []model.Tile {
	tiles := make([]model.Tile, n)
	for i := range tiles {
		tiles[i] = t
	}
	return tiles
}

// Put tests

func (s *BoardSuite) TestPutCorrectTiles() {
	s.Require().NoError(s.board.Put(1, model.Red))
	s.Equal("R", s.board.PatternLine(0).State())

	s.Require().NoError(s.board.Put(2, model.StartingPlayer, model.Blue))
	s.Equal("B", s.board.PatternLine(1).State())
	s.Equal("S", s.board.Floor().State())

	s.Require().NoError(s.board.Put(2, model.Blue))
	s.Equal("BB", s.board.PatternLine(1).State())

	s.Require().NoError(s.board.Put(3, repeat(model.Black, 4)...))
	s.Equal("LLL", s.board.PatternLine(2).State())
	s.Equal("SL", s.board.Floor().State())

	s.Require().NoError(s.board.Put(4, repeat(model.Yellow, 5)...))
	s.Equal("YYYY", s.board.PatternLine(3).State())
	s.Equal("SLY", s.board.Floor().State())

	s.Require().NoError(s.board.Put(5, repeat(model.Blue, 5)...))
	s.Equal("BBBBB", s.board.PatternLine(4).State())
	s.Equal("SLY", s.board.Floor().State())
}

func (s *BoardSuite) TestPutHomogeneousBatchFillsLineInOrder() {
	for line := 1; line <= model.PatternLineCount; line++ {
		s.Require().NoError(s.board.Put(line, repeat(model.Green, line)...))
		s.Equal(repeat(model.Green, line), s.board.PatternLine(line-1).Tiles())
		s.True(s.board.PatternLine(line - 1).IsFull())
	}
	s.Equal("", s.board.Floor().State())
}

func (s *BoardSuite) TestPutMarkerOnly() {
	err := s.board.Put(1, model.StartingPlayer)
	s.ErrorIs(err, model.ErrNoColoredTile)
	s.ErrorIs(err, model.ErrValidation)
	s.Equal("", s.board.Floor().State())
}

func (s *BoardSuite) TestPutMixedColorsFailsWhereverTheMarkerIs() {
	batches := [][]model.Tile{
		{model.Green, model.StartingPlayer, model.Blue},
		{model.StartingPlayer, model.Green, model.Blue},
		{model.Green, model.Blue, model.StartingPlayer},
		{model.Red, model.Blue},
		{model.Red, model.Red, model.Red, model.Red, model.Blue},
		{model.Red, model.Green, model.Blue, model.Yellow, model.Blue, model.Black},
	}
	for _, tiles := range batches {
		err := s.board.Put(5, tiles...)
		s.ErrorIs(err, model.ErrMixedTiles, model.FormatTiles(tiles))
	}
	s.Equal("", s.board.PatternLine(4).State())
	s.Equal("", s.board.Floor().State())
}

func (s *BoardSuite) TestPutTwoMarkersFails() {
	err := s.board.Put(3, model.StartingPlayer, model.Red, model.StartingPlayer)
	s.ErrorIs(err, model.ErrMixedTiles)
}

func (s *BoardSuite) TestPutWrongColorOnNonEmptyLine() {
	s.Require().NoError(s.board.Put(2, model.Yellow))

	err := s.board.Put(2, model.Blue)
	s.ErrorIs(err, model.ErrWrongColor)
	s.Equal("Y", s.board.PatternLine(1).State())
}

func (s *BoardSuite) TestPutOnFullLine() {
	s.Require().NoError(s.board.Put(1, model.Red))

	err := s.board.Put(1, model.Red)
	s.ErrorIs(err, model.ErrLineFull)
	s.Equal("", s.board.Floor().State())
}

func (s *BoardSuite) TestPutInvalidLine() {
	for _, line := range []int{-1, 6, 100} {
		err := s.board.Put(line, model.Red)
		s.ErrorIs(err, model.ErrInvalidLine)
		s.ErrorIs(err, model.ErrValidation)
	}
}

func (s *BoardSuite) TestPutColorAlreadyOnWall() {
	s.Require().NoError(s.board.Put(1, model.Red))
	_, err := s.board.FinishRound()
	s.Require().NoError(err)

	err = s.board.Put(1, model.Red)
	s.ErrorIs(err, model.ErrColorOnWall)
	s.NoError(s.board.Put(1, model.Blue))
}

func (s *BoardSuite) TestOverflowRoutesExcessToFloor() {
	for k := 1; k <= model.PatternLineCount; k++ {
		s.SetupTest()
		const m = 2
		s.Require().NoError(s.board.Put(k, repeat(model.Yellow, k+m)...))
		s.True(s.board.PatternLine(k - 1).IsFull())
		s.Equal(m, s.board.Floor().Len())
	}
}

func (s *BoardSuite) TestPutOnFloorDirectly() {
	s.Require().NoError(s.board.Put(model.FloorLineIndex, model.Red, model.StartingPlayer, model.Red))
	s.Equal("SRR", s.board.Floor().State())
}

func (s *BoardSuite) TestFloorOverflowGoesToUsedTiles() {
	s.Require().NoError(s.board.Put(1, repeat(model.Black, 5)...))
	s.Require().NoError(s.board.Put(2, model.StartingPlayer, model.Blue, model.Blue, model.Blue, model.Blue, model.Blue))

	s.Equal(7, s.board.Floor().Len())
	s.Equal("LLLLSBB", s.board.Floor().State())
	s.Equal([]model.Tile{model.Blue}, s.usedTiles.tiles)
}

// FinishRound tests

func (s *BoardSuite) TestFinishRound() {
	s.Require().NoError(s.board.Put(1, model.Red))
	s.board.Floor().Put(model.StartingPlayer, model.Blue)

	score, err := s.board.FinishRound()
	s.Require().NoError(err)

	s.Equal("", s.board.PatternLine(0).State())
	s.Equal([]model.Tile{model.NoTile, model.NoTile, model.Red, model.NoTile, model.NoTile}, s.board.WallLine(0).Tiles())
	s.Equal("", s.board.Floor().State())
	s.Equal(model.Points(-1), s.board.Points())

	s.Require().Len(score.Placements, 1)
	s.Equal(model.Placement{Row: 0, Col: 2, Color: model.Red, Points: 1}, score.Placements[0])
	s.Equal(2, score.FloorCount)
	s.Equal(model.Points(-2), score.Penalty)
	s.Equal(model.Normal, score.Result)
	s.Equal([]model.Tile{model.StartingPlayer, model.Blue}, s.usedTiles.tiles)
}

func (s *BoardSuite) TestFinishRoundKeepsPartialLines() {
	s.Require().NoError(s.board.Put(3, model.Green, model.Green))

	score, err := s.board.FinishRound()
	s.Require().NoError(err)

	s.Empty(score.Placements)
	s.Equal("GG", s.board.PatternLine(2).State())
	s.Equal(".....", s.board.WallLine(2).State())
	s.Equal(model.Points(0), s.board.Points())
}

func (s *BoardSuite) TestFinishRoundDiscardsSurplusOfFullLine() {
	s.Require().NoError(s.board.Put(4, repeat(model.Yellow, 4)...))

	_, err := s.board.FinishRound()
	s.Require().NoError(err)

	s.Equal(repeat(model.Yellow, 3), s.usedTiles.tiles)
	s.Equal("", s.board.PatternLine(3).State())
}

func (s *BoardSuite) TestEmptyFloorHasNoPenalty() {
	s.Equal(model.Points(0), s.board.Floor().Penalty())
	score, err := s.board.FinishRound()
	s.Require().NoError(err)
	s.Equal(model.Points(0), score.Penalty)
}

func (s *BoardSuite) TestFloorPenaltySchedule() {
	s.Equal(7, model.FloorCapacity)
	s.Equal(model.FloorCapacity, s.board.floor.Capacity())

	expected := []model.Points{0, -1, -2, -4, -6, -8, -11, -14}
	for n, want := range expected {
		s.Equal(want, model.FloorPenalty(n), "slots=%d", n)
	}
	s.Equal(model.Points(-14), model.FloorPenalty(9))
}

func (s *BoardSuite) TestPointsMayGoNegative() {
	s.Require().NoError(s.board.Put(model.FloorLineIndex, repeat(model.Red, 7)...))
	_, err := s.board.FinishRound()
	s.Require().NoError(err)
	s.Equal(model.Points(-14), s.board.Points())
}

// Adjacency scoring

func (s *BoardSuite) TestHorizontalRunScoresRunLength() {
	// Row 0 layout: B Y R L G
	s.Require().NoError(s.board.Put(1, model.Blue))
	_, err := s.board.FinishRound()
	s.Require().NoError(err)
	s.Require().NoError(s.board.Put(1, model.Yellow))
	score, err := s.board.FinishRound()
	s.Require().NoError(err)

	s.Equal(model.Points(2), score.Placements[0].Points)
	s.Equal(model.Points(3), s.board.Points())
}

func (s *BoardSuite) TestVerticalRunScoresRunLength() {
	// Column 0 holds blue in row 0 and green in row 1
	s.Require().NoError(s.board.Put(1, model.Blue))
	s.Require().NoError(s.board.Put(2, model.Green, model.Green))

	score, err := s.board.FinishRound()
	s.Require().NoError(err)

	s.Require().Len(score.Placements, 2)
	s.Equal(model.Points(1), score.Placements[0].Points)
	s.Equal(model.Points(2), score.Placements[1].Points)
	s.Equal(model.Points(3), s.board.Points())
}

func (s *BoardSuite) TestCrossRunScoresBothDirections() {
	// Fill row 0 cols 0,1 and row 1 col 1 (yellow row 0 col 1, blue row 1 col 1),
	// then row 1 col 0 (green) touches both runs.
	for _, step := range []struct {
		line  int
		color model.Tile
	}{
		{1, model.Blue},
		{1, model.Yellow},
		{2, model.Blue},
	} {
		s.Require().NoError(s.board.Put(step.line, repeat(step.color, step.line)...))
		_, err := s.board.FinishRound()
		s.Require().NoError(err)
	}
	before := s.board.Points()

	s.Require().NoError(s.board.Put(2, model.Green, model.Green))
	score, err := s.board.FinishRound()
	s.Require().NoError(err)

	// horizontal run 2 (G,B), vertical run 2 (B over G)
	s.Equal(model.Points(4), score.Placements[0].Points)
	s.Equal(before+4, s.board.Points())
}

func (s *BoardSuite) TestIsolatedLaterPlacementScoresOne() {
	s.Require().NoError(s.board.Put(1, model.Blue))
	_, err := s.board.FinishRound()
	s.Require().NoError(err)

	s.Require().NoError(s.board.Put(3, repeat(model.Red, 3)...))
	score, err := s.board.FinishRound()
	s.Require().NoError(err)
	s.Equal(model.Points(1), score.Placements[0].Points)
}

// EndGame tests

func (s *BoardSuite) TestEndGameReevaluates() {
	s.False(s.board.EndGame())
	s.False(s.board.IsEndGame())

	s.gameFinished.result = model.GameFinished
	s.True(s.board.EndGame())
	s.True(s.board.IsEndGame())
	s.Equal(2, s.gameFinished.calls)
}

func (s *BoardSuite) TestFinalPointsAddedOnce() {
	s.finalPoints.points = 10
	s.gameFinished.result = model.GameFinished

	score, err := s.board.FinishRound()
	s.Require().NoError(err)
	s.Equal(model.GameFinished, score.Result)
	s.Equal(model.Points(10), score.FinalPoints)

	score, err = s.board.FinishRound()
	s.Require().NoError(err)
	s.Equal(model.Points(0), score.FinalPoints)

	s.Equal(1, s.finalPoints.calls)
	s.Equal(model.Points(10), s.board.Points())
}

func (s *BoardSuite) TestFinalPointsNotAddedWhileGameContinues() {
	s.finalPoints.points = 10
	_, err := s.board.FinishRound()
	s.Require().NoError(err)
	s.Equal(0, s.finalPoints.calls)
}

// Snapshot tests

func (s *BoardSuite) TestSnapshotRestoreRoundTrip() {
	s.Require().NoError(s.board.Put(1, model.Red))
	s.Require().NoError(s.board.Put(3, model.StartingPlayer, model.Black, model.Black))
	_, err := s.board.FinishRound()
	s.Require().NoError(err)
	s.Require().NoError(s.board.Put(4, model.Green))

	snap := s.board.Snapshot()
	s.Equal([]string{"", "", "LL", "G", ""}, snap.PatternLines)
	s.Equal("..R..", snap.Wall[0])

	restored, err := Restore(snap, s.gameFinished, s.finalPoints, s.usedTiles)
	s.Require().NoError(err)
	s.Equal(snap, restored.Snapshot())
	s.Equal(s.board.Wall(), restored.Wall())
}

func (s *BoardSuite) TestRestoreRejectsWrongWallColor() {
	snap := s.board.Snapshot()
	snap.Wall[0] = "R...."

	_, err := Restore(snap, s.gameFinished, s.finalPoints, s.usedTiles)
	s.ErrorIs(err, model.ErrInvalidState)
}

func (s *BoardSuite) TestRestoreStartingPlayerMarkersOnFloor() {
	snap := s.board.Snapshot()
	snap.Floor = "SRR"
	_, err := Restore(snap, s.gameFinished, s.finalPoints, s.usedTiles)
	s.NoError(err)

	snap.Floor = "SRS"
	_, err = Restore(snap, s.gameFinished, s.finalPoints, s.usedTiles)
	s.ErrorIs(err, model.ErrInvalidState)
}

func (s *BoardSuite) TestRestoreRejectsOverfullPatternLine() {
	snap := s.board.Snapshot()
	snap.PatternLines[1] = "BBB"

	_, err := Restore(snap, s.gameFinished, s.finalPoints, s.usedTiles)
	s.ErrorIs(err, model.ErrInvalidState)
}
