package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/azulboard/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func newRecord(id model.BoardID) *model.BoardRecord {
	return &model.BoardRecord{
		ID:     id,
		Player: "alice",
		State: model.BoardSnapshot{
			PatternLines: []string{"R", "", "", "", ""},
			Wall:         []string{".....", ".....", ".....", ".....", "....."},
		},
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestSaveAndGetBoard() {
	record := newRecord("board-1")

	err := s.storage.SaveBoard(s.ctx, record)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetBoard(s.ctx, "board-1")
	s.Require().NoError(err)
	s.Equal(record, retrieved)
}

func (s *StorageSuite) TestGetBoardNotFound() {
	_, err := s.storage.GetBoard(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrBoardNotFound)
}

func (s *StorageSuite) TestSavedRecordIsIsolatedFromCaller() {
	record := newRecord("board-1")
	_ = s.storage.SaveBoard(s.ctx, record)

	record.State.PatternLines[0] = "BB"
	record.State.Points = 42

	retrieved, err := s.storage.GetBoard(s.ctx, "board-1")
	s.Require().NoError(err)
	s.Equal("R", retrieved.State.PatternLines[0])
	s.Equal(model.Points(0), retrieved.State.Points)
}

func (s *StorageSuite) TestListBoardsSortedByID() {
	_ = s.storage.SaveBoard(s.ctx, newRecord("b"))
	_ = s.storage.SaveBoard(s.ctx, newRecord("a"))

	records, err := s.storage.ListBoards(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(model.BoardID("a"), records[0].ID)
	s.Equal(model.BoardID("b"), records[1].ID)
}

func (s *StorageSuite) TestDeleteBoard() {
	_ = s.storage.SaveBoard(s.ctx, newRecord("board-1"))

	err := s.storage.DeleteBoard(s.ctx, "board-1")
	s.Require().NoError(err)

	_, err = s.storage.GetBoard(s.ctx, "board-1")
	s.ErrorIs(err, model.ErrBoardNotFound)
}
