package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/azulboard/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.BoardTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func newRecord(id model.BoardID) *model.BoardRecord {
	return &model.BoardRecord{
		ID:        id,
		Player:    "alice",
		Round:     2,
		Discarded: 3,
		State: model.BoardSnapshot{
			PatternLines:       []string{"", "BB", "", "L", ""},
			Wall:               []string{"..R..", ".....", ".....", ".....", "....."},
			Floor:              "S",
			Points:             -1,
			EndGame:            false,
			FinalPointsApplied: false,
		},
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 1, 12, 5, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestSaveAndGetBoard() {
	record := newRecord("board-1")

	err := s.storage.SaveBoard(s.ctx, record)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetBoard(s.ctx, "board-1")
	s.Require().NoError(err)
	s.Equal(record.ID, retrieved.ID)
	s.Equal(record.Player, retrieved.Player)
	s.Equal(record.Round, retrieved.Round)
	s.Equal(record.Discarded, retrieved.Discarded)
	s.Equal(record.State, retrieved.State)
	s.True(record.UpdatedAt.Equal(retrieved.UpdatedAt))
}

func (s *StorageSuite) TestGetBoardNotFound() {
	_, err := s.storage.GetBoard(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrBoardNotFound)
}

func (s *StorageSuite) TestBoardTTL() {
	_ = s.storage.SaveBoard(s.ctx, newRecord("board-1"))

	ttl := s.mini.TTL(boardKey("board-1"))
	s.Equal(time.Hour, ttl)
}

func (s *StorageSuite) TestListBoards() {
	_ = s.storage.SaveBoard(s.ctx, newRecord("b"))
	_ = s.storage.SaveBoard(s.ctx, newRecord("a"))

	records, err := s.storage.ListBoards(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(model.BoardID("a"), records[0].ID)
	s.Equal(model.BoardID("b"), records[1].ID)
}

func (s *StorageSuite) TestListBoardsEmpty() {
	records, err := s.storage.ListBoards(s.ctx)
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *StorageSuite) TestListBoardsPrunesExpired() {
	_ = s.storage.SaveBoard(s.ctx, newRecord("a"))
	_ = s.storage.SaveBoard(s.ctx, newRecord("b"))

	s.mini.FastForward(2 * time.Hour)
	_ = s.storage.SaveBoard(s.ctx, newRecord("c"))

	records, err := s.storage.ListBoards(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(model.BoardID("c"), records[0].ID)

	members, err := s.mini.Members(boardIndexKey())
	s.Require().NoError(err)
	s.Equal([]string{"c"}, members)
}

func (s *StorageSuite) TestDeleteBoard() {
	_ = s.storage.SaveBoard(s.ctx, newRecord("board-1"))

	err := s.storage.DeleteBoard(s.ctx, "board-1")
	s.Require().NoError(err)

	_, err = s.storage.GetBoard(s.ctx, "board-1")
	s.ErrorIs(err, model.ErrBoardNotFound)
	s.False(s.mini.Exists(boardKey("board-1")))
}
