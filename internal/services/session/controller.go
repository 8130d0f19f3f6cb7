// Package session runs stored player boards: every operation restores the board from its
// snapshot, applies one board operation and persists the result. Operations on the same
// board run one at a time within a Controller.
package session

import (
	"context"
	"log/slog"

	"github.com/mcoot/azulboard/internal/board"
	"github.com/mcoot/azulboard/internal/dependencies/clock"
	"github.com/mcoot/azulboard/internal/dependencies/random"
	"github.com/mcoot/azulboard/internal/model"
	"github.com/mcoot/azulboard/internal/services/usedtiles"
	"github.com/mcoot/azulboard/internal/storage"
)

const boardIDLength = 8

// Controller manages board sessions
type Controller struct {
	storage      storage.Storage
	gameFinished board.GameFinished
	finalPoints  board.FinalPointsCalculation
	clock        clock.Clock
	random       random.Random
	publisher    Publisher
	locks        *boardLocks
	logger       *slog.Logger
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	gameFinished board.GameFinished,
	finalPoints board.FinalPointsCalculation,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      storage,
		gameFinished: gameFinished,
		finalPoints:  finalPoints,
		clock:        clock,
		random:       random,
		publisher:    nopPublisher{},
		locks:        newBoardLocks(),
		logger:       logger,
	}
}

// SetPublisher registers p to receive board changes
func (c *Controller) SetPublisher(p Publisher) {
	if p == nil {
		p = nopPublisher{}
	}
	c.publisher = p
}

// CreateBoard starts an empty board for a player
func (c *Controller) CreateBoard(ctx context.Context, player string) (*model.BoardRecord, error) {
	now := c.clock.Now()
	b := board.New(c.gameFinished, c.finalPoints, usedtiles.New())

	record := &model.BoardRecord{
		ID:        model.BoardID(c.random.String(boardIDLength, random.IDAlphabet)),
		Player:    player,
		State:     b.Snapshot(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveBoard(ctx, record); err != nil {
		c.logger.Error("failed to save board",
			slog.String("board_id", string(record.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("board created",
		slog.String("board_id", string(record.ID)),
		slog.String("player", player),
	)

	return record, nil
}

// GetBoard retrieves a board session by ID
func (c *Controller) GetBoard(ctx context.Context, id model.BoardID) (*model.BoardRecord, error) {
	return c.storage.GetBoard(ctx, id)
}

// ListBoards returns all stored board sessions
func (c *Controller) ListBoards(ctx context.Context) ([]*model.BoardRecord, error) {
	return c.storage.ListBoards(ctx)
}

// DeleteBoard removes a board session
func (c *Controller) DeleteBoard(ctx context.Context, id model.BoardID) error {
	unlock := c.locks.lock(id)
	defer unlock()

	if _, err := c.storage.GetBoard(ctx, id); err != nil {
		return err
	}
	if err := c.storage.DeleteBoard(ctx, id); err != nil {
		return err
	}
	c.logger.Info("board deleted", slog.String("board_id", string(id)))
	c.publisher.BoardDeleted(id)
	return nil
}

// Put places a drafted batch of tiles on a line of the board
func (c *Controller) Put(ctx context.Context, id model.BoardID, line int, tiles []model.Tile) (*model.BoardRecord, error) {
	unlock := c.locks.lock(id)
	defer unlock()

	record, b, pile, err := c.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.IsFinished() {
		return nil, model.ErrGameFinished
	}

	if err := b.Put(line, tiles...); err != nil {
		c.logger.Debug("tiles rejected",
			slog.String("board_id", string(id)),
			slog.Int("line", line),
			slog.String("tiles", model.FormatTiles(tiles)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if err := c.save(ctx, record, b, pile); err != nil {
		return nil, err
	}
	c.publisher.BoardUpdated(record)
	return record, nil
}

// FinishRound runs the end-of-round transition on a board
func (c *Controller) FinishRound(ctx context.Context, id model.BoardID) (*model.BoardRecord, *model.RoundScore, error) {
	unlock := c.locks.lock(id)
	defer unlock()

	record, b, pile, err := c.load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if record.IsFinished() {
		return nil, nil, model.ErrGameFinished
	}

	score, err := b.FinishRound()
	if err != nil {
		// Only reachable if the stored state broke the wall invariant
		c.logger.Error("round transition failed",
			slog.String("board_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, nil, err
	}
	record.Round++

	if err := c.save(ctx, record, b, pile); err != nil {
		return nil, nil, err
	}

	c.logger.Info("round finished",
		slog.String("board_id", string(id)),
		slog.Int("round", record.Round),
		slog.Int("placements", len(score.Placements)),
		slog.Int("penalty", int(score.Penalty)),
		slog.Int("points", int(b.Points())),
		slog.String("result", string(score.Result)),
	)
	if score.Result == model.GameFinished {
		c.logger.Info("game finished",
			slog.String("board_id", string(id)),
			slog.Int("final_points", int(score.FinalPoints)),
			slog.Int("points", int(b.Points())),
		)
	}
	c.publisher.RoundFinished(record, score)

	return record, score, nil
}

// EndGame re-evaluates the end-of-game condition for a board
func (c *Controller) EndGame(ctx context.Context, id model.BoardID) (*model.BoardRecord, error) {
	unlock := c.locks.lock(id)
	defer unlock()

	record, b, pile, err := c.load(ctx, id)
	if err != nil {
		return nil, err
	}

	b.EndGame()

	if err := c.save(ctx, record, b, pile); err != nil {
		return nil, err
	}
	c.publisher.BoardUpdated(record)
	return record, nil
}

// load must be called with the board lock held
func (c *Controller) load(ctx context.Context, id model.BoardID) (*model.BoardRecord, *board.Board, *usedtiles.Pile, error) {
	record, err := c.storage.GetBoard(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}

	pile := usedtiles.New()
	b, err := board.Restore(record.State, c.gameFinished, c.finalPoints, pile)
	if err != nil {
		c.logger.Error("stored board is invalid",
			slog.String("board_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, nil, nil, err
	}
	return record, b, pile, nil
}

func (c *Controller) save(ctx context.Context, record *model.BoardRecord, b *board.Board, pile *usedtiles.Pile) error {
	record.State = b.Snapshot()
	record.Discarded += len(pile.TakeAll())
	record.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveBoard(ctx, record); err != nil {
		c.logger.Error("failed to save board",
			slog.String("board_id", string(record.ID)),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateBoard(ctx context.Context, player string) (*model.BoardRecord, error)
	GetBoard(ctx context.Context, id model.BoardID) (*model.BoardRecord, error)
	ListBoards(ctx context.Context) ([]*model.BoardRecord, error)
	DeleteBoard(ctx context.Context, id model.BoardID) error
	Put(ctx context.Context, id model.BoardID, line int, tiles []model.Tile) (*model.BoardRecord, error)
	FinishRound(ctx context.Context, id model.BoardID) (*model.BoardRecord, *model.RoundScore, error)
	EndGame(ctx context.Context, id model.BoardID) (*model.BoardRecord, error)
}

var _ ControllerInterface = (*Controller)(nil)
