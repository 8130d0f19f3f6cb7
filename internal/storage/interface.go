package storage

import (
	"context"

	"github.com/mcoot/azulboard/internal/model"
)

// Storage defines the interface for board session persistence
type Storage interface {
	SaveBoard(ctx context.Context, record *model.BoardRecord) error
	GetBoard(ctx context.Context, id model.BoardID) (*model.BoardRecord, error)
	ListBoards(ctx context.Context) ([]*model.BoardRecord, error)
	DeleteBoard(ctx context.Context, id model.BoardID) error
}
