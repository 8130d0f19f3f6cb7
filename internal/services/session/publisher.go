package session

import "github.com/mcoot/azulboard/internal/model"

// Publisher is told about every persisted board change
type Publisher interface {
	BoardUpdated(record *model.BoardRecord)
	RoundFinished(record *model.BoardRecord, score *model.RoundScore)
	BoardDeleted(id model.BoardID)
}

type nopPublisher struct{}

func (nopPublisher) BoardUpdated(*model.BoardRecord)                     {}
func (nopPublisher) RoundFinished(*model.BoardRecord, *model.RoundScore) {}
func (nopPublisher) BoardDeleted(model.BoardID)                          {}
