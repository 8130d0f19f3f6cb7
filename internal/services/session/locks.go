package session

import (
	"sync"

	"github.com/mcoot/azulboard/internal/model"
)

// boardLocks serialises operations on the same board. Entries are dropped once no
// caller holds or waits on them.
type boardLocks struct {
	mu    sync.Mutex
	locks map[model.BoardID]*boardLock
}

type boardLock struct {
	mu   sync.Mutex
	refs int
}

func newBoardLocks() *boardLocks {
	return &boardLocks{locks: make(map[model.BoardID]*boardLock)}
}

// lock blocks until the caller owns the board and returns the matching unlock
func (l *boardLocks) lock(id model.BoardID) func() {
	l.mu.Lock()
	bl, ok := l.locks[id]
	if !ok {
		bl = &boardLock{}
		l.locks[id] = bl
	}
	bl.refs++
	l.mu.Unlock()

	bl.mu.Lock()
	return func() {
		bl.mu.Unlock()

		l.mu.Lock()
		bl.refs--
		if bl.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

// size returns the number of boards currently locked or awaited
func (l *boardLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
