package mocks

import (
	"fmt"

	"github.com/mcoot/azulboard/internal/dependencies/random"
)

// MockRandom hands out queued strings, then sequential fallbacks
type MockRandom struct {
	queue []string
	calls int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// String returns the next queued value, or "ID<n>" once the queue is drained
func (r *MockRandom) String(length int, alphabet string) string {
	r.calls++
	if len(r.queue) == 0 {
		return fmt.Sprintf("ID%d", r.calls)
	}
	next := r.queue[0]
	r.queue = r.queue[1:]
	return next
}

// QueueString adds values to the result queue
func (r *MockRandom) QueueString(values ...string) {
	r.queue = append(r.queue, values...)
}
