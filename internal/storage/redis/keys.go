package redis

import (
	"fmt"

	"github.com/mcoot/azulboard/internal/model"
)

// Key prefix for all board data
const keyPrefix = "azul"

// boardKey returns the Redis key for a board record
func boardKey(id model.BoardID) string {
	return fmt.Sprintf("%s:board:%s", keyPrefix, id)
}

// boardIndexKey returns the Redis key for the SET of known board IDs
func boardIndexKey() string {
	return fmt.Sprintf("%s:idx:boards", keyPrefix)
}
