package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Interaction is one answered (or refused) chat question. The knowledge
// base itself is never persisted; only the request log is.
type Interaction struct {
	ID            string
	CreatedAt     time.Time
	Query         string
	Language      string
	Answer        string
	Refused       bool
	TopSimilarity float64
	DurationMs    int64
}
