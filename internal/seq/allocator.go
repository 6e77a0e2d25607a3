// Package seq hands out stable numeric identifiers backed by a persisted
// counter, independent of the storage engine's own key generation.
package seq

import (
	"context"
	"fmt"

	"github.com/campuslaf/laf-backend/internal/store"
)

// Collection is the id surface of a target collection the allocator numbers.
type Collection interface {
	IDExists(ctx context.Context, id int64) (bool, error)
	MaxID(ctx context.Context) (int64, error)
}

// DefaultMaxAttempts bounds the drift-correction loop. The reference
// behavior retried forever; a bound makes persistent drift fail loudly
// instead of spinning.
const DefaultMaxAttempts = 8

// Allocator allocates ids from a named counter and self-heals when the
// counter has drifted behind ids inserted out of band.
type Allocator struct {
	counters    store.Counters
	maxAttempts int
}

func New(counters store.Counters) *Allocator {
	return &Allocator{counters: counters, maxAttempts: DefaultMaxAttempts}
}

// NextID returns an id that is not present in target. The normal path is one
// atomic increment; on a collision the counter is raised to the collection's
// max id and the increment retried.
func (a *Allocator) NextID(ctx context.Context, name string, target Collection) (int64, error) {
	for attempt := 0; attempt < a.maxAttempts; attempt++ {
		v, err := a.counters.Next(ctx, name)
		if err != nil {
			return 0, err
		}
		exists, err := target.IDExists(ctx, v)
		if err != nil {
			return 0, err
		}
		if !exists {
			return v, nil
		}

		// Counter is behind the data; raise it and try again.
		maxID, err := target.MaxID(ctx)
		if err != nil {
			return 0, err
		}
		if err := a.counters.RaiseTo(ctx, name, maxID); err != nil {
			return 0, err
		}
	}
	return 0, fmt.Errorf("sequence %q: no free id after %d attempts", name, a.maxAttempts)
}
