// Package store provides the persisted-collection abstraction backing all
// repositories: a collection is loaded whole, mutated in memory, and written
// back whole. Backings are swappable (JSON file or in-memory slice) without
// any change to the repositories built on top.
package store

import (
	"context"
	"errors"
)

// ErrCorrupt marks a backing resource that exists but cannot be decoded.
// Callers must surface it; resetting to an empty collection would be silent
// data loss.
var ErrCorrupt = errors.New("store: corrupt collection data")

// Store holds one ordered collection of records.
//
// Save replaces the entire collection. Load returns an empty slice when the
// backing resource does not exist yet; the resource is created lazily on the
// first Save. Neither call serializes concurrent read-modify-write cycles —
// that is the repositories' job.
type Store[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, records []T) error
}
