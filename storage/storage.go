package storage

import (
	"context"
	"time"

	"github.com/martinjakubec/fxproxy/storage/types"
)

// Storage is an abstraction over persisted day-keyed rate snapshots
type Storage interface {
	// SaveSnapshot persists the given snapshot. Inserting a duplicate
	// (currency, day) pair is not an error: the store keeps the existing
	// snapshot and discards the new one
	SaveSnapshot(context.Context, *types.Snapshot) error

	// SnapshotForDay fetches the snapshot for the given currency and day key,
	// or nil if none is persisted
	SnapshotForDay(context.Context, types.Currency, time.Time) (*types.Snapshot, error)

	// SnapshotsForDays fetches the subset of the given day keys that is
	// persisted for the currency. Missing days are not an error
	SnapshotsForDays(context.Context, types.Currency, []time.Time) ([]*types.Snapshot, error)
}
