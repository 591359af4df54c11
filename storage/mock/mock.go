package mock

import (
	"context"
	"time"

	"github.com/martinjakubec/fxproxy/storage/types"
)

type (
	SaveSnapshotDelegate     func(context.Context, *types.Snapshot) error
	SnapshotForDayDelegate   func(context.Context, types.Currency, time.Time) (*types.Snapshot, error)
	SnapshotsForDaysDelegate func(context.Context, types.Currency, []time.Time) ([]*types.Snapshot, error)
)

type Storage struct {
	SaveSnapshotFn     SaveSnapshotDelegate
	SnapshotForDayFn   SnapshotForDayDelegate
	SnapshotsForDaysFn SnapshotsForDaysDelegate
}

func (m *Storage) SaveSnapshot(ctx context.Context, snap *types.Snapshot) error {
	if m.SaveSnapshotFn != nil {
		return m.SaveSnapshotFn(ctx, snap)
	}

	return nil
}

func (m *Storage) SnapshotForDay(
	ctx context.Context,
	currency types.Currency,
	day time.Time,
) (*types.Snapshot, error) {
	if m.SnapshotForDayFn != nil {
		return m.SnapshotForDayFn(ctx, currency, day)
	}

	return nil, nil
}

func (m *Storage) SnapshotsForDays(
	ctx context.Context,
	currency types.Currency,
	days []time.Time,
) ([]*types.Snapshot, error) {
	if m.SnapshotsForDaysFn != nil {
		return m.SnapshotsForDaysFn(ctx, currency, days)
	}

	return nil, nil
}
