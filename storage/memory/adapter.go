package memory

import (
	"context"
	"sync"
	"time"

	"github.com/martinjakubec/fxproxy/storage/types"
)

type key struct {
	currency string
	day      int64 // unix millis, noon-normalized
}

type Storage struct {
	data map[key]types.Payload

	mu sync.RWMutex
}

func NewStorage() *Storage {
	return &Storage{
		data: make(map[key]types.Payload),
	}
}

func (s *Storage) SaveSnapshot(_ context.Context, snap *types.Snapshot) error {
	k := key{
		currency: snap.Currency.String(),
		day:      snap.Day.UTC().UnixMilli(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[k]; ok {
		return nil // existing snapshot wins
	}

	s.data[k] = snap.Payload

	return nil
}

func (s *Storage) SnapshotForDay(
	_ context.Context,
	currency types.Currency,
	day time.Time,
) (*types.Snapshot, error) {
	k := key{
		currency: currency.String(),
		day:      day.UTC().UnixMilli(),
	}

	s.mu.RLock()
	payload, ok := s.data[k]
	s.mu.RUnlock()

	if !ok {
		return nil, nil //nolint:nilnil // valid case
	}

	return &types.Snapshot{
		Currency: currency,
		Day:      time.UnixMilli(k.day).UTC(),
		Source:   types.SourceCache,
		Payload:  payload,
	}, nil
}

func (s *Storage) SnapshotsForDays(
	_ context.Context,
	currency types.Currency,
	days []time.Time,
) ([]*types.Snapshot, error) {
	out := make([]*types.Snapshot, 0, len(days))

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, day := range days {
		k := key{
			currency: currency.String(),
			day:      day.UTC().UnixMilli(),
		}

		payload, ok := s.data[k]
		if !ok {
			continue
		}

		out = append(out, &types.Snapshot{
			Currency: currency,
			Day:      time.UnixMilli(k.day).UTC(),
			Source:   types.SourceCache,
			Payload:  payload,
		})
	}

	return out, nil
}
