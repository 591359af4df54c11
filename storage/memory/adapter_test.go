package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinjakubec/fxproxy/storage/types"
)

func testSnapshot(currency types.Currency, day time.Time, result string) *types.Snapshot {
	return &types.Snapshot{
		Currency: currency,
		Day:      day,
		Source:   types.SourceProvider,
		Payload: types.Payload{
			Result:   result,
			BaseCode: currency,
			ConversionRates: map[types.Currency]float64{
				"EUR": 0.9,
			},
		},
	}
}

func TestMemory_SaveAndLookup(t *testing.T) {
	t.Parallel()

	t.Run("save and look up", func(t *testing.T) {
		t.Parallel()

		var (
			s   = NewStorage()
			day = types.DayAt(2026, time.May, 10)
		)

		require.NoError(
			t,
			s.SaveSnapshot(context.Background(), testSnapshot("USD", day, "success")),
		)

		snap, err := s.SnapshotForDay(context.Background(), "USD", day)

		require.NoError(t, err)
		require.NotNil(t, snap)

		assert.Equal(t, types.Currency("USD"), snap.Currency)
		assert.Equal(t, day, snap.Day)
		assert.Equal(t, types.SourceCache, snap.Source)
		assert.Equal(t, "success", snap.Payload.Result)
	})

	t.Run("absent day", func(t *testing.T) {
		t.Parallel()

		s := NewStorage()

		snap, err := s.SnapshotForDay(
			context.Background(),
			"USD",
			types.DayAt(2026, time.May, 10),
		)

		require.NoError(t, err)
		assert.Nil(t, snap)
	})

	t.Run("currencies are isolated", func(t *testing.T) {
		t.Parallel()

		var (
			s   = NewStorage()
			day = types.DayAt(2026, time.May, 10)
		)

		require.NoError(
			t,
			s.SaveSnapshot(context.Background(), testSnapshot("USD", day, "success")),
		)

		snap, err := s.SnapshotForDay(context.Background(), "EUR", day)

		require.NoError(t, err)
		assert.Nil(t, snap)
	})
}

func TestMemory_DuplicateSave(t *testing.T) {
	t.Parallel()

	var (
		s   = NewStorage()
		day = types.DayAt(2026, time.May, 10)
	)

	require.NoError(
		t,
		s.SaveSnapshot(context.Background(), testSnapshot("USD", day, "first")),
	)

	// A second write for the same (currency, day) is a no-op
	require.NoError(
		t,
		s.SaveSnapshot(context.Background(), testSnapshot("USD", day, "second")),
	)

	snap, err := s.SnapshotForDay(context.Background(), "USD", day)

	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Equal(t, "first", snap.Payload.Result)
}

func TestMemory_SnapshotsForDays(t *testing.T) {
	t.Parallel()

	var (
		s = NewStorage()

		saved  = types.DayAt(2026, time.May, 10)
		saved2 = types.DayAt(2026, time.May, 12)
		absent = types.DayAt(2026, time.May, 11)
	)

	require.NoError(
		t,
		s.SaveSnapshot(context.Background(), testSnapshot("USD", saved, "success")),
	)
	require.NoError(
		t,
		s.SaveSnapshot(context.Background(), testSnapshot("USD", saved2, "success")),
	)

	snaps, err := s.SnapshotsForDays(
		context.Background(),
		"USD",
		[]time.Time{saved, absent, saved2},
	)

	require.NoError(t, err)
	require.Len(t, snaps, 2)

	// Only the persisted subset comes back
	assert.Equal(t, saved, snaps[0].Day)
	assert.Equal(t, saved2, snaps[1].Day)
}
