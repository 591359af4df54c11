package sql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/martinjakubec/fxproxy/storage/types"
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewStorage(pool *pgxpool.Pool) *Storage {
	return &Storage{
		pool: pool,
	}
}

func (s *Storage) SaveSnapshot(ctx context.Context, snap *types.Snapshot) error {
	const q = `
		INSERT INTO currency_day_data (currency, day, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (currency, day) DO NOTHING
	`

	payload, err := json.Marshal(snap.Payload)
	if err != nil {
		return fmt.Errorf("unable to encode snapshot payload: %w", err)
	}

	if _, err := s.pool.Exec(
		ctx,
		q,
		snap.Currency.String(),
		dayKey(snap.Day),
		payload,
	); err != nil {
		return fmt.Errorf("unable to save snapshot: %w", err)
	}

	return nil
}

func (s *Storage) SnapshotForDay(
	ctx context.Context,
	currency types.Currency,
	day time.Time,
) (*types.Snapshot, error) {
	const q = `
		SELECT payload
		FROM currency_day_data
		WHERE currency = $1 AND day = $2
	`

	var raw []byte

	err := s.pool.QueryRow(ctx, q, currency.String(), dayKey(day)).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil //nolint:nilnil // valid case
		}

		return nil, fmt.Errorf("unable to fetch snapshot: %w", err)
	}

	return parseSnapshot(currency, dayKey(day), raw)
}

func (s *Storage) SnapshotsForDays(
	ctx context.Context,
	currency types.Currency,
	days []time.Time,
) ([]*types.Snapshot, error) {
	const q = `
		SELECT day, payload
		FROM currency_day_data
		WHERE currency = $1 AND day = ANY($2)
		ORDER BY day
	`

	keys := make([]int64, 0, len(days))
	for _, day := range days {
		keys = append(keys, dayKey(day))
	}

	rows, err := s.pool.Query(ctx, q, currency.String(), keys)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch snapshots: %w", err)
	}
	defer rows.Close()

	out := make([]*types.Snapshot, 0, len(days))

	for rows.Next() {
		var (
			key int64
			raw []byte
		)

		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("unable to scan snapshot row: %w", err)
		}

		snap, err := parseSnapshot(currency, key, raw)
		if err != nil {
			return nil, err
		}

		out = append(out, snap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unable to read snapshot rows: %w", err)
	}

	return out, nil
}

// parseSnapshot parses a persisted row into the common snapshot type,
// tagged as cache-sourced
func parseSnapshot(currency types.Currency, key int64, raw []byte) (*types.Snapshot, error) {
	var payload types.Payload

	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("unable to decode snapshot payload: %w", err)
	}

	return &types.Snapshot{
		Currency: currency,
		Day:      keyToDay(key),
		Source:   types.SourceCache,
		Payload:  payload,
	}, nil
}

// dayKey converts the noon-normalized day to its persisted unix-milli form
func dayKey(day time.Time) int64 {
	return day.UTC().UnixMilli()
}

// keyToDay converts the persisted unix-milli value back to a day key
func keyToDay(key int64) time.Time {
	return time.UnixMilli(key).UTC()
}
