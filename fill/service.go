package fill

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/martinjakubec/fxproxy/metrics"
	"github.com/martinjakubec/fxproxy/storage"
	"github.com/martinjakubec/fxproxy/storage/types"
)

var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Client is the upstream rate provider the service fills cache gaps from
type Client interface {
	// FetchLatest fetches the current rates for the base currency
	FetchLatest(ctx context.Context, base types.Currency) (*types.Payload, error)

	// FetchHistoric fetches the rates for the base currency on the given day
	FetchHistoric(ctx context.Context, base types.Currency, day time.Time) (*types.Payload, error)
}

// Service reconciles requested days against the persisted snapshot store,
// fetching only the missing ones from upstream
type Service struct {
	storage storage.Storage
	client  Client

	logger    *slog.Logger
	metrics   *metrics.Metrics
	reference Reference

	// restricted marks a provider tier without historic-data access;
	// missing range days are then backfilled with synthetic snapshots
	restricted bool

	now    func() time.Time
	randFn func() float64
}

// NewService creates a new cache-fill service instance
func NewService(storage storage.Storage, client Client, opts ...Option) *Service {
	s := &Service{
		storage:   storage,
		client:    client,
		logger:    noopLogger,
		reference: StaticReference(),
		now:       time.Now,
		randFn:    rand.Float64,
	}

	// Apply the options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Latest returns the rates payload for the base currency, keyed to the
// current calendar day. A cached snapshot for today is served directly;
// otherwise the payload is fetched upstream and persisted best-effort
func (s *Service) Latest(ctx context.Context, base types.Currency) (*types.Payload, error) {
	today := types.Noon(s.now())

	cached, err := s.storage.SnapshotForDay(ctx, base, today)
	if err != nil {
		return nil, fmt.Errorf("unable to look up cached snapshot: %w", err)
	}

	if cached != nil {
		s.metrics.CacheHit()
		s.logger.Debug(
			"serving latest rates from cache",
			"currency", base,
			"day", types.FormatDay(today),
		)

		return &cached.Payload, nil
	}

	s.metrics.CacheMiss()
	s.logger.Debug(
		"fetching latest rates from upstream",
		"currency", base,
	)

	payload, err := s.client.FetchLatest(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch latest rates: %w", err)
	}

	s.metrics.LatestFetch()

	s.persist(ctx, &types.Snapshot{
		Currency: base,
		Day:      today,
		Source:   types.SourceProvider,
		Payload:  *payload,
	})

	return payload, nil
}

// History returns the day-by-day rates for the base / target pair over the
// inclusive [start, end] range. Days already persisted are served from the
// store; the missing subset is fetched concurrently from upstream, persisted
// best-effort and merged into one date-ascending result
func (s *Service) History(
	ctx context.Context,
	base types.Currency,
	target types.Currency,
	start time.Time,
	end time.Time,
) (*types.History, error) {
	days := types.DaysInRange(types.Noon(start), types.Noon(end))

	cached, err := s.storage.SnapshotsForDays(ctx, base, days)
	if err != nil {
		return nil, fmt.Errorf("unable to look up cached snapshots: %w", err)
	}

	present := make(map[int64]struct{}, len(cached))
	for _, snap := range cached {
		present[snap.Day.UnixMilli()] = struct{}{}
	}

	missing := make([]time.Time, 0, len(days)-len(cached))

	for _, day := range days {
		if _, ok := present[day.UnixMilli()]; !ok {
			missing = append(missing, day)
		}
	}

	s.logger.Debug(
		"filling history range",
		"currency", base,
		"days", len(days),
		"cached", len(cached),
		"missing", len(missing),
	)

	fetched, err := s.fetchMissing(ctx, base, missing)
	if err != nil {
		return nil, err
	}

	merged := make([]*types.Snapshot, 0, len(days))
	merged = append(merged, cached...)

	for _, snap := range fetched {
		if snap == nil {
			continue // provider declined the day
		}

		s.persist(ctx, snap)

		merged = append(merged, snap)
	}

	if s.restricted {
		merged = append(merged, s.synthesize(base, days, merged)...)
	}

	// Merge order is cache, then fetch, then fallback; the response
	// ordering contract is date-ascending, so sort explicitly
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Day.Before(merged[j].Day)
	})

	return normalize(base, target, merged), nil
}

// fetchMissing issues one historic fetch per missing day, concurrently.
// All fetches complete (or fault) before the merge proceeds. A transport
// failure aborts the whole range; a logical provider decline yields a nil
// slot and is treated as absence
func (s *Service) fetchMissing(
	ctx context.Context,
	base types.Currency,
	missing []time.Time,
) ([]*types.Snapshot, error) {
	fetched := make([]*types.Snapshot, len(missing))

	group, gCtx := errgroup.WithContext(ctx)

	for i, day := range missing {
		group.Go(func() error {
			payload, err := s.client.FetchHistoric(gCtx, base, day)
			if err != nil {
				return fmt.Errorf(
					"unable to fetch rates for %s: %w",
					types.FormatDay(day),
					err,
				)
			}

			s.metrics.HistoricFetch()

			if payload.Declined() {
				s.metrics.DeclinedFetch()
				s.logger.Debug(
					"provider declined historic data",
					"currency", base,
					"day", types.FormatDay(day),
				)

				return nil
			}

			// The day key is rebuilt from the payload's own date fields
			effective, ok := payload.EffectiveDay()
			if !ok {
				effective = day
			}

			fetched[i] = &types.Snapshot{
				Currency: base,
				Day:      effective,
				Source:   types.SourceProvider,
				Payload:  *payload,
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return fetched, nil
}

// synthesize generates a plausible snapshot for every range day still absent
// after the fetch round: each reference rate perturbed uniformly within ±10%,
// the base currency pinned to exactly 1. Synthetic snapshots are tagged and
// never persisted
func (s *Service) synthesize(
	base types.Currency,
	days []time.Time,
	merged []*types.Snapshot,
) []*types.Snapshot {
	have := make(map[int64]struct{}, len(merged))
	for _, snap := range merged {
		have[snap.Day.UnixMilli()] = struct{}{}
	}

	reference := s.reference.ConversionRates()

	out := make([]*types.Snapshot, 0, len(days)-len(merged))

	for _, day := range days {
		if _, ok := have[day.UnixMilli()]; ok {
			continue
		}

		rates := make(map[types.Currency]float64, len(reference))

		for code, rate := range reference {
			if code == base {
				rates[code] = 1

				continue
			}

			rates[code] = s.jitter(rate, 10)
		}

		s.metrics.SyntheticSnapshot()

		out = append(out, &types.Snapshot{
			Currency: base,
			Day:      day,
			Source:   types.SourceSynthetic,
			Payload: types.Payload{
				Result:          "success",
				BaseCode:        base,
				ConversionRates: rates,
			},
		})
	}

	return out
}

// jitter perturbs the amount by a uniformly random offset within
// ±percent of its value
func (s *Service) jitter(amount, percent float64) float64 {
	variance := percent / 100 * amount

	return amount + (s.randFn()*2-1)*variance
}

// persist saves the snapshot best-effort. The data is already in hand for
// the caller, so a failed write is logged and never fails the read path
func (s *Service) persist(ctx context.Context, snap *types.Snapshot) {
	if err := s.storage.SaveSnapshot(ctx, snap); err != nil {
		s.logger.Error(
			"unable to save snapshot",
			"currency", snap.Currency,
			"day", types.FormatDay(snap.Day),
			"err", err,
		)
	}
}

// normalize reshapes the merged snapshots into the uniform response schema.
// A day whose payload carries no rate for the target currency keeps its
// entry with the rate absent
func normalize(
	base types.Currency,
	target types.Currency,
	snaps []*types.Snapshot,
) *types.History {
	points := make([]types.RatePoint, 0, len(snaps))

	for _, snap := range snaps {
		point := types.RatePoint{
			Date:   types.FormatDay(snap.Day),
			Source: snap.Source,
		}

		if rate, ok := snap.Payload.ConversionRates[target]; ok {
			point.Rate = &rate
		}

		points = append(points, point)
	}

	return &types.History{
		BaseCurrency:   base,
		TargetCurrency: target,
		Rates:          points,
	}
}
