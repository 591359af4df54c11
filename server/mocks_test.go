package server

import (
	"context"
	"time"

	"github.com/martinjakubec/fxproxy/storage/types"
)

type (
	latestDelegate  func(context.Context, types.Currency) (*types.Payload, error)
	historyDelegate func(
		context.Context,
		types.Currency,
		types.Currency,
		time.Time,
		time.Time,
	) (*types.History, error)
)

type mockRateService struct {
	latestFn  latestDelegate
	historyFn historyDelegate
}

func (m *mockRateService) Latest(
	ctx context.Context,
	base types.Currency,
) (*types.Payload, error) {
	if m.latestFn != nil {
		return m.latestFn(ctx, base)
	}

	return nil, nil //nolint:nilnil // mock
}

func (m *mockRateService) History(
	ctx context.Context,
	base types.Currency,
	target types.Currency,
	start time.Time,
	end time.Time,
) (*types.History, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, base, target, start, end)
	}

	return nil, nil //nolint:nilnil // mock
}
