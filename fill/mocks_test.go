package fill

import (
	"context"
	"time"

	"github.com/martinjakubec/fxproxy/storage/types"
)

type (
	fetchLatestDelegate   func(context.Context, types.Currency) (*types.Payload, error)
	fetchHistoricDelegate func(context.Context, types.Currency, time.Time) (*types.Payload, error)
)

type mockClient struct {
	fetchLatestFn   fetchLatestDelegate
	fetchHistoricFn fetchHistoricDelegate
}

func (m *mockClient) FetchLatest(
	ctx context.Context,
	base types.Currency,
) (*types.Payload, error) {
	if m.fetchLatestFn != nil {
		return m.fetchLatestFn(ctx, base)
	}

	return nil, nil //nolint:nilnil // mock
}

func (m *mockClient) FetchHistoric(
	ctx context.Context,
	base types.Currency,
	day time.Time,
) (*types.Payload, error) {
	if m.fetchHistoricFn != nil {
		return m.fetchHistoricFn(ctx, base, day)
	}

	return nil, nil //nolint:nilnil // mock
}

type mockReference struct {
	conversionRatesFn func() map[types.Currency]float64
}

func (m *mockReference) ConversionRates() map[types.Currency]float64 {
	if m.conversionRatesFn != nil {
		return m.conversionRatesFn()
	}

	return nil
}
