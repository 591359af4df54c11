package exchangerate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinjakubec/fxproxy/storage/types"
)

func TestClient_URLs(t *testing.T) {
	t.Parallel()

	t.Run("latest URL", func(t *testing.T) {
		t.Parallel()

		c := NewClient("https://api.example.com/v6/", "secret", time.Second)

		assert.Equal(
			t,
			"https://api.example.com/v6/secret/latest/USD",
			c.LatestURL("USD"),
		)
	})

	t.Run("historic URL", func(t *testing.T) {
		t.Parallel()

		c := NewClient("https://api.example.com/v6", "secret", time.Second)

		// Month and day are unpadded path segments
		assert.Equal(
			t,
			"https://api.example.com/v6/secret/history/EUR/2026/3/7",
			c.HistoricURL("EUR", types.DayAt(2026, time.March, 7)),
		)
	})
}

func TestClient_FetchLatest(t *testing.T) {
	t.Parallel()

	t.Run("valid response", func(t *testing.T) {
		t.Parallel()

		expected := &types.Payload{
			Result:   "success",
			BaseCode: "USD",
			ConversionRates: map[types.Currency]float64{
				"EUR": 0.96,
			},
		}

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/secret/latest/USD", r.URL.Path)

				require.NoError(t, json.NewEncoder(w).Encode(expected))
			}),
		)
		defer srv.Close()

		c := NewClient(srv.URL, "secret", time.Second)

		payload, err := c.FetchLatest(context.Background(), "USD")

		require.NoError(t, err)
		assert.Equal(t, expected, payload)
	})

	t.Run("non-2xx status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			}),
		)
		defer srv.Close()

		c := NewClient(srv.URL, "secret", time.Second)

		payload, err := c.FetchLatest(context.Background(), "USD")

		assert.Error(t, err)
		assert.Nil(t, payload)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not json"))
			}),
		)
		defer srv.Close()

		c := NewClient(srv.URL, "secret", time.Second)

		payload, err := c.FetchLatest(context.Background(), "USD")

		assert.Error(t, err)
		assert.Nil(t, payload)
	})
}

func TestClient_FetchHistoric(t *testing.T) {
	t.Parallel()

	t.Run("valid response", func(t *testing.T) {
		t.Parallel()

		expected := &types.Payload{
			Result:   "success",
			BaseCode: "USD",
			Year:     2026,
			Month:    3,
			Day:      7,
			ConversionRates: map[types.Currency]float64{
				"EUR": 0.96,
			},
		}

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/secret/history/USD/2026/3/7", r.URL.Path)

				require.NoError(t, json.NewEncoder(w).Encode(expected))
			}),
		)
		defer srv.Close()

		c := NewClient(srv.URL, "secret", time.Second)

		payload, err := c.FetchHistoric(
			context.Background(),
			"USD",
			types.DayAt(2026, time.March, 7),
		)

		require.NoError(t, err)
		assert.Equal(t, expected, payload)
	})

	t.Run("decline passed through", func(t *testing.T) {
		t.Parallel()

		// Tier restrictions come back as HTTP 200 with an error result
		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				require.NoError(t, json.NewEncoder(w).Encode(&types.Payload{
					Result: "error",
				}))
			}),
		)
		defer srv.Close()

		c := NewClient(srv.URL, "secret", time.Second)

		payload, err := c.FetchHistoric(
			context.Background(),
			"USD",
			types.DayAt(2026, time.March, 7),
		)

		require.NoError(t, err)
		require.NotNil(t, payload)

		assert.True(t, payload.Declined())
	})
}
