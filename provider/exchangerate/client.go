package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/martinjakubec/fxproxy/storage/types"
)

// Client talks to an exchangerate-api compatible upstream. Every call is
// attempted exactly once; there is no retry policy
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewClient creates a new upstream client instance
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// LatestURL addresses the provider's current-rates endpoint for the currency
func (c *Client) LatestURL(base types.Currency) string {
	return fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, base)
}

// HistoricURL addresses the provider's exact-calendar-day endpoint
func (c *Client) HistoricURL(base types.Currency, day time.Time) string {
	u := day.UTC()

	return fmt.Sprintf(
		"%s/%s/history/%s/%d/%d/%d",
		c.baseURL,
		c.apiKey,
		base,
		u.Year(),
		int(u.Month()),
		u.Day(),
	)
}

// FetchLatest fetches the current rates for the base currency
func (c *Client) FetchLatest(ctx context.Context, base types.Currency) (*types.Payload, error) {
	return c.fetch(ctx, c.LatestURL(base))
}

// FetchHistoric fetches the rates for the base currency on the given day.
// A payload whose result field signals a logical provider error is returned
// as-is; callers decide whether a decline is fatal
func (c *Client) FetchHistoric(
	ctx context.Context,
	base types.Currency,
	day time.Time,
) (*types.Payload, error) {
	return c.fetch(ctx, c.HistoricURL(base, day))
}

func (c *Client) fetch(ctx context.Context, url string) (*types.Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("unable to create new GET request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to execute GET request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("invalid status code received: %d", resp.StatusCode)
	}

	var payload types.Payload

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("unable to decode response: %w", err)
	}

	return &payload, nil
}
