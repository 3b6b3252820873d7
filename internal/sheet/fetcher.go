package sheet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Fetcher retrieves the published CSV export of a sheet.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// HTTPFetcher fetches over HTTP with a client-side rate limit so repeated
// snapshot refreshes do not hammer the publishing endpoint.
type HTTPFetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

func NewHTTPFetcher(reqPerSec int) *HTTPFetcher {
	if reqPerSec <= 0 {
		reqPerSec = 1
	}
	return &HTTPFetcher{
		client:  &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(reqPerSec), reqPerSec),
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// FetchRows downloads a sheet and parses it into header-keyed rows.
func FetchRows(ctx context.Context, f Fetcher, url string) ([]Row, error) {
	body, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	defer body.Close()

	rows, err := ParseRows(body)
	if err != nil {
		return nil, fmt.Errorf("parse sheet: %w", err)
	}
	return rows, nil
}
