package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Fetcher downloads the raw feed document over basic auth.
type Fetcher struct {
	httpClient *http.Client
	url        string
	username   string
	password   string
	userAgent  string
}

func NewFetcher(httpClient *http.Client, url, username, password, userAgent string) *Fetcher {
	return &Fetcher{
		httpClient: httpClient,
		url:        url,
		username:   username,
		password:   password,
		userAgent:  userAgent,
	}
}

// Run fetches the feed. Any transport failure or non-success status is
// returned as an error; without the feed there is nothing to reconcile.
func (f *Fetcher) Run(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(f.username, f.password)
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
