package sheetsync

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aixxiteru/peta-jabatan/internal/shared/apperror"
)

//go:generate mockgen -source=sheetsync_client.go -destination=mock/sheetsync_client_mock.go -package=mock
type Fetcher interface {
	// Fetch returns the body of a 2xx response. Anything else is an
	// apperror.ErrSourceUnavailable.
	Fetch(ctx context.Context, url string) (string, error)
}

type httpFetcher struct {
	client *http.Client
}

// NewHTTPFetcher returns a Fetcher bounded by timeout; 0 disables it.
func NewHTTPFetcher(timeout time.Duration) Fetcher {
	return &httpFetcher{client: &http.Client{Timeout: timeout}}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", apperror.ErrSourceUnavailable.WithCause(err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", apperror.ErrSourceUnavailable.WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", apperror.ErrSourceUnavailable.WithCause(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperror.ErrSourceUnavailable.WithCause(err)
	}
	return string(body), nil
}
