package ical

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"staybook/internal/domain/calendar"
	"staybook/internal/pkg/config"
)

// Fetcher downloads and parses external calendar feeds.
type Fetcher struct {
	client  *http.Client
	maxBody int64
}

func NewFetcher(cfg config.ICalConfig) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: cfg.FetchTimeout},
		maxBody: cfg.MaxBodyBytes,
	}
}

func NewFetcherWithClient(client *http.Client, maxBody int64) *Fetcher {
	return &Fetcher{client: client, maxBody: maxBody}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &SyncError{Reason: ReasonUnreachable, Err: err}
	}
	req.Header.Set("Accept", "text/calendar")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &SyncError{Reason: transportReason(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &SyncError{Reason: ReasonBadStatus, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return nil, &SyncError{Reason: transportReason(err), Err: err}
	}
	if int64(len(body)) > f.maxBody {
		return nil, &SyncError{Reason: ReasonTooLarge, Err: fmt.Errorf("feed exceeds %d bytes", f.maxBody)}
	}
	return body, nil
}

// Import fetches url and parses it into intervals for propertyID.
func (f *Fetcher) Import(ctx context.Context, url string, propertyID int64, now time.Time) ([]*calendar.BlockedInterval, error) {
	body, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return Parse(body, propertyID, now)
}

func transportReason(err error) SyncReason {
	if errors.Is(err, context.DeadlineExceeded) {
		return ReasonTimeout
	}
	var te interface{ Timeout() bool }
	if errors.As(err, &te) && te.Timeout() {
		return ReasonTimeout
	}
	return ReasonUnreachable
}
