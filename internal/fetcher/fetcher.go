package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/time/rate"
)

// retryStatuses are response statuses retried by the transport when transport retries are enabled.
var retryStatuses = []int{
	http.StatusBadGateway,
	http.StatusServiceUnavailable,
	http.StatusGatewayTimeout,
}

// Result is outcome of a single page fetch: parsed document or failure reason.
type Result struct {
	Document *goquery.Document
	Err      error
}

// OK reports whether page was fetched and parsed.
func (r Result) OK() bool {
	return r.Err == nil && r.Document != nil
}

// Reason returns failure reason of not ok result.
func (r Result) Reason() error {
	if r.Err == nil && r.Document == nil {
		return ErrEmptyDocument
	}
	return r.Err
}

// Option is custom configuration of Fetcher.
type Option func(f *Fetcher)

// Fetcher fetches html pages via http and parses them into documents.
// It is safe for concurrent use.
type Fetcher struct {
	client  *resty.Client
	limiter *rate.Limiter
}

// NewClient returns resty client sending provided headers with every request.
// Transport-level retries on 502, 503 and 504 are made only when retries is greater than zero.
func NewClient(httpClient *http.Client, headers map[string]string, retries int, retryWait time.Duration, logger *zerolog.Logger) *resty.Client {
	client := resty.NewWithClient(httpClient).
		SetHeaders(headers).
		SetLogger(restyLogger{logger: logger}).
		SetRetryCount(max(retries, 0)).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryWait).
		AddRetryCondition(func(resp *resty.Response, _ error) bool {
			return resp != nil && lo.Contains(retryStatuses, resp.StatusCode())
		})

	return client
}

// NewFetcher returns new Fetcher.
func NewFetcher(client *resty.Client, ops ...Option) *Fetcher {
	fet := &Fetcher{
		client: client,
	}

	for _, op := range ops {
		op(fet)
	}

	return fet
}

// Fetch returns parsed html document from provided url or failure reason.
func (f *Fetcher) Fetch(ctx context.Context, url string) Result {
	if url == "" {
		return Result{Err: ErrEmptyURL}
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return Result{Err: fmt.Errorf("can't wait for request slot: %w", err)}
		}
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html,application/xhtml+xml").
		Get(url)
	if err != nil {
		return Result{Err: fmt.Errorf("can't get http response: %w", err)}
	}

	if resp.StatusCode() != http.StatusOK {
		return Result{Err: fmt.Errorf("%w: got %d", ErrStatusNotOK, resp.StatusCode())}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return Result{Err: fmt.Errorf("can't parse html document: %w", err)}
	}

	return Result{Document: doc}
}

// WithRateLimit makes Fetcher wait at least interval between consecutive requests.
// The limit is shared by all goroutines using the Fetcher. Non-positive interval disables it.
func WithRateLimit(interval time.Duration) Option {
	return func(f *Fetcher) {
		if interval <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
}
