package fetcher

import (
	"context"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

//go:generate mockery --name PageFetcher --filename pagefetcher.go

// PageFetcher fetches and parses single page.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) Result
}

// Retrier repeats failed page fetches a fixed number of times with a fixed delay between attempts.
type Retrier struct {
	fetcher  PageFetcher
	attempts int
	delay    time.Duration
	logger   *zerolog.Logger
}

// NewRetrier returns new Retrier. Attempts lower than 1 are treated as 1.
func NewRetrier(fetcher PageFetcher, attempts int, delay time.Duration, logger *zerolog.Logger) *Retrier {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Retrier{
		fetcher:  fetcher,
		attempts: max(attempts, 1),
		delay:    delay,
		logger:   logger,
	}
}

// Attempts returns maximum number of attempts made for single url.
func (r *Retrier) Attempts() int {
	return r.attempts
}

// Retry fetches page from url and extracts value from it.
// Failed fetches and extraction errors are retried; when all attempts fail, fallback is returned.
// Retry never returns an error, failures are only logged.
func Retry[T any](
	ctx context.Context,
	r *Retrier,
	url string,
	extract func(doc *goquery.Document) (T, error),
	fallback T,
) T {
	for attempt := 1; attempt <= r.attempts; attempt++ {
		value, err := fetchAndExtract(ctx, r.fetcher, url, extract)
		if err == nil {
			return value
		}

		r.logger.Warn().
			Err(err).
			Str("url", url).
			Int("attempt", attempt).
			Int("attempts", r.attempts).
			Msg("page fetch attempt failed")

		if attempt == r.attempts {
			break
		}

		if !r.wait(ctx) {
			r.logger.Warn().
				Err(ctx.Err()).
				Str("url", url).
				Msg("retrying cancelled")
			return fallback
		}
	}

	r.logger.Error().
		Str("url", url).
		Int("attempts", r.attempts).
		Msg("can't fetch page")

	return fallback
}

func fetchAndExtract[T any](
	ctx context.Context,
	fetcher PageFetcher,
	url string,
	extract func(doc *goquery.Document) (T, error),
) (T, error) {
	var zero T

	res := fetcher.Fetch(ctx, url)
	if !res.OK() {
		return zero, res.Reason()
	}

	return extract(res.Document)
}

// wait sleeps retry delay. It returns false if context was cancelled before delay passed.
func (r *Retrier) wait(ctx context.Context) bool {
	if r.delay <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(r.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
