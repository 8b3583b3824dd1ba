// Package owid fetches the Our World in Data COVID-19 CSV over HTTP.
package owid

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"covid-dashboard-service/internal/dataset/core/domain"
	"covid-dashboard-service/internal/dataset/core/ports"
	"covid-dashboard-service/internal/platform/logger"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Source struct {
	url      string
	client   HTTPDoer
	attempts int
	backoff  time.Duration
	log      logger.Logger
}

var _ ports.DatasetSourcePort = (*Source)(nil)

type Option func(*Source)

func WithAttempts(n int) Option {
	return func(s *Source) {
		if n > 0 {
			s.attempts = n
		}
	}
}

func WithBackoff(d time.Duration) Option {
	return func(s *Source) { s.backoff = d }
}

func WithLogger(l logger.Logger) Option {
	return func(s *Source) { s.log = l }
}

func NewSource(url string, client HTTPDoer, opts ...Option) *Source {
	if client == nil {
		client = &http.Client{Timeout: 2 * time.Minute}
	}
	s := &Source{
		url:      url,
		client:   client,
		attempts: 3,
		backoff:  500 * time.Millisecond,
		log:      logger.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Source) Name() string {
	return s.url
}

// FetchRecords downloads and parses the CSV. Transport errors and 5xx responses
// are retried with exponential backoff; schema errors are not.
func (s *Source) FetchRecords(ctx context.Context) ([]*domain.Record, error) {
	delay := s.backoff
	var lastErr error

	for attempt := 1; attempt <= s.attempts; attempt++ {
		records, err := s.fetchOnce(ctx)
		if err == nil {
			return records, nil
		}
		lastErr = err
		if !isRetryable(err) || attempt == s.attempts {
			break
		}

		s.log.Warn("dataset download failed, retrying",
			logger.Int("attempt", attempt),
			logger.Duration("delay", delay),
			logger.Error(err),
		)
		select {
		case <-ctx.Done():
			return nil, &domain.FetchError{Source: s.url, Err: ctx.Err()}
		case <-time.After(delay):
		}
		delay *= 2
	}

	return nil, &domain.FetchError{Source: s.url, Err: lastErr}
}

type retryableError struct{ err error }

func (e retryableError) Error() string { return e.err.Error() }
func (e retryableError) Unwrap() error { return e.err }

func isRetryable(err error) bool {
	var re retryableError
	return errors.As(err, &re)
}

func (s *Source) fetchOnce(ctx context.Context) ([]*domain.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, retryableError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
		if resp.StatusCode >= 500 {
			return nil, retryableError{err: err}
		}
		return nil, err
	}

	return ParseCSV(resp.Body)
}
