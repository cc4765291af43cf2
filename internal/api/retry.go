package api

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net"
	"time"
)

// retryConfig controls backoff for the few non-critical calls that retry.
// The main request path never retries; a failed search or login surfaces
// immediately to the caller.
type retryConfig struct {
	maxRetries  int
	initialWait time.Duration
	maxWait     time.Duration
	multiplier  float64
}

// suggestionsRetry is deliberately short: suggestions are cosmetic and must
// not hold up typing.
var suggestionsRetry = retryConfig{
	maxRetries:  2,
	initialWait: 200 * time.Millisecond,
	maxWait:     time.Second,
	multiplier:  2.0,
}

// retryDo retries fn with exponential backoff on transient errors only.
func retryDo(ctx context.Context, rc retryConfig, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= rc.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !isRetryable(err) {
			return err
		}

		if attempt < rc.maxRetries {
			wait := time.Duration(float64(rc.initialWait) * math.Pow(rc.multiplier, float64(attempt)))
			if wait > rc.maxWait {
				wait = rc.maxWait
			}
			slog.Debug("api: retrying", slog.Int("attempt", attempt+1), slog.Duration("wait", wait), slog.Any("error", err))
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return lastErr
}

// isRetryable returns true for transient failures worth another attempt.
func isRetryable(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case 429, 500, 502, 503, 504:
			return true
		}
		return false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return false
}
