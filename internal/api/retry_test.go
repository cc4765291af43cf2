package api

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"http 429", &Error{Status: 429}, true},
		{"http 502", &Error{Status: 502}, true},
		{"http 503", &Error{Status: 503}, true},
		{"http 400", &Error{Status: 400}, false},
		{"http 401", &Error{Status: 401}, false},
		{"regular error", errors.New("something"), false},
		{"dns timeout", &net.DNSError{IsTimeout: true}, true},
		{"op error", &net.OpError{Op: "dial", Err: errors.New("refused")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRetryDoEventualSuccess(t *testing.T) {
	rc := retryConfig{maxRetries: 3, initialWait: time.Millisecond, maxWait: 10 * time.Millisecond, multiplier: 2}
	calls := 0
	err := retryDo(context.Background(), rc, func() error {
		calls++
		if calls < 3 {
			return &Error{Status: 503}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetryDoNonRetryableStops(t *testing.T) {
	rc := retryConfig{maxRetries: 3, initialWait: time.Millisecond, maxWait: 10 * time.Millisecond, multiplier: 2}
	calls := 0
	err := retryDo(context.Background(), rc, func() error {
		calls++
		return &Error{Status: 400, Message: "bad request"}
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetryDoExhausted(t *testing.T) {
	rc := retryConfig{maxRetries: 2, initialWait: time.Millisecond, maxWait: 5 * time.Millisecond, multiplier: 2}
	calls := 0
	err := retryDo(context.Background(), rc, func() error {
		calls++
		return &Error{Status: 503}
	})
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Status != 503 {
		t.Fatalf("expected 503 error, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls (1 + 2 retries), got %d", calls)
	}
}

func TestRetryDoContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rc := retryConfig{maxRetries: 5, initialWait: time.Millisecond, maxWait: 5 * time.Millisecond, multiplier: 2}
	err := retryDo(ctx, rc, func() error {
		t.Fatal("fn must not run after cancel")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSuggestionCacheRoundTrip(t *testing.T) {
	c := NewSuggestionCache("", time.Minute, 10)
	ctx := context.Background()

	if _, hit := c.Get(ctx, "dev"); hit {
		t.Fatal("unexpected hit on empty cache")
	}

	c.Set(ctx, "dev", []string{"developer", "devops"})
	got, hit := c.Get(ctx, "dev")
	if !hit {
		t.Fatal("expected hit after Set")
	}
	if len(got) != 2 || got[0] != "developer" {
		t.Errorf("got %v, want [developer devops]", got)
	}

	// Different query must miss.
	if _, hit := c.Get(ctx, "design"); hit {
		t.Error("unexpected hit for different query")
	}
}

func TestSuggestionCacheNilSafe(t *testing.T) {
	var c *SuggestionCache
	c.Set(context.Background(), "x", []string{"y"})
	if _, hit := c.Get(context.Background(), "x"); hit {
		t.Error("nil cache must never hit")
	}
}
