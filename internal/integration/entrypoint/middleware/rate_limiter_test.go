package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, maxAttempts int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRateLimiterWithConfig(client, maxAttempts, window), server
}

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("allows attempts up to the limit", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 5, time.Minute)

		for i := 1; i <= 5; i++ {
			allowed, err := limiter.allow(context.Background(), "10.0.0.1")
			if err != nil {
				t.Fatalf("attempt %d: unexpected error: %v", i, err)
			}
			if !allowed {
				t.Errorf("attempt %d: expected to be allowed", i)
			}
		}
	})

	t.Run("blocks the attempt past the limit", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 5, time.Minute)

		for i := 0; i < 5; i++ {
			if _, err := limiter.allow(context.Background(), "10.0.0.2"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		allowed, err := limiter.allow(context.Background(), "10.0.0.2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if allowed {
			t.Error("expected sixth attempt to be blocked")
		}
	})

	t.Run("counters are per client", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 1, time.Minute)

		if allowed, _ := limiter.allow(context.Background(), "10.0.0.3"); !allowed {
			t.Error("expected first client to be allowed")
		}
		if allowed, _ := limiter.allow(context.Background(), "10.0.0.4"); !allowed {
			t.Error("expected second client to be allowed")
		}
		if allowed, _ := limiter.allow(context.Background(), "10.0.0.3"); allowed {
			t.Error("expected first client to be blocked on its second attempt")
		}
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		limiter, server := newTestLimiter(t, 1, time.Minute)

		if _, err := limiter.allow(context.Background(), "10.0.0.5"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if allowed, _ := limiter.allow(context.Background(), "10.0.0.5"); allowed {
			t.Fatal("expected second attempt to be blocked before expiry")
		}

		server.FastForward(time.Minute + time.Second)

		allowed, err := limiter.allow(context.Background(), "10.0.0.5")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Error("expected attempt after window expiry to be allowed")
		}
	})

	t.Run("reset clears all counters", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 1, time.Minute)

		if _, err := limiter.allow(context.Background(), "10.0.0.6"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := limiter.Reset(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		allowed, err := limiter.allow(context.Background(), "10.0.0.6")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Error("expected attempt after reset to be allowed")
		}
	})
}
