package cache

import (
	"context"
	"testing"

	"github.com/tripforge/tripforge/internal/testutil"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()

	redisURL := testutil.RequireEnv(t, "REDIS_URL")
	ctx := context.Background()

	c, err := New(ctx, redisURL)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { c.Close() })

	if err := c.FlushDB(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}
	return c
}

func TestAuthRateLimitBurstThenDeny(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	const burst = 3
	for i := 0; i < burst; i++ {
		result, err := c.CheckAuthRateLimit(ctx, "203.0.113.9", 1, burst)
		if err != nil {
			t.Fatalf("check %d: %v", i, err)
		}
		if !result.Allowed {
			t.Fatalf("request %d within burst denied", i)
		}
	}

	result, err := c.CheckAuthRateLimit(ctx, "203.0.113.9", 1, burst)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if result.Allowed {
		t.Error("request beyond burst should be denied")
	}
	if result.RetryAfter <= 0 {
		t.Errorf("RetryAfter = %v, want positive", result.RetryAfter)
	}
}

func TestAuthRateLimitPerIP(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	// Drain one IP's budget entirely.
	for i := 0; i < 5; i++ {
		if _, err := c.CheckAuthRateLimit(ctx, "203.0.113.1", 1, 2); err != nil {
			t.Fatalf("check: %v", err)
		}
	}

	result, err := c.CheckAuthRateLimit(ctx, "203.0.113.2", 1, 2)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !result.Allowed {
		t.Error("a different IP must not share the exhausted bucket")
	}
}

func TestFlushDBResetsBuckets(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := c.CheckAuthRateLimit(ctx, "203.0.113.7", 1, 2); err != nil {
			t.Fatalf("check: %v", err)
		}
	}
	result, err := c.CheckAuthRateLimit(ctx, "203.0.113.7", 1, 2)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if result.Allowed {
		t.Fatal("bucket should be exhausted before the flush")
	}

	if err := c.FlushDB(ctx); err != nil {
		t.Fatalf("FlushDB: %v", err)
	}

	result, err = c.CheckAuthRateLimit(ctx, "203.0.113.7", 1, 2)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !result.Allowed {
		t.Error("flush should reset the bucket")
	}
}

func TestAuthRateLimitDisabledByZeroRate(t *testing.T) {
	c := newTestCache(t)

	result, err := c.CheckAuthRateLimit(context.Background(), "203.0.113.3", 0, 5)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !result.Allowed {
		t.Error("zero rate disables the limit")
	}
}
