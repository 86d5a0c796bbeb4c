package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisLimiter(t *testing.T, limit int, window time.Duration) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisLimiter(client, limit, window), mr
}

func TestRedisLimiter_RemainingSequence(t *testing.T) {
	rl, _ := newTestRedisLimiter(t, 3, 15*time.Minute)
	ctx := context.Background()

	for i, wantRemaining := range []int{2, 1, 0} {
		dec, err := rl.Allow(ctx, "1.2.3.4")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !dec.Allowed {
			t.Fatalf("request %d: expected allowed", i+1)
		}
		if dec.Remaining != wantRemaining {
			t.Errorf("request %d: expected remaining=%d, got %d", i+1, wantRemaining, dec.Remaining)
		}
	}

	dec, err := rl.Allow(ctx, "1.2.3.4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec.Allowed {
		t.Error("expected 4th request to be denied")
	}
	if dec.Remaining != 0 {
		t.Errorf("expected remaining=0 when denied, got %d", dec.Remaining)
	}
}

func TestRedisLimiter_WindowExpiry(t *testing.T) {
	rl, mr := newTestRedisLimiter(t, 3, 15*time.Minute)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		rl.Allow(ctx, "1.2.3.4")
	}

	mr.FastForward(16 * time.Minute)

	dec, err := rl.Allow(ctx, "1.2.3.4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dec.Allowed {
		t.Fatal("expected allowed after the window expired")
	}
	if dec.Remaining != 2 {
		t.Errorf("expected remaining=limit-1 in a fresh window, got %d", dec.Remaining)
	}
}

func TestRedisLimiter_KeysIndependent(t *testing.T) {
	rl, _ := newTestRedisLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if dec, _ := rl.Allow(ctx, "a"); !dec.Allowed {
		t.Fatal("expected first request for key a to be allowed")
	}
	if dec, _ := rl.Allow(ctx, "a"); dec.Allowed {
		t.Error("expected second request for key a to be denied")
	}
	if dec, _ := rl.Allow(ctx, "b"); !dec.Allowed {
		t.Error("expected request for key b to be allowed")
	}
}

// TestRedisLimiter_FailsOpen verifies an unreachable Redis yields an allowed
// decision plus the error.
func TestRedisLimiter_FailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	rl := NewRedisLimiter(client, 3, time.Minute)
	mr.Close()

	dec, err := rl.Allow(context.Background(), "1.2.3.4")
	if err == nil {
		t.Fatal("expected an error when Redis is unreachable")
	}
	if !dec.Allowed {
		t.Error("expected fail-open decision when Redis is unreachable")
	}
}
