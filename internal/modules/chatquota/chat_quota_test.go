// README: Chat quota tests (allowance boundary and daily key expiry).
package chatquota

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// TestUseBoundary verifies that the allowance is consumed exactly limit
// times and blocked afterwards.
func TestUseBoundary(t *testing.T) {
	svc, _ := setupTestService(t, 3)
	ctx := context.Background()

	for i := int64(2); i >= 0; i-- {
		remaining, err := svc.Use(ctx, "visitor-a")
		if err != nil {
			t.Fatalf("Use within allowance: %v", err)
		}
		if remaining != i {
			t.Fatalf("remaining = %d, want %d", remaining, i)
		}
	}

	if _, err := svc.Use(ctx, "visitor-a"); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}

	// Another visitor is unaffected.
	if _, err := svc.Use(ctx, "visitor-b"); err != nil {
		t.Fatalf("independent visitor blocked: %v", err)
	}
}

// TestRefundRestoresAllowance verifies that refunding a charged message
// gives the unit back, so a failed assistant turn costs nothing.
func TestRefundRestoresAllowance(t *testing.T) {
	svc, _ := setupTestService(t, 2)
	ctx := context.Background()

	remaining, err := svc.Use(ctx, "visitor-r")
	if err != nil {
		t.Fatalf("Use: %v", err)
	}
	if remaining != 1 {
		t.Fatalf("remaining = %d, want 1", remaining)
	}

	if err := svc.Refund(ctx, "visitor-r"); err != nil {
		t.Fatalf("Refund: %v", err)
	}
	if remaining, err = svc.Use(ctx, "visitor-r"); err != nil || remaining != 1 {
		t.Fatalf("Use after refund = (%d, %v), want (1, nil)", remaining, err)
	}

	// The refunded unit extends the day by exactly one message.
	if _, err := svc.Use(ctx, "visitor-r"); err != nil {
		t.Fatalf("Use last unit: %v", err)
	}
	if _, err := svc.Use(ctx, "visitor-r"); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
}

// TestKeyExpiresAtMidnight verifies that the first bump of the day sets a
// TTL reaching local midnight.
func TestKeyExpiresAtMidnight(t *testing.T) {
	svc, rdb := setupTestService(t, 5)
	ctx := context.Background()

	if _, err := svc.Use(ctx, "visitor-ttl"); err != nil {
		t.Fatalf("Use: %v", err)
	}

	key := fmt.Sprintf("chat:quota:%s:%s", "visitor-ttl", time.Now().UTC().Format("2006-01-02"))
	ttl, err := rdb.TTL(ctx, key).Result()
	if err != nil {
		t.Fatalf("ttl: %v", err)
	}
	if ttl <= 0 || ttl > 24*time.Hour {
		t.Fatalf("ttl = %v, want within (0, 24h]", ttl)
	}
}

// setupTestService creates a real redis-backed Service for integration
// tests. It skips the test when ATX_TEST_REDIS_ADDR is not set.
func setupTestService(t *testing.T, limit int) (*Service, *redis.Client) {
	t.Helper()

	addr := os.Getenv("ATX_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("ATX_TEST_REDIS_ADDR not set; skipping redis-backed tests")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	t.Cleanup(func() { rdb.Close() })

	ctx := context.Background()
	if err := rdb.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("flush test db: %v", err)
	}

	return NewService(NewStore(rdb, time.UTC), limit), rdb
}
