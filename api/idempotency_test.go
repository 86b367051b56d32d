package api

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestDeduper(t *testing.T, ttl time.Duration) (*RedisDeduper, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisDeduper(client, ttl), mr
}

func TestDeduperAddNewKey(t *testing.T) {
	deduper, _ := newTestDeduper(t, time.Hour)

	fresh, err := deduper.Add(context.Background(), "drop-1")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !fresh {
		t.Fatalf("first add must report a fresh key")
	}
}

func TestDeduperRejectsDuplicateKey(t *testing.T) {
	deduper, _ := newTestDeduper(t, time.Hour)
	ctx := context.Background()

	if _, err := deduper.Add(ctx, "drop-1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	fresh, err := deduper.Add(ctx, "drop-1")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if fresh {
		t.Fatalf("second add of the same key must report a duplicate")
	}
}

func TestDeduperKeysExpire(t *testing.T) {
	deduper, mr := newTestDeduper(t, time.Minute)

	if _, err := deduper.Add(context.Background(), "drop-1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if ttl := mr.TTL("intent:drop-1"); ttl != time.Minute {
		t.Fatalf("key ttl = %v, want %v", ttl, time.Minute)
	}
}
