package cache

import (
	"context"
	"testing"
	"time"
)

func TestStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)

	if _, ok := s.Get(ctx, "leaderboard:global"); ok {
		t.Fatalf("expected miss before set")
	}

	s.Set(ctx, "leaderboard:global", []string{"u-1", "u-2"})

	val, ok := s.Get(ctx, "leaderboard:global")
	if !ok {
		t.Fatalf("expected hit after set")
	}
	got, ok := val.([]string)
	if !ok || len(got) != 2 || got[0] != "u-1" {
		t.Fatalf("unexpected cached value: %v", val)
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	s.Set(ctx, "key", "value")

	now = now.Add(59 * time.Second)
	if _, ok := s.Get(ctx, "key"); !ok {
		t.Fatalf("expected hit before ttl elapses")
	}

	now = now.Add(2 * time.Second)
	if _, ok := s.Get(ctx, "key"); ok {
		t.Fatalf("expected miss after ttl elapses")
	}
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	s := NewStore(0)

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	s.Set(ctx, "key", "value")

	now = now.Add(24 * time.Hour)
	if _, ok := s.Get(ctx, "key"); !ok {
		t.Fatalf("expected entry to survive with zero ttl")
	}
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)

	s.Set(ctx, "key", "value")
	s.Delete(ctx, "key")

	if _, ok := s.Get(ctx, "key"); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)

	s.Set(ctx, "leaderboard:global", 1)
	s.Set(ctx, "leaderboard:country:IN", 2)
	s.Set(ctx, "profile:u-1", 3)

	s.DeletePrefix(ctx, "leaderboard:")

	if _, ok := s.Get(ctx, "leaderboard:global"); ok {
		t.Fatalf("expected global leaderboard entry to be dropped")
	}
	if _, ok := s.Get(ctx, "leaderboard:country:IN"); ok {
		t.Fatalf("expected country leaderboard entry to be dropped")
	}
	if _, ok := s.Get(ctx, "profile:u-1"); !ok {
		t.Fatalf("expected unrelated entry to survive")
	}
}

func TestStore_EmptyKeyIsIgnored(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)

	s.Set(ctx, "", "value")
	if _, ok := s.Get(ctx, ""); ok {
		t.Fatalf("expected empty key to never hit")
	}
}
