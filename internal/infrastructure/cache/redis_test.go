package cache

import (
	"context"
	"testing"
	"time"
)

func TestDisabledCacheBypasses(t *testing.T) {
	c := NewDisabled()
	ctx := context.Background()

	if err := c.SetJSON(ctx, "k", map[string]int{"a": 1}, time.Minute); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	var out map[string]int
	found, err := c.GetJSON(ctx, "k", &out)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if found {
		t.Fatalf("disabled cache must never hit")
	}
	if err := c.DeleteByPattern(ctx, "match:*"); err != nil {
		t.Fatalf("DeleteByPattern: %v", err)
	}
	if err := c.Ping(ctx); err == nil {
		t.Fatalf("expected ping to report unavailability")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestNilCacheIsSafe(t *testing.T) {
	var c *Redis
	found, err := c.GetJSON(context.Background(), "k", &struct{}{})
	if found || err != nil {
		t.Fatalf("expected miss without error, got %v %v", found, err)
	}
}
