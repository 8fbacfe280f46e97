package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestOpenRedis_Success(t *testing.T) {
	// Start in-memory Redis
	s := miniredis.RunT(t)
	defer s.Close()

	// Use a non-zero DB to verify it's set
	c, err := OpenRedis(s.Addr(), 2)
	if err != nil {
		t.Fatalf("OpenRedis returned error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if got := c.Options().DB; got != 2 {
		t.Fatalf("client DB = %d, want 2", got)
	}
}

func TestOpenRedis_Failure(t *testing.T) {
	// Unresolvable host → Ping should fail immediately (no 5s delay)
	if _, err := OpenRedis("not-a-real-host:6379", 0); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func newTestStore(t *testing.T) (*miniredis.Miniredis, *Store) {
	t.Helper()
	s := miniredis.RunT(t)
	c, err := OpenRedis(s.Addr(), 0)
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return s, NewStore(c, 900*time.Second)
}

func TestStore_GetSetJSON(t *testing.T) {
	_, store := newTestStore(t)
	ctx := context.Background()

	type snap struct {
		ID     string `json:"id"`
		Raised string `json:"raised"`
	}

	var out snap
	hit, err := store.GetJSON(ctx, CampaignKey("c1"), &out)
	if err != nil {
		t.Fatalf("GetJSON miss err: %v", err)
	}
	if hit {
		t.Fatal("expected miss")
	}

	in := snap{ID: "c1", Raised: "150.00"}
	if err := store.SetJSON(ctx, CampaignKey("c1"), in, 0); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}

	hit, err = store.GetJSON(ctx, CampaignKey("c1"), &out)
	if err != nil || !hit {
		t.Fatalf("GetJSON hit=%v err=%v", hit, err)
	}
	if out != in {
		t.Fatalf("round trip: got %+v want %+v", out, in)
	}
}

func TestStore_DeletePattern(t *testing.T) {
	srv, store := newTestStore(t)
	ctx := context.Background()

	for _, k := range []string{"campaigns:list", "campaigns:TECHNOLOGY", "loan:x"} {
		if err := store.SetJSON(ctx, k, map[string]string{"k": k}, time.Minute); err != nil {
			t.Fatalf("SetJSON %s: %v", k, err)
		}
	}

	if err := store.DeletePattern(ctx, CampaignsPattern()); err != nil {
		t.Fatalf("DeletePattern: %v", err)
	}

	if srv.Exists("campaigns:list") || srv.Exists("campaigns:TECHNOLOGY") {
		t.Fatal("campaigns:* keys should be gone")
	}
	if !srv.Exists("loan:x") {
		t.Fatal("unrelated key must survive")
	}
}

func TestKeyScheme(t *testing.T) {
	if got := CampaignKey("c1"); got != "campaign:c1" {
		t.Fatalf("campaign key: %q", got)
	}
	if got := CampaignStatsKey("c1"); got != "campaign:c1:stats" {
		t.Fatalf("stats key: %q", got)
	}
	// List keys must fall under the campaigns pattern so invalidation
	// sweeps every cached page.
	if got := CampaignListKey("ACTIVE", "COMMUNITY", "wells", 2, 20); got != "campaigns:ACTIVE:COMMUNITY:wells:2:20" {
		t.Fatalf("list key: %q", got)
	}
}
