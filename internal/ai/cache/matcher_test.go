package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/jobfit/internal/ai"
)

type memoryStore struct {
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (m *memoryStore) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *memoryStore) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	m.ttls[key] = ttl
	return nil
}

type countingMatcher struct {
	calls int
	resp  *ai.Assessment
	err   error
}

func (c *countingMatcher) Match(context.Context, string) (*ai.Assessment, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	copied := *c.resp
	return &copied, nil
}

func TestMatcherCachesSuccessfulAssessments(t *testing.T) {
	inner := &countingMatcher{resp: &ai.Assessment{Score: 77, Reasons: []string{"good"}, Raw: `{"score":77}`}}
	store := newMemoryStore()
	m := New(inner, store, time.Hour, zap.NewNop())

	for i := 0; i < 3; i++ {
		got, err := m.Match(context.Background(), "prompt")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Score != 77 || got.Raw != `{"score":77}` {
			t.Fatalf("unexpected assessment: %+v", got)
		}
	}

	if inner.calls != 1 {
		t.Fatalf("expected 1 inner call, got %d", inner.calls)
	}

	if store.ttls[Key("prompt")] != time.Hour {
		t.Fatalf("expected ttl to be passed to the store")
	}
}

func TestMatcherDoesNotCacheFailures(t *testing.T) {
	inner := &countingMatcher{err: &ai.ParseError{Raw: "x", Err: errors.New("bad")}}
	store := newMemoryStore()
	m := New(inner, store, 0, nil)

	for i := 0; i < 2; i++ {
		if _, err := m.Match(context.Background(), "prompt"); err == nil {
			t.Fatalf("expected error")
		}
	}

	if inner.calls != 2 {
		t.Fatalf("expected failures to reach the inner matcher each time, got %d", inner.calls)
	}

	if len(store.data) != 0 {
		t.Fatalf("expected nothing cached")
	}
}

func TestKey(t *testing.T) {
	if Key("a") == Key("b") {
		t.Fatalf("expected distinct keys")
	}
	if !strings.HasPrefix(Key("a"), "jobfit:semantic:") {
		t.Fatalf("unexpected key prefix: %s", Key("a"))
	}
}

func TestRedisBypassWhenUnavailable(t *testing.T) {
	r := NewRedis(context.Background(), Options{Addr: "127.0.0.1:1"}, zap.NewNop())
	if r.Available() {
		t.Fatalf("expected bypass cache")
	}

	var out ai.Assessment
	hit, err := r.GetJSON(context.Background(), "k", &out)
	if hit || err != nil {
		t.Fatalf("expected silent miss, got hit=%v err=%v", hit, err)
	}

	if err := r.SetJSON(context.Background(), "k", out, time.Minute); err != nil {
		t.Fatalf("expected silent store, got %v", err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
}
