package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
)

// creates a store connected to miniredis for testing
func newMini(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	t.Cleanup(cancel)

	s, err := New(ctx, mr.Addr(), ttl, 16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestPutGetDeleteCycle(t *testing.T) {
	s, _ := newMini(t, 0)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	doc := []byte(`{"type":"Point","coordinates":[1,2]}`)
	if err := s.Put(ctx, "p1", doc); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(doc) {
		t.Fatalf("Get returned %s want %s", got, doc)
	}

	if err := s.Delete(ctx, "p1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "p1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete: want ErrNotFound, got %v", err)
	}
	if err := s.Delete(ctx, "p1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete: want ErrNotFound, got %v", err)
	}
}

func TestGet_Missing(t *testing.T) {
	s, _ := newMini(t, 0)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := s.Get(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestList_ReturnsAllDocuments(t *testing.T) {
	s, _ := newMini(t, 0)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	docs := map[string]string{
		"a": `{"type":"Point","coordinates":[1,2]}`,
		"b": `{"type":"Point","coordinates":[3,4]}`,
	}
	for id, doc := range docs {
		if err := s.Put(ctx, id, []byte(doc)); err != nil {
			t.Fatalf("Put %s: %v", id, err)
		}
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List size=%d want 2", len(got))
	}
	for id, doc := range docs {
		if string(got[id]) != doc {
			t.Fatalf("List[%s]=%s want %s", id, got[id], doc)
		}
	}
}

func TestList_SkipsExpiredDocuments(t *testing.T) {
	s, mr := newMini(t, time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := s.Put(ctx, "ephemeral", []byte(`{}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("List size=%d want 0 after expiry", len(got))
	}
}

// Reads after a Put are served from the LRU even when Redis loses the key.
func TestGet_ServedFromLRU(t *testing.T) {
	s, mr := newMini(t, 0)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	doc := []byte(`{"type":"Point","coordinates":[1,2]}`)
	if err := s.Put(ctx, "cached", doc); err != nil {
		t.Fatalf("Put: %v", err)
	}
	mr.FlushAll()

	got, err := s.Get(ctx, "cached")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(doc) {
		t.Fatalf("Get returned %s want %s", got, doc)
	}
}

func TestDocKey_SafeAndDeterministic(t *testing.T) {
	k1 := docKey("  weird id / with ünicode  ")
	k2 := docKey("  weird id / with ünicode  ")
	if k1 != k2 {
		t.Fatalf("determinism failed:\n k1=%s\n k2=%s", k1, k2)
	}
	if !regexp.MustCompile(`^geojson:doc:[A-Za-z0-9:_\-]*:[0-9a-f]{16}$`).MatchString(k1) {
		t.Fatalf("key contains disallowed characters: %s", k1)
	}
	if docKey("a") == docKey("b") {
		t.Fatal("different ids must produce different keys")
	}
}
