package integrations

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/solrun/vegakort/pkg/cache"
)

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Test"); got != "yes" {
			t.Errorf("X-Test header = %q, want %q", got, "yes")
		}
		w.Write([]byte(`{"value": 7}`))
	}))
	defer srv.Close()

	c := NewClient(cache.NewNullCache(), "test:", 0, map[string]string{"X-Test": "yes"})

	var out struct {
		Value int `json:"value"`
	}
	if err := c.GetJSON(context.Background(), srv.URL, &out); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if out.Value != 7 {
		t.Errorf("value = %d, want 7", out.Value)
	}
}

func TestGetJSONNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(cache.NewNullCache(), "test:", 0, nil)
	var out any
	if err := c.GetJSON(context.Background(), srv.URL, &out); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetJSON error = %v, want ErrNotFound", err)
	}
}

func TestGetBytesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(cache.NewNullCache(), "test:", 0, nil)
	if _, err := c.GetBytes(context.Background(), srv.URL); !errors.Is(err, ErrNetwork) {
		t.Fatalf("GetBytes error = %v, want ErrNetwork", err)
	}
}

func TestCached(t *testing.T) {
	ctx := context.Background()
	backend, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	c := NewClient(backend, "test:", time.Hour, nil)

	fetches := 0
	fetch := func(v *string) func() error {
		return func() error {
			fetches++
			*v = "fresh"
			return nil
		}
	}

	var v1 string
	if err := c.Cached(ctx, "key", false, &v1, fetch(&v1)); err != nil {
		t.Fatalf("Cached: %v", err)
	}
	if fetches != 1 || v1 != "fresh" {
		t.Fatalf("first call: fetches = %d, v = %q", fetches, v1)
	}

	// Second call is served from cache.
	var v2 string
	if err := c.Cached(ctx, "key", false, &v2, fetch(&v2)); err != nil {
		t.Fatalf("Cached: %v", err)
	}
	if fetches != 1 {
		t.Errorf("fetches = %d after cached call, want 1", fetches)
	}
	if v2 != "fresh" {
		t.Errorf("cached value = %q, want %q", v2, "fresh")
	}

	// refresh bypasses the cache.
	var v3 string
	if err := c.Cached(ctx, "key", true, &v3, fetch(&v3)); err != nil {
		t.Fatalf("Cached: %v", err)
	}
	if fetches != 2 {
		t.Errorf("fetches = %d after refresh, want 2", fetches)
	}
}

func TestCachedFetchError(t *testing.T) {
	c := NewClient(cache.NewNullCache(), "test:", 0, nil)
	boom := errors.New("boom")
	var v string
	err := c.Cached(context.Background(), "key", false, &v, func() error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("Cached error = %v, want %v", err, boom)
	}
}
