package pagestore

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/wikiextract/pkg/config"
	werrors "github.com/matzehuels/wikiextract/pkg/errors"
	"github.com/matzehuels/wikiextract/pkg/observability"
)

// testStore runs the behavior every backend shares.
func testStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); ok || err != nil {
		t.Errorf("Get(missing) = ok %v, err %v", ok, err)
	}

	pages := []Page{
		{Title: "cat", Body: "== English =="},
		{Title: "cat/translations", Body: "{{trans-top}}"},
		{Title: "Шаблон:сущ ru m a 1a", Body: "{{{1}}}"},
	}
	for _, p := range pages {
		if err := s.Put(ctx, p); err != nil {
			t.Fatalf("Put(%q) error: %v", p.Title, err)
		}
	}
	for _, want := range pages {
		got, ok, err := s.Get(ctx, want.Title)
		if err != nil || !ok {
			t.Fatalf("Get(%q) = ok %v, err %v", want.Title, ok, err)
		}
		if got.Title != want.Title || got.Body != want.Body {
			t.Errorf("Get(%q) = %+v", want.Title, got)
		}
	}

	if err := s.Put(ctx, Page{Title: "cat", Body: "v2"}); err != nil {
		t.Fatal(err)
	}
	if got, _, _ := s.Get(ctx, "cat"); got.Body != "v2" {
		t.Errorf("Put did not replace: %+v", got)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore(Page{Title: "seed", Body: "x"})
	defer s.Close()
	testStore(t, s)
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
}

func TestDirStore(t *testing.T) {
	s, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDirStore error: %v", err)
	}
	defer s.Close()
	testStore(t, s)
}

func TestMemoryStoreConcurrent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Put(ctx, Page{Title: "p", Body: "b"})
			_, _, _ = s.Get(ctx, "p")
		}()
	}
	wg.Wait()
	if s.Len() != 1 {
		t.Errorf("Len() = %d", s.Len())
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, config.Store{Backend: config.BackendMemory})
	if err != nil {
		t.Fatalf("Open(memory) error: %v", err)
	}
	testStore(t, s)

	s, err = Open(ctx, config.Store{Backend: config.BackendDir, Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Open(dir) error: %v", err)
	}
	testStore(t, s)

	if _, err := Open(ctx, config.Store{Backend: "sqlite"}); !werrors.Is(err, werrors.ErrCodeInvalidConfig) {
		t.Errorf("Open(sqlite) = %v, want INVALID_CONFIG", err)
	}
}

type failingStore struct{ Store }

func (failingStore) Get(context.Context, string) (Page, bool, error) {
	return Page{}, false, errors.New("connection refused")
}

func TestFetcherDegradesErrors(t *testing.T) {
	ctx := context.Background()
	f := Fetcher(failingStore{NewMemoryStore()}, nil)
	if body, ok := f.FetchPage(ctx, "cat"); ok || body != "" {
		t.Errorf("FetchPage = %q, %v; want missing", body, ok)
	}

	f = Fetcher(NewMemoryStore(Page{Title: "cat", Body: "meow"}), nil)
	if body, ok := f.FetchPage(ctx, "cat"); !ok || body != "meow" {
		t.Errorf("FetchPage = %q, %v", body, ok)
	}
}

func TestSource(t *testing.T) {
	src := Source(context.Background(), NewMemoryStore(Page{Title: "Template:x", Body: "y"}), nil)
	if body, ok := src.Lookup("Template:x"); !ok || body != "y" {
		t.Errorf("Lookup = %q, %v", body, ok)
	}
	if _, ok := src.Lookup("Template:z"); ok {
		t.Error("Lookup of missing template succeeded")
	}
}

type recordingHooks struct {
	mu     sync.Mutex
	gets   []bool
	errors []string
}

func (h *recordingHooks) OnGet(_ context.Context, _ string, found bool, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.gets = append(h.gets, found)
}

func (h *recordingHooks) OnError(_ context.Context, backend, op string, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors = append(h.errors, backend+":"+op)
}

func TestInstrument(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetStoreHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	s := Instrument("memory", NewMemoryStore(Page{Title: "a"}))
	_, _, _ = s.Get(ctx, "a")
	_, _, _ = s.Get(ctx, "b")
	_, _, _ = Instrument("redis", failingStore{NewMemoryStore()}).Get(ctx, "a")

	if want := []bool{true, false}; !reflect.DeepEqual(hooks.gets, want) {
		t.Errorf("gets = %v, want %v", hooks.gets, want)
	}
	if want := []string{"redis:get"}; !reflect.DeepEqual(hooks.errors, want) {
		t.Errorf("errors = %v, want %v", hooks.errors, want)
	}
}

func TestLayered(t *testing.T) {
	ctx := context.Background()
	upper := NewMemoryStore(Page{Title: "cat", Body: "upper"})
	lower := NewMemoryStore(Page{Title: "cat", Body: "lower"}, Page{Title: "Template:t", Body: "t"})
	l := Layered{upper, lower}

	tests := []struct {
		title  string
		want   string
		wantOK bool
	}{
		{"cat", "upper", true},
		{"Template:t", "t", true},
		{"dog", "", false},
	}
	for _, tt := range tests {
		p, ok, err := l.Get(ctx, tt.title)
		if err != nil || ok != tt.wantOK || p.Body != tt.want {
			t.Errorf("Get(%q) = %q, %v, %v; want %q, %v", tt.title, p.Body, ok, err, tt.want, tt.wantOK)
		}
	}

	if err := l.Put(ctx, Page{Title: "dog", Body: "woof"}); err != nil {
		t.Fatal(err)
	}
	if upper.Len() != 2 || lower.Len() != 2 {
		t.Errorf("Put wrote to the wrong layer: upper %d, lower %d", upper.Len(), lower.Len())
	}
}

func TestLayeredErrors(t *testing.T) {
	ctx := context.Background()
	l := Layered{failingStore{NewMemoryStore()}, NewMemoryStore(Page{Title: "cat", Body: "meow"})}

	if p, ok, err := l.Get(ctx, "cat"); err != nil || !ok || p.Body != "meow" {
		t.Errorf("Get = %+v, %v, %v; a failing layer should not hide a hit", p, ok, err)
	}
	if _, ok, err := l.Get(ctx, "dog"); ok || err == nil {
		t.Errorf("Get = %v, %v; want the layer error", ok, err)
	}
	if err := (Layered{}).Put(ctx, Page{Title: "x"}); err == nil {
		t.Error("Put on an empty stack should fail")
	}
}
