package pipeline

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/wikiextract/pkg/cache"
	werrors "github.com/matzehuels/wikiextract/pkg/errors"
	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/pagestore"
)

// memCache is a map-backed cache.Cache.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

var _ cache.Cache = (*memCache)(nil)

func zhPage(title, gloss string) pagestore.Page {
	return pagestore.Page{Title: title, Body: "==漢語==\n===名詞===\n# " + gloss + "\n"}
}

func zhOptions() Options {
	return Options{Edition: "zh", Config: extract.DefaultConfig(), Workers: 4}
}

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantCode werrors.Code
	}{
		{"default edition", Options{}, ""},
		{"ru", Options{Edition: "ru"}, ""},
		{"malformed", Options{Edition: "Russian"}, werrors.ErrCodeInvalidEdition},
		{"unsupported", Options{Edition: "de"}, werrors.ErrCodeInvalidEdition},
		{"bad language filter", Options{Edition: "zh", Config: extract.Config{Languages: []string{""}}}, werrors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			err := opts.ValidateAndSetDefaults()
			if got := werrors.GetCode(err); got != tt.wantCode || (err != nil) != (tt.wantCode != "") {
				t.Fatalf("ValidateAndSetDefaults() = %v, want code %q", err, tt.wantCode)
			}
			if err != nil {
				return
			}
			if opts.Language() == nil || opts.Language().Code != opts.Edition {
				t.Errorf("Language() = %v for edition %q", opts.Language(), opts.Edition)
			}
			if opts.Workers <= 0 || opts.Logger == nil {
				t.Errorf("defaults not applied: workers %d, logger %v", opts.Workers, opts.Logger)
			}
		})
	}
}

func TestExtractPageCaching(t *testing.T) {
	ctx := context.Background()
	c := newMemCache()
	r := NewRunner(c, nil, nil, nil)
	page := zhPage("狗", "一種家畜")

	first, hit, err := r.ExtractPageWithCacheInfo(ctx, zhOptions(), page)
	if err != nil {
		t.Fatalf("ExtractPage error: %v", err)
	}
	if hit {
		t.Error("first extraction should miss the cache")
	}
	if len(first.Entries) != 1 || first.Entries[0].POS != "noun" {
		t.Fatalf("entries = %+v", first.Entries)
	}

	second, hit, err := r.ExtractPageWithCacheInfo(ctx, zhOptions(), page)
	if err != nil || !hit {
		t.Fatalf("second extraction: hit %v, err %v", hit, err)
	}
	if !reflect.DeepEqual(second.Entries[0].Senses, first.Entries[0].Senses) {
		t.Errorf("cached senses = %+v, want %+v", second.Entries[0].Senses, first.Entries[0].Senses)
	}

	// Refresh bypasses the cache
	opts := zhOptions()
	opts.Refresh = true
	if _, hit, _ := r.ExtractPageWithCacheInfo(ctx, opts, page); hit {
		t.Error("refresh should not hit the cache")
	}

	// A different body is a different key
	if _, hit, _ := r.ExtractPageWithCacheInfo(ctx, zhOptions(), zhPage("狗", "犬")); hit {
		t.Error("edited page should miss the cache")
	}

	// Different capture options are a different key
	opts = zhOptions()
	opts.Config.Translations = false
	if _, hit, _ := r.ExtractPageWithCacheInfo(ctx, opts, page); hit {
		t.Error("changed options should miss the cache")
	}
}

func TestExtractPageUsesStore(t *testing.T) {
	store := pagestore.NewMemoryStore(pagestore.Page{
		Title: "Template:ux",
		Body:  "{{{2}}}<br>{{{tr|}}}<br>{{{t|}}}",
	})
	r := NewRunner(nil, nil, store, nil)
	page := pagestore.Page{
		Title: "太陽風",
		Body:  "==漢語==\n===名詞===\n# 太陽射出的電漿流\n#: {{ux|zh|太陽風很強|t=The solar wind is strong}}\n",
	}
	res, err := r.ExtractPage(context.Background(), zhOptions(), page)
	if err != nil {
		t.Fatal(err)
	}
	want := []extract.Example{{Texts: []string{"太陽風很強"}, Translation: "The solar wind is strong"}}
	if got := res.Entries[0].Senses[0].Examples; !reflect.DeepEqual(got, want) {
		t.Errorf("examples = %+v, want %+v", got, want)
	}
}

func TestExtractTitle(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, pagestore.NewMemoryStore(zhPage("貓", "一種動物")), nil)

	res, err := r.ExtractTitle(ctx, zhOptions(), "貓")
	if err != nil {
		t.Fatalf("ExtractTitle error: %v", err)
	}
	if res.Title != "貓" || len(res.Entries) != 1 {
		t.Errorf("result = %+v", res)
	}

	if _, err := r.ExtractTitle(ctx, zhOptions(), "狗"); !werrors.Is(err, werrors.ErrCodePageNotFound) {
		t.Errorf("missing page error = %v, want PAGE_NOT_FOUND", err)
	}
	if _, err := r.ExtractTitle(ctx, zhOptions(), "{{bad}}"); !werrors.Is(err, werrors.ErrCodeInvalidTitle) {
		t.Errorf("bad title error = %v, want INVALID_TITLE", err)
	}
}

func TestExtractAllKeepsInputOrder(t *testing.T) {
	var pages []pagestore.Page
	for i := 0; i < 25; i++ {
		pages = append(pages, zhPage(fmt.Sprintf("詞%02d", i), "釋義"))
	}
	pages = append(pages, pagestore.Page{Title: "", Body: "skipped"})

	c := newMemCache()
	r := NewRunner(c, nil, nil, nil)
	var got []string
	stats, err := r.ExtractAll(context.Background(), zhOptions(), pages, func(res *extract.Result) error {
		got = append(got, res.Title)
		return nil
	})
	if err != nil {
		t.Fatalf("ExtractAll error: %v", err)
	}
	if len(got) != 25 {
		t.Fatalf("emitted %d results, want 25", len(got))
	}
	for i, title := range got {
		if title != pages[i].Title {
			t.Fatalf("result %d = %q, want %q", i, title, pages[i].Title)
		}
	}
	if stats.Pages != 25 || stats.Entries != 25 || stats.CacheHits != 0 {
		t.Errorf("stats = %+v", stats)
	}

	// Second run is served from the cache
	stats, err = r.ExtractAll(context.Background(), zhOptions(), pages[:5], func(*extract.Result) error { return nil })
	if err != nil || stats.CacheHits != 5 {
		t.Errorf("second run: stats %+v, err %v", stats, err)
	}
}

func TestExtractAllStopsOnEmitError(t *testing.T) {
	pages := []pagestore.Page{zhPage("一", "a"), zhPage("二", "b"), zhPage("三", "c")}
	boom := errors.New("disk full")
	r := NewRunner(nil, nil, nil, nil)

	calls := 0
	_, err := r.ExtractAll(context.Background(), zhOptions(), pages, func(*extract.Result) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("ExtractAll error = %v, want %v", err, boom)
	}
	if calls != 1 {
		t.Errorf("emit called %d times after failure", calls)
	}
}

func TestExtractAllInvalidEdition(t *testing.T) {
	r := NewRunner(nil, nil, nil, nil)
	_, err := r.ExtractAll(context.Background(), Options{Edition: "xx"}, nil, nil)
	if !werrors.Is(err, werrors.ErrCodeInvalidEdition) {
		t.Errorf("error = %v, want INVALID_EDITION", err)
	}
}
