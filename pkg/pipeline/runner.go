package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/wikiextract/pkg/cache"
	werrors "github.com/matzehuels/wikiextract/pkg/errors"
	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/observability"
	"github.com/matzehuels/wikiextract/pkg/pagestore"
)

const cacheKeyType = "extract"

// Runner encapsulates extraction with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, the store and the logger.
// Multiple goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Store  pagestore.Store
	Logger *log.Logger

	// TTL is the lifetime of cached results; zero means cache.TTLExtraction.
	TTL time.Duration
}

// NewRunner creates a runner.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// If store is nil, an empty MemoryStore is used (no templates, no subpages).
func NewRunner(c cache.Cache, keyer cache.Keyer, store pagestore.Store, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if store == nil {
		store = pagestore.NewMemoryStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Store:  store,
		Logger: logger,
	}
}

// ExtractPageWithCacheInfo extracts one page and reports whether the result
// came from the cache.
func (r *Runner) ExtractPageWithCacheInfo(ctx context.Context, opts Options, page pagestore.Page) (*extract.Result, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	if err := werrors.ValidateTitle(page.Title); err != nil {
		return nil, false, err
	}

	key := r.Keyer.ExtractKey(opts.Edition, page.Title, cache.Hash([]byte(page.Body)), opts.ExtractKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var res extract.Result
			if err := json.Unmarshal(data, &res); err == nil {
				observability.Cache().OnCacheHit(ctx, cacheKeyType)
				return &res, true, nil
			}
		} else if err != nil {
			r.Logger.Debug("cache read failed", "title", page.Title, "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
	}

	res := extract.ExtractPage(ctx, opts.Language(), page.Title, page.Body, extract.Options{
		Config:  opts.Config,
		Fetcher: pagestore.Fetcher(r.Store, r.Logger),
		Logger:  r.Logger,
	})

	if data, err := json.Marshal(res); err == nil {
		if err := r.Cache.Set(ctx, key, data, r.ttl()); err != nil {
			r.Logger.Debug("cache write failed", "title", page.Title, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
		}
	}

	return res, false, nil
}

// ExtractPage is a convenience wrapper that calls ExtractPageWithCacheInfo and discards the cache hit info.
func (r *Runner) ExtractPage(ctx context.Context, opts Options, page pagestore.Page) (*extract.Result, error) {
	res, _, err := r.ExtractPageWithCacheInfo(ctx, opts, page)
	return res, err
}

// LookupPage reads a page from the store.
func (r *Runner) LookupPage(ctx context.Context, title string) (pagestore.Page, error) {
	if err := werrors.ValidateTitle(title); err != nil {
		return pagestore.Page{}, err
	}
	page, ok, err := r.Store.Get(ctx, title)
	if err != nil {
		return pagestore.Page{}, werrors.Wrap(werrors.ErrCodeStoreUnavailable, err, "read page %s", title)
	}
	if !ok {
		return pagestore.Page{}, werrors.New(werrors.ErrCodePageNotFound, "page not found: %s", title)
	}
	return page, nil
}

// ExtractTitle reads a page from the store and extracts it.
func (r *Runner) ExtractTitle(ctx context.Context, opts Options, title string) (*extract.Result, error) {
	page, err := r.LookupPage(ctx, title)
	if err != nil {
		return nil, err
	}
	return r.ExtractPage(ctx, opts, page)
}

// ExtractAll extracts pages with at most opts.Workers in flight and calls
// emit with each result in input order. Pages with invalid titles are
// skipped with a warning. An error from emit stops the run.
func (r *Runner) ExtractAll(ctx context.Context, opts Options, pages []pagestore.Page, emit func(*extract.Result) error) (Stats, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return Stats{}, err
	}
	start := time.Now()

	type slot struct {
		res    *extract.Result
		cached bool
		ready  chan struct{}
	}
	slots := make([]slot, len(pages))
	for i := range slots {
		slots[i].ready = make(chan struct{})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers + 1)

	// The emitter occupies one slot of the limit and drains results in order.
	var stats Stats
	g.Go(func() error {
		for i := range slots {
			select {
			case <-slots[i].ready:
			case <-gctx.Done():
				return gctx.Err()
			}
			res := slots[i].res
			if res == nil {
				continue
			}
			stats.Pages++
			stats.Entries += len(res.Entries)
			stats.Diagnostics += len(res.Diagnostics)
			if slots[i].cached {
				stats.CacheHits++
			}
			if err := emit(res); err != nil {
				return fmt.Errorf("emit %s: %w", res.Title, err)
			}
		}
		return nil
	})

	for i, page := range pages {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			defer close(slots[i].ready)
			res, cached, err := r.ExtractPageWithCacheInfo(gctx, opts, page)
			if err != nil {
				r.Logger.Warn("skipping page", "title", page.Title, "err", err)
				return nil
			}
			slots[i].res, slots[i].cached = res, cached
			return nil
		})
	}

	err := g.Wait()
	stats.Duration = time.Since(start)
	return stats, err
}

func (r *Runner) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.TTLExtraction
}

// Close releases resources held by the runner (the cache and the store).
func (r *Runner) Close() error {
	var err error
	if r.Cache != nil {
		err = r.Cache.Close()
	}
	if r.Store != nil {
		if serr := r.Store.Close(); err == nil {
			err = serr
		}
	}
	return err
}
