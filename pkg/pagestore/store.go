// Package pagestore stores raw wiki pages by title.
//
// The extractor reads three kinds of pages through a store: the page being
// extracted, template bodies ("Template:t+", "Шаблон:сущ ru m a 1a") and
// translation subpages ("cat/translations"). Stores are keyed by the full
// title, namespace prefix included.
//
// Backends:
//   - [MemoryStore]: a map, for tests and one-shot runs
//   - [DirStore]: one JSON file per page under a directory
//   - [RedisStore]: JSON values under a key prefix
//   - [MongoStore]: one document per page in a collection with a unique
//     title index
//
// [Open] builds a store from configuration. [Fetcher] and [Source] adapt a
// store to the interfaces of the extractor and the template engine.
package pagestore

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wikiextract/pkg/config"
	werrors "github.com/matzehuels/wikiextract/pkg/errors"
	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/observability"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// Page is one raw wiki page.
type Page struct {
	Title     string    `json:"title" bson:"title"`
	Body      string    `json:"body" bson:"body"`
	UpdatedAt time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// Store reads and writes pages by title.
type Store interface {
	// Get returns the page titled title. A missing page is reported as
	// ok == false with a nil error.
	Get(ctx context.Context, title string) (page Page, ok bool, err error)

	// Put creates or replaces a page.
	Put(ctx context.Context, page Page) error

	// Close releases resources held by the store.
	Close() error
}

// Open creates the store described by cfg.
func Open(ctx context.Context, cfg config.Store) (Store, error) {
	var (
		s   Store
		err error
	)
	switch cfg.Backend {
	case config.BackendMemory:
		s = NewMemoryStore()
	case config.BackendDir, "":
		s, err = NewDirStore(cfg.Dir)
	case config.BackendRedis:
		s, err = NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPrefix)
	case config.BackendMongo:
		s, err = NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
	default:
		return nil, werrors.New(werrors.ErrCodeInvalidConfig, "unknown store backend: %q", cfg.Backend)
	}
	if err != nil {
		return nil, werrors.Wrap(werrors.ErrCodeStoreUnavailable, err, "open %s store", cfg.Backend)
	}
	name := cfg.Backend
	if name == "" {
		name = config.BackendDir
	}
	return Instrument(name, s), nil
}

// Instrument reports every Get of s to the store hooks under name.
func Instrument(name string, s Store) Store {
	return &instrumented{Store: s, name: name}
}

type instrumented struct {
	Store
	name string
}

func (s *instrumented) Get(ctx context.Context, title string) (Page, bool, error) {
	start := time.Now()
	p, ok, err := s.Store.Get(ctx, title)
	if err != nil {
		observability.Store().OnError(ctx, s.name, "get", err)
		return p, ok, err
	}
	observability.Store().OnGet(ctx, s.name, ok, time.Since(start))
	return p, ok, nil
}

func (s *instrumented) Put(ctx context.Context, page Page) error {
	err := s.Store.Put(ctx, page)
	if err != nil {
		observability.Store().OnError(ctx, s.name, "put", err)
	}
	return err
}

// Fetcher adapts s to the extractor. Store errors are logged and reported
// as missing pages: extraction degrades instead of failing.
func Fetcher(s Store, logger *log.Logger) extract.PageFetcher {
	if logger == nil {
		logger = log.Default()
	}
	return extract.FetcherFunc(func(ctx context.Context, title string) (string, bool) {
		p, ok, err := s.Get(ctx, title)
		if err != nil {
			logger.Debug("page store read failed", "title", title, "err", err)
			return "", false
		}
		return p.Body, ok
	})
}

// Source adapts s to the template engine. Reads use ctx.
func Source(ctx context.Context, s Store, logger *log.Logger) wikitext.Source {
	f := Fetcher(s, logger)
	return wikitext.SourceFunc(func(title string) (string, bool) {
		return f.FetchPage(ctx, title)
	})
}
