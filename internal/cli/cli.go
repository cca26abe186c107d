// Package cli implements the wikiextract command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wikiextract/pkg/cache"
	"github.com/matzehuels/wikiextract/pkg/config"
	"github.com/matzehuels/wikiextract/pkg/pagestore"
	"github.com/matzehuels/wikiextract/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "wikiextract"

	// cachePrefix scopes result keys in a shared Redis cache.
	cachePrefix = "wikiextract:result:"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded by the root command before any subcommand runs.
	Config config.Config

	configPath string
	edition    string
	languages  []string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads the config file and applies flag overrides.
func (c *CLI) loadConfig() error {
	path := c.configPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			c.Config = config.Default()
			return c.applyFlags()
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("config loaded", "path", path, "edition", cfg.Edition, "store", cfg.Store.Backend, "cache", cfg.Cache.Backend)
	return c.applyFlags()
}

func (c *CLI) applyFlags() error {
	if c.edition != "" {
		c.Config.Edition = c.edition
	}
	if len(c.languages) > 0 {
		c.Config.Capture.Languages = c.languages
	}
	return c.Config.Validate()
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner over the configured store and cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := pagestore.Open(ctx, c.Config.Store)
	if err != nil {
		return nil, err
	}
	rc, err := c.newCache(ctx, noCache)
	if err != nil {
		store.Close()
		return nil, err
	}
	r := pipeline.NewRunner(rc, nil, store, c.Logger)
	r.TTL = c.Config.Cache.TTL.Duration
	return r, nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.Config.Cache.Backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, c.Config.Cache.RedisAddr, cachePrefix)
	}
	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Warn("result cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// options returns pipeline options from the loaded config.
func (c *CLI) options(refresh bool) pipeline.Options {
	return pipeline.Options{
		Edition: c.Config.Edition,
		Config:  c.Config.Extract(),
		Refresh: refresh,
		Workers: c.Config.Workers,
		Logger:  c.Logger,
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/wikiextract/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
