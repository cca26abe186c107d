// Package config loads the wikiextract configuration file.
//
// The file is TOML. Every key is optional; missing keys keep the values of
// [Default]. A missing file is not an error.
//
//	edition = "zh"
//	workers = 8
//
//	[capture]
//	languages = ["zh", "en"]
//	translations = false
//
//	[store]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
// Command-line flags override file values; the CLI applies them after
// [Load].
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"

	werrors "github.com/matzehuels/wikiextract/pkg/errors"
	"github.com/matzehuels/wikiextract/pkg/extract"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendDir    = "dir"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Cache backends.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Config is the complete configuration.
type Config struct {
	Edition string  `toml:"edition"`
	Workers int     `toml:"workers"`
	Capture Capture `toml:"capture"`
	Store   Store   `toml:"store"`
	Cache   Cache   `toml:"cache"`
	Server  Server  `toml:"server"`
}

// Capture selects what is extracted. Boolean flags are pointers so that an
// absent key keeps its default.
type Capture struct {
	Languages     []string `toml:"languages"`
	Pronunciation *bool    `toml:"pronunciation"`
	Translations  *bool    `toml:"translations"`
	Linkages      *bool    `toml:"linkages"`
	Etymologies   *bool    `toml:"etymologies"`
	Examples      *bool    `toml:"examples"`
}

// Store configures where raw pages and templates are read from.
type Store struct {
	Backend         string `toml:"backend"`
	Dir             string `toml:"dir"`
	RedisAddr       string `toml:"redis_addr"`
	RedisPrefix     string `toml:"redis_prefix"`
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// Cache configures the extraction result cache.
type Cache struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
	TTL       Duration `toml:"ttl"`
}

// Server configures the HTTP API.
type Server struct {
	Addr    string   `toml:"addr"`
	Timeout Duration `toml:"timeout"`
}

// Duration is a time.Duration written as a Go duration string ("168h").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for the TOML decoder.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Edition: "zh",
		Workers: runtime.NumCPU(),
		Store: Store{
			Backend:         BackendDir,
			Dir:             "pages",
			RedisAddr:       "localhost:6379",
			RedisPrefix:     "wikiextract:page:",
			MongoURI:        "mongodb://localhost:27017",
			MongoDatabase:   "wiktionary",
			MongoCollection: "pages",
		},
		Cache: Cache{
			Backend:   CacheFile,
			RedisAddr: "localhost:6379",
			TTL:       Duration{7 * 24 * time.Hour},
		},
		Server: Server{
			Addr:    ":8080",
			Timeout: Duration{30 * time.Second},
		},
	}
}

// WithDefaults fills every zero field of c from [Default].
func (c Config) WithDefaults() Config {
	d := Default()
	if c.Edition == "" {
		c.Edition = d.Edition
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	setString(&c.Store.Backend, d.Store.Backend)
	setString(&c.Store.Dir, d.Store.Dir)
	setString(&c.Store.RedisAddr, d.Store.RedisAddr)
	setString(&c.Store.RedisPrefix, d.Store.RedisPrefix)
	setString(&c.Store.MongoURI, d.Store.MongoURI)
	setString(&c.Store.MongoDatabase, d.Store.MongoDatabase)
	setString(&c.Store.MongoCollection, d.Store.MongoCollection)
	setString(&c.Cache.Backend, d.Cache.Backend)
	setString(&c.Cache.RedisAddr, d.Cache.RedisAddr)
	if c.Cache.TTL.Duration <= 0 {
		c.Cache.TTL = d.Cache.TTL
	}
	setString(&c.Server.Addr, d.Server.Addr)
	if c.Server.Timeout.Duration <= 0 {
		c.Server.Timeout = d.Server.Timeout
	}
	return c
}

func setString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	if err := werrors.ValidateEdition(c.Edition); err != nil {
		return err
	}
	if err := werrors.ValidateLanguageCodes(c.Capture.Languages); err != nil {
		return err
	}
	switch c.Store.Backend {
	case BackendMemory, BackendDir:
	case BackendRedis:
		if c.Store.RedisAddr == "" {
			return werrors.New(werrors.ErrCodeInvalidConfig, "store.redis_addr is required for the redis backend")
		}
	case BackendMongo:
		if err := werrors.ValidateStoreURI(c.Store.MongoURI, "mongodb", "mongodb+srv"); err != nil {
			return err
		}
	default:
		return werrors.New(werrors.ErrCodeInvalidConfig, "unknown store backend: %q", c.Store.Backend)
	}
	switch c.Cache.Backend {
	case CacheNone, CacheFile, CacheRedis:
	default:
		return werrors.New(werrors.ErrCodeInvalidConfig, "unknown cache backend: %q", c.Cache.Backend)
	}
	return nil
}

// Extract returns the extractor configuration described by the capture
// section.
func (c Config) Extract() extract.Config {
	cfg := extract.DefaultConfig()
	cfg.Languages = c.Capture.Languages
	setBool(&cfg.Pronunciation, c.Capture.Pronunciation)
	setBool(&cfg.Translations, c.Capture.Translations)
	setBool(&cfg.Linkages, c.Capture.Linkages)
	setBool(&cfg.Etymologies, c.Capture.Etymologies)
	setBool(&cfg.Examples, c.Capture.Examples)
	return cfg
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// Parse decodes TOML data and applies defaults.
func Parse(data []byte) (Config, error) {
	var c Config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return Config{}, werrors.Wrap(werrors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, werrors.New(werrors.ErrCodeInvalidConfig, "unknown config key: %s", undecoded[0])
	}
	c = c.WithDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads the file at path. A missing file yields [Default].
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, werrors.Wrap(werrors.ErrCodeFileNotFound, err, "read config %s", path)
	}
	return Parse(data)
}

// Path returns the default location of the config file,
// $XDG_CONFIG_HOME/wikiextract/config.toml.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "wikiextract", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wikiextract", "config.toml"), nil
}
