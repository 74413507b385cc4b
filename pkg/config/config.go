// Package config loads rnaviz settings from a TOML file.
//
// Precedence is flags over file over built-in defaults: [Default] supplies
// the defaults, [Load] overlays the keys present in the file, and the CLI
// overlays flags the user set explicitly.
//
//	theme = "dark"
//	angle = 90
//	bg_opacity = 0.8
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
//	timeout = "10s"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/rnaviz/pkg/cache"
)

// Config is the full set of file-configurable settings.
type Config struct {
	Theme string  `toml:"theme"`
	Angle float64 `toml:"angle"`
	// BgOpacity overrides the palette's background alpha when set.
	BgOpacity *float64 `toml:"bg_opacity"`
	Height    int      `toml:"height"`
	Letters   bool     `toml:"letters"`
	Format    string   `toml:"format"`

	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	Backend   string   `toml:"backend"` // none, file or redis
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
	TTL       Duration `toml:"ttl"`
}

// ServerConfig configures `rnaviz serve`.
type ServerConfig struct {
	Addr    string   `toml:"addr"`
	Timeout Duration `toml:"timeout"`
}

// Duration is a time.Duration written as a Go duration string ("90s").
type Duration struct{ time.Duration }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Theme:  "default",
		Height: 900,
		Format: "svg",
		Cache: CacheConfig{
			Backend: cache.BackendFile,
			TTL:     Duration{cache.DefaultTTL},
		},
		Server: ServerConfig{
			Addr:    ":8080",
			Timeout: Duration{30 * time.Second},
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/rnaviz/config.toml (or the platform
// equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(dir, "rnaviz", "config.toml"), nil
}

// Load reads path on top of the defaults. An empty path means DefaultPath,
// which may be absent; an explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, cfg)
}

// Parse decodes TOML data over base. Unknown keys are rejected so typos
// do not pass silently.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return base, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return base, fmt.Errorf("parse config: unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// Validate checks values that cannot be caught by decoding.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case cache.BackendNone, cache.BackendFile, cache.BackendRedis:
	default:
		return fmt.Errorf("config: cache.backend must be none, file or redis, got %q", c.Cache.Backend)
	}
	if c.Cache.Backend == cache.BackendRedis && c.Cache.RedisAddr == "" {
		return fmt.Errorf("config: cache.redis_addr is required for the redis backend")
	}
	if c.Height <= 0 {
		return fmt.Errorf("config: height must be positive, got %d", c.Height)
	}
	if c.Server.Timeout.Duration < 0 {
		return fmt.Errorf("config: server.timeout must not be negative")
	}
	return nil
}

// CacheOptions converts the cache section for cache.Open.
func (c Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend:   c.Cache.Backend,
		Dir:       c.Cache.Dir,
		RedisAddr: c.Cache.RedisAddr,
	}
}
