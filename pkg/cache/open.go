package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Backend names accepted by Open.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Options selects and configures a backend.
type Options struct {
	Backend   string // none, file (default) or redis
	Dir       string // file backend root; DefaultDir() when empty
	RedisAddr string
	Prefix    string // redis key prefix
}

// Open returns the backend described by opts.
func Open(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case BackendNone:
		return NewNullCache(), nil
	case "", BackendFile:
		dir := opts.Dir
		if dir == "" {
			d, err := DefaultDir()
			if err != nil {
				return nil, err
			}
			dir = d
		}
		return NewFileCache(dir)
	case BackendRedis:
		if opts.RedisAddr == "" {
			return nil, fmt.Errorf("redis cache needs an address")
		}
		return NewRedisCache(ctx, opts.RedisAddr, opts.Prefix)
	}
	return nil, fmt.Errorf("unknown cache backend %q (want none, file or redis)", opts.Backend)
}

// DefaultDir returns the per-user cache directory, honoring XDG_CACHE_HOME.
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locate cache directory: %w", err)
	}
	return filepath.Join(base, "rnaviz"), nil
}
