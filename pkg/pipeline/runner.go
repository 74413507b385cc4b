package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/rnaviz/pkg/cache"
	"github.com/matzehuels/rnaviz/pkg/input"
	"github.com/matzehuels/rnaviz/pkg/observability"
)

const keyTypeArtifact = "artifact"

// Runner executes the pipeline with an artifact cache.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.DefaultTTL,
	}
}

// Execute parses text and renders it, serving the artifact from the cache
// when the same record was rendered with the same options before. A cache
// hit still resolves the theme, so an unknown name warns every time. Cache
// failures are logged and never fail the render.
func (r *Runner) Execute(ctx context.Context, text string, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	rec, err := input.ParseString(text)
	if err != nil {
		return nil, err
	}
	// Keyed on the canonical record, so comments and line wrapping do not
	// change the key.
	inputHash := r.Keyer.InputKey(rec.String())
	key := r.Keyer.ArtifactKey(inputHash, opts.ArtifactKeyOpts())
	hooks := observability.Cache()

	data, hit, err := r.Cache.Get(ctx, key)
	switch {
	case err != nil:
		r.Logger.Warn("cache read failed", "err", err)
	case hit:
		hooks.OnCacheHit(ctx, keyTypeArtifact)
		r.Logger.Debug("cache hit", "format", opts.Format)
		th, fallback := ResolveTheme(opts)
		return &Result{
			Record:        rec,
			Format:        opts.Format,
			Artifact:      data,
			Theme:         th,
			ThemeFallback: fallback,
			InputHash:     inputHash,
			CacheHit:      true,
		}, nil
	default:
		hooks.OnCacheMiss(ctx, keyTypeArtifact)
	}

	res, err := Render(ctx, rec, opts)
	if err != nil {
		return nil, err
	}
	res.InputHash = inputHash

	if err := r.Cache.Set(ctx, key, res.Artifact, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
	} else {
		hooks.OnCacheSet(ctx, keyTypeArtifact, len(res.Artifact))
	}
	return res, nil
}

// Clear empties the cache.
func (r *Runner) Clear(ctx context.Context) error {
	if err := r.Cache.Clear(ctx); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
