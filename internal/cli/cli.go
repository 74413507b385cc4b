// Package cli implements the rnaviz command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/rnaviz/pkg/buildinfo"
	"github.com/matzehuels/rnaviz/pkg/cache"
	"github.com/matzehuels/rnaviz/pkg/config"
	"github.com/matzehuels/rnaviz/pkg/observability"
	"github.com/matzehuels/rnaviz/pkg/pipeline"
	"github.com/matzehuels/rnaviz/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "rnaviz"

	// stdinArg names standard input in place of a file argument.
	stdinArg = "-"
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

	configPath string
	config     config.Config
	stdin      io.Reader
	stdout     io.Writer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: config.Default(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

// SetLogLevel updates the logger's level. At debug level the pipeline and
// cache hooks log every stage.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		hooks := observability.NewLogHooks(c.Logger)
		observability.SetPipelineHooks(hooks)
		observability.SetCacheHooks(hooks)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "rnaviz draws RNA secondary structures as bubble diagrams",
		Long: `rnaviz reads an RNA secondary structure in dot-bracket notation, optionally
with a nucleotide sequence and highlights, and draws every position as a
bubble: paired bases face each other, loops close into rings.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/rnaviz/config.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.config = cfg
	c.Logger.Debug("config loaded", "path", c.configPath, "theme", cfg.Theme, "cache", cfg.Cache.Backend)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.openCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(cc, nil, c.Logger)
	if ttl := c.config.Cache.TTL.Duration; ttl > 0 {
		r.TTL = ttl
	}
	return r, nil
}

// openCache opens the configured backend. A file cache that cannot be
// created degrades to no caching instead of failing the command.
func (c *CLI) openCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	opts := c.config.CacheOptions()
	cc, err := cache.Open(ctx, opts)
	if err != nil {
		if opts.Backend == cache.BackendRedis {
			return nil, err
		}
		c.Logger.Warn("cache unavailable, continuing without", "err", err)
		return cache.NewNullCache(), nil
	}
	return cc, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// baseOptions returns pipeline options seeded from the config file.
func (c *CLI) baseOptions() pipeline.Options {
	opts := pipeline.Options{
		Theme:   c.config.Theme,
		Angle:   c.config.Angle,
		Height:  c.config.Height,
		Letters: c.config.Letters,
		Format:  c.config.Format,
		Logger:  c.Logger,
	}
	if c.config.BgOpacity != nil {
		opts.BgOpacity = pipeline.Opacity(*c.config.BgOpacity)
	}
	return opts
}

// readInput returns the contents of path, or of stdin when path is "-".
func (c *CLI) readInput(path string) (string, error) {
	if path == stdinArg {
		data, err := io.ReadAll(c.stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// requireConverter fails early when a format is produced through
// rsvg-convert and the tool is not installed.
func requireConverter(format string, converted ...string) error {
	for _, f := range converted {
		if f == format && !render.Available() {
			return fmt.Errorf("format %s needs %s on PATH (install librsvg)", format, render.Converter)
		}
	}
	return nil
}

// outputPath derives the artifact path for input: the input path with its
// extension replaced by format, placed in dir when dir is set.
func outputPath(input, format, dir string) string {
	name := strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
	if dir != "" {
		name = filepath.Join(dir, filepath.Base(name))
	}
	return name
}
