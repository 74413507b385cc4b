package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/rnaviz/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, false)
			if err != nil {
				return err
			}
			defer runner.Close()

			if err := runner.Clear(ctx); err != nil {
				return err
			}
			printSuccess("Cleared %s cache", c.backendName())
			if fc, ok := runner.Cache.(*cache.FileCache); ok {
				printDetail("Directory: %s", fc.Dir())
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.config.CacheOptions()
			switch opts.Backend {
			case cache.BackendNone:
				return fmt.Errorf("caching is disabled (cache.backend = %q)", cache.BackendNone)
			case cache.BackendRedis:
				fmt.Fprintf(cmd.OutOrStdout(), "redis://%s\n", opts.RedisAddr)
				return nil
			}
			dir := opts.Dir
			if dir == "" {
				d, err := cache.DefaultDir()
				if err != nil {
					return err
				}
				dir = d
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

func (c *CLI) backendName() string {
	if b := c.config.Cache.Backend; b != "" {
		return b
	}
	return cache.BackendFile
}
