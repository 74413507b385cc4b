package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/rnaviz/internal/server"
	"github.com/matzehuels/rnaviz/pkg/cache"
	"github.com/matzehuels/rnaviz/pkg/pipeline"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the renderer over HTTP",
		Long: `Serve exposes POST /v1/render, GET /v1/themes and GET /healthz. Request
options default to the config file settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("addr") {
				addr = c.config.Server.Addr
			}

			cc, err := c.openCache(ctx, noCache)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(cc, cache.NewScopedKeyer(nil, "http:"), c.Logger)
			if ttl := c.config.Cache.TTL.Duration; ttl > 0 {
				runner.TTL = ttl
			}
			defer runner.Close()

			defaults := c.baseOptions()
			defaults.Logger = nil
			srv := server.New(server.Config{
				Runner:   runner,
				Defaults: defaults,
				Timeout:  c.config.Server.Timeout.Duration,
				Logger:   c.Logger,
			})
			printInfo("Listening on %s", StyleValue.Render(addr))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}
