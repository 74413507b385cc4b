package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/rnaviz/pkg/pipeline"
	"github.com/matzehuels/rnaviz/pkg/render/sink"
)

// batchResult records the outcome for one input file.
type batchResult struct {
	input  string
	output string
	cached bool
	err    error
}

// batchCommand creates the batch command.
func (c *CLI) batchCommand() *cobra.Command {
	var (
		flags  renderFlags
		jobs   int
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "batch <files...>",
		Short: "Render many records concurrently",
		Long: `Batch renders each file with the same options. Each artifact is written
next to its input, or into --output-dir. A failing input does not stop the
others; the command fails if any input failed.`,
		Example: `  rnaviz batch data/*.txt -j 8 -f png -d out/`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			flags.apply(cmd, &opts)
			return c.runBatch(cmd.Context(), args, outDir, jobs, flags.noCache, opts)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "number of concurrent renders")
	cmd.Flags().StringVarP(&outDir, "output-dir", "d", "", "directory for artifacts (default: next to each input)")

	return cmd
}

func (c *CLI) runBatch(ctx context.Context, inputs []string, outDir string, jobs int, noCache bool, opts pipeline.Options) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if err := requireConverter(opts.Format, pipeline.FormatPDF); err != nil {
		return err
	}
	if jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", jobs)
	}
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d inputs...", len(inputs)))
	spinner.Start()

	results := make([]batchResult, len(inputs))
	var finished atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = c.renderOne(gctx, runner, in, outDir, opts)
			spinner.Update(fmt.Sprintf("Rendered %d/%d...", finished.Add(1), len(inputs)))
			return nil
		})
	}
	err = g.Wait()
	spinner.Stop()
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			printError("%s: %v", r.input, r.err)
			continue
		}
		status := iconFresh
		if r.cached {
			status = iconCached
		}
		printSuccess("%s %s %s %s", r.input, StyleDim.Render(iconArrow), r.output, StyleDim.Render("("+status+")"))
	}
	prog.done(fmt.Sprintf("Rendered %d of %d inputs", len(inputs)-failed, len(inputs)))

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(inputs))
	}
	return nil
}

func (c *CLI) renderOne(ctx context.Context, runner *pipeline.Runner, input, outDir string, opts pipeline.Options) batchResult {
	res := batchResult{input: input, output: outputPath(input, opts.Format, outDir)}

	text, err := c.readInput(input)
	if err != nil {
		res.err = err
		return res
	}
	out, err := runner.Execute(ctx, text, opts)
	if err != nil {
		res.err = err
		return res
	}
	res.cached = out.CacheHit
	res.err = sink.WriteFile(res.output, out.Artifact)
	return res
}
