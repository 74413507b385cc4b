package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/rnaviz/pkg/pipeline"
	"github.com/matzehuels/rnaviz/pkg/render/sink"
)

// renderFlags holds the flags shared by render and batch. Only flags the
// user set override the config file.
type renderFlags struct {
	theme     string
	angle     float64
	bgOpacity float64
	mirrorX   bool
	mirrorY   bool
	height    int
	format    string
	letters   bool
	noCache   bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.theme, "theme", "t", pipeline.DefaultTheme, "color theme: default, dark, white, black, bright")
	fs.Float64VarP(&f.angle, "angle", "a", 0, "rotation in degrees")
	fs.Float64Var(&f.bgOpacity, "bg-opacity", 1, "background opacity (0-1)")
	fs.BoolVar(&f.mirrorX, "mirror-x", false, "mirror horizontally")
	fs.BoolVar(&f.mirrorY, "mirror-y", false, "mirror vertically")
	fs.IntVar(&f.height, "height", pipeline.DefaultHeight, "canvas height in pixels")
	fs.StringVarP(&f.format, "format", "f", pipeline.FormatSVG, "output format: svg, png, pdf, json")
	fs.BoolVar(&f.letters, "letters", false, "draw nucleotide letters")
	fs.BoolVar(&f.noCache, "no-cache", false, "disable the artifact cache")
	registerFlagCompletions(cmd)
}

// apply overlays explicitly set flags onto opts.
func (f *renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	fs := cmd.Flags()
	if fs.Changed("theme") {
		opts.Theme = f.theme
	}
	if fs.Changed("angle") {
		opts.Angle = f.angle
	}
	if fs.Changed("bg-opacity") {
		opts.BgOpacity = pipeline.Opacity(f.bgOpacity)
	}
	if fs.Changed("mirror-x") {
		opts.MirrorX = f.mirrorX
	}
	if fs.Changed("mirror-y") {
		opts.MirrorY = f.mirrorY
	}
	if fs.Changed("height") {
		opts.Height = f.height
	}
	if fs.Changed("format") {
		opts.Format = f.format
	}
	if fs.Changed("letters") {
		opts.Letters = f.letters
	}
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags     renderFlags
		output    string
		highlight string
	)

	cmd := &cobra.Command{
		Use:   "render <file|->",
		Short: "Render a structure record to SVG, PNG, PDF or JSON",
		Long: `Render reads one record (name, sequence, dot-bracket structure and
highlights, one per line) and draws it. Use "-" to read from stdin; the
artifact is then written to stdout unless --output is given.`,
		Example: `  rnaviz render trna.txt
  echo "((..))" | rnaviz render - -t white > hairpin.svg
  rnaviz render trna.txt -f png --height 1200 --highlight "@10-16:2"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			flags.apply(cmd, &opts)
			opts.Highlight = highlight
			return c.runRender(cmd.Context(), args[0], output, flags.noCache, opts)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (\"-\" for stdout)")
	cmd.Flags().StringVar(&highlight, "highlight", "", "highlight spec overriding the record's, e.g. \"@3:1, 10-14:2\"")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input, output string, noCache bool, opts pipeline.Options) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if err := requireConverter(opts.Format, pipeline.FormatPDF); err != nil {
		return err
	}
	text, err := c.readInput(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	res, err := runner.Execute(ctx, text, opts)
	if err != nil {
		return err
	}

	if (output == "" && input == stdinArg) || output == stdinArg {
		_, err := c.stdout.Write(res.Artifact)
		return err
	}
	if output == "" {
		output = outputPath(input, opts.Format, "")
	}
	if err := sink.WriteFile(output, res.Artifact); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %s", output))
	printSuccess("Rendered %s", res.Format)
	printFile(output)
	printStats(res.Stats.Positions, res.Stats.Pairs, res.CacheHit)
	return nil
}
