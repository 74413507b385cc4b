package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/rnaviz/pkg/errors"
	"github.com/matzehuels/rnaviz/pkg/layout"
	"github.com/matzehuels/rnaviz/pkg/observability"
	"github.com/matzehuels/rnaviz/pkg/render/sink"
	"github.com/matzehuels/rnaviz/pkg/rna"
	"github.com/matzehuels/rnaviz/pkg/theme"
)

// ResolveTheme looks up opts.Theme and applies opts.BgOpacity. An unknown
// name logs a warning and returns the default palette with fallback set.
func ResolveTheme(opts Options) (th theme.Theme, fallback bool) {
	th, ok := theme.Lookup(opts.Theme)
	if !ok {
		if opts.Logger != nil {
			opts.Logger.Warn("theme not recognized, falling back to default", "theme", opts.Theme)
		}
		fallback = true
	}
	if opts.BgOpacity != nil {
		th = th.WithOpacity(*opts.BgOpacity)
	}
	return th, fallback
}

// RenderArtifact serializes bubbles in opts.Format.
func RenderArtifact(ctx context.Context, bubbles []layout.Bubble, pt rna.PairTable, highlights []int, th theme.Theme, opts Options) (data []byte, err error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Format)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, opts.Format, len(data), time.Since(start), err) }()

	sinkOpts := []sink.Option{
		sink.WithTheme(th),
		sink.WithHeight(opts.Height),
		sink.WithMirror(opts.Mirror()),
		sink.WithHighlights(highlights),
		sink.WithPairs(pt),
		sink.WithLetters(opts.Letters),
	}

	switch opts.Format {
	case FormatSVG:
		return sink.RenderSVG(bubbles, sinkOpts...)
	case FormatPNG:
		return sink.RenderPNG(bubbles, sinkOpts...)
	case FormatPDF:
		return sink.RenderPDF(ctx, bubbles, sinkOpts...)
	case FormatJSON:
		return sink.RenderJSON(bubbles, sinkOpts...)
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unsupported format: %s", opts.Format)
}
