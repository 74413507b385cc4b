package pipeline

import (
	"context"
	"math"
	"time"

	"github.com/matzehuels/rnaviz/pkg/input"
	"github.com/matzehuels/rnaviz/pkg/layout"
	"github.com/matzehuels/rnaviz/pkg/observability"
	"github.com/matzehuels/rnaviz/pkg/theme"
)

// ComputeLayout places the bubbles of s and resolves the highlight spec
// (opts.Highlight if set, otherwise the record's highlight line). The
// returned highlights have one entry per bubble.
func ComputeLayout(ctx context.Context, s *Structure, rec input.Record, opts Options) (bubbles []layout.Bubble, highlights []int, err error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, s.Forest.Length)
	start := time.Now()
	defer func() { hooks.OnLayoutComplete(ctx, len(bubbles), time.Since(start), err) }()

	bubbles, err = layout.Layout(s.Forest, s.Sequence, opts.Radius, opts.Angle*math.Pi/180)
	if err != nil {
		return nil, nil, err
	}

	spec := rec.Highlight
	if opts.Highlight != "" {
		spec = opts.Highlight
	}
	highlights, err = theme.ResolveHighlights(spec, len(bubbles))
	if err != nil {
		return nil, nil, err
	}
	return bubbles, highlights, nil
}
