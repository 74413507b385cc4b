package sink

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/rnaviz/pkg/errors"
	"github.com/matzehuels/rnaviz/pkg/layout"
	"github.com/matzehuels/rnaviz/pkg/rna"
	"github.com/matzehuels/rnaviz/pkg/theme"
)

// DefaultHeight is the canvas height in pixels.
const DefaultHeight = 900

// Option configures a sink.
type Option func(*renderer)

type renderer struct {
	theme      theme.Theme
	height     int
	mirror     layout.Mirror
	highlights []int
	pairs      rna.PairTable
	letters    bool
}

// WithTheme sets the palette. Defaults to the default preset.
func WithTheme(t theme.Theme) Option { return func(r *renderer) { r.theme = t } }

// WithHeight sets the canvas height in pixels. Defaults to DefaultHeight.
func WithHeight(h int) Option { return func(r *renderer) { r.height = h } }

// WithMirror flips the bubbles before they are drawn.
func WithMirror(m layout.Mirror) Option { return func(r *renderer) { r.mirror = m } }

// WithPairs enables pair lines between the partners of pt. pt must cover
// every bubble.
func WithPairs(pt rna.PairTable) Option { return func(r *renderer) { r.pairs = pt } }

// WithLetters writes each nucleotide letter inside its bubble. Off by
// default.
func WithLetters(on bool) Option { return func(r *renderer) { r.letters = on } }

// WithHighlights overrides the color-id of every bubble. hl must have one
// entry per bubble; layout.NoHighlight keeps the nucleotide color.
func WithHighlights(hl []int) Option { return func(r *renderer) { r.highlights = hl } }

func newRenderer(opts ...Option) renderer {
	r := renderer{
		theme:  theme.Get(theme.Default),
		height: DefaultHeight,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// prepare validates the options against bubbles and returns the bubbles to
// draw: mirrored, with highlight overrides applied.
func (r *renderer) prepare(bubbles []layout.Bubble) ([]layout.Bubble, error) {
	if err := errors.ValidateCanvasHeight(r.height); err != nil {
		return nil, err
	}
	if r.highlights != nil && len(r.highlights) != len(bubbles) {
		return nil, errors.New(errors.ErrCodeInternal,
			"%d highlights for %d bubbles", len(r.highlights), len(bubbles))
	}
	if r.pairs != nil && r.pairs.Len() != len(bubbles) {
		return nil, errors.New(errors.ErrCodeInternal,
			"pair table covers %d positions but there are %d bubbles", r.pairs.Len(), len(bubbles))
	}
	for i, b := range bubbles {
		if b.Index != i {
			return nil, errors.New(errors.ErrCodeInternal, "bubble %d carries index %d", i, b.Index)
		}
	}

	out := r.mirror.Apply(bubbles)
	if r.highlights != nil {
		out = layout.WithHighlights(out, r.highlights)
	}
	return out, nil
}

// fill returns the color a bubble is drawn with.
func (r *renderer) fill(b layout.Bubble) colorful.Color {
	if b.Highlighted() {
		return r.theme.HighlightColor(b.Highlight)
	}
	return r.theme.NucleotideColor(b.Nucleotide)
}

// opacity returns the background alpha clamped to [0, 1].
func (r *renderer) opacity() float64 {
	return min(max(r.theme.Opacity, 0), 1)
}
