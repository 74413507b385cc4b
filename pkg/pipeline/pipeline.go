// Package pipeline runs the complete parse → layout → render flow shared by
// the CLI, the HTTP service and library callers.
//
// # Architecture
//
// The pipeline has three stages:
//
//  1. Parse: record text → pair table, nucleotide sequence and forest
//  2. Layout: forest → bubbles, plus resolved highlight overrides
//  3. Render: bubbles → SVG, PNG, PDF or JSON
//
// [Render] runs all three on an already parsed record and never touches the
// cache. [Runner] wraps it with an artifact cache keyed by the input and
// every option that changes the output.
//
// # Usage
//
// The one-call entry point mirrors the command-line defaults:
//
//	svg, err := pipeline.RNA2SVG(text, "dark", 0, 1, false, false)
//
// With caching:
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, text, pipeline.Options{Theme: "white"})
//	os.Stdout.Write(result.Artifact)
package pipeline

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/rnaviz/pkg/cache"
	"github.com/matzehuels/rnaviz/pkg/errors"
	"github.com/matzehuels/rnaviz/pkg/forest"
	"github.com/matzehuels/rnaviz/pkg/input"
	"github.com/matzehuels/rnaviz/pkg/layout"
	"github.com/matzehuels/rnaviz/pkg/rna"
	"github.com/matzehuels/rnaviz/pkg/render/sink"
	"github.com/matzehuels/rnaviz/pkg/theme"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API and library callers
// =============================================================================

const (
	// DefaultHeight is the canvas height in pixels.
	DefaultHeight = sink.DefaultHeight

	// DefaultRadius is the bubble radius in layout units.
	DefaultRadius = layout.DefaultRadius

	// DefaultTheme is the palette used when none is named.
	DefaultTheme = "default"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one rendering.
// This struct supports JSON serialization for API requests.
type Options struct {
	Theme string  `json:"theme,omitempty"`
	Angle float64 `json:"angle,omitempty"` // rotation in degrees

	// BgOpacity overwrites the background alpha when set. Nil keeps the
	// palette's own alpha.
	BgOpacity *float64 `json:"bg_opacity,omitempty"`

	MirrorX bool    `json:"mirror_x,omitempty"` // negate X
	MirrorY bool    `json:"mirror_y,omitempty"` // negate Y
	Height  int     `json:"height,omitempty"`
	Radius  float64 `json:"radius,omitempty"`
	Letters bool    `json:"letters,omitempty"` // draw nucleotide letters
	Format  string  `json:"format,omitempty"`

	// Highlight replaces the record's highlight line when non-empty.
	Highlight string `json:"highlight,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Opacity returns a pointer to v for Options.BgOpacity.
func Opacity(v float64) *float64 { return &v }

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Radius == 0 {
		o.Radius = DefaultRadius
	}
	if o.Format == "" {
		o.Format = FormatSVG
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if err := errors.ValidateCanvasHeight(o.Height); err != nil {
		return err
	}
	if err := errors.ValidateRadius(o.Radius); err != nil {
		return err
	}
	if err := errors.ValidateAngle(o.Angle); err != nil {
		return err
	}
	if o.BgOpacity != nil && (math.IsNaN(*o.BgOpacity) || math.IsInf(*o.BgOpacity, 0)) {
		return errors.New(errors.ErrCodeInvalidInput, "background opacity must be finite, got %v", *o.BgOpacity)
	}
	return nil
}

// Mirror returns the mirror transform selected by the options.
func (o *Options) Mirror() layout.Mirror {
	return layout.Mirror{FlipX: o.MirrorX, FlipY: o.MirrorY}
}

// ArtifactKeyOpts returns cache key options for the rendered artifact.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:    o.Format,
		Theme:     o.Theme,
		Angle:     o.Angle,
		BgOpacity: -1,
		MirrorX:   o.MirrorX,
		MirrorY:   o.MirrorY,
		Height:    o.Height,
		Letters:   o.Letters,
		Radius:    o.Radius,
		Highlight: o.Highlight,
	}
	if o.BgOpacity != nil {
		opts.BgOpacity = *o.BgOpacity
	}
	return opts
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run. On a cache hit only
// Record, Theme, ThemeFallback, Artifact, Format, InputHash and CacheHit
// are populated.
type Result struct {
	Record     input.Record
	Structure  *Structure
	Bubbles    []layout.Bubble
	Highlights []int
	Theme      theme.Theme

	// ThemeFallback is set when the requested theme name was not
	// recognized and the default palette was used instead.
	ThemeFallback bool

	Format    string
	Artifact  []byte
	InputHash string
	CacheHit  bool
	Stats     Stats
}

// Stats contains timing and size information.
type Stats struct {
	Positions  int
	Pairs      int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// Structure is a parsed record ready for layout.
type Structure struct {
	Pairs    rna.PairTable
	Sequence []rna.Nucleotide
	Forest   *forest.Forest
}

// =============================================================================
// Entry points
// =============================================================================

// Render runs parse, layout and render on rec. It never caches.
func Render(ctx context.Context, rec input.Record, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	res := &Result{Record: rec, Format: opts.Format}

	start := time.Now()
	s, err := BuildStructure(ctx, rec)
	if err != nil {
		return nil, err
	}
	res.Structure = s
	res.Stats.ParseTime = time.Since(start)
	res.Stats.Positions = s.Forest.Length
	res.Stats.Pairs = s.Pairs.PairCount()

	start = time.Now()
	bubbles, highlights, err := ComputeLayout(ctx, s, rec, opts)
	if err != nil {
		return nil, err
	}
	res.Bubbles, res.Highlights = bubbles, highlights
	res.Stats.LayoutTime = time.Since(start)

	res.Theme, res.ThemeFallback = ResolveTheme(opts)

	start = time.Now()
	artifact, err := RenderArtifact(ctx, bubbles, s.Pairs, highlights, res.Theme, opts)
	if err != nil {
		return nil, err
	}
	res.Artifact = artifact
	res.Stats.RenderTime = time.Since(start)

	opts.Logger.Debug("rendered record",
		"name", rec.Name,
		"positions", res.Stats.Positions,
		"pairs", res.Stats.Pairs,
		"format", opts.Format,
		"bytes", len(artifact))
	return res, nil
}

// RenderText parses text as a record and renders it.
func RenderText(ctx context.Context, text string, opts Options) (*Result, error) {
	rec, err := input.ParseString(text)
	if err != nil {
		return nil, err
	}
	return Render(ctx, rec, opts)
}

// RNA2SVG renders a record to an SVG document with a 900 pixel canvas and
// bubble radius 0.5. angle is in degrees and bgOpacity overwrites the
// background alpha. No file is written. An unrecognized theme falls back to
// the default palette with a warning on the standard logger.
//
// A blank line cannot carry a structure, so text with no structure line
// fails with ErrCodeMissingStructure. Rendering an empty structure, which
// draws only the background, needs [Render] with a record whose
// HasStructure is set and whose Structure is "".
func RNA2SVG(text, themeName string, angle, bgOpacity float64, mirrorY, mirrorX bool) (string, error) {
	res, err := RenderText(context.Background(), text, Options{
		Theme:     themeName,
		Angle:     angle,
		BgOpacity: Opacity(bgOpacity),
		MirrorX:   mirrorX,
		MirrorY:   mirrorY,
		Height:    DefaultHeight,
		Radius:    DefaultRadius,
		Format:    FormatSVG,
		Logger:    log.Default(),
	})
	if err != nil {
		return "", err
	}
	return string(res.Artifact), nil
}

// Describe summarizes a result for status lines.
func (r *Result) Describe() string {
	if r.CacheHit {
		return fmt.Sprintf("%s, %d bytes (cached)", r.Format, len(r.Artifact))
	}
	return fmt.Sprintf("%s, %d positions, %d pairs, %d bytes",
		r.Format, r.Stats.Positions, r.Stats.Pairs, len(r.Artifact))
}
