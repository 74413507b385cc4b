package sink

import (
	"context"

	"github.com/matzehuels/rnaviz/pkg/errors"
	"github.com/matzehuels/rnaviz/pkg/layout"
	"github.com/matzehuels/rnaviz/pkg/render"
)

// RenderPDF renders bubbles as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, bubbles []layout.Bubble, opts ...Option) ([]byte, error) {
	svg, err := RenderSVG(bubbles, opts...)
	if err != nil {
		return nil, err
	}
	pdf, err := render.ToPDF(ctx, svg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err, "convert to pdf")
	}
	return pdf, nil
}
