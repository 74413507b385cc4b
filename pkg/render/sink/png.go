package sink

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/rnaviz/pkg/errors"
	"github.com/matzehuels/rnaviz/pkg/layout"
)

// RenderPNG rasterizes bubbles in-process. Geometry, colors and draw order
// match RenderSVG; letters use gg's built-in bitmap face.
func RenderPNG(bubbles []layout.Bubble, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	drawn, err := r.prepare(bubbles)
	if err != nil {
		return nil, err
	}
	f := newFrame(drawn, r.height)

	dc := gg.NewContext(max(int(math.Ceil(f.width)), 1), max(int(math.Ceil(f.height)), 1))
	bg := r.theme.Background
	dc.SetRGBA(bg.R, bg.G, bg.B, r.opacity())
	dc.DrawRectangle(0, 0, f.width, f.height)
	dc.Fill()

	if len(drawn) > 0 {
		radius := drawn[0].Radius
		dc.SetLineCapRound()

		setColor(dc, r.theme.Line)
		dc.SetLineWidth(f.length(radius * lineWidth))
		for i := 1; i < len(drawn); i++ {
			strokeLine(dc, f, drawn[i-1].Center, drawn[i].Center)
		}
		if r.pairs != nil {
			setColor(dc, r.theme.PairLine)
			dc.SetLineWidth(f.length(radius * pairWidth))
			for _, p := range r.pairs.Pairs() {
				strokeLine(dc, f, drawn[p[0]].Center, drawn[p[1]].Center)
			}
		}

		for _, b := range drawn {
			x, y := f.project(b.Center)
			setColor(dc, r.fill(b))
			dc.DrawCircle(x, y, f.length(b.Radius))
			dc.Fill()
		}

		if r.letters {
			for _, b := range drawn {
				if !b.Nucleotide.Known() {
					continue
				}
				x, y := f.project(b.Center)
				setColor(dc, r.theme.TextColor(r.fill(b)))
				dc.DrawStringAnchored(b.Nucleotide.String(), x, y, 0.5, 0.35)
			}
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func setColor(dc *gg.Context, c colorful.Color) {
	dc.SetRGBA(c.R, c.G, c.B, 1)
}

func strokeLine(dc *gg.Context, f frame, a, b layout.Point) {
	x1, y1 := f.project(a)
	x2, y2 := f.project(b)
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()
}
