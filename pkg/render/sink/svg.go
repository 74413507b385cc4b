package sink

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strconv"

	"github.com/matzehuels/rnaviz/pkg/layout"
)

const (
	lineWidth = 0.12 // backbone stroke, relative to the bubble radius
	pairWidth = 0.08
	fontSize  = 1.1 // letter height, relative to the bubble radius
)

// RenderSVG draws bubbles as an SVG document.
//
// Output order is background, backbone and pair lines, bubbles, then
// letters, so circles sit on top of the lines that connect them. Letters
// are written only for bubbles with a known nucleotide.
func RenderSVG(bubbles []layout.Bubble, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	drawn, err := r.prepare(bubbles)
	if err != nil {
		return nil, err
	}
	f := newFrame(drawn, r.height)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		f.width, f.height, f.width, f.height)
	fmt.Fprintf(&buf, `  <rect class="background" x="0" y="0" width="%.2f" height="%.2f" fill="%s" fill-opacity="%s"/>`+"\n",
		f.width, f.height, r.theme.Background.Hex(), fmtAlpha(r.opacity()))

	if len(drawn) > 0 {
		renderLines(&buf, &r, f, drawn)
		renderBubbles(&buf, &r, f, drawn)
		if r.letters {
			renderLetters(&buf, &r, f, drawn)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func renderLines(buf *bytes.Buffer, r *renderer, f frame, bubbles []layout.Bubble) {
	radius := bubbles[0].Radius
	fmt.Fprintf(buf, `  <g class="lines" stroke="%s" stroke-width="%.2f" stroke-linecap="round">`+"\n",
		r.theme.Line.Hex(), f.length(radius*lineWidth))
	for i := 1; i < len(bubbles); i++ {
		writeLine(buf, f, bubbles[i-1].Center, bubbles[i].Center, "")
	}
	if r.pairs != nil {
		attrs := fmt.Sprintf(` class="pair" stroke="%s" stroke-width="%.2f"`,
			r.theme.PairLine.Hex(), f.length(radius*pairWidth))
		for _, p := range r.pairs.Pairs() {
			writeLine(buf, f, bubbles[p[0]].Center, bubbles[p[1]].Center, attrs)
		}
	}
	buf.WriteString("  </g>\n")
}

func writeLine(buf *bytes.Buffer, f frame, a, b layout.Point, attrs string) {
	x1, y1 := f.project(a)
	x2, y2 := f.project(b)
	fmt.Fprintf(buf, `    <line%s x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", attrs, x1, y1, x2, y2)
}

func renderBubbles(buf *bytes.Buffer, r *renderer, f frame, bubbles []layout.Bubble) {
	buf.WriteString(`  <g class="bubbles">` + "\n")
	for _, b := range bubbles {
		cx, cy := f.project(b.Center)
		fmt.Fprintf(buf, `    <circle id="b%d" cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n",
			b.Index, cx, cy, f.length(b.Radius), r.fill(b).Hex())
	}
	buf.WriteString("  </g>\n")
}

func renderLetters(buf *bytes.Buffer, r *renderer, f frame, bubbles []layout.Bubble) {
	opened := false
	for _, b := range bubbles {
		if !b.Nucleotide.Known() {
			continue
		}
		if !opened {
			fmt.Fprintf(buf, `  <g class="letters" font-family="monospace" font-size="%.2f" text-anchor="middle" dominant-baseline="central">`+"\n",
				f.length(b.Radius*fontSize))
			opened = true
		}
		x, y := f.project(b.Center)
		fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" fill="%s">%s</text>`+"\n",
			x, y, r.theme.TextColor(r.fill(b)).Hex(), html.EscapeString(b.Nucleotide.String()))
	}
	if opened {
		buf.WriteString("  </g>\n")
	}
}

// fmtAlpha formats an opacity with at most two decimals.
func fmtAlpha(a float64) string {
	return strconv.FormatFloat(math.Round(a*100)/100, 'f', -1, 64)
}
