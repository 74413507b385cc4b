package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/rnaviz/pkg/forest"
	"github.com/matzehuels/rnaviz/pkg/render"
	"github.com/matzehuels/rnaviz/pkg/rna"
)

// exteriorID names the synthetic node that parents all roots.
const exteriorID = "exterior"

// Options configures forest diagram rendering.
type Options struct {
	// Detailed adds nucleotides and loop sizes to node labels.
	// When false, only positions are shown.
	Detailed bool

	// Sequence supplies nucleotides for detailed labels. It may be nil.
	Sequence []rna.Nucleotide
}

// ToDOT converts a forest to Graphviz DOT. Pairs are drawn as rounded
// boxes, unpaired positions as ellipses, and every root hangs off a single
// exterior node so the diagram is one tree.
func ToDOT(f *forest.Forest, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=20, style=filled, fillcolor=white, margin=\"0.15,0.05\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q, shape=plaintext, style=\"\"];\n", exteriorID, fmt.Sprintf("5' .. 3' (%d nt)", f.Length))
	for i, n := range f.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(i), strings.Join(fmtAttrs(f, n, opts), ", "))
	}

	buf.WriteString("\n")
	for _, i := range f.RootIndices() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", exteriorID, nodeID(i))
	}
	for i, n := range f.Nodes {
		for c := n.First; c < n.End; c++ {
			fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(i), nodeID(c))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string { return "n" + strconv.Itoa(i) }

func fmtLabel(f *forest.Forest, n forest.Node, opts Options) string {
	var label string
	if n.IsPair() {
		label = fmt.Sprintf("%d:%d", n.Pos, n.Partner)
	} else {
		label = strconv.Itoa(n.Pos)
	}
	if !opts.Detailed {
		return label
	}

	var parts []string
	if opts.Sequence != nil {
		letters := letterAt(opts.Sequence, n.Pos)
		if n.IsPair() {
			letters += "-" + letterAt(opts.Sequence, n.Partner)
		}
		parts = append(parts, letters)
	}
	if n.IsPair() && n.ChildCount() > 0 {
		parts = append(parts, fmt.Sprintf("loop: %d", loopSize(f, n)))
	}
	if len(parts) == 0 {
		return label
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(f *forest.Forest, n forest.Node, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(f, n, opts))}
	if n.IsPair() {
		attrs = append(attrs, "shape=box", "style=\"rounded,filled\"")
	} else {
		attrs = append(attrs, "shape=ellipse", "fillcolor=lightgrey")
	}
	if n.Parent == forest.None {
		attrs = append(attrs, "penwidth=2")
	}
	return attrs
}

// loopSize counts the members of the loop closed by n, itself included.
func loopSize(f *forest.Forest, n forest.Node) int {
	m := 2
	for c := n.First; c < n.End; c++ {
		if f.Node(c).IsPair() {
			m += 2
		} else {
			m++
		}
	}
	return m
}

func letterAt(seq []rna.Nucleotide, pos int) string {
	if pos < 0 || pos >= len(seq) {
		return rna.Unknown.String()
	}
	return seq[pos].String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one whose
// viewBox starts at the origin and whose size matches it.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion. A scale of 2.0
// produces a 2x resolution image.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
