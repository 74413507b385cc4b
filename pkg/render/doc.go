// Package render turns bubble layouts into documents.
//
// # Overview
//
// The rendering code is split by concern:
//
//   - Format conversion (SVG to PDF/PNG) in this package
//   - Bubble diagram sinks (SVG, PNG, PDF, JSON) in the [sink] subpackage
//   - Forest diagrams through Graphviz in the [nodelink] subpackage
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] shell out to rsvg-convert (from librsvg). [Available]
// reports whether the tool is installed so callers can fail early with a
// clear message.
//
//	svg, err := sink.RenderSVG(bubbles, sink.WithTheme(th))
//	pdf, err := render.ToPDF(ctx, svg)
//
// [sink]: github.com/matzehuels/rnaviz/pkg/render/sink
// [nodelink]: github.com/matzehuels/rnaviz/pkg/render/nodelink
package render
