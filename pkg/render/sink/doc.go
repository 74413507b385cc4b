// Package sink writes bubble layouts to output formats.
//
// # Overview
//
// A sink takes the positioned bubbles produced by [layout.Layout] and emits
// a finished document:
//
//   - SVG: [RenderSVG], the primary vector output
//   - PNG: [RenderPNG], rasterized in-process with fogleman/gg
//   - PDF: [RenderPDF], the SVG converted by rsvg-convert
//   - JSON: [RenderJSON], the layout itself for downstream tools
//
// All sinks share one set of options and one frame computation, so every
// format shows the same drawing:
//
//	svg, err := sink.RenderSVG(bubbles,
//	    sink.WithTheme(th),
//	    sink.WithHeight(900),
//	    sink.WithPairs(pt),
//	    sink.WithMirror(layout.Mirror{FlipY: true}),
//	)
//
// # Frame
//
// The drawing is scaled uniformly so the bounding box of all bubbles
// (centres expanded by their radius) fills the canvas height. Layout
// coordinates have y pointing up; output coordinates have y pointing down.
// A layout with no bubbles produces a square canvas showing only the
// background.
//
// [WriteFile] persists any rendered document; a failed write is reported
// as a RENDER_IO_ERROR and leaves the rendered bytes untouched.
//
// [layout.Layout]: github.com/matzehuels/rnaviz/pkg/layout.Layout
package sink
