// Package nodelink draws the structure forest as a node-link diagram.
//
// # Overview
//
// Where the bubble diagram shows the molecule, this package shows the tree
// the layout walks: one box per base pair, one ellipse per unpaired
// position, and an edge from every pair to the loop members it encloses.
// It is meant for inspecting how a structure was decomposed.
//
// # Usage
//
//	dot := nodelink.ToDOT(f, nodelink.Options{Detailed: true, Sequence: seq})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [ToDOT] output can also be saved and processed with external Graphviz
// tools.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
