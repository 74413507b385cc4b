// Package pkg provides the core libraries of rnaviz, which draws RNA
// secondary structures as bubble diagrams.
//
// # Overview
//
// Every position of the molecule becomes a circle of the same radius.
// Consecutive positions touch along the backbone, paired positions touch
// across the helix, and the positions enclosed by a pair close into a
// regular ring. The packages are layered so that the core stays pure and
// the outer ones add I/O:
//
//  1. [rna], [input] - nucleotides, dot-bracket pair tables, record parsing
//  2. [forest] - the loop forest implied by a pair table
//  3. [layout] - bubble placement, rotation and mirroring
//  4. [theme] - color presets and highlight resolution
//  5. [render] - SVG, PNG, PDF and JSON sinks plus the forest diagram
//  6. [pipeline] - orchestration (parse → layout → render) and the cached runner
//
// # Architecture
//
//	text record
//	     ↓
//	[input] Record  →  [rna] PairTable, sequence
//	     ↓
//	[forest] Forest (one node per pair or unpaired position)
//	     ↓
//	[layout] []Bubble (centers, radius, nucleotide, highlight)
//	     ↓
//	[render/sink] SVG / PNG / PDF / JSON
//
// # Quick Start
//
//	svg, err := pipeline.RNA2SVG(">hairpin\nGGGAAACCC\n(((...)))", "white", 0, 1, false, false)
//	if err != nil {
//	    // errors.GetCode(err) tells parse, structure and unsupported input apart
//	}
//
// For repeated rendering, [pipeline.Runner] memoizes artifacts in a [cache]
// backend (none, file or Redis) keyed by the normalized input and options.
//
// # Supporting Packages
//
// [errors] - coded errors shared by every layer.
//
// [config] - TOML settings for the CLI and the HTTP service.
//
// [observability] - hook registry for parse, layout, render, cache and HTTP
// events.
//
// [buildinfo] - version information injected at build time.
package pkg
