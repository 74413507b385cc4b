package layout

import "github.com/matzehuels/rnaviz/pkg/rna"

// NoHighlight marks a bubble drawn in its nucleotide color.
const NoHighlight = -1

// Bubble is the rendering primitive for one sequence position.
type Bubble struct {
	Index      int            `json:"index"`
	Center     Point          `json:"center"`
	Radius     float64        `json:"radius"`
	Nucleotide rna.Nucleotide `json:"nucleotide"`
	Highlight  int            `json:"highlight"`
}

// Highlighted reports whether the bubble carries a color override.
func (b Bubble) Highlighted() bool { return b.Highlight != NoHighlight }

// WithHighlights returns a copy of bubbles with per-position color-ids from
// hl applied. hl must have one entry per bubble.
func WithHighlights(bubbles []Bubble, hl []int) []Bubble {
	out := make([]Bubble, len(bubbles))
	for i, b := range bubbles {
		b.Highlight = hl[i]
		out[i] = b
	}
	return out
}
