package sink

import (
	"encoding/json"

	"github.com/matzehuels/rnaviz/pkg/errors"
	"github.com/matzehuels/rnaviz/pkg/layout"
	"github.com/matzehuels/rnaviz/pkg/rna"
)

type jsonOutput struct {
	Theme    string        `json:"theme"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Scale    float64       `json:"scale"`
	Mirror   layout.Mirror `json:"mirror"`
	Sequence string        `json:"sequence"`
	Bubbles  []jsonBubble  `json:"bubbles"`
	Pairs    [][2]int      `json:"pairs,omitempty"`
}

type jsonBubble struct {
	Index      int     `json:"index"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Radius     float64 `json:"radius"`
	Nucleotide string  `json:"nucleotide"`
	Fill       string  `json:"fill"`
	Highlight  *int    `json:"highlight,omitempty"`
}

// RenderJSON exports the layout as a pretty-printed JSON document for
// downstream tools. Bubble coordinates are in layout units after mirroring
// (y pointing up); width, height and scale describe the canvas the other
// sinks would produce.
func RenderJSON(bubbles []layout.Bubble, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	drawn, err := r.prepare(bubbles)
	if err != nil {
		return nil, err
	}
	f := newFrame(drawn, r.height)

	seq := make([]rna.Nucleotide, len(drawn))
	for i, b := range drawn {
		seq[i] = b.Nucleotide
	}
	out := jsonOutput{
		Theme:    r.theme.Name(),
		Width:    f.width,
		Height:   f.height,
		Scale:    f.scale,
		Mirror:   r.mirror,
		Sequence: rna.FormatSequence(seq),
		Bubbles:  make([]jsonBubble, len(drawn)),
	}
	for i, b := range drawn {
		jb := jsonBubble{
			Index:      b.Index,
			X:          b.Center.X,
			Y:          b.Center.Y,
			Radius:     b.Radius,
			Nucleotide: b.Nucleotide.String(),
			Fill:       r.fill(b).Hex(),
		}
		if b.Highlighted() {
			id := b.Highlight
			jb.Highlight = &id
		}
		out.Bubbles[i] = jb
	}
	if r.pairs != nil {
		out.Pairs = r.pairs.Pairs()
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal layout")
	}
	return data, nil
}
