package layout

import (
	"math"

	"github.com/matzehuels/rnaviz/pkg/errors"
	"github.com/matzehuels/rnaviz/pkg/forest"
	"github.com/matzehuels/rnaviz/pkg/rna"
)

// DefaultRadius is the bubble radius in layout units.
const DefaultRadius = 0.5

// Layout places one bubble per position of f.
//
// seq supplies the nucleotide of every position and must have f.Length
// entries. startAngle (radians) is the direction of the top-level backbone;
// it rotates the whole drawing. The returned slice is indexed by position.
func Layout(f *forest.Forest, seq []rna.Nucleotide, radius, startAngle float64) ([]Bubble, error) {
	if err := errors.ValidateRadius(radius); err != nil {
		return nil, err
	}
	if len(seq) != f.Length {
		return nil, errors.New(errors.ErrCodeStructure,
			"sequence has %d positions but structure has %d", len(seq), f.Length)
	}

	p := &placer{
		f:       f,
		r:       radius,
		bubbles: make([]Bubble, f.Length),
		placed:  make([]bool, f.Length),
	}
	for i := range p.bubbles {
		p.bubbles[i] = Bubble{Index: i, Radius: radius, Nucleotide: seq[i], Highlight: NoHighlight}
	}

	p.exterior(startAngle)
	if p.err != nil {
		return nil, p.err
	}
	for i, ok := range p.placed {
		if !ok {
			return nil, errors.New(errors.ErrCodeInternal, "position %d was not placed", i)
		}
	}
	return p.bubbles, nil
}

// placer carries the state of one layout run.
type placer struct {
	f       *forest.Forest
	r       float64
	bubbles []Bubble
	placed  []bool
	err     error
}

func (p *placer) place(pos int, at Point) {
	if p.placed[pos] {
		if p.err == nil {
			p.err = errors.New(errors.ErrCodeInternal, "position %d placed twice", pos)
		}
		return
	}
	p.placed[pos] = true
	p.bubbles[pos].Center = at
}

// exterior lays the roots along a straight backbone from the origin. An
// unpaired root takes one slot. A root stem is laid out in full first and
// then slid along the backbone so that its whole subtree clears everything
// placed before it by one slot.
func (p *placer) exterior(travel float64) {
	var (
		origin Point
		step   = 2 * p.r
		cursor = 0.0 // backbone coordinate of the next free centre
	)
	for _, idx := range p.f.RootIndices() {
		n := p.f.Node(idx)
		if !n.IsPair() {
			p.place(n.Pos, origin.polar(travel, cursor))
			cursor += step
			continue
		}
		p.stem(idx, origin, travel+math.Pi/2)
		lo, hi := p.span(n.Pos, n.Partner, travel)
		p.shift(n.Pos, n.Partner, origin.polar(travel, cursor-lo))
		cursor += hi - lo + step
	}
}

// span returns the smallest and largest projection of the centres of
// positions from..to onto direction theta.
func (p *placer) span(from, to int, theta float64) (lo, hi float64) {
	cos, sin := math.Cos(theta), math.Sin(theta)
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := from; i <= to; i++ {
		c := p.bubbles[i].Center
		d := c.X*cos + c.Y*sin
		lo, hi = min(lo, d), max(hi, d)
	}
	return lo, hi
}

// shift translates the centres of positions from..to by d.
func (p *placer) shift(from, to int, d Point) {
	for i := from; i <= to; i++ {
		p.bubbles[i].Center = p.bubbles[i].Center.Add(d)
	}
}

// stem places the pair at idx centred on anchor, facing theta, and follows
// the helix while it stays unbranched.
func (p *placer) stem(idx int, anchor Point, theta float64) {
	for {
		n := p.f.Node(idx)
		side := theta + math.Pi/2
		p.place(n.Pos, anchor.polar(side, p.r))
		p.place(n.Partner, anchor.polar(side, -p.r))

		if n.ChildCount() == 1 && p.f.Node(n.First).IsPair() {
			idx = n.First
			anchor = anchor.polar(theta, 2*p.r)
			continue
		}
		p.loop(n, anchor, theta)
		return
	}
}

// loop arranges the content enclosed by the pair n on a regular polygon.
// Vertex 0 is n.Pos and the last vertex n.Partner; the children fill the
// vertices between them in position order.
func (p *placer) loop(n forest.Node, anchor Point, theta float64) {
	m := 2
	for c := n.First; c < n.End; c++ {
		if p.f.Node(c).IsPair() {
			m += 2
		} else {
			m++
		}
	}
	if m == 2 {
		return
	}

	var (
		half   = math.Pi / float64(m)
		step   = 2 * half
		radius = LoopRadius(m, p.r)
		apo    = radius * math.Cos(half) // centre to chord midpoint
		center = anchor.polar(theta, apo)
		start  = theta + math.Pi - half // angle of vertex 0
		k      = 1
	)
	for c := n.First; c < n.End; c++ {
		child := p.f.Node(c)
		if !child.IsPair() {
			p.place(child.Pos, center.polar(start-float64(k)*step, radius))
			k++
			continue
		}
		out := start - (float64(k)+0.5)*step
		p.stem(c, center.polar(out, apo), out)
		k += 2
	}
}
