package layout

// Mirror reflects a finished layout about its coordinate origin.
type Mirror struct {
	FlipX bool `json:"flip_x"` // negate X (horizontal mirror)
	FlipY bool `json:"flip_y"` // negate Y (vertical mirror)
}

// Identity reports whether m leaves coordinates unchanged.
func (m Mirror) Identity() bool { return !m.FlipX && !m.FlipY }

// Point reflects a single coordinate.
func (m Mirror) Point(p Point) Point {
	if m.FlipX {
		p.X = -p.X
	}
	if m.FlipY {
		p.Y = -p.Y
	}
	return p
}

// Apply returns reflected copies of bubbles; the input is not modified.
func (m Mirror) Apply(bubbles []Bubble) []Bubble {
	out := make([]Bubble, len(bubbles))
	for i, b := range bubbles {
		b.Center = m.Point(b.Center)
		out[i] = b
	}
	return out
}
