package layout

import "math"

// Point is a 2-D coordinate in layout units. The y axis points up.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// polar returns the point at distance d from p in direction theta.
func (p Point) polar(theta, d float64) Point {
	return Point{p.X + d*math.Cos(theta), p.Y + d*math.Sin(theta)}
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Empty reports whether r encloses no area.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Bounds returns the bounding box of all bubbles, each expanded by its
// radius. The zero Rect is returned for no bubbles.
func Bounds(bubbles []Bubble) Rect {
	if len(bubbles) == 0 {
		return Rect{}
	}
	r := Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, b := range bubbles {
		r.MinX = math.Min(r.MinX, b.Center.X-b.Radius)
		r.MinY = math.Min(r.MinY, b.Center.Y-b.Radius)
		r.MaxX = math.Max(r.MaxX, b.Center.X+b.Radius)
		r.MaxY = math.Max(r.MaxY, b.Center.Y+b.Radius)
	}
	return r
}

// LoopRadius returns the circumradius of a regular polygon with m vertices
// and side 2r. For m < 2 the loop degenerates to a single bubble and the
// radius is r.
func LoopRadius(m int, r float64) float64 {
	if m < 2 {
		return r
	}
	return r / math.Sin(math.Pi/float64(m))
}
