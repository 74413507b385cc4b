package sink

import "github.com/matzehuels/rnaviz/pkg/layout"

// frame maps layout coordinates onto the output canvas.
type frame struct {
	bounds        layout.Rect
	scale         float64
	width, height float64
}

func newFrame(bubbles []layout.Bubble, canvasHeight int) frame {
	h := float64(canvasHeight)
	bounds := layout.Bounds(bubbles)
	if len(bubbles) == 0 || bounds.Empty() {
		return frame{bounds: bounds, scale: 1, width: h, height: h}
	}
	scale := h / bounds.Height()
	return frame{
		bounds: bounds,
		scale:  scale,
		width:  bounds.Width() * scale,
		height: h,
	}
}

// project converts a layout point to canvas pixels. The y axis flips.
func (f frame) project(p layout.Point) (x, y float64) {
	return (p.X - f.bounds.MinX) * f.scale, (f.bounds.MaxY - p.Y) * f.scale
}

// length converts a layout distance to pixels.
func (f frame) length(d float64) float64 { return d * f.scale }
