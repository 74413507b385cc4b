package theme

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/rnaviz/pkg/rna"
)

// HighlightCount is the number of highlight colors every palette carries.
// Color-ids are 0..HighlightCount-1.
const HighlightCount = 10

// Preset identifies one of the built-in palettes.
type Preset int

const (
	Default Preset = iota
	Dark
	White
	Black
	Bright
)

var presetNames = [...]string{
	Default: "default",
	Dark:    "dark",
	White:   "white",
	Black:   "black",
	Bright:  "bright",
}

// String returns the canonical preset name.
func (p Preset) String() string {
	if p < 0 || int(p) >= len(presetNames) {
		return fmt.Sprintf("Preset(%d)", int(p))
	}
	return presetNames[p]
}

// ParsePreset maps a theme name to its preset. "w" and "b" are accepted as
// short forms of white and black. Matching is exact.
func ParsePreset(name string) (Preset, bool) {
	switch name {
	case "default":
		return Default, true
	case "dark":
		return Dark, true
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	case "bright":
		return Bright, true
	}
	return Default, false
}

// Names lists the canonical preset names in declaration order.
func Names() []string {
	out := make([]string, len(presetNames))
	copy(out, presetNames[:])
	return out
}

// Theme is a complete palette. Values are immutable; WithOpacity returns a
// modified copy.
type Theme struct {
	Preset     Preset
	Background colorful.Color
	// Opacity is the background alpha. It is stored as given; sinks clamp
	// it to [0, 1] when writing.
	Opacity     float64
	Nucleotides [rna.U + 1]colorful.Color
	Line        colorful.Color
	PairLine    colorful.Color
	Highlights  [HighlightCount]colorful.Color
}

// Name returns the canonical name of the preset the theme was built from.
func (t Theme) Name() string { return t.Preset.String() }

// WithOpacity returns a copy of t whose background alpha is a.
func (t Theme) WithOpacity(a float64) Theme {
	t.Opacity = a
	return t
}

// NucleotideColor returns the fill for n. Out-of-range values use the
// Unknown fill.
func (t Theme) NucleotideColor(n rna.Nucleotide) colorful.Color {
	if int(n) >= len(t.Nucleotides) {
		return t.Nucleotides[rna.Unknown]
	}
	return t.Nucleotides[n]
}

// HighlightColor returns the override fill for a color-id. Ids wrap modulo
// HighlightCount so callers never index out of range.
func (t Theme) HighlightColor(id int) colorful.Color {
	id %= HighlightCount
	if id < 0 {
		id += HighlightCount
	}
	return t.Highlights[id]
}

// TextColor returns a letter color readable on top of fill.
func (t Theme) TextColor(fill colorful.Color) colorful.Color {
	l, _, _ := fill.Lab()
	if l > 0.6 {
		return black
	}
	return white
}

var (
	black = mustHex("#000000")
	white = mustHex("#ffffff")
)

// Get returns the palette of a preset. Unknown presets use Default.
func Get(p Preset) Theme {
	switch p {
	case Dark:
		return dark()
	case White:
		return whiteTheme()
	case Black:
		return blackTheme()
	case Bright:
		return bright()
	}
	return defaultTheme()
}

// Lookup resolves a theme name. Unknown names return the Default palette
// and false.
func Lookup(name string) (Theme, bool) {
	p, ok := ParsePreset(strings.TrimSpace(name))
	return Get(p), ok
}

func defaultTheme() Theme {
	return build(Default, "#f5f5f0", "#777777",
		"#e8a33d", "#5b8fd6", "#5fb55f", "#d65b5b", "#b0b0b0",
		0.45, 0.95)
}

func dark() Theme {
	return build(Dark, "#1c1f26", "#9aa0aa",
		"#f2b35a", "#6fa8f0", "#7cd17c", "#f07a7a", "#5c6370",
		0.55, 0.95)
}

func whiteTheme() Theme {
	return build(White, "#ffffff", "#555555",
		"#f6c26b", "#8ab4f8", "#92d492", "#f28b82", "#cccccc",
		0.5, 0.95)
}

func blackTheme() Theme {
	return build(Black, "#000000", "#bbbbbb",
		"#ffb000", "#4a90ff", "#3ddc84", "#ff5252", "#444444",
		0.7, 1.0)
}

func bright() Theme {
	return build(Bright, "#fffdf5", "#333333",
		"#ffcc00", "#0099ff", "#33cc33", "#ff3366", "#dddddd",
		0.85, 1.0)
}

// build assembles a palette. Pair lines are the backbone color pulled
// halfway towards the background; the highlight ramp is spread evenly
// around the hue circle at the given saturation and value.
func build(p Preset, bg, line, a, c, g, u, unknown string, sat, val float64) Theme {
	t := Theme{
		Preset:     p,
		Background: mustHex(bg),
		Opacity:    1,
		Line:       mustHex(line),
	}
	t.PairLine = t.Line.BlendLab(t.Background, 0.5).Clamped()
	t.Nucleotides[rna.Unknown] = mustHex(unknown)
	t.Nucleotides[rna.A] = mustHex(a)
	t.Nucleotides[rna.C] = mustHex(c)
	t.Nucleotides[rna.G] = mustHex(g)
	t.Nucleotides[rna.U] = mustHex(u)
	for i := range t.Highlights {
		t.Highlights[i] = colorful.Hsv(float64(i)*360/HighlightCount, sat, val)
	}
	return t
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("theme: bad color literal %q: %v", s, err))
	}
	return c
}
