// Package theme defines the color palettes used to draw bubble diagrams and
// resolves per-position highlight overrides.
//
// Palettes form a closed set of presets. Lookup never fails: an unknown
// name yields the Default palette and false, leaving it to the caller to
// warn about the fallback.
//
//	th, ok := theme.Lookup("dark")
//	if !ok {
//	    logger.Warn("theme not recognized, falling back to default", "theme", name)
//	}
//	th = th.WithOpacity(0.5)
//
// Colors are github.com/lucasb-eyer/go-colorful values so sinks can format
// them as hex for SVG or use them directly as color.Color for raster output.
package theme
