package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// Converter is the external SVG conversion tool from librsvg.
const Converter = "rsvg-convert"

// ToPDF converts an SVG document to PDF with rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return convert(ctx, svg, "-f", "pdf")
}

// ToPNG converts an SVG document to PNG with rsvg-convert. A scale of 2.0
// doubles the pixel dimensions.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	return convert(ctx, svg, "-f", "png", "-z", strconv.FormatFloat(scale, 'f', -1, 64))
}

// Available reports whether rsvg-convert is on PATH.
func Available() bool {
	_, err := exec.LookPath(Converter)
	return err == nil
}

func convert(ctx context.Context, svg []byte, args ...string) ([]byte, error) {
	path, err := exec.LookPath(Converter)
	if err != nil {
		return nil, fmt.Errorf("%s not found (install librsvg): %w", Converter, err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return nil, fmt.Errorf("%s: %w: %s", Converter, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", Converter, err)
	}
	return stdout.Bytes(), nil
}
