package cache

import "strings"

// Keyer derives cache keys. Implementations must be deterministic: equal
// inputs and options always give equal keys.
type Keyer interface {
	// InputKey identifies a normalized input record.
	InputKey(record string) string
	// ArtifactKey identifies one rendering of an input.
	ArtifactKey(inputHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts lists every option that changes a rendered artifact.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	Theme     string  `json:"theme"`
	Angle     float64 `json:"angle"`
	BgOpacity float64 `json:"bg_opacity"`
	MirrorX   bool    `json:"mirror_x"`
	MirrorY   bool    `json:"mirror_y"`
	Height    int     `json:"height"`
	Letters   bool    `json:"letters"`
	Radius    float64 `json:"radius"`
	Highlight string  `json:"highlight,omitempty"`
}

// DefaultKeyer hashes keys with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// InputKey hashes the record with line endings normalized, so CRLF and LF
// copies of the same file share a key.
func (DefaultKeyer) InputKey(record string) string {
	return hashKey("input", strings.ReplaceAll(record, "\r\n", "\n"))
}

// ArtifactKey hashes the input hash together with the render options.
func (DefaultKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", inputHash, opts)
}
