package cache

// ScopedKeyer wraps a Keyer with a prefix so independent callers sharing a
// backend cannot collide. The HTTP service scopes its keys this way when it
// shares a Redis instance with other deployments.
//
//	k := NewScopedKeyer(NewDefaultKeyer(), "svc:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer uses
// DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// InputKey returns the prefixed input key.
func (k *ScopedKeyer) InputKey(record string) string {
	return k.prefix + k.inner.InputKey(record)
}

// ArtifactKey returns the prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(inputHash, opts)
}
