package cache

// ScopedKeyer wraps a Keyer with a prefix so independent deployments
// can share one backend without key collisions. The server prefixes
// keys with its configured namespace; bumping the namespace after a
// rendering change invalidates every stale artifact at once.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key.
// A nil inner falls back to the default scheme.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(scene string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(scene, opts)
}

// IndexKey generates the prefixed catalog key.
func (k *ScopedKeyer) IndexKey() string {
	return k.prefix + k.inner.IndexKey()
}
