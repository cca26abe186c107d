package cache

// ScopedKeyer wraps a Keyer with a prefix to isolate deployments that share
// one backend, for example a staging and a production server on the same
// Redis.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ExtractKey generates a prefixed key for extraction results.
func (k *ScopedKeyer) ExtractKey(edition, title, bodyHash string, opts ExtractKeyOpts) string {
	return k.prefix + k.inner.ExtractKey(edition, title, bodyHash, opts)
}
