package cache

// ScopedKeyer wraps a Keyer with a prefix so several task collections (for
// example "training" and "evaluation") can share one cache without their
// keys colliding.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "evaluation:")
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

// ResultKey generates a prefixed key for evaluation results.
func (k *ScopedKeyer) ResultKey(taskID, taskHash, version string) string {
	return k.prefix + k.inner.ResultKey(taskID, taskHash, version)
}
