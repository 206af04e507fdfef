package bvhtree

// DefaultMaxLeafSize is the incremental-path default from spec.md §6.
// maxLeafSize does not bound incremental Insert (every inserted leaf holds
// exactly one object); it is carried here only so NewTree's defaults match
// §6 exactly, and no Tree operation reads it.
const DefaultMaxLeafSize = 8

// DefaultMaxDepth is the default maximum insertion-descent depth (§6).
const DefaultMaxDepth = 32

// TreeOption configures a Tree at construction time.
type TreeOption func(*Tree)

// WithMaxLeafSize overrides the default max-leaf-size parameter.
func WithMaxLeafSize(n int) TreeOption {
	return func(t *Tree) {
		if n > 0 {
			t.maxLeafSize = n
		}
	}
}

// WithMaxDepth overrides the default max insertion-descent depth.
func WithMaxDepth(n int) TreeOption {
	return func(t *Tree) {
		if n > 0 {
			t.maxDepth = n
		}
	}
}

// WithSAH enables or disables Optimize's rebuild-on-imbalance behavior.
func WithSAH(enabled bool) TreeOption {
	return func(t *Tree) {
		t.enableSAH = enabled
	}
}
