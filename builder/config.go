// Package builder: config.go centralizes Build's configurable parameters
// behind functional options, in the teacher's builderConfig/BuilderOption
// register (builder/config.go).
package builder

// BuilderOption customizes Build's resolved configuration. Option
// constructors never panic and ignore out-of-range values.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds Build's resolved parameters. Not safe for
// concurrent mutation; each Build call resolves its own config.
type builderConfig struct {
	maxLeafSize int
	maxDepth    int
	sahBins     int
}

// newBuilderConfig returns defaults (maxLeafSize=4, maxDepth=32,
// sahBins=12), then applies opts in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		maxLeafSize: DefaultMaxLeafSize,
		maxDepth:    DefaultMaxDepth,
		sahBins:     DefaultSAHBins,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithMaxLeafSize overrides the per-cluster leaf cap. Non-positive values
// are ignored.
func WithMaxLeafSize(n int) BuilderOption {
	return func(cfg *builderConfig) {
		if n > 0 {
			cfg.maxLeafSize = n
		}
	}
}

// WithMaxDepth overrides the maximum recursion depth. Non-positive values
// are ignored.
func WithMaxDepth(n int) BuilderOption {
	return func(cfg *builderConfig) {
		if n > 0 {
			cfg.maxDepth = n
		}
	}
}

// WithSAHBins overrides the number of candidate split positions SAH
// evaluates per axis. Values below 2 are ignored (at least one interior
// split position is required).
func WithSAHBins(n int) BuilderOption {
	return func(cfg *builderConfig) {
		if n >= 2 {
			cfg.sahBins = n
		}
	}
}
