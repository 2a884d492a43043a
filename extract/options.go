package extract

// defaultMaxSynthDepth bounds recursive example synthesis. The OAS 2.0
// grammar this extractor interprets bounds recursion structurally at two
// levels (body schema -> array item schema), but the guard is explicit so
// future schema extensions cannot recurse unbounded.
const defaultMaxSynthDepth = 4

// Option configures an extraction.
type Option func(*config)

// config holds configuration for a single extraction.
type config struct {
	logger        Logger
	maxSynthDepth int
}

// WithLogger sets the structured logger used during extraction.
// A nil logger leaves the default no-op logger in place.
func WithLogger(logger Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxSynthDepth overrides the recursion bound for example synthesis.
// Values below 1 are ignored.
func WithMaxSynthDepth(depth int) Option {
	return func(c *config) {
		if depth >= 1 {
			c.maxSynthDepth = depth
		}
	}
}

// applyOptions builds the effective configuration for one extraction.
func applyOptions(opts ...Option) *config {
	cfg := &config{
		logger:        NopLogger{},
		maxSynthDepth: defaultMaxSynthDepth,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
