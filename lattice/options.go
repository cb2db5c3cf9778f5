package lattice

// ParseConfig controls how Parse maps characters to cells.
type ParseConfig struct {
	// Origin is the point assigned to the first character of the first line.
	Origin Point
	// Skip lists characters that never become cells.
	Skip string
}

// ParseOption mutates a ParseConfig.
type ParseOption func(*ParseConfig)

// DefaultParseConfig places the first character at the origin and skips nothing.
func DefaultParseConfig() ParseConfig {
	return ParseConfig{}
}

// WithOrigin shifts every parsed point by origin.
func WithOrigin(origin Point) ParseOption {
	return func(cfg *ParseConfig) {
		cfg.Origin = origin
	}
}

// WithSkip adds characters that are left out of the grid.
func WithSkip(chars string) ParseOption {
	return func(cfg *ParseConfig) {
		cfg.Skip += chars
	}
}

// ApplyParseOptions applies zero or more options to the default config.
func ApplyParseOptions(opts ...ParseOption) ParseConfig {
	cfg := DefaultParseConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
