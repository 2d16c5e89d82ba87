package vec

import "golang.org/x/text/language"

// FormatConfig controls how components are rendered as text.
type FormatConfig struct {
	// Verb is an fmt verb applied to each component, e.g. "%.3f". Empty
	// selects the shortest text that parses back to the same value.
	Verb string

	// Locale selects digit grouping and the decimal separator.
	// language.Und leaves numbers unlocalised.
	Locale language.Tag
}

// FormatOption mutates a FormatConfig.
type FormatOption func(*FormatConfig)

// DefaultFormatConfig returns the shortest exact, unlocalised format.
func DefaultFormatConfig() FormatConfig {
	return FormatConfig{Locale: language.Und}
}

// WithVerb sets the fmt verb used for each component.
func WithVerb(verb string) FormatOption {
	return func(cfg *FormatConfig) {
		cfg.Verb = verb
	}
}

// WithLocale formats components for the given locale.
func WithLocale(tag language.Tag) FormatOption {
	return func(cfg *FormatConfig) {
		cfg.Locale = tag
	}
}

// ApplyFormatOptions applies opts to the default configuration.
func ApplyFormatOptions(opts ...FormatOption) FormatConfig {
	cfg := DefaultFormatConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
