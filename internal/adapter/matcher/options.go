package matcher

import "github.com/vinicius-lino-figueiredo/seeq/domain"

// Option configures matcher behavior through the functional options
// pattern.
type Option func(*Matcher)

// WithSearchOptions sets the full matching configuration.
func WithSearchOptions(o domain.SearchOptions) Option {
	return func(m *Matcher) {
		m.options = o
	}
}

// WithExcludeKeys sets dotted-path suffixes that are never considered,
// at any depth.
func WithExcludeKeys(keys ...string) Option {
	return func(m *Matcher) {
		m.options.ExcludeKeys = keys
	}
}
