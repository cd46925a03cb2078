package evaluator

import "github.com/vinicius-lino-figueiredo/seeq/domain"

// Option configures evaluator behavior through the functional options
// pattern.
type Option func(*Evaluator)

// WithMatcher sets the matcher used to test leaf conditions.
func WithMatcher(m domain.Matcher) Option {
	return func(e *Evaluator) {
		e.matcher = m
	}
}
