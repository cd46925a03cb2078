package engine

import "github.com/vinicius-lino-figueiredo/seeq/domain"

// Option configures engine behavior through the functional options
// pattern.
type Option func(*Engine)

// WithSearchOptions applies matching configuration options.
func WithSearchOptions(options ...domain.SearchOption) Option {
	return func(e *Engine) {
		for _, option := range options {
			option(&e.options)
		}
	}
}

// WithTokenizer sets the tokenizer implementation for query scanning.
func WithTokenizer(t domain.Tokenizer) Option {
	return func(e *Engine) {
		e.tokenizer = t
	}
}

// WithNormalizer sets the normalizer implementation for condition
// construction.
func WithNormalizer(n domain.Normalizer) Option {
	return func(e *Engine) {
		e.normalizer = n
	}
}

// WithParser sets the parser implementation for query tree construction.
func WithParser(p domain.Parser) Option {
	return func(e *Engine) {
		e.parser = p
	}
}

// WithMatcher sets the matcher implementation for condition evaluation.
func WithMatcher(m domain.Matcher) Option {
	return func(e *Engine) {
		e.matcher = m
	}
}

// WithEvaluator sets the evaluator implementation for query tree
// evaluation.
func WithEvaluator(ev domain.Evaluator) Option {
	return func(e *Engine) {
		e.evaluator = ev
	}
}

// WithDocumentFactory sets the function for creating [domain.Document]
// instances from caller records.
func WithDocumentFactory(d domain.DocumentFactory) Option {
	return func(e *Engine) {
		e.docFac = d
	}
}

// WithDecoder sets the decoder for result format conversions.
func WithDecoder(d domain.Decoder) Option {
	return func(e *Engine) {
		e.decoder = d
	}
}
