package parser

import "github.com/vinicius-lino-figueiredo/seeq/domain"

// Option configures parser behavior through the functional options
// pattern.
type Option func(*Parser)

// WithTokenizer sets the tokenizer producing the token stream.
func WithTokenizer(t domain.Tokenizer) Option {
	return func(p *Parser) {
		p.tokenizer = t
	}
}

// WithNormalizer sets the normalizer turning clause tokens into
// conditions.
func WithNormalizer(n domain.Normalizer) Option {
	return func(p *Parser) {
		p.normalizer = n
	}
}
