// Package parser contains the default [domain.Parser] implementation, a
// recursive descent consumer of the tokenizer's token stream.
package parser

import (
	"github.com/vinicius-lino-figueiredo/seeq/domain"
	"github.com/vinicius-lino-figueiredo/seeq/internal/adapter/normalizer"
	"github.com/vinicius-lino-figueiredo/seeq/internal/adapter/tokenizer"
)

// Parser implements [domain.Parser].
type Parser struct {
	tokenizer  domain.Tokenizer
	normalizer domain.Normalizer
}

// NewParser returns a new implementation of [domain.Parser].
func NewParser(options ...Option) domain.Parser {
	p := &Parser{}
	for _, option := range options {
		option(p)
	}
	if p.tokenizer == nil {
		p.tokenizer = tokenizer.NewTokenizer()
	}
	if p.normalizer == nil {
		p.normalizer = normalizer.NewNormalizer()
	}
	return p
}

// Parse implements [domain.Parser]. The returned group is the implicit
// root. End of input closes any still-open groups; closing markers
// without a matching open are ignored.
func (p *Parser) Parse(query string) *domain.Group {
	tokens := p.tokenizer.Tokenize(query)
	root, _ := p.group(tokens, 0, false, true)
	return root
}

func (p *Parser) group(tokens []domain.Token, pos int, negated, root bool) (*domain.Group, int) {
	g := &domain.Group{Negated: negated}
	pendingNot := false
	for pos < len(tokens) {
		tok := tokens[pos]
		switch tok.Kind {
		case domain.TokenNot:
			pendingNot = true
			pos++

		case domain.TokenGroupOpen:
			var child *domain.Group
			child, pos = p.group(tokens, pos+1, pendingNot, false)
			pendingNot = false
			g.Children = append(g.Children, child)

		case domain.TokenGroupClose:
			pos++
			if root {
				continue
			}
			return g, pos

		case domain.TokenAnd, domain.TokenOr:
			// the operator is stored on the left operand; with no
			// left sibling it has nothing to join and is dropped
			if n := len(g.Children); n > 0 {
				op := domain.OpAnd
				if tok.Kind == domain.TokenOr {
					op = domain.OpOr
				}
				g.Children[n-1].SetNextOp(op)
			}
			pos++

		case domain.TokenKey:
			key, marker := tok.Text, tok.Marker
			var value string
			var hasValue bool
			pos++
			if pos < len(tokens) && tokens[pos].Kind == domain.TokenValue {
				value, hasValue = tokens[pos].Text, true
				pos++
			}
			if key == "" && !hasValue {
				// stray separator, suppress the empty clause
				pendingNot = false
				continue
			}
			c := p.normalizer.Normalize(pendingNot, marker, key, value, hasValue)
			pendingNot = false
			g.Children = append(g.Children, c)

		case domain.TokenValue:
			// an unquoted bare term matches as a key (and, when
			// key/value matching is on, as a value); quoting
			// forces value-only matching
			var c *domain.Condition
			if tok.Quoted {
				c = p.normalizer.Normalize(pendingNot, 0, domain.PathSeparator, tok.Text, true)
			} else {
				c = p.normalizer.Normalize(pendingNot, 0, tok.Text, "", false)
			}
			pendingNot = false
			g.Children = append(g.Children, c)
			pos++
		}
	}
	return g, pos
}
