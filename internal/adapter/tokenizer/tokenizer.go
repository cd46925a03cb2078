// Package tokenizer contains the default [domain.Tokenizer]
// implementation: a single left-to-right scan over the lowercased query
// string with explicit scanner states instead of one compound pattern.
package tokenizer

import (
	"strings"

	"github.com/vinicius-lino-figueiredo/seeq/domain"
)

// Tokenizer implements [domain.Tokenizer].
type Tokenizer struct{}

// NewTokenizer returns a new implementation of [domain.Tokenizer].
func NewTokenizer() domain.Tokenizer {
	return &Tokenizer{}
}

// Tokenize implements [domain.Tokenizer]. The query is expected to be
// lowercased by the caller. A backslash escapes the following character
// everywhere; escapes are stripped exactly once here.
func (t *Tokenizer) Tokenize(query string) []domain.Token {
	s := scanner{input: query}
	s.scan()
	return s.tokens
}

type scanner struct {
	input  string
	pos    int
	tokens []domain.Token
}

func (s *scanner) scan() {
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		case '(':
			s.emit(domain.Token{Kind: domain.TokenGroupOpen})
			s.pos++
		case ')':
			s.emit(domain.Token{Kind: domain.TokenGroupClose})
			s.pos++
		case '"':
			s.emit(domain.Token{Kind: domain.TokenValue, Text: s.quoted(), Quoted: true})
		default:
			s.clause()
		}
	}
}

func (s *scanner) emit(tok domain.Token) {
	s.tokens = append(s.tokens, tok)
}

// quoted consumes a double-quoted literal. An unterminated literal is
// closed at end of input; an empty literal is a valid explicit empty
// string.
func (s *scanner) quoted() string {
	s.pos++ // opening quote
	var b strings.Builder
	for s.pos < len(s.input) {
		ch := s.input[s.pos]
		if ch == '"' {
			s.pos++
			break
		}
		if ch == '\\' {
			s.pos++
			if s.pos == len(s.input) {
				break
			}
			ch = s.input[s.pos]
		}
		b.WriteByte(ch)
		s.pos++
	}
	return b.String()
}

// clause consumes one unquoted run. The first unescaped separator splits
// it into a key token, with its optional trailing type marker, and a
// value continuation. A run without separator is a keyword at a clause
// boundary or a bare value.
func (s *scanner) clause() {
	var b strings.Builder
	hasEscape := false   // runs with escapes are never keywords
	lastEscaped := false // whether the last written byte was escaped
	keyDone := false     // scanning the value side of the separator
scan:
	for s.pos < len(s.input) {
		switch ch := s.input[s.pos]; ch {
		case ' ', '\t', '\n', '\r', '(', ')', '"':
			break scan
		case '\\':
			hasEscape = true
			s.pos++
			if s.pos == len(s.input) {
				break scan
			}
			b.WriteByte(s.input[s.pos])
			lastEscaped = true
			s.pos++
		case ':':
			if keyDone {
				// a separator inside the value is literal text
				b.WriteByte(ch)
				lastEscaped = false
				s.pos++
				continue
			}
			s.emitKey(b.String(), lastEscaped)
			b.Reset()
			keyDone = true
			lastEscaped = false
			s.pos++
		default:
			b.WriteByte(ch)
			lastEscaped = false
			s.pos++
		}
	}

	text := b.String()
	if keyDone {
		if text != "" {
			s.emit(domain.Token{Kind: domain.TokenValue, Text: text})
		}
		return
	}
	if text == "" {
		return
	}
	if !hasEscape {
		switch text {
		case "and":
			s.emit(domain.Token{Kind: domain.TokenAnd})
			return
		case "or":
			s.emit(domain.Token{Kind: domain.TokenOr})
			return
		case "not":
			// the keyword needs a trailing space or an immediately
			// following group; anything else, including end of
			// input, leaves it a bare term
			if s.pos < len(s.input) {
				switch s.input[s.pos] {
				case ' ', '\t', '\n', '\r', '(':
					s.emit(domain.Token{Kind: domain.TokenNot})
					return
				}
			}
		}
	}
	s.emit(domain.Token{Kind: domain.TokenValue, Text: text})
}

// emitKey strips the unescaped type marker, if any, from the end of the
// key text.
func (s *scanner) emitKey(text string, markerEscaped bool) {
	var marker rune
	if !markerEscaped && text != "" {
		switch text[len(text)-1] {
		case '*', '~':
			marker = rune(text[len(text)-1])
			text = text[:len(text)-1]
		}
	}
	s.emit(domain.Token{Kind: domain.TokenKey, Text: text, Marker: marker})
}
