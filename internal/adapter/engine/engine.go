// Package engine contains the default [domain.Engine] implementation,
// wiring tokenizer, parser and evaluator behind a fixed configuration.
package engine

import (
	"strings"

	goreflect "github.com/goccy/go-reflect"

	"github.com/vinicius-lino-figueiredo/seeq/domain"
	"github.com/vinicius-lino-figueiredo/seeq/internal/adapter/data"
	"github.com/vinicius-lino-figueiredo/seeq/internal/adapter/decoder"
	"github.com/vinicius-lino-figueiredo/seeq/internal/adapter/evaluator"
	"github.com/vinicius-lino-figueiredo/seeq/internal/adapter/matcher"
	"github.com/vinicius-lino-figueiredo/seeq/internal/adapter/parser"
)

// Engine implements [domain.Engine]. All state is fixed at construction;
// one engine may be shared by concurrent callers.
type Engine struct {
	options    domain.SearchOptions
	tokenizer  domain.Tokenizer
	normalizer domain.Normalizer
	parser     domain.Parser
	matcher    domain.Matcher
	evaluator  domain.Evaluator
	decoder    domain.Decoder
	docFac     domain.DocumentFactory
}

// NewEngine returns a new implementation of [domain.Engine], filling any
// collaborator not set through options with the default implementation.
func NewEngine(options ...Option) domain.Engine {
	e := &Engine{options: domain.DefaultSearchOptions()}
	for _, option := range options {
		option(e)
	}
	if e.docFac == nil {
		e.docFac = data.NewDocument
	}
	if e.parser == nil {
		var opts []parser.Option
		if e.tokenizer != nil {
			opts = append(opts, parser.WithTokenizer(e.tokenizer))
		}
		if e.normalizer != nil {
			opts = append(opts, parser.WithNormalizer(e.normalizer))
		}
		e.parser = parser.NewParser(opts...)
	}
	if e.matcher == nil {
		e.matcher = matcher.NewMatcher(matcher.WithSearchOptions(e.options))
	}
	if e.evaluator == nil {
		e.evaluator = evaluator.NewEvaluator(evaluator.WithMatcher(e.matcher))
	}
	if e.decoder == nil {
		e.decoder = decoder.NewDecoder()
	}
	return e
}

// Search implements [domain.Engine].
func (e *Engine) Search(records any, query string) ([]domain.Document, error) {
	docs, err := e.documents(records)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return docs, nil
	}
	group := e.parser.Parse(strings.ToLower(query))
	return e.evaluator.Evaluate(group, docs), nil
}

// SearchInto implements [domain.Engine].
func (e *Engine) SearchInto(records any, query string, target any) error {
	if target == nil {
		return &domain.ErrTargetNil{}
	}
	docs, err := e.Search(records, query)
	if err != nil {
		return err
	}
	return e.decoder.Decode(docs, target)
}

// Count implements [domain.Engine].
func (e *Engine) Count(records any, query string) (int64, error) {
	docs, err := e.Search(records, query)
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}

// documents converts the records argument into the working document
// list. nil, nil pointers and nil slices all count as an empty
// collection.
func (e *Engine) documents(records any) ([]domain.Document, error) {
	if records == nil {
		return []domain.Document{}, nil
	}

	r := goreflect.ValueOf(records)
	k := r.Kind()
	for k == goreflect.Interface || k == goreflect.Ptr {
		if r.IsNil() {
			return []domain.Document{}, nil
		}
		r = r.Elem()
		k = r.Kind()
	}
	if k != goreflect.Slice && k != goreflect.Array {
		return nil, domain.ErrRecordsType{Type: r.Type().String()}
	}
	if k == goreflect.Slice && r.IsNil() {
		return []domain.Document{}, nil
	}

	docs := make([]domain.Document, r.Len())
	for i := range docs {
		doc, err := e.docFac(r.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		docs[i] = doc
	}
	return docs, nil
}
