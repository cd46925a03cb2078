// Package seeq provides an embeddable query language for filtering
// in-memory collections of structured records.
//
// A query is a single string combining field targeting, quoted literals,
// regular expressions, numeric ranges and boolean logic with arbitrary
// grouping and negation:
//
//	name: jane and (age~: 25-35 or not role: "admin")
//
// Records are plain nested objects and arrays of primitives: maps with
// string keys, structs, or anything a [DocumentFactory] can convert.
// Matching is fail-soft by design: malformed regular expressions and
// ranges degrade to key-existence checks, unbalanced parentheses and
// unterminated quotes are tolerated, and incomplete queries stay valid
// while being typed.
//
// The basic usage starts with [Search], or with [New] for a reusable
// [Engine] carrying a fixed configuration. There is no index and no
// cache: every call re-scans the whole collection synchronously.
//
// Known limitation: cyclic record graphs are not detected and will not
// terminate, and a caller-supplied regular expression is evaluated as
// given.
package seeq

import (
	"github.com/vinicius-lino-figueiredo/seeq/domain"
	"github.com/vinicius-lino-figueiredo/seeq/internal/adapter/engine"
)

// Document represents a structured record. The engine never mutates the
// documents it is given.
type Document = domain.Document

// DocumentFactory converts caller records into [Document] instances.
type DocumentFactory = domain.DocumentFactory

// Tokenizer produces the ordered token sequence of a query string.
type Tokenizer = domain.Tokenizer

// Normalizer turns raw clause tokens into typed conditions.
type Normalizer = domain.Normalizer

// Parser builds the query tree from a query string.
type Parser = domain.Parser

// Matcher decides whether a condition is satisfied anywhere in a
// record's nested key graph.
type Matcher = domain.Matcher

// Evaluator walks a query tree against a record list.
type Evaluator = domain.Evaluator

// Decoder converts matched documents into caller types.
type Decoder = domain.Decoder

// Condition is a leaf node of the parsed query tree.
type Condition = domain.Condition

// Group is an internal node of the parsed query tree.
type Group = domain.Group

// ErrTargetNil is returned when a nil value is provided as the target to
// decode results into, for example calling [Engine.SearchInto].
type ErrTargetNil = domain.ErrTargetNil

// ErrRecordsType is returned when the records argument is neither nil
// nor a slice or array.
type ErrRecordsType = domain.ErrRecordsType

// ErrDocumentType is returned when a record element cannot be converted
// into a [Document].
type ErrDocumentType = domain.ErrDocumentType

// ErrDecode wraps third party decoding errors raised while scanning
// results into a caller type.
type ErrDecode = domain.ErrDecode

// Engine is a reusable search instance carrying a fixed configuration.
// Engines hold no per-call state: concurrent callers may share one, as
// long as the records themselves are not mutated concurrently.
type Engine = domain.Engine

// Option configures an [Engine] through the functional options pattern.
type Option = engine.Option

// New creates a new [Engine] with the provided configuration options:
//
// - [WithExcludeKeys]: dotted-path suffixes never considered, at any
// depth.
//
// - [WithNumericString]: numeric-looking strings participate in range
// predicates (default true).
//
// - [WithKeyValueMatching]: bare terms without an explicit value also
// match record values (default true).
//
// - [WithChildKeysAsValues]: child key names of a matched value are
// tested as candidate values (default false).
//
// - [WithTokenizer], [WithNormalizer], [WithParser], [WithMatcher],
// [WithEvaluator], [WithDocumentFactory], [WithDecoder]: replace a
// pipeline stage with a custom implementation.
func New(options ...Option) Engine {
	return engine.NewEngine(options...)
}

// Search filters records with a throwaway [Engine]. records may be any
// slice or array of maps, structs or Documents; nil records yield an
// empty result and a blank query yields a shallow copy of all records,
// never an error. Survivors keep their original relative order.
func Search(records any, query string, options ...Option) ([]Document, error) {
	return New(options...).Search(records, query)
}

// WithExcludeKeys sets dotted-path suffixes that are never considered by
// the matcher, at any depth.
func WithExcludeKeys(keys ...string) Option {
	return engine.WithSearchOptions(domain.WithExcludeKeys(keys...))
}

// WithNumericString sets whether numeric-looking string values
// participate in range predicates.
func WithNumericString(n bool) Option {
	return engine.WithSearchOptions(domain.WithNumericString(n))
}

// WithKeyValueMatching sets whether bare terms without an explicit value
// also match record values.
func WithKeyValueMatching(k bool) Option {
	return engine.WithSearchOptions(domain.WithKeyValueMatching(k))
}

// WithChildKeysAsValues sets whether the child key names of a matched
// value are tested as candidate values.
func WithChildKeysAsValues(c bool) Option {
	return engine.WithSearchOptions(domain.WithChildKeysAsValues(c))
}

// WithTokenizer sets the tokenizer implementation for query scanning.
func WithTokenizer(t Tokenizer) Option {
	return engine.WithTokenizer(t)
}

// WithNormalizer sets the normalizer implementation for condition
// construction.
func WithNormalizer(n Normalizer) Option {
	return engine.WithNormalizer(n)
}

// WithParser sets the parser implementation for query tree construction.
func WithParser(p Parser) Option {
	return engine.WithParser(p)
}

// WithMatcher sets the matcher implementation for condition evaluation.
func WithMatcher(m Matcher) Option {
	return engine.WithMatcher(m)
}

// WithEvaluator sets the evaluator implementation for query tree
// evaluation.
func WithEvaluator(ev Evaluator) Option {
	return engine.WithEvaluator(ev)
}

// WithDocumentFactory sets the function for creating [Document]
// instances from caller records.
func WithDocumentFactory(d DocumentFactory) Option {
	return engine.WithDocumentFactory(d)
}

// WithDecoder sets the decoder for result format conversions.
func WithDecoder(d Decoder) Option {
	return engine.WithDecoder(d)
}
