// Package domain contains domain-specific interfaces, query tree types
// and option types for seeq.
//
// This package defines the core interfaces that must be implemented by
// adapters, as well as functional options for configuring the search
// pipeline: tokenizer, parser, matcher and evaluator.
package domain

import "iter"

// Document represents a structured record: nested objects and arrays of
// primitives. The engine only reads documents; Set exists so loaders and
// factories can build them. Document is read by one goroutine at a time
// and doesn't need to be concurrency safe.
type Document interface {
	// Get returns the value under the given key, or nil if unset.
	Get(string) any
	// Set sets the value under the given key.
	Set(string, any)
	// Has reports whether a value is set under the given key.
	Has(string) bool
	// Iter returns an unordered sequence of key-value pairs in the
	// document.
	Iter() iter.Seq2[string, any]
	// Keys returns an unordered sequence of keys in the document.
	Keys() iter.Seq[string]
	// Len returns the number of set fields in the document.
	Len() int
}

// DocumentFactory converts structured data (maps, structs, nested slices)
// into a [Document]. If nil is given, a document of length 0 is returned.
type DocumentFactory func(any) (Document, error)

// Tokenizer produces the ordered token sequence of a query string. The
// query is expected to be lowercased by the caller. Tokenizing never
// fails: malformed input degrades per the fail-soft rules.
type Tokenizer interface {
	// Tokenize scans the query left to right into tokens.
	Tokenize(query string) []Token
}

// Normalizer turns raw clause tokens into a typed [Condition]. A value
// that cannot be compiled or parsed for its marker demotes the condition
// to a key-existence check instead of failing.
type Normalizer interface {
	// Normalize builds a condition from the clause parts. hasValue
	// distinguishes an absent value from an explicit empty one.
	Normalize(negated bool, marker rune, key, value string, hasValue bool) *Condition
}

// Parser builds the query tree from a query string.
type Parser interface {
	// Parse consumes the token stream into a group tree. Unbalanced
	// parentheses are tolerated, never an error.
	Parse(query string) *Group
}

// Matcher decides whether a single condition is satisfied anywhere in a
// document's nested key graph.
type Matcher interface {
	// Matches reports whether the document satisfies the condition,
	// ignoring the condition's negation flag.
	Matches(Document, *Condition) bool
}

// Evaluator walks a query tree against a record list and returns the
// matching subset in original relative order.
type Evaluator interface {
	Evaluate(*Group, []Document) []Document
}

// Decoder converts between different data representations.
type Decoder interface {
	// Decode converts from one data format to another.
	Decode(any, any) error
}

// Engine is the public search surface, carrying a fixed set of options.
// Engines hold no per-call state and may be shared by concurrent callers
// as long as the records themselves are not mutated.
type Engine interface {
	// Search returns the subset of records satisfying the query, in
	// original relative order. records may be any slice or array of
	// maps, structs or Documents. A nil records value yields an empty
	// result; a blank query yields a shallow copy of all records.
	Search(records any, query string) ([]Document, error)

	// SearchInto decodes the matching subset into target, which must be
	// a non-nil pointer to a slice.
	SearchInto(records any, query string, target any) error

	// Count returns the number of records satisfying the query.
	Count(records any, query string) (int64, error)
}
