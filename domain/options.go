package domain

// SearchOptions controls matching behavior. The zero value is not the
// default; use [DefaultSearchOptions].
type SearchOptions struct {
	// ExcludeKeys holds dotted-path suffixes that are never considered
	// by the matcher, at any depth.
	ExcludeKeys []string
	// NumericString lets numeric-looking string values participate in
	// range predicates.
	NumericString bool
	// KeyValueMatching lets bare terms without an explicit value match
	// record values as well as field names.
	KeyValueMatching bool
	// ChildKeysAsValues additionally tests the child key names of a
	// matched value as candidate values.
	ChildKeysAsValues bool
}

// DefaultSearchOptions returns the documented defaults: numeric strings
// and key/value matching enabled, child-key matching disabled, no
// excluded keys.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		NumericString:    true,
		KeyValueMatching: true,
	}
}

// SearchOption configures matching behavior through the functional
// options pattern.
type SearchOption func(*SearchOptions)

// WithExcludeKeys sets dotted-path suffixes that are never considered by
// the matcher.
func WithExcludeKeys(keys ...string) SearchOption {
	return func(so *SearchOptions) {
		so.ExcludeKeys = keys
	}
}

// WithNumericString sets whether numeric-looking strings participate in
// range predicates.
func WithNumericString(n bool) SearchOption {
	return func(so *SearchOptions) {
		so.NumericString = n
	}
}

// WithKeyValueMatching sets whether bare terms also match record values.
func WithKeyValueMatching(k bool) SearchOption {
	return func(so *SearchOptions) {
		so.KeyValueMatching = k
	}
}

// WithChildKeysAsValues sets whether child key names of a matched value
// are tested as candidate values.
func WithChildKeysAsValues(c bool) SearchOption {
	return func(so *SearchOptions) {
		so.ChildKeysAsValues = c
	}
}
