// Package matcher contains the default [domain.Matcher] implementation,
// resolving one condition against the nested key graph of a record.
package matcher

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/vinicius-lino-figueiredo/seeq/domain"
)

// Matcher implements [domain.Matcher].
type Matcher struct {
	options domain.SearchOptions
}

// NewMatcher returns a new implementation of [domain.Matcher]. Excluded
// key suffixes are lowercased once here; paths are compared lowercase.
func NewMatcher(options ...Option) domain.Matcher {
	m := &Matcher{options: domain.DefaultSearchOptions()}
	for _, option := range options {
		option(m)
	}
	excluded := make([]string, len(m.options.ExcludeKeys))
	for i, key := range m.options.ExcludeKeys {
		excluded[i] = strings.ToLower(key)
	}
	m.options.ExcludeKeys = excluded
	return m
}

// Matches implements [domain.Matcher]. It recursively walks the
// document's own keys, arrays by index, accumulating the dotted
// lowercase path each key lives under. Cyclic record graphs are not
// detected and will not terminate.
func (m *Matcher) Matches(doc domain.Document, c *domain.Condition) bool {
	return m.walk(doc, c, "")
}

func (m *Matcher) walk(v any, c *domain.Condition, path string) bool {
	switch t := v.(type) {
	case domain.Document:
		for key, child := range t.Iter() {
			if m.step(key, child, c, path) {
				return true
			}
		}
	case map[string]any:
		for key, child := range t {
			if m.step(key, child, c, path) {
				return true
			}
		}
	case []any:
		for i, child := range t {
			if m.step(strconv.Itoa(i), child, c, path) {
				return true
			}
		}
	}
	return false
}

func (m *Matcher) step(key string, child any, c *domain.Condition, path string) bool {
	path += domain.PathSeparator + strings.ToLower(key)
	if m.excluded(path) {
		return false
	}

	if c.Key != "" && !strings.Contains(path, c.Key) {
		// the key fragment has not matched yet. A bare term may still
		// match this value directly, and the fragment may match a
		// deeper path; paths only grow, so a fragment that matched
		// here stays matched below.
		if m.options.KeyValueMatching && c.Kind == domain.KindNone && m.text(child, c.Key) {
			return true
		}
		return m.walk(child, c, path)
	}

	if c.Kind == domain.KindNone {
		// key existence is sufficient
		return true
	}
	if m.match(child, c) {
		return true
	}
	if m.options.ChildKeysAsValues && m.childKeys(child, c) {
		return true
	}
	// the direct value missed; a deeper nested value may still satisfy
	return m.walk(child, c, path)
}

func (m *Matcher) excluded(path string) bool {
	for _, key := range m.options.ExcludeKeys {
		if strings.HasSuffix(path, key) {
			return true
		}
	}
	return false
}

// childKeys tests the key names of an object value as candidate values.
func (m *Matcher) childKeys(v any, c *domain.Condition) bool {
	switch t := v.(type) {
	case domain.Document:
		for key := range t.Keys() {
			if m.match(key, c) {
				return true
			}
		}
	case map[string]any:
		for key := range t {
			if m.match(key, c) {
				return true
			}
		}
	}
	return false
}

// match tests one value against the condition's typed predicate.
// Containers never match directly; the caller recurses into them.
func (m *Matcher) match(v any, c *domain.Condition) bool {
	switch c.Kind {
	case domain.KindText:
		return m.text(v, c.Text)
	case domain.KindRegex:
		if c.Pattern == nil {
			return false
		}
		s, ok := m.asString(v)
		if !ok {
			return false
		}
		return c.Pattern.MatchString(s)
	case domain.KindRange:
		return m.between(v, c.Range)
	}
	return false
}

// text reports case-insensitive substring containment. Strings match
// directly; numbers, booleans and big integers through their string
// form. nil never matches.
func (m *Matcher) text(v any, text string) bool {
	s, ok := m.asString(v)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(s), text)
}

func (m *Matcher) between(v any, r *domain.Range) bool {
	if r == nil {
		return false
	}
	f, ok := m.asFloat(v)
	if !ok && m.options.NumericString {
		if s, isString := v.(string); isString {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			f, ok = parsed, err == nil
		}
	}
	if !ok {
		return false
	}
	return (r.Min == nil || f >= *r.Min) && (r.Max == nil || f <= *r.Max)
}

func (m *Matcher) asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case *big.Int:
		return t.String(), true
	}
	if f, ok := m.asFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}

func (m *Matcher) asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case *big.Int:
		f, _ := new(big.Float).SetInt(n).Float64()
		return f, true
	}
	return 0, false
}
