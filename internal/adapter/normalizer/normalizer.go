// Package normalizer contains the default [domain.Normalizer]
// implementation, turning raw clause tokens into typed conditions.
package normalizer

import (
	"regexp"
	"strconv"

	"github.com/vinicius-lino-figueiredo/seeq/domain"
)

// rangePattern is the permissive range grammar: optional numeric bounds
// around a dash, with any run of non-digit, non-minus junk between them.
var rangePattern = regexp.MustCompile(`^[^0-9-]*(-?[0-9]+(?:\.[0-9]+)?)?[^0-9-]*-[^0-9-]*(-?[0-9]+(?:\.[0-9]+)?)?[^0-9-]*$`)

// Normalizer implements [domain.Normalizer].
type Normalizer struct{}

// NewNormalizer returns a new implementation of [domain.Normalizer].
func NewNormalizer() domain.Normalizer {
	return &Normalizer{}
}

// Normalize implements [domain.Normalizer]. A regex value that does not
// compile or a range value without a single bound demotes the condition
// to a key-existence check, never an error.
func (n *Normalizer) Normalize(negated bool, marker rune, key, value string, hasValue bool) *domain.Condition {
	c := &domain.Condition{Key: key, Negated: negated}
	if !hasValue {
		return c
	}
	switch marker {
	case '*':
		pattern, err := regexp.Compile("(?i)" + value)
		if err != nil {
			return c
		}
		c.Kind = domain.KindRegex
		c.Pattern = pattern
	case '~':
		rng, ok := n.parseRange(value)
		if !ok {
			return c
		}
		c.Kind = domain.KindRange
		c.Range = rng
	default:
		c.Kind = domain.KindText
		c.Text = value
	}
	return c
}

func (n *Normalizer) parseRange(value string) (*domain.Range, bool) {
	m := rangePattern.FindStringSubmatch(value)
	if m == nil {
		return nil, false
	}
	var r domain.Range
	if m[1] != "" {
		min, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, false
		}
		r.Min = &min
	}
	if m[2] != "" {
		max, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return nil, false
		}
		r.Max = &max
	}
	if r.Min == nil && r.Max == nil {
		return nil, false
	}
	return &r, true
}
